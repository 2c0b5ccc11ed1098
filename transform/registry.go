package transform

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// bounds keys the Logistic cache. -0 and +0 compare equal, NaN never reaches it.
type bounds struct {
	lower, upper float64
}

// Registry caches transformation instances.
//
// Parameterless variants are created once per Registry; every later request
// returns the same pointer. Logistic instances are cached per (lower, upper)
// pair in first-seen order.
//
// Thread-safety: safe for concurrent use. A single mutex guards the caches and
// is held only for the lookup-or-insert step.
type Registry struct {
	mu         sync.Mutex
	singletons map[Kind]Transformation
	logistics  []*Logistic
	byBounds   map[bounds]*Logistic
	metrics    *Metrics
}

// NewRegistry creates an empty Registry. metrics may be nil.
func NewRegistry(metrics *Metrics) *Registry {
	return &Registry{
		singletons: make(map[Kind]Transformation),
		byBounds:   make(map[bounds]*Logistic),
		metrics:    metrics,
	}
}

// Logexp returns the registry's Logexp instance.
func (r *Registry) Logexp() *Logexp { return r.singleton(KindLogexp).(*Logexp) }

// Exponent returns the registry's Exponent instance.
func (r *Registry) Exponent() *Exponent { return r.singleton(KindExponent).(*Exponent) }

// Square returns the registry's Square instance.
func (r *Registry) Square() *Square { return r.singleton(KindSquare).(*Square) }

// NegativeLogexp returns the registry's NegativeLogexp instance.
func (r *Registry) NegativeLogexp() *NegativeLogexp {
	return r.singleton(KindNegativeLogexp).(*NegativeLogexp)
}

// NegativeExponent returns the registry's NegativeExponent instance.
func (r *Registry) NegativeExponent() *NegativeExponent {
	return r.singleton(KindNegativeExponent).(*NegativeExponent)
}

// Logistic returns a Logistic on [lower, upper], reusing a cached instance
// when the same bounds were requested before. Invalid bounds return an error
// wrapping ErrInvalidBounds and leave the cache untouched.
func (r *Registry) Logistic(lower, upper float64) (*Logistic, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := bounds{lower: lower, upper: upper}
	if t, ok := r.byBounds[key]; ok {
		r.metrics.ObserveConstruction(KindLogistic, true)
		return t, nil
	}
	t, err := newLogistic(lower, upper)
	if err != nil {
		return nil, err
	}
	r.byBounds[key] = t
	r.logistics = append(r.logistics, t)
	r.metrics.ObserveConstruction(KindLogistic, false)
	r.metrics.SetCachedInstances(KindLogistic, len(r.logistics))
	logrus.Debugf("transform registry: cached logistic [%v, %v] (%d bounded instances)", lower, upper, len(r.logistics))
	return t, nil
}

// New returns the transformation of the given kind. lower and upper are only
// used by parameterized kinds.
func (r *Registry) New(kind Kind, lower, upper float64) (Transformation, error) {
	if kind.Parameterized() {
		t, err := r.Logistic(lower, upper)
		if err != nil {
			return nil, err
		}
		return t, nil
	}
	if _, ok := kindNames[kind]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTransform, kind)
	}
	return r.singleton(kind), nil
}

// ByName returns the transformation registered under name.
// Valid names are defined in ValidTransforms.
func (r *Registry) ByName(name string, lower, upper float64) (Transformation, error) {
	kind, err := ParseKind(name)
	if err != nil {
		return nil, err
	}
	return r.New(kind, lower, upper)
}

// Logistics returns a copy of the cached Logistic instances in first-seen order.
func (r *Registry) Logistics() []*Logistic {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Logistic, len(r.logistics))
	copy(out, r.logistics)
	return out
}

// Len returns the total number of cached instances.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.singletons) + len(r.logistics)
}

// Reset drops every cached instance. Later requests construct new ones.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.singletons = make(map[Kind]Transformation)
	r.byBounds = make(map[bounds]*Logistic)
	r.logistics = nil
	for _, k := range Kinds {
		r.metrics.SetCachedInstances(k, 0)
	}
}

func (r *Registry) singleton(kind Kind) Transformation {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t, ok := r.singletons[kind]; ok {
		r.metrics.ObserveConstruction(kind, true)
		return t
	}
	t := newSingleton(kind)
	r.singletons[kind] = t
	r.metrics.ObserveConstruction(kind, false)
	r.metrics.SetCachedInstances(kind, 1)
	logrus.Debugf("transform registry: cached %s", kind)
	return t
}

// newSingleton constructs a parameterless variant.
// Panics on parameterized or unrecognized kinds.
func newSingleton(kind Kind) Transformation {
	switch kind {
	case KindLogexp:
		return &Logexp{}
	case KindExponent:
		return &Exponent{}
	case KindSquare:
		return &Square{}
	case KindNegativeLogexp:
		return &NegativeLogexp{}
	case KindNegativeExponent:
		return &NegativeExponent{}
	default:
		panic(fmt.Sprintf("unhandled transformation kind %d", int(kind)))
	}
}
