package transform

// Domain tags the set of values a transformation's forward function produces.
type Domain int

const (
	// Real is the untransformed real line.
	Real Domain = iota
	// Positive is [0, +inf).
	Positive
	// Negative is (-inf, 0].
	Negative
	// Bounded is a closed interval [lower, upper].
	Bounded
)

var domainNames = map[Domain]string{
	Real:     "real",
	Positive: "positive",
	Negative: "negative",
	Bounded:  "bounded",
}

func (d Domain) String() string {
	if name, ok := domainNames[d]; ok {
		return name
	}
	return "unknown"
}
