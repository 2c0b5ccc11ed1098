package transform

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/paramz-go/paramz/transform/internal/testutil"
)

func TestGoldenDataset(t *testing.T) {
	dataset := testutil.LoadGoldenDataset(t)
	require.NotEmpty(t, dataset.Cases)

	r := NewRegistry(nil)
	for _, tc := range dataset.Cases {
		name := fmt.Sprintf("%s[%v,%v]/x=%v", tc.Transform, tc.Lower, tc.Upper, tc.X)
		t.Run(name, func(t *testing.T) {
			tr, err := r.ByName(tc.Transform, tc.Lower, tc.Upper)
			require.NoError(t, err)

			testutil.AssertFloat64Equal(t, "F", tc.F, tr.F(tc.X), 1e-12)
			if tc.Finv == nil {
				return
			}
			x, err := tr.Finv(tc.F)
			require.NoError(t, err)
			testutil.AssertFloat64Equal(t, "Finv", *tc.Finv, x, 1e-9)
		})
	}
	require.Len(t, r.Logistics(), 3)
}
