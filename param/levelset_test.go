// SPDX-License-Identifier: MIT

package param_test

import (
	"testing"

	"github.com/katalvlaran/epsmap/field"
	"github.com/katalvlaran/epsmap/param"
	"github.com/stretchr/testify/require"
)

// TestUnimplemented_Contract checks the base contract and the level-set stub
// never produce a field.
func TestUnimplemented_Contract(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		p    param.Parameterization[float64]
		kind param.Kind
	}{
		{"Base", param.Unimplemented[float64]{}, param.KindUnknown},
		{"LevelSet", param.LevelSet[float64]{}, param.KindLevelSet},
		{"Shape", param.NewShape[float64](field.Real{}), param.KindShape},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.kind, tc.p.Kind())
			require.False(t, param.Implemented(tc.p))

			for _, p := range [][]float64{nil, {0.5}, make([]float64, 16)} {
				eps, err := tc.p.Eps(p)
				require.ErrorIs(t, err, param.ErrNotImplemented)
				require.Nil(t, eps)
			}
		})
	}

	require.False(t, param.Implemented[float64](nil))
}

// TestLevelSetEps_Stub checks the free function ignores its arguments.
func TestLevelSetEps_Stub(t *testing.T) {
	t.Parallel()

	eps, err := param.LevelSetEps(field.Real{}, MustFilled(t, 2, 2, 0.5), MustFilled(t, 2, 2, 1),
		MustField(t, 2, 2, []float64{0, 1, 1, 0}), 4.0)
	require.ErrorIs(t, err, param.ErrNotImplemented)
	require.Nil(t, eps)

	// Even nil inputs yield the same error rather than a validation failure.
	eps, err = param.LevelSetEps[float64](field.Real{}, nil, nil, nil, 0)
	require.ErrorIs(t, err, param.ErrNotImplemented)
	require.Nil(t, eps)
}

// TestKind_String covers every named kind and the fallback.
func TestKind_String(t *testing.T) {
	t.Parallel()

	want := map[param.Kind]string{
		param.KindUnknown:  "unknown",
		param.KindDensity:  "density",
		param.KindShape:    "shape",
		param.KindCircles:  "circles",
		param.KindLevelSet: "levelset",
		param.Kind(99):     "unknown",
	}
	for k, s := range want {
		require.Equal(t, s, k.String())
	}
}
