package curve

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/meghashyamc/knotsaver/geometry"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func vec(x, y float64) geometry.Vector {
	return geometry.Vector{X: x, Y: y}
}

func vecs(xy ...float64) []geometry.Vector {
	out := make([]geometry.Vector, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, vec(xy[i], xy[i+1]))
	}
	return out
}
