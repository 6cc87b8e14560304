// ABOUTME: Tests for shared vector helpers
// ABOUTME: Verifies normalization behavior including the zero-vector case
package encoder

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	v := Normalize([]float64{3, 4})
	if math.Abs(v[0]-0.6) > 1e-12 || math.Abs(v[1]-0.8) > 1e-12 {
		t.Errorf("Normalize([3,4]) = %v, want [0.6, 0.8]", v)
	}
}

func TestNormalize_AlreadyUnit(t *testing.T) {
	v := Normalize([]float64{1, 0, 0})
	if v[0] != 1 || v[1] != 0 || v[2] != 0 {
		t.Errorf("Normalize([1,0,0]) = %v, want unchanged", v)
	}
}

func TestNormalize_ZeroVector(t *testing.T) {
	v := Normalize([]float64{0, 0, 0})
	for i, x := range v {
		if x != 0 {
			t.Errorf("v[%d] = %v, want 0", i, x)
		}
		if math.IsNaN(x) {
			t.Errorf("v[%d] is NaN", i)
		}
	}
}
