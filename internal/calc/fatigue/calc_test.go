package fatigue_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	fatigue "Woehler/internal/calc/fatigue"
)

func mustCalculate(t *testing.T, in fatigue.Input) fatigue.Result {
	t.Helper()
	res, err := fatigue.Calculate(in)
	if err != nil {
		t.Fatalf("Calculate(%+v): %v", in, err)
	}
	return res
}

func TestCalculate_InfiniteLife(t *testing.T) {
	// Steel at 150 MPa amplitude with zero mean stress stays below the
	// 200 MPa endurance limit.
	res := mustCalculate(t, fatigue.Input{
		StressAmplitudeMPa: 150,
		MeanStressMPa:      0,
		Cycles:             100_000,
		Material:           "steel",
		SafetyFactor:       2.0,
	})

	want := fatigue.Result{
		CyclesToFailure: 10_000_000,
		SafetyMargin:    100.0,
		IsSafe:          true,
		AnalysisMethod:  fatigue.AnalysisMethod,
	}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestCalculate_FiniteLife(t *testing.T) {
	// Aluminum at 200 MPa amplitude, 50 MPa mean: equivalent stress is
	// 200/(1-50/620) = 217.54... MPa, above the 130 MPa endurance limit.
	// The coefficient ratio is exactly 570/200 = 2.85, so the power law
	// gives 2.85^3 * 1000 = 23149.125, truncated to 23149.
	res := mustCalculate(t, fatigue.Input{
		StressAmplitudeMPa: 200,
		MeanStressMPa:      50,
		Cycles:             50_000,
		Material:           "aluminum",
	})

	if res.CyclesToFailure != 23_149 {
		t.Errorf("cycles to failure: got %d, want 23149", res.CyclesToFailure)
	}
	if math.Abs(res.SafetyMargin-0.46298) > 1e-9 {
		t.Errorf("safety margin: got %g, want 0.46298", res.SafetyMargin)
	}
	if res.IsSafe {
		t.Error("is_safe: got true, want false with default safety factor")
	}
}

func TestCalculate_EnduranceLimitBoundary(t *testing.T) {
	// An equivalent stress exactly at the endurance limit still counts as
	// infinite life for every supported material.
	for _, name := range fatigue.Materials() {
		props, err := fatigue.Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
		res := mustCalculate(t, fatigue.Input{
			StressAmplitudeMPa: props.EnduranceLimitMPa,
			MeanStressMPa:      0,
			Cycles:             1000,
			Material:           name,
		})
		if res.CyclesToFailure != 10_000_000 {
			t.Errorf("%s at endurance limit: got %d cycles, want 10000000", name, res.CyclesToFailure)
		}
	}
}

func TestCalculate_MarginAndVerdict(t *testing.T) {
	cases := []struct {
		name  string
		input fatigue.Input
		safe  bool
	}{
		{"default factor unsafe", fatigue.Input{StressAmplitudeMPa: 150, Cycles: 10_000_000, Material: "steel"}, false},
		{"explicit factor safe", fatigue.Input{StressAmplitudeMPa: 150, Cycles: 10_000_000, Material: "steel", SafetyFactor: 0.5}, true},
		{"margin equals factor", fatigue.Input{StressAmplitudeMPa: 150, Cycles: 5_000_000, Material: "steel"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := mustCalculate(t, tc.input)
			wantMargin := float64(res.CyclesToFailure) / float64(tc.input.Cycles)
			if res.SafetyMargin != wantMargin {
				t.Errorf("safety margin: got %g, want %g", res.SafetyMargin, wantMargin)
			}
			if res.IsSafe != tc.safe {
				t.Errorf("is_safe: got %v, want %v", res.IsSafe, tc.safe)
			}
		})
	}
}

func TestCalculate_Idempotent(t *testing.T) {
	in := fatigue.Input{
		StressAmplitudeMPa: 310,
		MeanStressMPa:      40,
		Cycles:             75_000,
		Material:           "Steel",
		SafetyFactor:       1.5,
	}
	first := mustCalculate(t, in)
	second := mustCalculate(t, in)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated evaluation differs (-first +second):\n%s", diff)
	}
}

func TestCalculate_MeanStressAboveCoefficient(t *testing.T) {
	// A mean stress above the coefficient flips the Goodman denominator
	// negative. The simplified model passes this through rather than
	// rejecting it.
	res, err := fatigue.Calculate(fatigue.Input{
		StressAmplitudeMPa: 150,
		MeanStressMPa:      1000,
		Cycles:             1000,
		Material:           "steel",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.CyclesToFailure != 10_000_000 {
		t.Errorf("cycles to failure: got %d, want 10000000 (negative equivalent stress falls below the limit)", res.CyclesToFailure)
	}
}

func TestCalculate_UnsupportedMaterial(t *testing.T) {
	_, err := fatigue.Calculate(fatigue.Input{
		StressAmplitudeMPa: 100,
		Cycles:             1000,
		Material:           "titanium",
	})
	var matErr *fatigue.UnsupportedMaterialError
	if !errors.As(err, &matErr) {
		t.Fatalf("got %v, want UnsupportedMaterialError", err)
	}
	if matErr.Material != "titanium" {
		t.Errorf("error material: got %q, want %q", matErr.Material, "titanium")
	}
	if !strings.Contains(err.Error(), "titanium") {
		t.Errorf("error message %q does not name the material", err.Error())
	}
}

func TestCalculate_SingularMeanStress(t *testing.T) {
	_, err := fatigue.Calculate(fatigue.Input{
		StressAmplitudeMPa: 150,
		MeanStressMPa:      900, // steel's fatigue strength coefficient
		Cycles:             1000,
		Material:           "steel",
	})
	var singErr *fatigue.SingularMeanStressError
	if !errors.As(err, &singErr) {
		t.Fatalf("got %v, want SingularMeanStressError", err)
	}
	if singErr.MeanStressMPa != 900 {
		t.Errorf("error mean stress: got %g, want 900", singErr.MeanStressMPa)
	}
}

func TestCalculate_ZeroCycles(t *testing.T) {
	_, err := fatigue.Calculate(fatigue.Input{
		StressAmplitudeMPa: 150,
		Cycles:             0,
		Material:           "steel",
	})
	var zeroErr *fatigue.ZeroCyclesError
	if !errors.As(err, &zeroErr) {
		t.Fatalf("got %v, want ZeroCyclesError", err)
	}
}
