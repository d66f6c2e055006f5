package fatigue

import (
	"fmt"
	"math"
)

// AnalysisMethod labels every result produced by Calculate.
const AnalysisMethod = "Simplified S-N Curve with Goodman Correction"

const (
	// infiniteLifeCycles caps the life estimate once the equivalent stress
	// falls at or below the endurance limit.
	infiniteLifeCycles = 10_000_000

	// Power-law S-N relationship: N = (sigma_f' / sigma_eq)^snExponent * snScaleCycles.
	snExponent    = 3.0
	snScaleCycles = 1000.0

	defaultSafetyFactor = 2.0
)

type Input struct {
	StressAmplitudeMPa float64 `json:"stress_amplitude"`
	MeanStressMPa      float64 `json:"mean_stress"`
	Cycles             int     `json:"cycles"`
	Material           string  `json:"material"`
	SafetyFactor       float64 `json:"safety_factor"`
}

type Result struct {
	CyclesToFailure int     `json:"cycles_to_failure"`
	SafetyMargin    float64 `json:"safety_margin"`
	IsSafe          bool    `json:"is_safe"`
	AnalysisMethod  string  `json:"analysis_method"`
}

// SingularMeanStressError reports a mean stress equal to the material's
// fatigue strength coefficient, which zeroes the Goodman denominator.
type SingularMeanStressError struct {
	MeanStressMPa float64
}

func (e *SingularMeanStressError) Error() string {
	return fmt.Sprintf("mean stress %g MPa equals the fatigue strength coefficient, Goodman denominator is zero", e.MeanStressMPa)
}

// ZeroCyclesError reports an applied cycle count of zero, which leaves the
// safety margin undefined.
type ZeroCyclesError struct{}

func (e *ZeroCyclesError) Error() string {
	return "applied cycles must be non-zero"
}

// Calculate estimates fatigue life for one load case. It is a pure function
// of the input and the material table: same input, same result.
func Calculate(in Input) (Result, error) {
	props, err := Lookup(in.Material)
	if err != nil {
		return Result{}, err
	}
	if in.SafetyFactor <= 0 {
		in.SafetyFactor = defaultSafetyFactor
	}

	// Goodman correction: rescale the alternating stress to an equivalent
	// fully-reversed stress. A mean stress above the coefficient makes the
	// denominator negative; that case is passed through unchanged.
	denom := 1 - in.MeanStressMPa/props.FatigueStrengthCoeffMPa
	if denom == 0 {
		return Result{}, &SingularMeanStressError{MeanStressMPa: in.MeanStressMPa}
	}
	equivalent := in.StressAmplitudeMPa / denom

	var cyclesToFailure int
	if equivalent <= props.EnduranceLimitMPa {
		cyclesToFailure = infiniteLifeCycles
	} else {
		// Conversion to int truncates toward zero, the intended rounding.
		cyclesToFailure = int(math.Pow(props.FatigueStrengthCoeffMPa/equivalent, snExponent) * snScaleCycles)
	}

	if in.Cycles == 0 {
		return Result{}, &ZeroCyclesError{}
	}
	margin := float64(cyclesToFailure) / float64(in.Cycles)

	return Result{
		CyclesToFailure: cyclesToFailure,
		SafetyMargin:    margin,
		IsSafe:          margin >= in.SafetyFactor,
		AnalysisMethod:  AnalysisMethod,
	}, nil
}
