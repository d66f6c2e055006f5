package fatigue

import (
	"fmt"
	"sort"
	"strings"
)

// Properties holds the S-N constants of a supported material, in MPa.
type Properties struct {
	EnduranceLimitMPa       float64
	FatigueStrengthCoeffMPa float64
}

// materials is keyed by the lower-cased identifier and is read-only after
// process start.
var materials = map[string]Properties{
	"steel":    {EnduranceLimitMPa: 200, FatigueStrengthCoeffMPa: 900},
	"aluminum": {EnduranceLimitMPa: 130, FatigueStrengthCoeffMPa: 620},
}

type UnsupportedMaterialError struct {
	Material string
}

func (e *UnsupportedMaterialError) Error() string {
	return fmt.Sprintf("material '%s' not supported", e.Material)
}

// Lookup resolves a material identifier to its properties. Matching is
// case-insensitive; the error keeps the identifier as the caller wrote it.
func Lookup(name string) (Properties, error) {
	props, ok := materials[strings.ToLower(name)]
	if !ok {
		return Properties{}, &UnsupportedMaterialError{Material: name}
	}
	return props, nil
}

// Materials returns the supported identifiers in sorted order.
func Materials() []string {
	names := make([]string, 0, len(materials))
	for name := range materials {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
