package crt

import (
	"fmt"
	"strings"
)

// Identifiers for the four collision resolution techniques under measurement.
const (
	SeparateChaining int = iota
	LinearProbing
	QuadraticProbing
	DoubleHashing
)

// TechniqueLabel - Returns the label used for a collision resolution technique in diagnostics
func TechniqueLabel(technique int) string {
	switch technique {
	case SeparateChaining:
		return "Chaining"
	case LinearProbing:
		return "Linear_Probing"
	case QuadraticProbing:
		return "Quadratic_Probing"
	case DoubleHashing:
		return "Double_Hashing"
	default:
		return "Unknown"
	}
}

// Distribution - Identifies a key distribution model used when generating the insertion sequence
type Distribution int

// The three supported key distribution models.
const (
	Uniform Distribution = iota
	Skewed
	WorstCase
)

// String - Returns the label used for the distribution in emitted records
func (D Distribution) String() string {
	switch D {
	case Uniform:
		return "Uniform"
	case Skewed:
		return "Skewed"
	case WorstCase:
		return "Worst_Case"
	default:
		return "Unknown"
	}
}

// ParseDistribution - Returns the Distribution matching name as used in configuration,
// one of "uniform", "skewed" or "worst"
func ParseDistribution(name string) (distribution Distribution, err error) {
	switch strings.ToLower(name) {
	case "uniform":
		distribution = Uniform
	case "skewed":
		distribution = Skewed
	case "worst", "worst_case", "worstcase":
		distribution = WorstCase
	default:
		err = fmt.Errorf("unknown distribution %q, expected uniform, skewed or worst", name)
	}

	return
}
