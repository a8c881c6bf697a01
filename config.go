package hashsim

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/gostonefire/hashsim/crt"
)

// fileConfig - Mirrors Config in the shape used in a TOML run plan file. Distributions are given
// by name and runs are formed as the cross product of distributions and scales.
type fileConfig struct {
	Capacity          int64    `toml:"capacity"`
	Insertions        int64    `toml:"insertions"`
	SampleCount       int64    `toml:"sample_count"`
	FirstSamples      int64    `toml:"first_samples"`
	NearFullThreshold float64  `toml:"near_full_threshold"`
	Timed             bool     `toml:"timed"`
	WithScale         bool     `toml:"with_scale"`
	Seed              int64    `toml:"seed"`
	SkewStride        int64    `toml:"skew_stride"`
	SkewBound         int64    `toml:"skew_bound"`
	WorstCaseSlot     int64    `toml:"worst_case_slot"`
	Distributions     []string `toml:"distributions"`
	Scales            []int64  `toml:"scales"`
}

// LoadConfig - Loads a TOML run plan file on top of the defaults from DefaultConfig.
// Only keys present in the file override the defaults. The run plan becomes the cross product of
// the distributions and scales given, executed distribution by distribution in the order listed.
//   - path is the TOML file to read
//
// It returns:
//   - conf is the resulting Config
//   - err is a normal go Error which should be nil if everything went ok
func LoadConfig(path string) (conf Config, err error) {
	defaults := DefaultConfig()

	fc := fileConfig{
		Capacity:          defaults.Capacity,
		Insertions:        defaults.Insertions,
		SampleCount:       defaults.SampleCount,
		FirstSamples:      defaults.FirstSamples,
		NearFullThreshold: defaults.NearFullThreshold,
		SkewStride:        defaults.SkewStride,
		SkewBound:         defaults.SkewBound,
		WorstCaseSlot:     defaults.WorstCaseSlot,
	}

	_, err = toml.DecodeFile(path, &fc)
	if err != nil {
		err = fmt.Errorf("error while reading run plan file %s: %s", path, err)
		return
	}

	conf = Config{
		Capacity:          fc.Capacity,
		Insertions:        fc.Insertions,
		SampleCount:       fc.SampleCount,
		FirstSamples:      fc.FirstSamples,
		NearFullThreshold: fc.NearFullThreshold,
		Timed:             fc.Timed,
		WithScale:         fc.WithScale,
		Seed:              fc.Seed,
		SkewStride:        fc.SkewStride,
		SkewBound:         fc.SkewBound,
		WorstCaseSlot:     fc.WorstCaseSlot,
	}

	conf.Runs, err = BuildRuns(fc.Distributions, fc.Scales)
	if err != nil {
		return
	}

	// More than one scale makes rows ambiguous without the scale label
	if len(fc.Scales) > 1 {
		conf.WithScale = true
	}

	return
}

// BuildRuns - Forms the run plan as the cross product of distribution names and scales.
// Empty distributions default to all three models, empty scales default to scale 1.
//   - distributions are distribution names per crt.ParseDistribution
//   - scales are capacity/insertion multipliers, each at least 1
//
// It returns:
//   - runs is the sequence of (distribution, scale) pairs, distribution major
//   - err is a normal go Error which should be nil if everything went ok
func BuildRuns(distributions []string, scales []int64) (runs []RunSpec, err error) {
	if len(distributions) == 0 {
		distributions = []string{"uniform", "skewed", "worst"}
	}
	if len(scales) == 0 {
		scales = []int64{1}
	}

	var distribution crt.Distribution
	for _, name := range distributions {
		distribution, err = crt.ParseDistribution(name)
		if err != nil {
			return
		}
		for _, scale := range scales {
			runs = append(runs, RunSpec{Distribution: distribution, Scale: scale})
		}
	}

	return
}
