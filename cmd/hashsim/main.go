package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/gostonefire/hashsim"
	"github.com/gostonefire/hashsim/internal/report"
)

var rootCmd = &cobra.Command{
	Use:   "hashsim",
	Short: "Measures collision behavior of four hash table collision resolution techniques",
	Long: `hashsim inserts generated integer keys into a separate chaining table and three open
addressing tables (linear probing, quadratic probing, double hashing) in lock-step, under
uniform, skewed or adversarial key distributions, and emits a CSV time series of total
probe counts and insertion times over growing load factor.

CSV data rows go to stdout or --out, diagnostics go to stderr or --log-file, the two
streams never mix.`,
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().Int64("capacity", 10000, "table capacity, adjusted to the nearest equal or higher prime")
	rootCmd.Flags().Int64P("insertions", "n", 10000, "number of insertions per run")
	rootCmd.Flags().Int64("samples", 100, "desired number of periodic sample points per run")
	rootCmd.Flags().Int64("first-samples", 10, "number of leading insertions that are always sampled")
	rootCmd.Flags().Float64("near-full", 0.95, "open addressing fill fraction at which insertions are gated")
	rootCmd.Flags().StringSliceP("distributions", "d", []string{"uniform", "skewed", "worst"}, "key distributions to run")
	rootCmd.Flags().Int64Slice("scales", []int64{1}, "capacity/insertion multipliers, one run per distribution and scale")
	rootCmd.Flags().BoolP("timed", "t", false, "emit per technique insertion time columns")
	rootCmd.Flags().Bool("with-scale", false, "emit the scale label column even with a single scale")
	rootCmd.Flags().Int64("seed", 0, "random seed, 0 reseeds every run from the wall clock")
	rootCmd.Flags().StringP("out", "o", "", "CSV output file, default stdout")
	rootCmd.Flags().String("log-file", "", "diagnostics log file with rotation, default stderr")
	rootCmd.Flags().StringP("config", "c", "", "TOML run plan file, flags set on the command line override it")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "hashsim: %s\n", err)
		os.Exit(1)
	}
}

// run - Assembles configuration, logger and sink, then executes the simulation
func run(cmd *cobra.Command, args []string) (err error) {
	conf, err := buildConfig(cmd)
	if err != nil {
		return
	}

	logFile, _ := cmd.Flags().GetString("log-file")
	logger := newLogger(logFile)
	defer func() { _ = logger.Sync() }()

	out := os.Stdout
	outPath, _ := cmd.Flags().GetString("out")
	if outPath != "" {
		out, err = os.Create(outPath)
		if err != nil {
			err = fmt.Errorf("error while creating output file %s: %s", outPath, err)
			return
		}
		defer func() { _ = out.Close() }()
	}

	sink := report.NewCSVSink(out, report.Options{WithScale: conf.WithScale, Timed: conf.Timed})

	simulation, simulationInfo, err := hashsim.New(conf, sink, logger)
	if err != nil {
		return
	}

	logger.Sugar().Infow("simulation prepared",
		"capacity", simulationInfo.Capacity,
		"secondaryPrime", simulationInfo.SecondaryPrime,
		"sampleStep", simulationInfo.SampleStep,
		"runs", simulationInfo.NumberOfRuns,
	)

	err = sink.WriteHeader()
	if err != nil {
		return
	}

	err = simulation.Run()
	if err != nil {
		return
	}

	err = sink.Flush()

	return
}

// buildConfig - Builds the simulation Config from the optional TOML run plan file with command
// line flags overriding any value explicitly set
func buildConfig(cmd *cobra.Command) (conf hashsim.Config, err error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath != "" {
		conf, err = hashsim.LoadConfig(configPath)
		if err != nil {
			return
		}
	} else {
		conf = hashsim.DefaultConfig()
	}

	flags := cmd.Flags()
	if flags.Changed("capacity") {
		conf.Capacity, _ = flags.GetInt64("capacity")
	}
	if flags.Changed("insertions") {
		conf.Insertions, _ = flags.GetInt64("insertions")
	}
	if flags.Changed("samples") {
		conf.SampleCount, _ = flags.GetInt64("samples")
	}
	if flags.Changed("first-samples") {
		conf.FirstSamples, _ = flags.GetInt64("first-samples")
	}
	if flags.Changed("near-full") {
		conf.NearFullThreshold, _ = flags.GetFloat64("near-full")
	}
	if flags.Changed("timed") {
		conf.Timed, _ = flags.GetBool("timed")
	}
	if flags.Changed("with-scale") {
		conf.WithScale, _ = flags.GetBool("with-scale")
	}
	if flags.Changed("seed") {
		conf.Seed, _ = flags.GetInt64("seed")
	}

	if flags.Changed("distributions") || flags.Changed("scales") || configPath == "" {
		var distributions []string
		var scales []int64
		distributions, _ = flags.GetStringSlice("distributions")
		scales, _ = flags.GetInt64Slice("scales")

		conf.Runs, err = hashsim.BuildRuns(distributions, scales)
		if err != nil {
			return
		}
		if len(scales) > 1 {
			conf.WithScale = true
		}
	}

	return
}

// newLogger - Returns a console encoded zap logger writing to stderr, or to a size rotated file
// when logFile is given. CSV data never passes through this logger.
func newLogger(logFile string) *zap.Logger {
	encoderConf := zap.NewProductionEncoderConfig()
	encoderConf.EncodeTime = zapcore.ISO8601TimeEncoder

	var sink zapcore.WriteSyncer
	if logFile != "" {
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    100,
			MaxBackups: 3,
		})
	} else {
		sink = zapcore.Lock(os.Stderr)
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConf), sink, zap.InfoLevel)

	return zap.New(core)
}
