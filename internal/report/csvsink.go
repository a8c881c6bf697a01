package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/gostonefire/hashsim/internal/sim"
)

// Options - Presentation options for the CSV sink
//   - WithScale adds the scale_label column
//   - Timed adds the four per technique time columns, in milliseconds
type Options struct {
	WithScale bool
	Timed     bool
}

// CSVSink - Serializes metrics records as CSV rows, one per sample point, with a single header
// line before the first record. Diagnostics never pass through here, the sink writes data rows
// only.
type CSVSink struct {
	writer      *csv.Writer
	opts        Options
	wroteHeader bool
}

// NewCSVSink - Returns a pointer to a new CSVSink instance
//   - w is the destination, typically stdout or a file
//   - opts select which optional columns are present
func NewCSVSink(w io.Writer, opts Options) *CSVSink {
	return &CSVSink{writer: csv.NewWriter(w), opts: opts}
}

// WriteHeader - Writes the header line naming exactly the columns present in this configuration.
// It is written at most once, Emit triggers it automatically if it hasn't been called.
func (C *CSVSink) WriteHeader() (err error) {
	if C.wroteHeader {
		return
	}
	C.wroteHeader = true

	fields := []string{"insertion_index", "load_factor"}
	if C.opts.WithScale {
		fields = append(fields, "scale_label")
	}
	fields = append(fields,
		"distribution_label",
		"chaining_total_probes",
		"linear_total_probes",
		"quadratic_total_probes",
		"double_total_probes",
	)
	if C.opts.Timed {
		fields = append(fields,
			"chaining_time_ms",
			"linear_time_ms",
			"quadratic_time_ms",
			"double_time_ms",
		)
	}

	err = C.writer.Write(fields)
	if err != nil {
		err = fmt.Errorf("error while writing csv header: %s", err)
	}

	return
}

// Emit - Writes one record as a CSV row, field order per the header
func (C *CSVSink) Emit(record sim.Record) (err error) {
	err = C.WriteHeader()
	if err != nil {
		return
	}

	fields := []string{
		strconv.FormatInt(record.InsertionIndex, 10),
		strconv.FormatFloat(record.LoadFactor, 'f', 6, 64),
	}
	if C.opts.WithScale {
		fields = append(fields, record.Scale)
	}
	fields = append(fields,
		record.Distribution,
		strconv.FormatInt(record.Chaining.Probes, 10),
		strconv.FormatInt(record.Linear.Probes, 10),
		strconv.FormatInt(record.Quadratic.Probes, 10),
		strconv.FormatInt(record.Double.Probes, 10),
	)
	if C.opts.Timed {
		fields = append(fields,
			formatMillis(record.Chaining.Elapsed),
			formatMillis(record.Linear.Elapsed),
			formatMillis(record.Quadratic.Elapsed),
			formatMillis(record.Double.Elapsed),
		)
	}

	err = C.writer.Write(fields)
	if err != nil {
		err = fmt.Errorf("error while writing csv record: %s", err)
	}

	return
}

// Flush - Flushes buffered rows to the destination
func (C *CSVSink) Flush() (err error) {
	C.writer.Flush()
	err = C.writer.Error()

	return
}

// formatMillis - Formats a duration as fractional milliseconds with microsecond and nanosecond
// digits retained, millisecond granularity would under-report single insertion cost
func formatMillis(d time.Duration) string {
	return strconv.FormatFloat(float64(d)/float64(time.Millisecond), 'f', 6, 64)
}
