//go:build unit

package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gostonefire/hashsim/internal/sim"
)

func testRecord() sim.Record {
	return sim.Record{
		InsertionIndex: 100,
		LoadFactor:     0.01,
		Scale:          "2x",
		Distribution:   "Uniform",
		Chaining:       sim.Totals{Probes: 101, Elapsed: 1500 * time.Microsecond},
		Linear:         sim.Totals{Probes: 102, Elapsed: 2500 * time.Microsecond},
		Quadratic:      sim.Totals{Probes: 103, Elapsed: 3500 * time.Microsecond},
		Double:         sim.Totals{Probes: 104, Elapsed: 4500 * time.Microsecond},
	}
}

func TestCSVSink_Emit(t *testing.T) {
	t.Run("writes header and minimal row", func(t *testing.T) {
		// Prepare
		var buf bytes.Buffer
		sink := NewCSVSink(&buf, Options{})

		// Execute
		err := sink.Emit(testRecord())
		assert.NoError(t, err, "emit succeeds")
		err = sink.Flush()
		assert.NoError(t, err, "flush succeeds")

		// Check
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		assert.Len(t, lines, 2, "header plus one record")
		assert.Equal(t,
			"insertion_index,load_factor,distribution_label,chaining_total_probes,linear_total_probes,quadratic_total_probes,double_total_probes",
			lines[0], "header names exactly the columns present")
		assert.Equal(t, "100,0.010000,Uniform,101,102,103,104", lines[1], "correct field order")
	})

	t.Run("writes scale and timing columns when configured", func(t *testing.T) {
		// Prepare
		var buf bytes.Buffer
		sink := NewCSVSink(&buf, Options{WithScale: true, Timed: true})

		// Execute
		err := sink.Emit(testRecord())
		assert.NoError(t, err, "emit succeeds")
		err = sink.Flush()
		assert.NoError(t, err, "flush succeeds")

		// Check
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		assert.Len(t, lines, 2, "header plus one record")
		assert.Equal(t,
			"insertion_index,load_factor,scale_label,distribution_label,"+
				"chaining_total_probes,linear_total_probes,quadratic_total_probes,double_total_probes,"+
				"chaining_time_ms,linear_time_ms,quadratic_time_ms,double_time_ms",
			lines[0], "header includes optional columns")
		assert.Equal(t,
			"100,0.010000,2x,Uniform,101,102,103,104,1.500000,2.500000,3.500000,4.500000",
			lines[1], "correct field order with optional columns")
	})

	t.Run("writes the header only once", func(t *testing.T) {
		// Prepare
		var buf bytes.Buffer
		sink := NewCSVSink(&buf, Options{})

		// Execute
		err := sink.WriteHeader()
		assert.NoError(t, err, "explicit header write succeeds")
		err = sink.Emit(testRecord())
		assert.NoError(t, err, "first emit succeeds")
		err = sink.Emit(testRecord())
		assert.NoError(t, err, "second emit succeeds")
		err = sink.Flush()
		assert.NoError(t, err, "flush succeeds")

		// Check
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		assert.Len(t, lines, 3, "one header followed by two records")
		assert.True(t, strings.HasPrefix(lines[0], "insertion_index,"), "header first")
		assert.False(t, strings.HasPrefix(lines[1], "insertion_index,"), "no repeated header")
	})
}
