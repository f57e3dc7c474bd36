package report_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/hamcircuit/hamilton"
	"github.com/katalvlaran/hamcircuit/report"
)

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func TestWrite_Found(t *testing.T) {
	var buf bytes.Buffer
	err := report.Write(&buf, report.Summary{
		Result:     &hamilton.Result{Found: true, Circuit: []int{1, 2, 3, 1}, Expansions: 1234567},
		ReadTime:   1500 * time.Microsecond,
		SearchTime: 2 * time.Second,
		Vertices:   3,
		Edges:      3,
	})
	assert.NoError(t, err)

	want := []string{
		"Hamiltonian Circuit: 1 -> 2 -> 3 -> 1",
		"Time to read graph: 0.001500s",
		"Time to find path: 2.000000s",
		"Graph: 3 vertices, 3 edges; 1,234,567 expansions",
	}
	if diff := cmp.Diff(want, lines(buf.String())); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestWrite_NotFound(t *testing.T) {
	for _, res := range []*hamilton.Result{nil, {Expansions: 42}} {
		var buf bytes.Buffer
		assert.NoError(t, report.Write(&buf, report.Summary{Result: res, Vertices: 6, Edges: 6, Cached: true}))

		got := lines(buf.String())
		assert.Equal(t, report.NotFound, got[0])
		assert.True(t, strings.HasSuffix(got[3], "(cached)"), got[3])
	}
}

// TestWrite_SubMillisecondFixedPoint pins fixed six-decimal timings; short
// searches never switch to exponent notation.
func TestWrite_SubMillisecondFixedPoint(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, report.Write(&buf, report.Summary{
		ReadTime:   12345 * time.Nanosecond,
		SearchTime: 400 * time.Nanosecond,
	}))

	got := lines(buf.String())
	assert.Equal(t, "Time to read graph: 0.000012s", got[1])
	assert.Equal(t, "Time to find path: 0.000000s", got[2])
}

func TestFormatCircuit(t *testing.T) {
	assert.Equal(t, "1 -> 1", report.FormatCircuit([]int{1, 1}))
	assert.Equal(t, "", report.FormatCircuit(nil))
	assert.Equal(t, "-1 -> 10 -> -1", report.FormatCircuit([]int{-1, 10, -1}))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWrite_PropagatesWriterError(t *testing.T) {
	assert.Error(t, report.Write(failingWriter{}, report.Summary{}))
}
