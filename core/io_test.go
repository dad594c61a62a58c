// File: core/io_test.go
// Edge-list ingestion: parsing, renumbering, silent drops and the
// all-or-nothing error contract.
package core_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/simplegraph/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromFile_Basic loads a small path with a comment and a blank line.
func TestFromFile_Basic(t *testing.T) {
	path := writeEdgeList(t, "0 1\n1 2\n# comment\n\n")

	g, err := core.FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 2, g.EdgeCount())

	nbrs, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 2}, nbrs)
	assert.True(t, g.IsConnected())
	requireValid(t, g)
}

// TestFromReader_RenumbersSparseLabels drops a same-label pair and compacts
// the remaining labels {5,7} to {0,1}.
func TestFromReader_RenumbersSparseLabels(t *testing.T) {
	var labels []uint64
	g, err := core.FromReader(strings.NewReader("5 5\n5 7\n"), core.WithLabels(&labels))
	require.NoError(t, err)

	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.HasEdge(0, 1))
	assert.Equal(t, []uint64{5, 7}, labels)
	requireValid(t, g)
}

// TestFromReader_RankOrder checks that ids follow label order, not first appearance.
func TestFromReader_RankOrder(t *testing.T) {
	input := "  1000\t20  \n20 3\r\n   # indented comment\n3 1000\n18446744073709551615 3\n"
	var labels []uint64

	g, err := core.FromReader(strings.NewReader(input), core.WithLabels(&labels))
	require.NoError(t, err)

	// labels sorted: 3→0, 20→1, 1000→2, max→3
	assert.Equal(t, []uint64{3, 20, 1000, 18446744073709551615}, labels)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, []core.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3}, {U: 1, V: 2}}, g.Edges())
	requireValid(t, g)
}

// TestFromReader_DuplicatesCollapse keeps one edge per unordered pair.
func TestFromReader_DuplicatesCollapse(t *testing.T) {
	g, err := core.FromReader(strings.NewReader("1 2\n2 1\n1 2\n2 3\n"))
	require.NoError(t, err)

	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 2, g.EdgeCount())
	requireValid(t, g)
}

// TestFromReader_NoEdges yields the empty graph for comment-only or blank input.
func TestFromReader_NoEdges(t *testing.T) {
	for _, input := range []string{"", "\n\n", "# only\n   # comments\n\t\n"} {
		labels := []uint64{1}
		g, err := core.FromReader(strings.NewReader(input), core.WithLabels(&labels))
		require.NoError(t, err)
		assert.Equal(t, 0, g.VertexCount(), "input %q", input)
		assert.Equal(t, 0, g.EdgeCount())
		assert.Nil(t, labels)
	}
}

// TestFromReader_OnlySelfLoops keeps the vertices but no edges.
func TestFromReader_OnlySelfLoops(t *testing.T) {
	g, err := core.FromReader(strings.NewReader("4 4\n9 9\n"))
	require.NoError(t, err)

	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.False(t, g.IsConnected())
}

// TestFromReader_FormatErrors reports the 1-based line of the first bad line.
func TestFromReader_FormatErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine int
		reason   string
	}{
		{name: "single token", input: "3\n", wantLine: 1, reason: "expected two integers"},
		{name: "after comment", input: "# c\n0 1\n\n3\n", wantLine: 4, reason: "got 1 field(s)"},
		{name: "three tokens", input: "0 1 2\n", wantLine: 1, reason: "got 3 field(s)"},
		{name: "not a number", input: "0 1\na b\n", wantLine: 2, reason: `invalid unsigned integer "a"`},
		{name: "negative", input: "0 -1\n", wantLine: 1, reason: `invalid unsigned integer "-1"`},
		{name: "overflow", input: "18446744073709551616 0\n", wantLine: 1, reason: "invalid unsigned integer"},
		{name: "trailing comment", input: "0 1 # x\n", wantLine: 1, reason: "got 4 field(s)"},
		{name: "oversized first line", input: "1 " + strings.Repeat("0", 2<<20) + "2\n", wantLine: 1, reason: "line exceeds"},
		{name: "oversized after data", input: "0 1\n# c\n" + strings.Repeat("9", 2<<20) + " 1\n", wantLine: 3, reason: "line exceeds"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := core.FromReader(strings.NewReader(tc.input))
			require.Error(t, err)
			assert.Nil(t, g)
			require.ErrorIs(t, err, core.ErrFormat)

			var fe *core.FormatError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tc.wantLine, fe.Line)
			assert.Contains(t, fe.Reason, tc.reason)
			assert.Contains(t, err.Error(), "line")
		})
	}
}

// TestFromReader_OversizedLineIsFormatError keeps content defects out of the
// resource error class.
func TestFromReader_OversizedLineIsFormatError(t *testing.T) {
	_, err := core.FromReader(strings.NewReader("0 1\n" + strings.Repeat("1", 2<<20) + " 2\n"))
	require.ErrorIs(t, err, core.ErrFormat)
	assert.NotErrorIs(t, err, core.ErrResourceUnreadable)
	assert.Contains(t, err.Error(), "line 2")
}

// TestFromFile_FormatErrorCarriesPath wraps the line error with the file path.
func TestFromFile_FormatErrorCarriesPath(t *testing.T) {
	path := writeEdgeList(t, "1 2\n3\n")

	_, err := core.FromFile(path)
	require.ErrorIs(t, err, core.ErrFormat)
	assert.Contains(t, err.Error(), path)

	var fe *core.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 2, fe.Line)
}

// TestFromFile_ResourceErrors covers missing and unreadable paths.
func TestFromFile_ResourceErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.txt")
	g, err := core.FromFile(missing)
	require.ErrorIs(t, err, core.ErrResourceNotFound)
	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.Nil(t, g)

	// A directory opens but cannot be read as a text stream.
	g, err = core.FromFile(t.TempDir())
	require.ErrorIs(t, err, core.ErrResourceUnreadable)
	assert.Nil(t, g)
}

// failingReader returns data once and then a read error.
type failingReader struct {
	data []byte
	done bool
}

var errBoom = errors.New("boom")

func (r *failingReader) Read(p []byte) (int, error) {
	if r.done {
		return 0, errBoom
	}
	r.done = true
	return copy(p, r.data), nil
}

// TestFromReader_ReadError is all-or-nothing: no partial graph.
func TestFromReader_ReadError(t *testing.T) {
	g, err := core.FromReader(&failingReader{data: []byte("0 1\n1 2\n")})
	require.ErrorIs(t, err, core.ErrResourceUnreadable)
	require.ErrorIs(t, err, errBoom)
	assert.Nil(t, g)
}

// TestFromReader_Logger reports dropped pairs at Debug level.
func TestFromReader_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := core.FromReader(strings.NewReader("1 1\n1 2\n2 1\n"), core.WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "dropping self-loop")
	assert.Contains(t, out, "dropping duplicate pair")
	assert.Contains(t, out, "self_loops=1")
	assert.Contains(t, out, "duplicates=1")
	assert.Contains(t, out, "edges=1")
}

// TestLoadOptions_PanicOnNil documents the option constructor contract.
func TestLoadOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { core.WithLogger(nil) })
	assert.Panics(t, func() { core.WithLabels(nil) })
}

// TestFromReader_LargeInput ingests a long chain through a pipe.
func TestFromReader_LargeInput(t *testing.T) {
	const n = 10_000
	pr, pw := io.Pipe()
	go func() {
		var sb strings.Builder
		for i := 1; i < n; i++ {
			fmt.Fprintf(&sb, "%s%d %d\n", strings.Repeat(" ", i%3), i*10, (i-1)*10)
		}
		_, _ = io.WriteString(pw, sb.String())
		_ = pw.Close()
	}()

	g, err := core.FromReader(pr)
	require.NoError(t, err)
	assert.Equal(t, n, g.VertexCount())
	assert.Equal(t, n-1, g.EdgeCount())
	assert.True(t, g.IsConnected())
}
