// File: io.go
// Role: Edge-list ingestion: FromFile / FromReader.
//
// Format (one edge per line):
//   - Leading/trailing space, tab, CR and LF are trimmed first.
//   - Blank lines and lines starting with '#' are skipped.
//   - Every other line holds exactly two whitespace-separated unsigned
//     integers "u v" (original vertex labels).
//
// Renumbering:
//   - Labels are arbitrary (sparse, not zero-based). After the whole input is
//     parsed, the distinct labels are sorted and each label is replaced by its
//     rank, so the smallest label becomes vertex 0.
//   - Pairs whose endpoints are equal are dropped; repeated pairs collapse
//     through the same insertion path AddEdge uses.
//
// Errors are all-or-nothing: no Graph is returned unless every line parsed.

package core

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

const (
	// commentPrefix marks a comment line after trimming.
	commentPrefix = "#"
	// lineTrimSet is the whitespace stripped from both ends of every line.
	lineTrimSet = " \t\r\n"
	// maxLineBytes bounds a single input line.
	maxLineBytes = 1 << 20

	reasonFieldCount = "expected two integers"
)

// FormatError describes a malformed edge-list line.
// errors.Is(err, ErrFormat) holds for every *FormatError.
type FormatError struct {
	// Line is the 1-based line number.
	Line int
	// Text is the offending line after trimming; empty when the line was too
	// long to buffer.
	Text string
	// Reason explains what was wrong.
	Reason string
}

// Error implements error.
func (e *FormatError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("core: line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("core: line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// Unwrap exposes ErrFormat to errors.Is.
func (e *FormatError) Unwrap() error { return ErrFormat }

// LoadOption customizes FromFile / FromReader.
type LoadOption func(*loadConfig)

type loadConfig struct {
	logger *slog.Logger
	labels *[]uint64
}

// WithLogger routes ingestion diagnostics (dropped self-loops, duplicate
// pairs, final sizes) to l at Debug level. Without it nothing is logged.
// Panics on nil.
func WithLogger(l *slog.Logger) LoadOption {
	if l == nil {
		panic("core: WithLogger(nil)")
	}
	return func(c *loadConfig) { c.logger = l }
}

// WithLabels stores the sorted label table into *dst on success, so that
// (*dst)[id] is the original label of compact vertex id.
// Panics on nil.
func WithLabels(dst *[]uint64) LoadOption {
	if dst == nil {
		panic("core: WithLabels(nil)")
	}
	return func(c *loadConfig) { c.labels = dst }
}

// rawPair is one parsed line before renumbering.
type rawPair struct {
	u, v uint64
	line int
}

// FromFile builds a Graph from the edge list stored at path.
//
// Errors:
//   - ErrResourceNotFound (together with fs.ErrNotExist): path does not exist.
//   - ErrResourceUnreadable: path cannot be opened or read.
//   - *FormatError / ErrFormat: a line is malformed.
//
// Complexity: O(L + P log P) where L is the input size and P the number of pairs.
func FromFile(path string, opts ...LoadOption) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("FromFile: %w: %w", ErrResourceNotFound, err)
		}
		return nil, fmt.Errorf("FromFile: %w: %w", ErrResourceUnreadable, err)
	}
	defer f.Close()

	g, err := FromReader(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("FromFile %s: %w", path, err)
	}

	return g, nil
}

// FromReader builds a Graph from an edge list read from r. See FromFile for
// the format and error contract; read failures map to ErrResourceUnreadable.
func FromReader(r io.Reader, opts ...LoadOption) (*Graph, error) {
	cfg := loadConfig{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&cfg)
	}

	pairs, labelSet, err := scanPairs(r)
	if err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		cfg.logger.Debug("edge list holds no edges")
		if cfg.labels != nil {
			*cfg.labels = nil
		}
		return NewGraph(), nil
	}

	// Pass 2: rank labels, then insert through the AddEdge path.
	labels := labelSet.ToSlice()
	slices.Sort(labels)
	ids := make(map[uint64]int, len(labels))
	for i, label := range labels {
		ids[label] = i
	}

	g := &Graph{adj: make([][]int, len(labels))}
	var loops, dups int
	for _, p := range pairs {
		u, v := ids[p.u], ids[p.v]
		if u == v {
			loops++
			cfg.logger.Debug("dropping self-loop", "line", p.line, "label", p.u)
			continue
		}
		if !g.insertEdge(u, v) {
			dups++
			cfg.logger.Debug("dropping duplicate pair", "line", p.line, "u", p.u, "v", p.v)
		}
	}

	cfg.logger.Debug("edge list loaded",
		"pairs", len(pairs),
		"vertices", len(labels),
		"edges", g.edges,
		"self_loops", loops,
		"duplicates", dups,
	)
	if cfg.labels != nil {
		*cfg.labels = labels
	}

	return g, nil
}

// scanPairs is pass 1: parse every line into raw label pairs and collect the
// distinct labels.
func scanPairs(r io.Reader) ([]rawPair, mapset.Set[uint64], error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	labels := mapset.NewThreadUnsafeSet[uint64]()
	var pairs []rawPair
	lineNum := 0

	for sc.Scan() {
		lineNum++
		line := strings.Trim(sc.Text(), lineTrimSet)
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		u, v, err := parseLine(lineNum, line)
		if err != nil {
			return nil, nil, err
		}
		pairs = append(pairs, rawPair{u: u, v: v, line: lineNum})
		labels.Add(u)
		labels.Add(v)
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			// The scanner stops before counting the oversized line.
			return nil, nil, &FormatError{
				Line:   lineNum + 1,
				Reason: fmt.Sprintf("line exceeds %d bytes", maxLineBytes),
			}
		}
		return nil, nil, fmt.Errorf("FromReader: after line %d: %w: %w", lineNum, ErrResourceUnreadable, err)
	}

	return pairs, labels, nil
}

// parseLine splits a trimmed, non-comment line into its two labels.
func parseLine(lineNum int, line string) (uint64, uint64, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, &FormatError{
			Line:   lineNum,
			Text:   line,
			Reason: fmt.Sprintf("%s, got %d field(s)", reasonFieldCount, len(fields)),
		}
	}

	var out [2]uint64
	for i, f := range fields {
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return 0, 0, &FormatError{
				Line:   lineNum,
				Text:   line,
				Reason: fmt.Sprintf("%s, invalid unsigned integer %q", reasonFieldCount, f),
			}
		}
		out[i] = n
	}

	return out[0], out[1], nil
}
