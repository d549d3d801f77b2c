package asmscan

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// marker is the instruction token that marks an instrumentation point.
const marker = "SAVE_TIMESTAMPS"

// NoIndex is the sentinel Index value for a marker without a trailing
// integer.
const NoIndex = -1

// Point is one instrumentation point found in an assembly program.
type Point struct {
	// Line is the 1-based line number of the marker.
	Line int
	// Index is the optional decimal suffix of the marker, or NoIndex.
	Index int
}

// Scanner finds instrumentation points in assembly files.
type Scanner struct {
	log *zap.Logger
}

// NewScanner creates a scanner reporting diagnostics to the given logger.
func NewScanner(log *zap.Logger) *Scanner {
	return &Scanner{log: log}
}

// ScanFile scans one assembly file and returns its instrumentation points in
// file order. An unreadable file is logged and yields an empty result; it
// never fails the run.
func (s *Scanner) ScanFile(path string) []Point {
	var points []Point

	file, err := os.Open(path)
	if err != nil {
		s.log.Warn("unable to open ASM file", zap.String("path", path), zap.Error(err))
		return points
	}
	defer func() {
		_ = file.Close()
	}()

	// ReadString instead of bufio.Scanner: generated programs can carry
	// arbitrarily long lines, and a line over the Scanner token limit would
	// end the scan early and drop every marker after it.
	reader := bufio.NewReader(file)
	lineNumber := 0
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			lineNumber++
			if index, ok := matchLine(line); ok {
				points = append(points, Point{Line: lineNumber, Index: index})
			}
		}
		if err != nil {
			if err != io.EOF {
				s.log.Warn("error reading ASM file", zap.String("path", path), zap.Error(err))
			}
			break
		}
	}

	s.log.Debug("scanned ASM file",
		zap.String("path", path),
		zap.Int("points", len(points)))

	return points
}

// matchLine reports whether a line contains the marker and, if so, the value
// of its optional decimal suffix (NoIndex when absent). Only the first
// occurrence of the marker on a line is considered.
func matchLine(line string) (int, bool) {
	rest, ok := cutMarker(line)
	if !ok {
		return NoIndex, false
	}

	rest = strings.TrimLeft(rest, " \t")
	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	if end == 0 {
		return NoIndex, true
	}

	index, err := strconv.Atoi(rest[:end])
	if err != nil {
		return NoIndex, true
	}
	return index, true
}

// cutMarker finds the first case-insensitive occurrence of the marker token
// and returns the remainder of the line after it.
func cutMarker(line string) (string, bool) {
	for i := 0; i+len(marker) <= len(line); i++ {
		if strings.EqualFold(line[i:i+len(marker)], marker) {
			return line[i+len(marker):], true
		}
	}
	return "", false
}
