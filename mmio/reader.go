// SPDX-License-Identifier: MIT
// Package: bfs500/mmio
//
// reader.go — ReadCoordinate parses a Matrix Market coordinate-format
// stream into parallel src/dst[/weight] slices suitable for
// locale.NewDistributedArray and graphbuilder.Build. Only the coordinate
// body format is supported (no array format, no symmetric/hermitian
// qualifiers beyond what GraphBuilder's own Symmetrize stage already
// handles for undirected input).

package mmio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/xerrors"

	"github.com/dgraphlabs/bfs500/locale"
)

// Coordinates holds one parsed Matrix Market coordinate body: Src/Dst are
// 0-based internal-to-this-reader indices (1-based Matrix Market indices
// minus one, per the format's convention), Weight is nil unless the stream
// carried a third column and the caller requested it kept.
type Coordinates struct {
	Rows, Cols int
	Src, Dst   []int64
	Weight     []float64 // nil unless KeepWeights was set and weights were present
}

// Option configures ReadCoordinate.
type Option func(*readConfig)

type readConfig struct {
	keepWeights bool
}

// WithKeepWeights retains the third column of weighted entries in
// Coordinates.Weight. Ignored for BFS-only callers, who can drop it.
func WithKeepWeights() Option {
	return func(c *readConfig) { c.keepWeights = true }
}

// ReadCoordinate reads a Matrix Market coordinate-format stream from r,
// skipping %-comment lines, parsing the "rows cols entries" header, and
// accepting "u v" or "u v w" body lines (u, v are 1-based Matrix Market
// vertex indices, converted to 0-based on return).
func ReadCoordinate(r io.Reader, opts ...Option) (*Coordinates, error) {
	cfg := readConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	rows, cols, entries, err := scanHeader(scanner)
	if err != nil {
		return nil, err
	}

	out := &Coordinates{
		Rows: rows,
		Cols: cols,
		Src:  make([]int64, 0, entries),
		Dst:  make([]int64, 0, entries),
	}
	weighted := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 && len(fields) != 3 {
			return nil, xerrors.Errorf("mmio: ReadCoordinate: entry %d: %w", len(out.Src), ErrMalformedEntry)
		}
		u, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return nil, xerrors.Errorf("mmio: ReadCoordinate: entry %d: %w", len(out.Src), fmt.Errorf("%v: %w", err, ErrMalformedEntry))
		}
		v, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, xerrors.Errorf("mmio: ReadCoordinate: entry %d: %w", len(out.Src), fmt.Errorf("%v: %w", err, ErrMalformedEntry))
		}
		out.Src = append(out.Src, u-1)
		out.Dst = append(out.Dst, v-1)

		if len(fields) == 3 {
			weighted = true
			if cfg.keepWeights {
				w, err := strconv.ParseFloat(fields[2], 64)
				if err != nil {
					return nil, xerrors.Errorf("mmio: ReadCoordinate: entry %d: %w", len(out.Src), fmt.Errorf("%v: %w", err, ErrMalformedEntry))
				}
				out.Weight = append(out.Weight, w)
			}
		} else if weighted {
			// a prior entry had three fields; this one doesn't — inconsistent
			// weighting, treated as malformed rather than silently padded.
			return nil, xerrors.Errorf("mmio: ReadCoordinate: entry %d: %w", len(out.Src), ErrMalformedEntry)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, xerrors.Errorf("mmio: ReadCoordinate: %w", err)
	}
	if entries > 0 && len(out.Src) != entries {
		return nil, xerrors.Errorf("mmio: ReadCoordinate: declared %d, got %d: %w", entries, len(out.Src), ErrEntryCountMismatch)
	}
	return out, nil
}

// scanHeader advances scanner past any %-comment lines and parses the
// first non-comment line as "rows cols entries".
func scanHeader(scanner *bufio.Scanner) (rows, cols, entries int, err error) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return 0, 0, 0, xerrors.Errorf("mmio: scanHeader: %w", ErrMalformedHeader)
		}
		rows, err = strconv.Atoi(fields[0])
		if err != nil {
			return 0, 0, 0, xerrors.Errorf("mmio: scanHeader: %w", ErrMalformedHeader)
		}
		cols, err = strconv.Atoi(fields[1])
		if err != nil {
			return 0, 0, 0, xerrors.Errorf("mmio: scanHeader: %w", ErrMalformedHeader)
		}
		entries, err = strconv.Atoi(fields[2])
		if err != nil {
			return 0, 0, 0, xerrors.Errorf("mmio: scanHeader: %w", ErrMalformedHeader)
		}
		if rows < 0 || cols < 0 || entries < 0 {
			return 0, 0, 0, xerrors.Errorf("mmio: scanHeader: negative count: %w", ErrMalformedHeader)
		}
		return rows, cols, entries, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, 0, 0, xerrors.Errorf("mmio: scanHeader: %w", err)
	}
	return 0, 0, 0, ErrMissingHeader
}

// ToDistributedArrays scatters c's Src/Dst slices into a pair of
// locale.DistributedArray[int64] over registry, ready for
// graphbuilder.Build. Declared at this layer (rather than inside
// graphbuilder) since it is mmio's own output-adapter concern, not part of
// GraphBuilder's pipeline proper.
func (c *Coordinates) ToDistributedArrays(registry *locale.Registry) (src, dst *locale.DistributedArray[int64]) {
	src = locale.NewDistributedArray[int64](registry, len(c.Src))
	dst = locale.NewDistributedArray[int64](registry, len(c.Dst))
	for i, v := range c.Src {
		_ = src.Set(i, v)
	}
	for i, v := range c.Dst {
		_ = dst.Set(i, v)
	}
	return src, dst
}
