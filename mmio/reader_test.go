package mmio_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/dgraphlabs/bfs500/locale"
	"github.com/dgraphlabs/bfs500/mmio"
)

const samplePath = `%%MatrixMarket matrix coordinate pattern general
% a comment line
4 4 4
1 2
2 3
3 4
4 1
`

func TestReadCoordinateParsesUnweighted(t *testing.T) {
	coords, err := mmio.ReadCoordinate(strings.NewReader(samplePath))
	if err != nil {
		t.Fatalf("ReadCoordinate: %v", err)
	}
	if coords.Rows != 4 || coords.Cols != 4 {
		t.Errorf("Rows/Cols = %d/%d, want 4/4", coords.Rows, coords.Cols)
	}
	wantSrc := []int64{0, 1, 2, 3}
	wantDst := []int64{1, 2, 3, 0}
	for i := range wantSrc {
		if coords.Src[i] != wantSrc[i] || coords.Dst[i] != wantDst[i] {
			t.Errorf("entry %d = (%d,%d), want (%d,%d)", i, coords.Src[i], coords.Dst[i], wantSrc[i], wantDst[i])
		}
	}
	if coords.Weight != nil {
		t.Errorf("Weight = %v, want nil (not requested)", coords.Weight)
	}
}

const weightedSample = `% weighted coordinate
2 2 2
1 2 3.5
2 1 1.0
`

func TestReadCoordinateKeepsWeightsWhenRequested(t *testing.T) {
	coords, err := mmio.ReadCoordinate(strings.NewReader(weightedSample), mmio.WithKeepWeights())
	if err != nil {
		t.Fatalf("ReadCoordinate: %v", err)
	}
	if len(coords.Weight) != 2 {
		t.Fatalf("len(Weight) = %d, want 2", len(coords.Weight))
	}
	if coords.Weight[0] != 3.5 || coords.Weight[1] != 1.0 {
		t.Errorf("Weight = %v, want [3.5 1.0]", coords.Weight)
	}
}

func TestReadCoordinateDropsWeightsByDefault(t *testing.T) {
	coords, err := mmio.ReadCoordinate(strings.NewReader(weightedSample))
	if err != nil {
		t.Fatalf("ReadCoordinate: %v", err)
	}
	if coords.Weight != nil {
		t.Errorf("Weight = %v, want nil when not requested", coords.Weight)
	}
}

func TestReadCoordinateMissingHeader(t *testing.T) {
	_, err := mmio.ReadCoordinate(strings.NewReader("% only comments\n% nothing else\n"))
	if !errors.Is(err, mmio.ErrMissingHeader) {
		t.Errorf("err = %v, want ErrMissingHeader", err)
	}
}

func TestReadCoordinateMalformedHeader(t *testing.T) {
	_, err := mmio.ReadCoordinate(strings.NewReader("not a header\n1 2\n"))
	if !errors.Is(err, mmio.ErrMalformedHeader) {
		t.Errorf("err = %v, want ErrMalformedHeader", err)
	}
}

func TestReadCoordinateMalformedEntry(t *testing.T) {
	_, err := mmio.ReadCoordinate(strings.NewReader("2 2 1\n1 x\n"))
	if !errors.Is(err, mmio.ErrMalformedEntry) {
		t.Errorf("err = %v, want ErrMalformedEntry", err)
	}
}

func TestReadCoordinateEntryCountMismatch(t *testing.T) {
	_, err := mmio.ReadCoordinate(strings.NewReader("2 2 5\n1 2\n2 1\n"))
	if !errors.Is(err, mmio.ErrEntryCountMismatch) {
		t.Errorf("err = %v, want ErrEntryCountMismatch", err)
	}
}

func TestReadCoordinateInconsistentWeighting(t *testing.T) {
	_, err := mmio.ReadCoordinate(strings.NewReader("2 2 2\n1 2 3.5\n2 1\n"))
	if !errors.Is(err, mmio.ErrMalformedEntry) {
		t.Errorf("err = %v, want ErrMalformedEntry for inconsistent weighting", err)
	}
}

func TestToDistributedArraysScattersAcrossLocales(t *testing.T) {
	coords, err := mmio.ReadCoordinate(strings.NewReader(samplePath))
	if err != nil {
		t.Fatalf("ReadCoordinate: %v", err)
	}
	reg := locale.NewRegistry(3, 1)
	src, dst := coords.ToDistributedArrays(reg)
	if src.Len() != len(coords.Src) || dst.Len() != len(coords.Dst) {
		t.Fatalf("src/dst length = %d/%d, want %d", src.Len(), dst.Len(), len(coords.Src))
	}
	for i, want := range coords.Src {
		got, err := src.At(i)
		if err != nil {
			t.Fatalf("src.At(%d): %v", i, err)
		}
		if got != want {
			t.Errorf("src[%d] = %d, want %d", i, got, want)
		}
	}
	for i, want := range coords.Dst {
		got, err := dst.At(i)
		if err != nil {
			t.Fatalf("dst.At(%d): %v", i, err)
		}
		if got != want {
			t.Errorf("dst[%d] = %d, want %d", i, got, want)
		}
	}
}

func TestReadCoordinateZeroEntryGraph(t *testing.T) {
	coords, err := mmio.ReadCoordinate(strings.NewReader("0 0 0\n"))
	if err != nil {
		t.Fatalf("ReadCoordinate: %v", err)
	}
	if len(coords.Src) != 0 {
		t.Errorf("len(Src) = %d, want 0", len(coords.Src))
	}
}
