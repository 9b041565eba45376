package fill

import (
	"testing"

	"github.com/Quuxplusone/xword/pkg/dict"
	"github.com/Quuxplusone/xword/pkg/grid"
)

func newEncoderForTest(t *testing.T, g *grid.Grid, d *dict.Set, opts Options) *encoder {
	t.Helper()
	enc, err := newEncoder(g, d, opts)
	if err != nil {
		t.Fatalf("newEncoder failed: %v", err)
	}
	return enc
}

func TestSliceTableCompressed(t *testing.T) {
	g := mustParse(t, ".AS", ".R.", "ETA")
	enc := newEncoderForTest(t, g, newDict(t), Options{})

	if enc.nslices != 3 {
		t.Fatalf("nslices = %d, want 3 (open cells only)", enc.nslices)
	}
	// Open cells get dense indices in scan order; fixed cells get none.
	wantSlices := map[int]int{
		g.Index(0, 0): 0,
		g.Index(1, 0): 1,
		g.Index(1, 2): 2,
	}
	for idx, want := range wantSlices {
		if enc.slice[idx] != want {
			t.Errorf("slice[%d] = %d, want %d", idx, enc.slice[idx], want)
		}
	}
	if enc.slice[g.Index(0, 1)] != -1 || enc.slice[g.Index(2, 2)] != -1 {
		t.Error("fixed cells must not have slices in compressed mode")
	}
	if got := enc.m.Columns(); got != 3*sliceCols {
		t.Errorf("matrix has %d columns, want %d", got, 3*sliceCols)
	}
}

func TestSliceTableNaive(t *testing.T) {
	g := mustParse(t, ".AS", ".R.", "ETA")
	enc := newEncoderForTest(t, g, newDict(t), Options{Naive: true})

	if enc.nslices != 9 {
		t.Fatalf("nslices = %d, want 9 (every cell)", enc.nslices)
	}
	for idx := 0; idx < 9; idx++ {
		if enc.slice[idx] != idx {
			t.Errorf("slice[%d] = %d, want identity", idx, enc.slice[idx])
		}
	}
}

func TestPlacementColumnLayout(t *testing.T) {
	g := mustParse(t, "b0g")
	enc := newEncoderForTest(t, g, newDict(t, "bag"), Options{})

	// One open cell, so one slice of 54 columns. The Across row for
	// "bag" asserts 'a': left half of pair a, right halves of the other
	// 25 pairs, and the Across orientation column.
	var wordRow int = -1
	for id, info := range enc.info {
		if info.kind == rowWord && info.word == "bag" {
			wordRow = id
		}
	}
	if wordRow < 0 {
		t.Fatal("no row emitted for bag")
	}

	cols := enc.m.RowColumns(wordRow)
	if len(cols) != 27 {
		t.Fatalf("placement row has %d columns, want 27", len(cols))
	}
	want := map[int]bool{0: true, acrossCol: true}
	for m := 1; m < 26; m++ {
		want[2*m+1] = true
	}
	for _, col := range cols {
		if !want[col] {
			t.Errorf("unexpected column %d in Across row for letter a", col)
		}
		delete(want, col)
	}
	if len(want) != 0 {
		t.Errorf("missing columns: %v", want)
	}
}

func TestFreeRowsForShortSequences(t *testing.T) {
	g := mustParse(t, "b0g")
	enc := newEncoderForTest(t, g, newDict(t, "bag"), Options{})

	// The Down sequence through the vowel cell is one cell long, so it
	// gets one free Down row per admissible vowel.
	var letters []string
	for _, info := range enc.info {
		if info.kind == rowFree {
			if info.run.Direction != grid.DOWN {
				t.Errorf("free row in direction %v, want down", info.run.Direction)
			}
			letters = append(letters, info.word)
		}
	}
	want := []string{"a", "e", "i", "o", "u", "y"}
	if len(letters) != len(want) {
		t.Fatalf("free rows = %v, want %v", letters, want)
	}
	for i := range want {
		if letters[i] != want[i] {
			t.Errorf("free row %d = %q, want %q", i, letters[i], want[i])
		}
	}
}

func TestFreeRowsRequireACrossingRun(t *testing.T) {
	// Neither cell of .#. lies on a real run, so no free rows may
	// justify a letter there.
	g := mustParse(t, ".#.")
	enc := newEncoderForTest(t, g, newDict(t, "art"), Options{})

	if enc.m.Rows() != 0 {
		t.Errorf("matrix has %d rows, want 0", enc.m.Rows())
	}
}

func TestWordRowsComeBeforeFreeRows(t *testing.T) {
	g := mustParse(t, "b0g")
	enc := newEncoderForTest(t, g, newDict(t, "bag", "beg"), Options{})

	seenFree := false
	for _, info := range enc.info {
		switch info.kind {
		case rowFree:
			seenFree = true
		case rowWord:
			if seenFree {
				t.Fatal("word row emitted after a free row")
			}
		}
	}
}

func TestExactFitsEmitNoRows(t *testing.T) {
	// "eta" already spells itself; placing it again would add an empty
	// row in compressed mode.
	g := mustParse(t, "eta")
	enc := newEncoderForTest(t, g, newDict(t, "eta"), Options{AllowDuplicates: true})

	if enc.m != nil {
		t.Fatalf("fully fixed grid built a %d-column matrix", enc.m.Columns())
	}
}

func TestNaiveBlackAndForcedRows(t *testing.T) {
	g := mustParse(t, "eta", "#0#", "art")
	enc := newEncoderForTest(t, g, newDict(t, "tot"), Options{Naive: true, AllowDuplicates: true})

	blacks, forced := 0, 0
	for _, info := range enc.info {
		switch info.kind {
		case rowBlack:
			blacks++
			cols := enc.m.RowColumns(infoRowID(t, enc, info))
			if len(cols) != sliceCols {
				t.Errorf("black row has %d columns, want %d", len(cols), sliceCols)
			}
		case rowForced:
			forced++
		}
	}
	if blacks != 2 {
		t.Errorf("black rows = %d, want 2", blacks)
	}
	// eta across and art across are fully fixed; the down run t/0/r still
	// has an open cell, so only the two fixed across runs are forced.
	if forced != 2 {
		t.Errorf("forced rows = %d, want 2", forced)
	}
}

// infoRowID finds the matrix row id of an info entry.
func infoRowID(t *testing.T, enc *encoder, target rowInfo) int {
	t.Helper()
	for id, info := range enc.info {
		if info == target {
			return id
		}
	}
	t.Fatal("row info not found")
	return -1
}

func TestDuplicatePurge(t *testing.T) {
	// "cat" already appears complete in the grid; with rejection on it
	// must not be placed anywhere else.
	g := mustParse(t, "cat", "###", "...")
	d := newDict(t, "cat", "cot")

	enc := newEncoderForTest(t, g, d, Options{})
	for _, info := range enc.info {
		if info.kind == rowWord && info.word == "cat" {
			t.Error("purged word was placed")
		}
	}

	enc = newEncoderForTest(t, g, d, Options{AllowDuplicates: true})
	found := false
	for _, info := range enc.info {
		if info.kind == rowWord && info.word == "cat" {
			found = true
		}
	}
	if !found {
		t.Error("with duplicates allowed, cat must be placeable in the open run")
	}
}
