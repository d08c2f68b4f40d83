package projsize

import "testing"

func TestAdjustSingleNesting(t *testing.T) {
	matches := []Match{
		{RelPath: "DataIn", SizeBytes: 500},
		{RelPath: "DataIn/Email", SizeBytes: 200},
	}

	clamped := Adjust(matches)
	if clamped != 0 {
		t.Errorf("expected no clamping, got %d", clamped)
	}

	if matches[0].AdjustedBytes != 300 {
		t.Errorf("DataIn adjusted = %d, want 300", matches[0].AdjustedBytes)
	}

	if matches[1].AdjustedBytes != 200 {
		t.Errorf("Email adjusted = %d, want 200", matches[1].AdjustedBytes)
	}
}

func TestAdjustDoubleNesting(t *testing.T) {
	// A contains B contains C. Raw sizes are subtracted, so A loses the
	// raw size of both descendants and B only loses C.
	matches := []Match{
		{RelPath: "A", SizeBytes: 1000},
		{RelPath: "A/B", SizeBytes: 400},
		{RelPath: "A/B/C", SizeBytes: 100},
	}

	Adjust(matches)

	if matches[0].AdjustedBytes != 500 {
		t.Errorf("A adjusted = %d, want 500 (1000-400-100)", matches[0].AdjustedBytes)
	}

	if matches[1].AdjustedBytes != 300 {
		t.Errorf("B adjusted = %d, want 300 (400-100)", matches[1].AdjustedBytes)
	}

	if matches[2].AdjustedBytes != 100 {
		t.Errorf("C adjusted = %d, want 100", matches[2].AdjustedBytes)
	}
}

func TestAdjustSiblingsUnderSameAncestor(t *testing.T) {
	matches := []Match{
		{RelPath: "Data", SizeBytes: 1000},
		{RelPath: "Data/a/Email", SizeBytes: 300},
		{RelPath: "Data/b/Email", SizeBytes: 200},
	}

	Adjust(matches)

	if matches[0].AdjustedBytes != 500 {
		t.Errorf("Data adjusted = %d, want 500", matches[0].AdjustedBytes)
	}
}

func TestAdjustClampsNegative(t *testing.T) {
	// A descendant larger than its ancestor can only happen if the tree
	// changed mid-scan; the result clamps at zero and is flagged.
	matches := []Match{
		{RelPath: "A", SizeBytes: 100},
		{RelPath: "A/B", SizeBytes: 400},
	}

	clamped := Adjust(matches)
	if clamped != 1 {
		t.Errorf("expected 1 clamped match, got %d", clamped)
	}

	if matches[0].AdjustedBytes != 0 {
		t.Errorf("A adjusted = %d, want 0", matches[0].AdjustedBytes)
	}

	if !matches[0].Clamped {
		t.Error("A should be flagged as clamped")
	}

	if matches[1].Clamped {
		t.Error("B should not be flagged as clamped")
	}
}

func TestAdjustUnrelatedPaths(t *testing.T) {
	// Shared name prefixes are not path nesting.
	matches := []Match{
		{RelPath: "Email", SizeBytes: 100},
		{RelPath: "Email2", SizeBytes: 50},
		{RelPath: "docs/Email", SizeBytes: 25},
	}

	Adjust(matches)

	for i, want := range []int64{100, 50, 25} {
		if matches[i].AdjustedBytes != want {
			t.Errorf("match %d adjusted = %d, want %d", i, matches[i].AdjustedBytes, want)
		}
	}
}

func TestAdjustEmpty(t *testing.T) {
	if clamped := Adjust(nil); clamped != 0 {
		t.Errorf("Adjust(nil) = %d, want 0", clamped)
	}
}
