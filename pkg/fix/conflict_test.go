package fix_test

import (
	"testing"

	"github.com/yaklabco/gohtmlint/pkg/doc"
	"github.com/yaklabco/gohtmlint/pkg/fix"
)

// span builds a single-line range in file a.html.
func span(line, startCol, endCol int) doc.SourceRange {
	return doc.SourceRange{
		File:  "a.html",
		Start: doc.SourcePosition{Line: line, Column: startCol},
		End:   doc.SourcePosition{Line: line, Column: endCol},
	}
}

func TestPartition_FirstComeFirstServed(t *testing.T) {
	t.Parallel()

	first := fix.Replace(span(0, 2, 8), "x")
	second := fix.Replace(span(0, 5, 10), "yyyy")

	accepted, incompatible := fix.Partition([]fix.Edit{first, second})

	if len(accepted) != 1 || len(incompatible) != 1 {
		t.Fatalf("got %d accepted, %d incompatible, want 1 and 1", len(accepted), len(incompatible))
	}
	if accepted[0][0].Text != "x" {
		t.Errorf("accepted the wrong edit: %+v", accepted[0])
	}
	if incompatible[0][0].Text != "yyyy" {
		t.Errorf("rejected the wrong edit: %+v", incompatible[0])
	}

	// Swapping the input order swaps the outcome: acceptance depends on
	// position in the list, not on edit content.
	accepted, incompatible = fix.Partition([]fix.Edit{second, first})
	if len(accepted) != 1 || len(incompatible) != 1 {
		t.Fatalf("got %d accepted, %d incompatible, want 1 and 1", len(accepted), len(incompatible))
	}
	if accepted[0][0].Text != "yyyy" {
		t.Errorf("accepted the wrong edit after swap: %+v", accepted[0])
	}
}

func TestPartition_ConflictCases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        doc.SourceRange
		b        doc.SourceRange
		conflict bool
	}{
		{"identical ranges", span(0, 2, 5), span(0, 2, 5), true},
		{"containment", span(0, 0, 9), span(0, 3, 4), true},
		{"endpoint inside", span(0, 0, 5), span(0, 4, 8), true},
		{"touching boundaries", span(0, 0, 4), span(0, 4, 8), false},
		{"disjoint lines", span(1, 0, 4), span(3, 0, 4), false},
		{"multi-line overlap", doc.SourceRange{File: "a.html", Start: doc.SourcePosition{Line: 0, Column: 0}, End: doc.SourcePosition{Line: 2, Column: 0}}, span(1, 3, 6), true},
		{"equal zero-width", span(2, 4, 4), span(2, 4, 4), true},
		{"zero-width on boundary", span(2, 4, 4), span(2, 4, 9), false},
		{"zero-width strictly inside", span(2, 5, 5), span(2, 4, 9), true},
		{
			name: "same span different files",
			a:    span(0, 2, 5),
			b: doc.SourceRange{
				File:  "b.html",
				Start: doc.SourcePosition{Line: 0, Column: 2},
				End:   doc.SourcePosition{Line: 0, Column: 5},
			},
			conflict: false,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			edits := []fix.Edit{fix.Replace(testCase.a, "a"), fix.Replace(testCase.b, "b")}
			accepted, incompatible := fix.Partition(edits)

			if testCase.conflict {
				if len(accepted) != 1 || len(incompatible) != 1 {
					t.Errorf("expected conflict, got %d accepted %d incompatible", len(accepted), len(incompatible))
				}
			} else {
				if len(accepted) != 2 || len(incompatible) != 0 {
					t.Errorf("expected no conflict, got %d accepted %d incompatible", len(accepted), len(incompatible))
				}
			}
		})
	}
}

func TestPartition_InternalConflictRejectsWholeEdit(t *testing.T) {
	t.Parallel()

	bad := fix.Edit{
		{Range: span(0, 0, 5), Text: "a"},
		{Range: span(0, 3, 8), Text: "b"},
	}
	good := fix.Replace(span(1, 0, 2), "c")

	accepted, incompatible := fix.Partition([]fix.Edit{bad, good})

	if len(accepted) != 1 || len(accepted[0]) != 1 || accepted[0][0].Text != "c" {
		t.Fatalf("expected only the clean edit accepted, got %+v", accepted)
	}
	if len(incompatible) != 1 || len(incompatible[0]) != 2 {
		t.Fatalf("expected the self-conflicting edit rejected whole, got %+v", incompatible)
	}
}

func TestPartition_AtomicAcrossFiles(t *testing.T) {
	t.Parallel()

	other := doc.SourceRange{
		File:  "b.html",
		Start: doc.SourcePosition{Line: 0, Column: 0},
		End:   doc.SourcePosition{Line: 0, Column: 3},
	}

	first := fix.Replace(span(0, 0, 4), "x")
	// Second edit touches b.html cleanly but collides with first on a.html;
	// the whole edit must be rejected, including its b.html replacement.
	second := fix.Edit{
		{Range: other, Text: "ok"},
		{Range: span(0, 2, 6), Text: "clash"},
	}
	third := fix.Replace(other, "y")

	accepted, incompatible := fix.Partition([]fix.Edit{first, second, third})

	if len(accepted) != 2 {
		t.Fatalf("expected first and third accepted, got %+v", accepted)
	}
	if len(incompatible) != 1 || len(incompatible[0]) != 2 {
		t.Fatalf("expected the multi-file edit rejected atomically, got %+v", incompatible)
	}
	// third's b.html range was freed up by second's rejection.
	if accepted[1][0].Text != "y" {
		t.Errorf("expected third edit accepted, got %+v", accepted[1])
	}
}

func TestPartition_Empty(t *testing.T) {
	t.Parallel()

	accepted, incompatible := fix.Partition(nil)
	if accepted != nil || incompatible != nil {
		t.Errorf("Partition(nil) = (%v, %v), want (nil, nil)", accepted, incompatible)
	}
}

func TestEdit_Files(t *testing.T) {
	t.Parallel()

	e := fix.Edit{
		{Range: span(0, 0, 1)},
		{Range: doc.PointRange("b.html", doc.SourcePosition{})},
		{Range: span(2, 0, 1)},
	}

	files := e.Files()
	if len(files) != 2 || files[0] != "a.html" || files[1] != "b.html" {
		t.Errorf("Files() = %v, want [a.html b.html]", files)
	}
}
