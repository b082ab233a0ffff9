package cache

import (
	"time"

	"github.com/yaklabco/gohtmlint/pkg/doc"
	"github.com/yaklabco/gohtmlint/pkg/fix"
	"github.com/yaklabco/gohtmlint/pkg/lint"
)

// Entry is one cached file result: the warnings the rules produced
// before directive filtering, plus the directives and refs the runner
// needs to post-process them on a cache hit.
//
// Entries hold flat record types rather than the engine types so the
// on-disk layout only changes when this file does.
type Entry struct {
	Schema    uint16
	RunID     string
	CreatedAt time.Time

	WarningRecords   []WarningRecord
	DirectiveRecords []DirectiveRecord
	RefRecords       []RefRecord
}

// PositionRecord mirrors doc.SourcePosition.
type PositionRecord struct {
	Line   int
	Column int
}

// RangeRecord mirrors doc.SourceRange.
type RangeRecord struct {
	File  string
	Start PositionRecord
	End   PositionRecord
}

// ReplacementRecord mirrors fix.Replacement.
type ReplacementRecord struct {
	Range RangeRecord
	Text  string
}

// WarningRecord mirrors lint.Warning. An empty Fix means the warning
// carried none.
type WarningRecord struct {
	Code     string
	Message  string
	Severity string
	Range    RangeRecord
	Fix      []ReplacementRecord
}

// DirectiveRecord mirrors doc.Directive.
type DirectiveRecord struct {
	Range RangeRecord
	Args  []string
}

// RefRecord mirrors doc.Ref.
type RefRecord struct {
	Target string
	Range  RangeRecord
}

// NewEntry converts one linted document's results into a storable
// entry stamped with the current time.
func NewEntry(runID string, warnings []lint.Warning, d *doc.Document) *Entry {
	e := &Entry{
		Schema:    schemaVersion,
		RunID:     runID,
		CreatedAt: time.Now().UTC(),
	}
	for _, w := range warnings {
		e.WarningRecords = append(e.WarningRecords, warningRecord(w))
	}
	for _, dir := range d.Directives {
		e.DirectiveRecords = append(e.DirectiveRecords, DirectiveRecord{
			Range: rangeRecord(dir.Range),
			Args:  dir.Args,
		})
	}
	for _, ref := range d.Refs {
		e.RefRecords = append(e.RefRecords, RefRecord{
			Target: ref.Target,
			Range:  rangeRecord(ref.Range),
		})
	}
	return e
}

// Warnings rebuilds the lint warnings stored in the entry.
func (e *Entry) Warnings() []lint.Warning {
	var out []lint.Warning
	for _, rec := range e.WarningRecords {
		w := lint.Warning{
			Code:     rec.Code,
			Message:  rec.Message,
			Severity: doc.Severity(rec.Severity),
			Range:    rec.Range.sourceRange(),
		}
		if len(rec.Fix) > 0 {
			edit := make(fix.Edit, 0, len(rec.Fix))
			for _, r := range rec.Fix {
				edit = append(edit, fix.Replacement{
					Range: r.Range.sourceRange(),
					Text:  r.Text,
				})
			}
			w.Fix = &edit
		}
		out = append(out, w)
	}
	return out
}

// Directives rebuilds the document directives stored in the entry.
func (e *Entry) Directives() []doc.Directive {
	var out []doc.Directive
	for _, rec := range e.DirectiveRecords {
		out = append(out, doc.Directive{
			Range: rec.Range.sourceRange(),
			Args:  rec.Args,
		})
	}
	return out
}

// Refs rebuilds the document refs stored in the entry.
func (e *Entry) Refs() []doc.Ref {
	var out []doc.Ref
	for _, rec := range e.RefRecords {
		out = append(out, doc.Ref{
			Target: rec.Target,
			Range:  rec.Range.sourceRange(),
		})
	}
	return out
}

func warningRecord(w lint.Warning) WarningRecord {
	rec := WarningRecord{
		Code:     w.Code,
		Message:  w.Message,
		Severity: string(w.Severity),
		Range:    rangeRecord(w.Range),
	}
	if w.Fix != nil {
		for _, r := range *w.Fix {
			rec.Fix = append(rec.Fix, ReplacementRecord{
				Range: rangeRecord(r.Range),
				Text:  r.Text,
			})
		}
	}
	return rec
}

func rangeRecord(r doc.SourceRange) RangeRecord {
	return RangeRecord{
		File:  r.File,
		Start: PositionRecord{Line: r.Start.Line, Column: r.Start.Column},
		End:   PositionRecord{Line: r.End.Line, Column: r.End.Column},
	}
}

func (r RangeRecord) sourceRange() doc.SourceRange {
	return doc.SourceRange{
		File:  r.File,
		Start: doc.SourcePosition{Line: r.Start.Line, Column: r.Start.Column},
		End:   doc.SourcePosition{Line: r.End.Line, Column: r.End.Column},
	}
}
