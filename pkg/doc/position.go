package doc

import "fmt"

// SourcePosition is a zero-indexed line/column location within one file's text.
// Column counts bytes, not runes.
type SourcePosition struct {
	Line   int
	Column int
}

// ComparePositions orders positions by line, then column.
// It returns a negative number if a precedes b, zero if they are equal,
// and a positive number if a follows b.
func ComparePositions(a, b SourcePosition) int {
	if a.Line != b.Line {
		return a.Line - b.Line
	}
	return a.Column - b.Column
}

// String renders the position 1-based for human consumption.
func (p SourcePosition) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Column+1)
}

// SourceRange covers a span of text in one file. Ranges are half-open:
// End is the position immediately after the last covered character.
// Invariant: Start <= End under ComparePositions.
type SourceRange struct {
	File  string
	Start SourcePosition
	End   SourcePosition
}

// PointRange returns a zero-width range anchored at pos.
func PointRange(file string, pos SourcePosition) SourceRange {
	return SourceRange{File: file, Start: pos, End: pos}
}

// IsEmpty reports whether the range covers no characters.
func (r SourceRange) IsEmpty() bool {
	return r.Start == r.End
}

// IsValid reports whether the range is well formed: non-negative
// positions with Start not after End.
func (r SourceRange) IsValid() bool {
	if r.Start.Line < 0 || r.Start.Column < 0 || r.End.Line < 0 || r.End.Column < 0 {
		return false
	}
	return ComparePositions(r.Start, r.End) <= 0
}

// String renders the range as file:start-end, 1-based.
func (r SourceRange) String() string {
	return fmt.Sprintf("%s:%s-%s", r.File, r.Start, r.End)
}
