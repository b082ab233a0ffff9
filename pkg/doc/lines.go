package doc

import "sort"

// lineSpan holds byte offsets for a single line.
type lineSpan struct {
	// start is the byte index of the line start.
	start int

	// newlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline this equals end.
	newlineStart int

	// end is the byte index just after the newline (or end of file).
	end int
}

// LineIndex maps between byte offsets and zero-indexed line/column
// positions within one file's content. It handles both LF and CRLF
// line endings.
type LineIndex struct {
	content []byte
	lines   []lineSpan
}

// NewLineIndex builds a line index over content. Empty content indexes
// as a single empty line so that position 0:0 stays addressable.
func NewLineIndex(content []byte) *LineIndex {
	idx := &LineIndex{content: content}

	lineStart := 0
	for i, c := range content {
		if c == '\n' {
			// Check for CRLF.
			newlineStart := i
			if i > 0 && content[i-1] == '\r' {
				newlineStart = i - 1
			}

			idx.lines = append(idx.lines, lineSpan{
				start:        lineStart,
				newlineStart: newlineStart,
				end:          i + 1,
			})
			lineStart = i + 1
		}
	}

	// Last line, which may lack a trailing newline. Emitted even when
	// empty so every file has at least one line.
	idx.lines = append(idx.lines, lineSpan{
		start:        lineStart,
		newlineStart: len(content),
		end:          len(content),
	})

	return idx
}

// LineCount returns the number of lines.
func (x *LineIndex) LineCount() int {
	return len(x.lines)
}

// PositionAt converts a byte offset to a position.
// Returns false if the offset is outside [0, len(content)].
func (x *LineIndex) PositionAt(offset int) (SourcePosition, bool) {
	if offset < 0 || offset > len(x.content) {
		return SourcePosition{}, false
	}

	// Offset at end of content lands on the final line.
	if offset == len(x.content) {
		last := len(x.lines) - 1
		return SourcePosition{Line: last, Column: offset - x.lines[last].start}, true
	}

	line := sort.Search(len(x.lines), func(i int) bool {
		return x.lines[i].end > offset
	})

	return SourcePosition{Line: line, Column: offset - x.lines[line].start}, true
}

// OffsetOf converts a position to a byte offset.
// A column may point one past the last character of its line (including
// past a trailing newline) so that half-open range ends stay mappable.
// Returns false if the position does not correspond to the content.
func (x *LineIndex) OffsetOf(p SourcePosition) (int, bool) {
	if p.Line < 0 || p.Line >= len(x.lines) || p.Column < 0 {
		return 0, false
	}

	span := x.lines[p.Line]
	offset := span.start + p.Column
	if offset > span.end {
		return 0, false
	}

	return offset, true
}

// LineContent returns the bytes of a zero-indexed line, excluding the
// newline. Returns nil if the line is out of range.
func (x *LineIndex) LineContent(line int) []byte {
	if line < 0 || line >= len(x.lines) {
		return nil
	}

	span := x.lines[line]
	return x.content[span.start:span.newlineStart]
}
