// Package doc defines the document model the lint engine consumes:
// positions and ranges, a line index for offset conversion, and an
// immutable per-file snapshot carrying:
// - the raw content and line metadata
// - the flat element list with attribute spans
// - diagnostics the parsing adapter attached itself
// - suppression directives and outgoing references
//
// The engine never parses source text; adapters (pkg/parser/nethtml)
// populate everything beyond the line index.
package doc

import "strings"

// Document is an immutable snapshot of one source file at lint time.
type Document struct {
	// Path identifies the file (may be a synthetic name for in-memory content).
	Path string

	// Content is the full file bytes.
	Content []byte

	// Lines maps between byte offsets and positions.
	Lines *LineIndex

	// Doctype is the document type declaration, if one was found.
	Doctype *Doctype

	// Elements lists every start tag in source order.
	Elements []Element

	// Diagnostics holds findings the adapter attached while building the
	// snapshot (parse errors, malformed attributes). They bypass rules
	// but are still subject to directive filtering.
	Diagnostics []Diagnostic

	// Directives lists inline suppression markers in source order.
	Directives []Directive

	// Refs lists outgoing references in source order.
	Refs []Ref
}

// NewDocument creates a snapshot with its line index built. Structure,
// diagnostics, directives and refs are filled in by an adapter.
func NewDocument(path string, content []byte) *Document {
	return &Document{
		Path:    path,
		Content: content,
		Lines:   NewLineIndex(content),
	}
}

// Range builds a SourceRange for this document from byte offsets.
// Offsets outside the content collapse to the document start.
func (d *Document) Range(start, end int) SourceRange {
	s, ok := d.Lines.PositionAt(start)
	if !ok {
		return PointRange(d.Path, SourcePosition{})
	}
	e, ok := d.Lines.PositionAt(end)
	if !ok {
		return PointRange(d.Path, SourcePosition{})
	}
	return SourceRange{File: d.Path, Start: s, End: e}
}

// Slice returns the content covered by r.
// Returns false if r belongs to another file or does not map to offsets.
func (d *Document) Slice(r SourceRange) ([]byte, bool) {
	if r.File != d.Path {
		return nil, false
	}
	start, ok := d.Lines.OffsetOf(r.Start)
	if !ok {
		return nil, false
	}
	end, ok := d.Lines.OffsetOf(r.End)
	if !ok || end < start {
		return nil, false
	}
	return d.Content[start:end], true
}

// ElementsByTag returns the elements with the given (lowercase) tag name,
// in source order.
func (d *Document) ElementsByTag(name string) []Element {
	var out []Element
	for _, el := range d.Elements {
		if el.TagName == name {
			out = append(out, el)
		}
	}
	return out
}

// Doctype is a document type declaration.
type Doctype struct {
	// Raw is the exact declaration text, including the angle brackets.
	Raw string

	Range SourceRange
}

// Element is one start tag (or self-closing tag) as written in source.
type Element struct {
	// TagName is the lowercased tag name.
	TagName string

	// Range covers the whole tag, from "<" through ">".
	Range SourceRange

	// Attrs lists the tag's attributes in source order, including
	// duplicates exactly as written.
	Attrs []Attr

	// SelfClosing reports whether the tag ends with "/>".
	SelfClosing bool

	// SlashRange covers the trailing "/" (and any whitespace directly
	// before it) when SelfClosing is true.
	SlashRange SourceRange
}

// Attr returns the first attribute with the given (lowercase) name.
func (e Element) Attr(name string) (Attr, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a, true
		}
	}
	return Attr{}, false
}

// Attr is one attribute occurrence within a start tag.
type Attr struct {
	// Name is the lowercased attribute name.
	Name string

	// Value is the attribute value with quotes stripped.
	Value string

	// NameRange covers exactly the attribute name as written.
	NameRange SourceRange

	// ValueRange covers the value text inside any quotes. Zero-width at
	// the end of the name for valueless attributes.
	ValueRange SourceRange

	// Range covers the full attribute, name through closing quote.
	Range SourceRange
}

// Diagnostic is a finding attached by the adapter while parsing.
type Diagnostic struct {
	Code     string
	Message  string
	Severity Severity
	Range    SourceRange
}

// Ref is an outgoing reference (link, script, image, frame, anchor).
type Ref struct {
	// Target is the reference target exactly as written.
	Target string

	Range SourceRange
}

// LocalPath returns the filesystem path portion of the target, with any
// query or fragment stripped. Returns false for targets that do not
// resolve against the local filesystem: absolute URLs, protocol-relative
// URLs, and fragment-only references.
func (r Ref) LocalPath() (string, bool) {
	t := r.Target
	if t == "" || strings.HasPrefix(t, "#") || strings.HasPrefix(t, "//") {
		return "", false
	}

	// A colon before any slash means the target carries a scheme.
	if i := strings.IndexAny(t, ":/"); i >= 0 && t[i] == ':' {
		return "", false
	}

	if i := strings.IndexAny(t, "?#"); i >= 0 {
		t = t[:i]
	}
	if t == "" {
		return "", false
	}
	return t, true
}
