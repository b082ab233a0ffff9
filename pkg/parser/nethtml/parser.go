// Package nethtml provides a Parser implementation backed by the
// golang.org/x/net/html tokenizer.
//
// The tokenizer is spec-compliant and error-tolerant: malformed markup
// produces best-effort tokens rather than failures, so Parse returns a
// non-nil error only for cancellation. Structural problems surface as
// adapter diagnostics on the document instead.
package nethtml

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/yaklabco/gohtmlint/pkg/doc"
	"golang.org/x/net/html"
)

// Diagnostic codes attached by the adapter.
const (
	// CodeParseError marks content the tokenizer could not form into
	// tokens, such as a start tag cut off at end of file.
	CodeParseError = "parse-error"

	// CodeDuplicateAttribute marks a repeated attribute name on one tag.
	CodeDuplicateAttribute = "duplicate-attribute"

	// CodeInvalidDirective marks a gohtmlint comment whose verb is
	// neither "enable" nor "disable".
	CodeInvalidDirective = "invalid-directive"
)

// DirectiveMarker is the first word of a suppression comment:
//
//	<!-- gohtmlint disable no-duplicate-ids -->
const DirectiveMarker = "gohtmlint"

// refAttrs maps tag names to the attribute carrying their outgoing
// reference.
var refAttrs = map[string]string{
	"a":      "href",
	"link":   "href",
	"script": "src",
	"img":    "src",
	"iframe": "src",
}

// Parser implements lint.Parser using the x/net/html tokenizer.
type Parser struct{}

// New creates an HTML parser.
func New() *Parser {
	return &Parser{}
}

// Parse converts raw HTML bytes into a document snapshot: the flat
// element list with attribute spans, the doctype, suppression
// directives, outgoing references, and any adapter diagnostics.
//
// Token raw bytes are contiguous over the input, so a running offset
// plus the document's line index recovers the exact source range of
// every construct.
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (*doc.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	d := doc.NewDocument(path, content)

	z := html.NewTokenizer(bytes.NewReader(content))
	offset := 0
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); err != io.EOF {
				d.Diagnostics = append(d.Diagnostics, doc.Diagnostic{
					Code:     CodeParseError,
					Message:  fmt.Sprintf("tokenizer failed: %v", err),
					Severity: doc.SeverityError,
					Range:    d.Range(offset, offset),
				})
			} else if offset < len(content) {
				// Bytes left at EOF never formed a token, e.g. a
				// start tag cut off mid-attribute.
				d.Diagnostics = append(d.Diagnostics, doc.Diagnostic{
					Code:     CodeParseError,
					Message:  "unexpected end of file",
					Severity: doc.SeverityError,
					Range:    d.Range(offset, len(content)),
				})
			}
			break
		}

		raw := z.Raw()
		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			p.addElement(d, raw, offset, tt == html.SelfClosingTagToken)
		case html.CommentToken:
			p.addDirective(d, raw, offset)
		case html.DoctypeToken:
			if d.Doctype == nil {
				d.Doctype = &doc.Doctype{
					Raw:   string(raw),
					Range: d.Range(offset, offset+len(raw)),
				}
			}
		}
		offset += len(raw)
	}

	return d, nil
}

// addElement scans one start tag's raw bytes and appends the resulting
// element, its outgoing reference, and duplicate-attribute diagnostics.
func (p *Parser) addElement(d *doc.Document, raw []byte, offset int, selfClosing bool) {
	tag := scanTag(raw)

	el := doc.Element{
		TagName:     tag.name,
		Range:       d.Range(offset, offset+len(raw)),
		SelfClosing: selfClosing,
	}
	if selfClosing {
		el.SlashRange = d.Range(offset+tag.slashStart, offset+tag.slashEnd)
	}

	seen := make(map[string]bool, len(tag.attrs))
	for _, span := range tag.attrs {
		attr := doc.Attr{
			Name:       span.name,
			Value:      span.value,
			NameRange:  d.Range(offset+span.nameStart, offset+span.nameEnd),
			ValueRange: d.Range(offset+span.valueStart, offset+span.valueEnd),
			Range:      d.Range(offset+span.nameStart, offset+span.end),
		}
		if seen[span.name] {
			d.Diagnostics = append(d.Diagnostics, doc.Diagnostic{
				Code:     CodeDuplicateAttribute,
				Message:  fmt.Sprintf("duplicate attribute %q on <%s>", span.name, tag.name),
				Severity: doc.SeverityWarning,
				Range:    attr.NameRange,
			})
		}
		seen[span.name] = true
		el.Attrs = append(el.Attrs, attr)
	}

	if refAttr, ok := refAttrs[el.TagName]; ok {
		if a, ok := el.Attr(refAttr); ok && a.Value != "" {
			d.Refs = append(d.Refs, doc.Ref{Target: a.Value, Range: a.ValueRange})
		}
	}

	d.Elements = append(d.Elements, el)
}

// addDirective recognizes gohtmlint suppression comments. Comments that
// start with the marker but carry an unknown verb get a diagnostic so a
// typo does not silently disable nothing.
func (p *Parser) addDirective(d *doc.Document, raw []byte, offset int) {
	fields := strings.Fields(commentText(raw))
	if len(fields) == 0 || fields[0] != DirectiveMarker {
		return
	}

	rng := d.Range(offset, offset+len(raw))
	verb := ""
	if len(fields) > 1 {
		verb = fields[1]
	}
	switch verb {
	case doc.DirectiveEnable, doc.DirectiveDisable:
		d.Directives = append(d.Directives, doc.Directive{Range: rng, Args: fields[1:]})
	default:
		d.Diagnostics = append(d.Diagnostics, doc.Diagnostic{
			Code:     CodeInvalidDirective,
			Message:  fmt.Sprintf("unrecognized directive %q, expected %q or %q", verb, doc.DirectiveEnable, doc.DirectiveDisable),
			Severity: doc.SeverityWarning,
			Range:    rng,
		})
	}
}

// commentText strips the comment delimiters from raw token bytes.
func commentText(raw []byte) string {
	s := strings.TrimPrefix(string(raw), "<!--")
	return strings.TrimSuffix(s, "-->")
}
