package nethtml

// attrSpan records where one attribute sits inside a start tag's raw
// bytes. Offsets are relative to the tag's first byte.
type attrSpan struct {
	name  string
	value string

	nameStart, nameEnd   int
	valueStart, valueEnd int

	// end is one past the attribute's last byte: the closing quote,
	// the last value byte, or the name end for valueless attributes.
	end int
}

// tagSpans is the result of scanning one start tag.
type tagSpans struct {
	name  string
	attrs []attrSpan

	// slashStart and slashEnd cover the trailing "/" and any
	// whitespace directly before it on a self-closing tag.
	slashStart, slashEnd int
}

// scanTag walks a start tag's raw bytes and records where the name and
// each attribute sit. The tokenizer only hands over complete tags from
// "<" through ">", so the scan mirrors its attribute grammar: names end
// at whitespace, "=", "/" or ">"; values are single-quoted,
// double-quoted, or run to the next whitespace.
func scanTag(raw []byte) tagSpans {
	var t tagSpans
	if len(raw) == 0 {
		return t
	}

	i := 1 // past "<"
	start := i
	for i < len(raw) && !isSpace(raw[i]) && raw[i] != '>' && raw[i] != '/' {
		i++
	}
	t.name = lower(raw[start:i])

	for i < len(raw) {
		for i < len(raw) && isSpace(raw[i]) {
			i++
		}
		if i >= len(raw) || raw[i] == '>' {
			break
		}
		if raw[i] == '/' {
			i++
			continue
		}

		span := attrSpan{nameStart: i}
		for i < len(raw) && !isSpace(raw[i]) && raw[i] != '=' && raw[i] != '>' && raw[i] != '/' {
			i++
		}
		span.name = lower(raw[span.nameStart:i])
		span.nameEnd = i

		j := i
		for j < len(raw) && isSpace(raw[j]) {
			j++
		}
		if j >= len(raw) || raw[j] != '=' {
			span.valueStart = span.nameEnd
			span.valueEnd = span.nameEnd
			span.end = span.nameEnd
			t.attrs = append(t.attrs, span)
			continue
		}

		i = j + 1
		for i < len(raw) && isSpace(raw[i]) {
			i++
		}

		if i < len(raw) && (raw[i] == '"' || raw[i] == '\'') {
			quote := raw[i]
			i++
			span.valueStart = i
			for i < len(raw) && raw[i] != quote {
				i++
			}
			span.valueEnd = i
			if i < len(raw) {
				i++ // past the closing quote
			}
			span.end = i
		} else {
			span.valueStart = i
			for i < len(raw) && !isSpace(raw[i]) && raw[i] != '>' {
				i++
			}
			span.valueEnd = i
			span.end = i
		}
		span.value = string(raw[span.valueStart:span.valueEnd])
		t.attrs = append(t.attrs, span)
	}

	// Locate the closing "/" on self-closing tags. The tokenizer marks
	// a tag self-closing exactly when the byte before ">" is "/".
	if n := len(raw); n >= 2 && raw[n-2] == '/' {
		t.slashStart = n - 2
		t.slashEnd = n - 1
		for t.slashStart > 0 && isSpace(raw[t.slashStart-1]) {
			t.slashStart--
		}
	}

	return t
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

// lower ASCII-lowercases a byte slice into a string. Tag and attribute
// names never carry multibyte runes the tokenizer would accept.
func lower(b []byte) string {
	out := make([]byte, len(b))
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}
