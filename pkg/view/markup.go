package view

import (
	"strconv"
	"strings"
)

// Span is a run of text with uniform styling. Link is -1 for plain text.
type Span struct {
	Text   string
	Bold   bool
	Italic bool
	Link   int
}

// ParseMarkup splits text containing <b>, <i>, and <linkN> tags into spans.
// Tags that are unknown or do not nest properly are kept as literal text.
func ParseMarkup(text string) []Span {
	var (
		spans []Span
		stack []string
		buf   strings.Builder
	)
	cur := Span{Link: -1}

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		s := cur
		s.Text = buf.String()
		if n := len(spans); n > 0 && sameStyle(spans[n-1], s) {
			spans[n-1].Text += s.Text
		} else {
			spans = append(spans, s)
		}
		buf.Reset()
	}

	for i := 0; i < len(text); {
		if text[i] != '<' {
			buf.WriteByte(text[i])
			i++
			continue
		}
		end := strings.IndexByte(text[i:], '>')
		if end < 0 {
			buf.WriteString(text[i:])
			break
		}
		tag := text[i+1 : i+end]
		closing := strings.HasPrefix(tag, "/")
		name := strings.TrimPrefix(tag, "/")
		_, isLink := parseLinkTag(name)
		if name != "b" && name != "i" && !isLink {
			buf.WriteString(text[i : i+end+1])
			i += end + 1
			continue
		}

		if closing {
			if len(stack) == 0 || stack[len(stack)-1] != name {
				buf.WriteString(text[i : i+end+1])
				i += end + 1
				continue
			}
			flush()
			stack = stack[:len(stack)-1]
			cur = styleFor(stack)
		} else {
			if isLink && cur.Link >= 0 {
				// Links do not nest.
				buf.WriteString(text[i : i+end+1])
				i += end + 1
				continue
			}
			flush()
			stack = append(stack, name)
			cur = styleFor(stack)
		}
		i += end + 1
	}
	flush()
	return spans
}

// PlainText returns the concatenated text of spans.
func PlainText(spans []Span) string {
	var sb strings.Builder
	for _, s := range spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

func parseLinkTag(name string) (int, bool) {
	if !strings.HasPrefix(name, "link") || len(name) == len("link") {
		return 0, false
	}
	n, err := strconv.Atoi(name[len("link"):])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func styleFor(stack []string) Span {
	s := Span{Link: -1}
	for _, name := range stack {
		switch name {
		case "b":
			s.Bold = true
		case "i":
			s.Italic = true
		default:
			if n, ok := parseLinkTag(name); ok {
				s.Link = n
			}
		}
	}
	return s
}

func sameStyle(a, b Span) bool {
	return a.Bold == b.Bold && a.Italic == b.Italic && a.Link == b.Link
}
