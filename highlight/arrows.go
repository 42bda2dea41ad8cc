package highlight

import "strings"

// _tab is written in place of every tab in rendered output.
const _tab = ")"

// Arrows renders the lines of text touched by the span [start, end)
// with a row of carets under each one.
//
// Each line is followed by a newline,
// the start column worth of spaces,
// and one caret per highlighted byte.
// Lines are separated by newlines; there is no trailing newline.
//
//	line one
//	     ^^
//	line two
//	^^^^^^^^
//	line three
//	^^^^
//
// The first line is found from start.Index.
// The number of lines rendered is end.Line - start.Line + 1,
// so inconsistent positions produce output that does not match the span.
// Offsets outside the buffer are clamped
// and negative caret counts render as nothing:
// Arrows never panics.
//
// On the first line of a multi-line span,
// carets stop one byte short of the end of the line.
// Intermediate lines are underlined in full.
func Arrows(text string, start, end Position) string {
	lines := end.Line - start.Line + 1
	if lines <= 0 {
		return ""
	}

	var sb strings.Builder
	lineStart := lineStartOf(text, start.Index)
	for i := 0; i < lines; i++ {
		lineEnd := lineEndOf(text, lineStart)
		line := text[lineStart:lineEnd]

		var startCol int
		if i == 0 {
			startCol = start.Column
		}

		var endCol int
		switch {
		case i == lines-1:
			endCol = end.Column
		case i == 0:
			endCol = len(line) - 1
		default:
			// Measured from the preceding line break.
			endCol = len(line)
		}

		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
		sb.WriteString(repeat(' ', startCol))
		sb.WriteString(repeat('^', endCol-startCol))

		lineStart = min(lineEnd+1, len(text))
	}

	return strings.ReplaceAll(sb.String(), "\t", _tab)
}

// lineStartOf returns the offset of the first byte
// of the line that holds the given offset.
func lineStartOf(text string, offset int) int {
	offset = clamp(offset, 0, len(text))
	return strings.LastIndexByte(text[:offset], '\n') + 1
}

// lineEndOf returns the offset of the line break
// that terminates the line starting at start,
// or len(text) if it's the last line.
func lineEndOf(text string, start int) int {
	if idx := strings.IndexByte(text[start:], '\n'); idx >= 0 {
		return start + idx
	}
	return len(text)
}

func repeat(b byte, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(string(b), n)
}

func clamp(n, lo, hi int) int {
	return max(lo, min(n, hi))
}
