package osc

import (
	"regexp"
	"strings"
)

var (
	// commentPattern matches an inline // comment or a /* */ block
	// closed on the same line.
	commentPattern = regexp.MustCompile(`(?s)//[^\n]*|/\*.*?\*/`)
	// commentCharsPattern matches just the leading comment markers.
	commentCharsPattern = regexp.MustCompile(`//+`)
)

// splitLineComment returns the code part of a declaration line and
// its trailing comment, honoring double-quoted strings so a "//"
// inside a literal is not mistaken for a comment start.
func splitLineComment(line string) (code, comment string) {
	inQuote := false
	for i := 0; i < len(line)-1; i++ {
		ch := line[i]
		if ch == '"' {
			inQuote = !inQuote
			continue
		}
		if !inQuote && ch == '/' && (line[i+1] == '/' || line[i+1] == '*') {
			return line[:i], strings.TrimRight(line[i:], " ")
		}
	}
	return line, ""
}

// accumulateComment captures free-floating comments between member
// declarations. They attach to whichever declaration follows; a blank
// line with nothing pending after it flushes them to the file-level
// buffer instead. Non-comment lines pass through into the class
// preamble.
func (p *Parser) accumulateComment(line string) {
	if c := commentPattern.FindString(line); c != "" {
		p.comments.WriteString(c + "\n")
		return
	}

	if strings.HasPrefix(line, "/*") {
		p.insideCommentBlock = true
		p.comments.WriteString(strings.ReplaceAll(strings.TrimSpace(line), "/*", "///") + "\n")
		return
	}

	if p.insideCommentBlock {
		c := strings.TrimSpace(line)
		if c == "" {
			return
		}
		switch {
		case strings.Contains(c, "*/"):
			p.insideCommentBlock = false
			p.comments.WriteString(strings.ReplaceAll(c, "*/", "///") + "\n")
		case strings.HasPrefix(c, "*"):
			p.comments.WriteString("///" + strings.TrimPrefix(c, "*") + "\n")
		default:
			p.comments.WriteString("/// " + c + "\n")
		}
		return
	}

	if t := strings.TrimSpace(line); t != "" {
		p.classContent.WriteString(t + "\n")
		return
	}
	if strings.TrimSpace(p.comments.String()) != "" {
		p.fileContent.WriteString(p.comments.String())
		p.comments.Reset()
	}
}
