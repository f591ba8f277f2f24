package osc

import (
	"strconv"
	"strings"
)

// memberKind is the section keyword opening a class member.
type memberKind string

const (
	kindProperty     memberKind = "Property"
	kindParameter    memberKind = "Parameter"
	kindIndex        memberKind = "Index"
	kindMethod       memberKind = "Method"
	kindClassMethod  memberKind = "ClassMethod"
	kindClientMethod memberKind = "ClientMethod"
	kindXData        memberKind = "XData"
)

// normalizeAs canonicalizes the lowercase type-introducer so the shape
// parsers only have to look for "As".
func normalizeAs(line string) string {
	return strings.ReplaceAll(strings.TrimSpace(line), " as ", " As ")
}

// afterFields returns the part of s after its first n
// whitespace-delimited fields, with leading spaces removed.
func afterFields(s string, n int) string {
	s = strings.TrimLeft(s, " ")
	for i := 0; i < n; i++ {
		j := strings.IndexByte(s, ' ')
		if j < 0 {
			return ""
		}
		s = strings.TrimLeft(s[j:], " ")
	}
	return s
}

// splitList splits a comma-separated annotation body into trimmed,
// non-empty tokens.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// bracketList extracts the tokens of a [ ... ] keyword annotation. A
// bracket that never closes yields no tokens and a warning.
func (p *Parser) bracketList(s string) []string {
	open := strings.IndexByte(s, '[')
	if open < 0 {
		return nil
	}
	end := strings.IndexByte(s[open+1:], ']')
	if end < 0 {
		p.warnf("unterminated keyword list: %q", strings.TrimSpace(s))
		return nil
	}
	return splitList(s[open+1 : open+1+end])
}

// parenList extracts the tokens of a ( ... ) constructor-argument
// list, with the same lenient recovery as bracketList.
func (p *Parser) parenList(s string) []string {
	open := strings.IndexByte(s, '(')
	if open < 0 {
		return nil
	}
	end := strings.IndexByte(s[open+1:], ')')
	if end < 0 {
		p.warnf("unterminated argument list: %q", strings.TrimSpace(s))
		return nil
	}
	return splitList(s[open+1 : open+1+end])
}

// keywordList returns the bracket-annotation tokens of a declaration
// line. Any parameter list or constructor arguments are skipped first
// so a '[' inside them is not mistaken for the annotation.
func (p *Parser) keywordList(line string) []string {
	s := line
	if i := strings.IndexByte(s, ')'); i >= 0 {
		s = s[i+1:]
	}
	return p.bracketList(s)
}

func (p *Parser) hasKeyword(line, keyword string) bool {
	for _, k := range p.keywordList(line) {
		if k == keyword {
			return true
		}
	}
	return false
}

// convertType maps source primitive names to their placeholder type
// tokens; unknown names pass through unchanged.
func (p *Parser) convertType(t string) string {
	if mapped, ok := p.typeMap[t]; ok {
		return mapped
	}
	return t
}

// inferLiteralType guesses a parameter type from its default value:
// "0"/"1" reads as a boolean, any other integer literal as an integer,
// everything else as a string.
func inferLiteralType(value string) string {
	if value == "0" || value == "1" {
		return "%Boolean"
	}
	if _, err := strconv.Atoi(value); err == nil {
		return "%Integer"
	}
	return "%String"
}

func (p *Parser) writeDataBlock(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString("/// " + title + ":<br>\n")
	for _, it := range items {
		b.WriteString("/// > " + it + "<br>\n")
	}
}

// memberData re-extracts the bracketed keyword list and parenthesized
// constructor arguments of a declaration line into a documentation
// block, so the source values themselves show up in the output.
func (p *Parser) memberData(line string, kind memberKind) (string, error) {
	var b strings.Builder
	switch kind {
	case kindProperty, kindParameter:
		rem := afterFields(normalizeAs(line), 2)
		switch {
		case strings.HasPrefix(rem, "="):
			// the name = value shape carries no annotations
		case strings.HasPrefix(rem, "As "):
			tail := strings.TrimLeft(rem[len("As "):], " ")
			sp := strings.IndexByte(tail, ' ')
			par := strings.IndexByte(tail, '(')
			if par >= 0 && (sp < 0 || par < sp) {
				p.writeDataBlock(&b, "Member Additional Data", p.parenList(tail))
				if end := strings.IndexByte(tail, ')'); end >= 0 {
					p.writeDataBlock(&b, "Member Keyword Data", p.bracketList(tail[end+1:]))
				}
			} else {
				p.writeDataBlock(&b, "Member Keyword Data", p.bracketList(tail))
			}
		case strings.HasPrefix(rem, "["):
			p.writeDataBlock(&b, "Member Keyword Data", p.bracketList(rem))
		}
	case kindMethod, kindClassMethod, kindClientMethod:
		s := line
		if i := strings.IndexByte(s, ')'); i >= 0 {
			s = s[i+1:]
		}
		p.writeDataBlock(&b, "Member Keyword Data", p.bracketList(s))
	case kindIndex:
		rem := afterFields(strings.TrimSpace(line), 2)
		head := rem
		if i := strings.IndexByte(rem, '['); i >= 0 {
			head = rem[:i]
		}
		if head = strings.Trim(strings.TrimSpace(head), ";"); head != "" {
			p.writeDataBlock(&b, "Member Additional Data", []string{head})
		}
		p.writeDataBlock(&b, "Member Keyword Data", p.bracketList(rem))
	case kindXData:
		p.writeDataBlock(&b, "Member Keyword Data", p.bracketList(line))
	default:
		return "", p.errorf("unknown member kind: %s", kind)
	}
	return b.String(), nil
}
