package osc

import (
	"fmt"
	"strings"
)

// handleMember converts a single Property or Parameter line into a
// pseudo field declaration plus its extracted-metadata block.
//
// The recognized shapes, peeled in order:
//
//	name = value
//	name As Type(ctorArgs) [keywords] = value
//	name [keywords] = value
//
// Missing pieces fall back to %String and "". A Parameter without an
// explicit type gets one inferred from its default value.
func (p *Parser) handleMember(line string, kind memberKind) error {
	// shape parsing must not trip over a trailing comment
	code, comment := splitLineComment(line)
	norm := normalizeAs(code)
	fields := strings.Fields(norm)
	if len(fields) < 2 {
		return p.errorf("malformed %s declaration: %q", kind, norm)
	}
	name := strings.Trim(fields[1], ";")
	typ := "%String"
	value := `""`

	rem := afterFields(norm, 2)
	switch {
	case strings.HasPrefix(rem, "="):
		value = strings.Trim(strings.TrimSpace(rem[1:]), ";")
		typ = inferLiteralType(value)
	case strings.HasPrefix(rem, "As "):
		tail := strings.TrimLeft(rem[len("As "):], " ")
		end := strings.IndexAny(tail, " (")
		if end < 0 {
			end = len(tail)
		}
		typ = p.convertType(strings.Trim(tail[:end], ";"))
		tail = tail[end:]
		if strings.HasPrefix(tail, "(") {
			if cl := strings.IndexByte(tail, ')'); cl >= 0 {
				tail = tail[cl+1:]
			} else {
				p.warnf("unterminated argument list in %s %s", kind, name)
				tail = ""
			}
		}
		tail = strings.TrimSpace(tail)
		if strings.HasPrefix(tail, "[") {
			if cl := strings.IndexByte(tail, ']'); cl >= 0 {
				tail = tail[cl+1:]
			} else {
				p.warnf("unterminated keyword list in %s %s", kind, name)
				tail = ""
			}
		}
		if eq := strings.IndexByte(tail, '='); eq >= 0 {
			value = strings.Trim(strings.TrimSpace(tail[eq+1:]), ";")
		}
	case strings.HasPrefix(rem, "["):
		tail := rem
		if cl := strings.IndexByte(tail, ']'); cl >= 0 {
			tail = tail[cl+1:]
		} else {
			p.warnf("unterminated keyword list in %s %s", kind, name)
			tail = ""
		}
		if eq := strings.IndexByte(tail, '='); eq >= 0 {
			value = strings.Trim(strings.TrimSpace(tail[eq+1:]), ";")
		}
	}

	var decl string
	if kind == kindParameter {
		decl = fmt.Sprintf("const %s %s = %s;", typ, name, value)
	} else {
		decl = fmt.Sprintf("%s %s;", typ, name)
	}
	// A trailing same-line comment survives on the declaration.
	if comment != "" {
		decl += " " + comment
	}

	data, err := p.memberData(code, kind)
	if err != nil {
		return err
	}

	buf := &p.propContent
	if kind == kindParameter {
		buf = &p.paramContent
	}
	buf.WriteString(data)
	buf.WriteString(decl + "\n")
	block := p.indentBlock(buf.String())
	buf.Reset()

	// Parameters are always public; a [Private] property routes to the
	// private partition.
	target := &p.publicContent
	if kind == kindProperty && p.hasKeyword(code, "Private") {
		target = &p.privateContent
	}
	target.WriteString(block + "\n\n")
	return nil
}

// handleIndex converts an Index line. Index entries carry no type or
// value; everything between the name and the keyword annotation is
// surfaced as metadata.
func (p *Parser) handleIndex(line string) error {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return p.errorf("malformed Index declaration: %q", strings.TrimSpace(line))
	}
	name := strings.Trim(fields[1], ";")

	data, err := p.memberData(line, kindIndex)
	if err != nil {
		return err
	}

	p.indexContent.WriteString(data)
	p.indexContent.WriteString("Index " + name + ";\n")
	block := p.indentBlock(p.indexContent.String())
	p.indexContent.Reset()

	p.publicContent.WriteString(block + "\n\n")
	return nil
}
