package osc

import "strings"

// Carried verbatim into the body of every ClientMethod, since the
// client-side execution semantics are invisible in the signature.
const clientMethodRemark = "///This method is a ClientMethod. Any instance method defined with the keyword ClientMethod\n" +
	"///becomes a client-side instance method of the client page object.\n" +
	"///When called, it executes within the browser.\n"

// openMethod starts accumulating a Method, ClassMethod, or
// ClientMethod block: pending comments, the keyword metadata block,
// and the formatted signature go in first, then handleMethodBody owns
// every line through the matching closing brace.
func (p *Parser) openMethod(line string, kind memberKind) error {
	if kind == kindClassMethod {
		p.insideClassMethod = true
	} else {
		p.insideMethod = true
		p.abstractMethod = p.hasKeyword(line, "Abstract")
	}
	p.privateMethod = p.hasKeyword(line, "Private")

	p.flushCommentsInto(&p.methodContent)
	if kind == kindClientMethod {
		p.methodContent.WriteString(clientMethodRemark)
	}

	data, err := p.memberData(line, kind)
	if err != nil {
		return err
	}
	p.methodContent.WriteString(data)

	p.methodContent.WriteString(p.methodSignature(line, kind) + "\n")
	return nil
}

// methodSignature synthesizes the pseudo-C++ signature. The return
// type comes from an As clause after the parameter list's closing
// parenthesis, defaulting to void; the name keeps the source
// parameter list verbatim.
func (p *Parser) methodSignature(line string, kind memberKind) string {
	norm := normalizeAs(line)

	head := norm
	ret := "void"
	if cl := strings.IndexByte(norm, ')'); cl >= 0 {
		head = norm[:cl]
		after := norm[cl+1:]
		if i := strings.Index(after, "As"); i >= 0 {
			rest := strings.TrimLeft(after[i+len("As"):], " ")
			if f := strings.Fields(rest); len(f) > 0 {
				ret = strings.TrimSuffix(f[0], ";")
			}
		}
	} else {
		p.warnf("method signature missing ')': %q", norm)
	}
	name := strings.TrimSpace(strings.TrimPrefix(head, string(kind))) + ")"

	switch kind {
	case kindClassMethod:
		return "static " + ret + " " + name
	case kindMethod:
		if p.abstractMethod {
			return "virtual " + ret + " " + name
		}
		return ret + " " + name
	default: // ClientMethod
		return ret + " " + name
	}
}

// handleMethodBody accumulates an open method block. Brace lines pass
// through verbatim; comment lines are reformatted as documentation;
// everything else is dropped, since method logic is not reproduced in
// the output.
func (p *Parser) handleMethodBody(line string) {
	switch {
	case strings.HasPrefix(line, "{"):
		p.methodContent.WriteString(line + "\n")
	case strings.HasPrefix(line, "}"):
		p.methodContent.WriteString(line + "\n")
		p.closeMethod()
	default:
		c := commentPattern.FindString(line)
		if c == "" {
			return
		}
		if chars := commentCharsPattern.FindString(c); chars != "" {
			c = "/// " + strings.TrimSpace(c[strings.Index(c, chars)+len(chars):])
		}
		p.methodContent.WriteString(p.pad() + c + "\n")
	}
}

func (p *Parser) closeMethod() {
	block := p.indentBlock(p.methodContent.String())

	target := &p.publicContent
	if p.privateMethod {
		target = &p.privateContent
	}
	if p.abstractMethod {
		target.WriteString(p.pad() + "/// Note: this is an Abstract method\n")
	}
	target.WriteString(block + "\n\n")

	p.abstractMethod = false
	p.privateMethod = false
	p.insideClassMethod = false
	p.insideMethod = false
	p.methodContent.Reset()
}
