package osc

import "strings"

const defaultMimeType = "application/xml"

// openXData starts an XData block. The signature line is computed up
// front and appended once the block closes; the MIME type decides how
// brace lines inside the content are treated.
func (p *Parser) openXData(line string) error {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return p.errorf("malformed XData declaration: %q", strings.TrimSpace(line))
	}
	p.insideXData = true
	p.xdataMimeType = xdataMimeType(line)
	p.xdataSignature = "XData " + strings.Trim(fields[1], ";") + ";"

	p.flushCommentsInto(&p.xdataContent)
	data, err := p.memberData(line, kindXData)
	if err != nil {
		return err
	}
	p.xdataContent.WriteString(data)
	return nil
}

// xdataMimeType reads the MimeType keyword from the annotation list,
// defaulting to XML.
func xdataMimeType(line string) string {
	open := strings.IndexByte(line, '[')
	if open < 0 {
		return defaultMimeType
	}
	seg := line[open+1:]
	i := strings.Index(seg, "MimeType = ")
	if i < 0 {
		return defaultMimeType
	}
	seg = seg[i+len("MimeType = "):]
	if end := strings.IndexByte(seg, ']'); end >= 0 {
		seg = seg[:end]
	}
	return strings.TrimSpace(seg)
}

// handleXData accumulates an open XData block. The embedded content is
// an opaque documented payload: every content line is emitted verbatim
// behind the /// marker inside a fenced block. JSON content keeps its
// brace lines as literal content, and <style> sub-blocks keep their
// closing brace from terminating the section.
func (p *Parser) handleXData(line string) {
	switch {
	case strings.HasPrefix(line, "{"):
		if !p.insideXDataContent {
			p.insideXDataContent = true
			p.xdataContent.WriteString("/// XData content:\n")
			p.xdataContent.WriteString("/// ```\n")
		} else if p.xdataMimeType == "application/json" {
			p.xdataContent.WriteString("/// " + line + "\n")
		}
	case strings.HasPrefix(line, "<style"):
		p.insideXDataCSS = true
		p.xdataContent.WriteString("/// " + line + "\n")
	case strings.HasPrefix(line, "</style>"):
		p.insideXDataCSS = false
		p.xdataContent.WriteString("/// " + line + "\n")
	case strings.HasPrefix(line, "}"):
		switch {
		case p.insideXDataCSS:
			p.xdataContent.WriteString("/// " + line + "\n")
		case p.insideXDataContent && p.xdataMimeType == "application/json":
			// the top-level brace of the JSON document, not ours
			p.xdataContent.WriteString("/// " + line + "\n")
			p.insideXDataContent = false
		default:
			p.closeXData()
		}
	default:
		p.xdataContent.WriteString("/// " + line + "\n")
	}
}

func (p *Parser) closeXData() {
	p.insideXDataContent = false
	p.insideXDataCSS = false
	p.insideXData = false

	p.xdataContent.WriteString("/// ```\n")
	p.xdataContent.WriteString(p.xdataSignature)
	block := p.indentBlock(p.xdataContent.String())

	p.publicContent.WriteString(block + "\n\n")
	p.xdataContent.Reset()
	p.xdataSignature = ""
	p.xdataMimeType = ""
}

// handleStorage discards storage content entirely; only the closing
// brace matters.
func (p *Parser) handleStorage(line string) {
	if strings.HasPrefix(line, "}") {
		p.insideStorage = false
	}
}
