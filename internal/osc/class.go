package osc

import "strings"

// handleClass converts the class header into the opening of the
// pseudo class declaration. Each Extends entry becomes a public base;
// an abstract class additionally gets a pure-virtual destructor at the
// top of the public partition. The matching closing brace is emitted
// by closeClass.
func (p *Parser) handleClass(line string) error {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return p.errorf("malformed class header: %q", strings.TrimSpace(line))
	}
	full := fields[1]
	short := full
	if i := strings.LastIndex(full, "."); i >= 0 {
		short = full[i+1:]
	}

	if p.hasKeyword(line, "Abstract") {
		p.publicContent.WriteString(p.pad() + "virtual ~" + short + "() = 0;\n\n")
	}

	def := "class " + full
	if i := strings.Index(line, "Extends"); i >= 0 {
		ext := line[i+len("Extends"):]
		if b := strings.IndexByte(ext, '['); b >= 0 {
			ext = ext[:b]
		}
		ext = strings.Trim(strings.TrimSpace(ext), "()")
		var bases []string
		for _, e := range strings.Split(ext, ",") {
			if e = strings.TrimSpace(e); e != "" {
				bases = append(bases, "public "+e)
			}
		}
		if len(bases) > 0 {
			def += " : " + strings.Join(bases, ", ")
		}
	}
	p.classContent.WriteString(def + "\n")
	return nil
}
