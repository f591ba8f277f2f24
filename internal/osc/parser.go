// Package osc filters Caché ObjectScript class files into a pseudo-C++
// stream with Doxygen comment markers, so that Doxygen can document a
// language it does not understand.
//
// The filter is a single-pass, line-oriented state machine. Each line
// is classified by the currently open block (XData, Storage, method)
// or, inside the class body, by its prefix (Property, Parameter,
// Index, Method, ...). Handlers accumulate text into per-section
// buffers which are flushed into the public/private partition once a
// logical unit completes. Only the first class definition in a file is
// processed; trailing content is dropped.
package osc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const defaultIndent = 4

// Result is the outcome of one filter pass.
type Result struct {
	// Output is the pseudo-C++ stream for the downstream generator.
	Output string
	// Warnings are recoverable extraction problems, in input order.
	Warnings []Warning
}

// Option configures a filter pass.
type Option func(*Parser)

// WithIndent sets the output indentation width (default 4).
func WithIndent(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.indent = n
		}
	}
}

// WithTypes extends the primitive-name to placeholder-type map
// (STRING -> %String and friends) with additional entries.
func WithTypes(m map[string]string) Option {
	return func(p *Parser) {
		for k, v := range m {
			p.typeMap[k] = v
		}
	}
}

// Parser holds the state of one filter pass. A Parser is single-use;
// FilterReader constructs a fresh one per call, so separate runs can
// never contaminate each other.
type Parser struct {
	fileName string
	indent   int
	typeMap  map[string]string

	// Block flags. At most one of classMethod/method/xdata/storage is
	// set at a time; section bodies do not nest across kinds.
	insideClass        bool
	insideClassMethod  bool
	insideMethod       bool
	insideXData        bool
	insideXDataContent bool
	insideXDataCSS     bool
	insideStorage      bool
	insideCommentBlock bool

	fileContent    strings.Builder
	classContent   strings.Builder
	publicContent  strings.Builder
	privateContent strings.Builder
	paramContent   strings.Builder
	propContent    strings.Builder
	indexContent   strings.Builder
	methodContent  strings.Builder
	xdataContent   strings.Builder
	comments       strings.Builder

	xdataSignature string
	xdataMimeType  string
	privateMethod  bool
	abstractMethod bool

	lineNo   int
	warnings []Warning
	done     bool
}

func newParser(fileName string, opts ...Option) *Parser {
	p := &Parser{
		fileName: fileName,
		indent:   defaultIndent,
		typeMap: map[string]string{
			"STRING":  "%String",
			"INTEGER": "%Integer",
			"BOOLEAN": "%Boolean",
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	p.publicContent.WriteString("public:\n\n")
	p.privateContent.WriteString("private:\n\n")
	return p
}

// FilterFile runs the filter over the file at path.
func FilterFile(path string, opts ...Option) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return FilterReader(f, filepath.Base(path), opts...)
}

// FilterReader runs the filter over r. fileName is used for
// diagnostics only.
func FilterReader(r io.Reader, fileName string, opts ...Option) (*Result, error) {
	p := newParser(fileName, opts...)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	for sc.Scan() {
		p.lineNo++
		if p.done {
			// Only one class definition per file; the rest is dropped.
			continue
		}
		if err := p.dispatch(p.normalize(sc.Text())); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return &Result{Output: p.fileContent.String(), Warnings: p.warnings}, nil
}

// normalize expands tabs and rewrites the legacy inline-comment
// markers " ; " and "#; " to the Doxygen marker.
func (p *Parser) normalize(line string) string {
	line = strings.ReplaceAll(line, "\t", strings.Repeat(" ", p.indent))
	line = strings.ReplaceAll(line, " ; ", "/// ")
	line = strings.ReplaceAll(line, "#; ", "/// ")
	return line
}

// dispatch routes one line to the handler owning the current state.
// First match wins; the order mirrors the block-flag priority.
func (p *Parser) dispatch(line string) error {
	switch {
	case strings.HasPrefix(line, "Class "):
		p.insideClass = true
		return p.handleClass(line)
	case strings.HasPrefix(line, "Include "):
		p.fileContent.WriteString("/// " + strings.TrimSpace(line) + "\n")
	case p.insideXData:
		p.handleXData(line)
	case p.insideStorage:
		p.handleStorage(line)
	case p.insideClassMethod || p.insideMethod:
		p.handleMethodBody(line)
	case p.insideClass:
		return p.handleClassBody(line)
	default:
		// Content before the class header passes through untouched.
		p.fileContent.WriteString(line + "\n")
	}
	return nil
}

// handleClassBody classifies a line inside an open class body, outside
// any member block.
func (p *Parser) handleClassBody(line string) error {
	switch {
	case strings.HasPrefix(line, "Property "):
		p.flushCommentsInto(&p.propContent)
		return p.handleMember(line, kindProperty)
	case strings.HasPrefix(line, "Parameter "):
		p.flushCommentsInto(&p.paramContent)
		return p.handleMember(line, kindParameter)
	case strings.HasPrefix(line, "Index "):
		p.flushCommentsInto(&p.indexContent)
		return p.handleIndex(line)
	case strings.HasPrefix(line, "ClassMethod "):
		return p.openMethod(line, kindClassMethod)
	case strings.HasPrefix(line, "Method "):
		return p.openMethod(line, kindMethod)
	case strings.HasPrefix(line, "ClientMethod "):
		return p.openMethod(line, kindClientMethod)
	case strings.HasPrefix(line, "XData "):
		return p.openXData(line)
	case strings.HasPrefix(line, "Storage "):
		p.insideStorage = true
	case strings.HasPrefix(line, "}"):
		p.closeClass(line)
	default:
		p.accumulateComment(line)
	}
	return nil
}

// closeClass flushes the partitions and terminates the pass.
func (p *Parser) closeClass(line string) {
	p.insideClass = false
	if strings.TrimSpace(p.publicContent.String()) != "public:" {
		p.classContent.WriteString(p.publicContent.String() + "\n")
	}
	if strings.TrimSpace(p.privateContent.String()) != "private:" {
		p.classContent.WriteString(p.privateContent.String() + "\n")
	}
	if strings.TrimSpace(p.comments.String()) != "" {
		p.fileContent.WriteString(p.comments.String() + "\n")
		p.comments.Reset()
	}
	p.classContent.WriteString(line + "\n")
	p.fileContent.WriteString(p.classContent.String())
	p.done = true
}

// flushCommentsInto attaches accumulated free-floating comments to the
// buffer of the declaration that follows them.
func (p *Parser) flushCommentsInto(target *strings.Builder) {
	if strings.TrimSpace(p.comments.String()) != "" {
		target.WriteString(p.comments.String())
	}
	p.comments.Reset()
}

// pad returns the uniform indentation prefix.
func (p *Parser) pad() string {
	return strings.Repeat(" ", p.indent)
}

// indentBlock trims the block and indents every line by the configured
// width. Lines already carrying their own indent keep it, so nested
// content ends up one level deeper.
func (p *Parser) indentBlock(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, l := range lines {
		lines[i] = p.pad() + l
	}
	return strings.Join(lines, "\n")
}

func (p *Parser) warnf(format string, args ...any) {
	w := Warning{Line: p.lineNo, Msg: fmt.Sprintf(format, args...)}
	// keyword checks re-scan the same line, drop the duplicate
	if n := len(p.warnings); n > 0 && p.warnings[n-1] == w {
		return
	}
	p.warnings = append(p.warnings, w)
}

func (p *Parser) errorf(format string, args ...any) error {
	return &ParseError{File: p.fileName, Line: p.lineNo, Msg: fmt.Sprintf(format, args...)}
}
