package generator

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"

	"github.com/namabar/namabar-go/parser"
)

// formatAndFixImports formats Go source code and fixes imports.
// It adds missing imports and removes unused ones using goimports-equivalent processing.
func formatAndFixImports(filename string, src []byte) ([]byte, error) {
	return imports.Process(filename, src, nil)
}

// titleCase upper-cases the first letter of each word ("post" -> "Post").
// A new Caser is created per call because Casers are not safe for concurrent use.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// httpMethodConst returns the net/http constant for an upper-case method.
func httpMethodConst(method string) string {
	return "http.Method" + titleCase(strings.ToLower(method))
}

// commentBlock renders lines as // comments with the given indent. Empty lines
// become bare // separators.
func commentBlock(indent string, lines []string) string {
	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(indent)
		if line == "" {
			b.WriteString("//")
			continue
		}
		b.WriteString("// ")
		b.WriteString(line)
	}
	return b.String()
}

// methodDoc returns the doc comment lines for a generated method.
func methodDoc(op *OperationInfo) []string {
	lines := []string{fmt.Sprintf("%s calls %s %s.", op.GoName, op.Method, op.Path)}
	if s := sentence(cleanDescription(op.Summary)); s != "" {
		lines = append(lines, "", s)
	}
	if s := sentence(cleanDescription(op.Description)); s != "" {
		lines = append(lines, "", s)
	}
	if op.Deprecated {
		lines = append(lines, "", "Deprecated: the API marks this operation as deprecated.")
	}
	return lines
}

// sentence ends s with a period when it ends in a letter or digit. A bare
// title-like line would otherwise be reformatted into a doc heading by gofmt.
func sentence(s string) string {
	r, _ := utf8.DecodeLastRuneInString(s)
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return s + "."
	}
	return s
}

// interfaceDoc extends methodDoc with one line per parameter in signature order.
func interfaceDoc(op *OperationInfo) []string {
	lines := methodDoc(op)
	params := op.SignatureParams()
	if len(params) == 0 {
		return lines
	}
	lines = append(lines, "", "Parameters:", "")
	for _, p := range params {
		lines = append(lines, "  - "+paramDocLine(p))
	}
	return lines
}

// paramDocLine renders "name type (required|optional)" plus the description.
func paramDocLine(p ParamInfo) string {
	state := "optional"
	if p.Required {
		state = "required"
	}
	line := fmt.Sprintf("%s %s (%s)", p.GoName, p.Type, state)
	if desc := cleanDescription(p.Description); desc != "" {
		line += ": " + desc
	}
	return line
}

// signature renders the parameter list of a generated method.
func signature(op *OperationInfo) string {
	parts := []string{"ctx context.Context"}
	for _, p := range op.SignatureParams() {
		parts = append(parts, p.GoName+" "+p.Type.String())
	}
	return strings.Join(parts, ", ")
}

// requestSetter names the runtime request method that places a parameter.
func requestSetter(in string) string {
	switch in {
	case parser.ParamInPath:
		return "setPath"
	case parser.ParamInQuery:
		return "addQuery"
	case parser.ParamInHeader:
		return "setHeader"
	case parser.ParamInCookie:
		return "addCookie"
	default:
		return "setBody"
	}
}

// valueExpr is the expression passed to the request setter. Pointers are
// dereferenced after the nil check in the template.
func valueExpr(p ParamInfo) string {
	if p.Type.IsPointer() {
		return "*" + p.GoName
	}
	return p.GoName
}
