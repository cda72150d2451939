package generator

import (
	"bytes"
	"embed"
	"strconv"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates *template.Template

func init() {
	var err error
	templates, err = template.New("").
		Funcs(templateFuncs).
		ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		panic(err)
	}
}

// templateFuncs provides custom functions for templates
var templateFuncs = template.FuncMap{
	"quote":      strconv.Quote,
	"title":      titleCase,
	"cleanDesc":  cleanDescription,
	"comment":    commentBlock,
	"methodDoc":  methodDoc,
	"ifaceDoc":   interfaceDoc,
	"signature":  signature,
	"httpMethod": httpMethodConst,
	"setter":     requestSetter,
	"value":      valueExpr,
}

// executeTemplate executes a template by name and returns the formatted bytes.
// Unlike a best-effort formatter, a formatting failure is returned: it means
// the template produced invalid Go.
func executeTemplate(name, filename string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, err
	}
	formatted, err := formatAndFixImports(filename, buf.Bytes())
	if err != nil {
		return nil, err
	}
	return formatted, nil
}
