package generator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/namabar/namabar-go/internal/httputil"
	"github.com/namabar/namabar-go/internal/issues"
	"github.com/namabar/namabar-go/internal/severity"
	"github.com/namabar/namabar-go/parser"
)

// ParamInBody marks parameters taken from request body schema properties.
const ParamInBody = "body"

// OperationInfo is one API operation as it will be generated.
type OperationInfo struct {
	// Name is the lower-cased, underscored method name (e.g., "send_message")
	Name string `json:"name" yaml:"name"`
	// GoName is the exported Go method name (e.g., "SendMessage")
	GoName string `json:"go_name" yaml:"go_name"`
	// Method is the upper-case HTTP method
	Method string `json:"method" yaml:"method"`
	// Path is the URL template
	Path        string      `json:"path" yaml:"path"`
	OperationID string      `json:"operation_id,omitempty" yaml:"operation_id,omitempty"`
	Summary     string      `json:"summary,omitempty" yaml:"summary,omitempty"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Deprecated  bool        `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	Params      []ParamInfo `json:"params" yaml:"params"`
}

// ParamInfo is one parameter of a generated method.
type ParamInfo struct {
	// Name is the wire name: the query key, header name or JSON property
	Name string `json:"name" yaml:"name"`
	// SnakeName is the underscored form of Name (e.g., "external_id")
	SnakeName string `json:"snake_name" yaml:"snake_name"`
	// GoName is the Go parameter identifier (e.g., "externalId")
	GoName string `json:"go_name" yaml:"go_name"`
	// In is the parameter location: path, query, header, cookie or body
	In       string `json:"in" yaml:"in"`
	Required bool   `json:"required" yaml:"required"`
	// SchemaType is the OpenAPI type the Go type was derived from
	SchemaType  string  `json:"schema_type,omitempty" yaml:"schema_type,omitempty"`
	Type        TypeRef `json:"type" yaml:"type"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
}

// SignatureParams returns the parameters in signature order: required ones in
// document order, then optional ones in document order.
func (op *OperationInfo) SignatureParams() []ParamInfo {
	out := make([]ParamInfo, 0, len(op.Params))
	for _, p := range op.Params {
		if p.Required {
			out = append(out, p)
		}
	}
	for _, p := range op.Params {
		if !p.Required {
			out = append(out, p)
		}
	}
	return out
}

// collector walks a document and accumulates operations and issues.
type collector struct {
	doc    *parser.Document
	issues []issues.Issue
	// goNames tracks method names already taken
	goNames map[string]bool
}

// runtimeMethods are the exported methods the SDK client declares by hand.
var runtimeMethods = []string{"Do", "BaseURL", "ServiceID", "DefaultHeaders"}

func newCollector(doc *parser.Document) *collector {
	goNames := make(map[string]bool, len(runtimeMethods))
	for _, name := range runtimeMethods {
		goNames[name] = true
	}
	return &collector{doc: doc, goNames: goNames}
}

func (c *collector) addIssue(sev severity.Severity, path, operation, format string, args ...any) {
	c.issues = append(c.issues, issues.Issue{
		Path:      path,
		Operation: operation,
		Severity:  sev,
		Message:   fmt.Sprintf(format, args...),
	})
}

// collectOperations returns every operation in document order.
func (c *collector) collectOperations() ([]*OperationInfo, error) {
	var ops []*OperationInfo
	for _, path := range c.doc.Paths.Keys() {
		item, _ := c.doc.Paths.Get(path)
		if item == nil {
			continue
		}
		if item.Ref != "" {
			c.addIssue(severity.SeverityWarning, path, "", "path item reference %s is not expanded; its operations are skipped", item.Ref)
			continue
		}

		pathParams, err := c.resolveParameters(item.Parameters)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		for _, po := range item.Operations {
			op, err := c.buildOperation(path, po.Method, po.Operation, pathParams)
			if err != nil {
				return nil, err
			}
			ops = append(ops, op)
		}
	}
	return ops, nil
}

func (c *collector) buildOperation(path, method string, op *parser.Operation, pathParams []*parser.Parameter) (*OperationInfo, error) {
	if op == nil {
		op = &parser.Operation{}
	}
	info := &OperationInfo{
		Name:        MethodName(op.OperationID, method, path),
		Method:      strings.ToUpper(method),
		Path:        path,
		OperationID: op.OperationID,
		Summary:     op.Summary,
		Description: op.Description,
		Deprecated:  op.Deprecated,
	}
	label := info.Method + " " + path
	if op.OperationID == "" {
		c.addIssue(severity.SeverityInfo, path, info.Method, "no operationId; method named %q from method and path", info.Name)
	}
	info.GoName = c.uniqueGoName(toTypeName(operationBase(op.OperationID, method, path)), path, info.Method)

	opParams, err := c.resolveParameters(op.Parameters)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", label, err)
	}
	bodyParams, err := c.bodyParameters(op.RequestBody, path, info.Method)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", label, err)
	}

	seen := make(map[string]bool)
	for _, p := range mergeParameters(pathParams, opParams) {
		if p.Name == "" {
			c.addIssue(severity.SeverityWarning, path, info.Method, "parameter without a name in %q is skipped", p.In)
			continue
		}
		c.appendParam(info, seen, ParamInfo{
			Name:        p.Name,
			In:          p.In,
			Required:    p.Required || p.In == parser.ParamInPath,
			SchemaType:  p.Schema.PrimaryType(),
			Description: p.Description,
		})
	}
	for _, p := range bodyParams {
		c.appendParam(info, seen, p)
	}
	return info, nil
}

// appendParam fills the derived fields of p and adds it unless its Go name is taken.
func (c *collector) appendParam(info *OperationInfo, seen map[string]bool, p ParamInfo) {
	p.SnakeName = toSnakeName(p.Name)
	p.GoName = toParamName(p.Name)
	p.Type = newTypeRef(p.SchemaType, p.Required)
	if seen[p.GoName] {
		c.addIssue(severity.SeverityWarning, info.Path, info.Method,
			"%s parameter %q maps to Go name %s, which is already used; keeping the first", p.In, p.Name, p.GoName)
		return
	}
	seen[p.GoName] = true
	info.Params = append(info.Params, p)
}

// uniqueGoName appends a numeric suffix when name is already taken.
func (c *collector) uniqueGoName(name, path, method string) string {
	if !c.goNames[name] {
		c.goNames[name] = true
		return name
	}
	for i := 2; ; i++ {
		candidate := name + strconv.Itoa(i)
		if !c.goNames[candidate] {
			c.goNames[candidate] = true
			c.addIssue(severity.SeverityWarning, path, method, "method name %s is already used; renamed to %s", name, candidate)
			return candidate
		}
	}
}

// resolveParameters follows $ref entries to components.parameters.
func (c *collector) resolveParameters(params []*parser.Parameter) ([]*parser.Parameter, error) {
	out := make([]*parser.Parameter, 0, len(params))
	for _, p := range params {
		if p == nil {
			continue
		}
		if p.Ref != "" {
			resolved, err := c.doc.ResolveParameterRef(p.Ref)
			if err != nil {
				return nil, fmt.Errorf("resolving parameter: %w", err)
			}
			p = resolved
		}
		out = append(out, p)
	}
	return out, nil
}

// mergeParameters applies operation parameters over path-level ones. An
// operation parameter with the same name and location replaces the path-level
// one in place; the rest are appended.
func mergeParameters(pathParams, opParams []*parser.Parameter) []*parser.Parameter {
	merged := make([]*parser.Parameter, len(pathParams), len(pathParams)+len(opParams))
	copy(merged, pathParams)
	index := make(map[string]int, len(merged))
	for i, p := range merged {
		index[p.In+"\x00"+p.Name] = i
	}
	for _, p := range opParams {
		if i, ok := index[p.In+"\x00"+p.Name]; ok {
			merged[i] = p
			continue
		}
		index[p.In+"\x00"+p.Name] = len(merged)
		merged = append(merged, p)
	}
	return merged
}

// bodyParameters turns the properties of the JSON request body schema into
// parameters. The body and its schema may each be a single-level $ref.
func (c *collector) bodyParameters(body *parser.RequestBody, path, method string) ([]ParamInfo, error) {
	if body == nil {
		return nil, nil
	}
	if body.Ref != "" {
		resolved, err := c.doc.ResolveRequestBodyRef(body.Ref)
		if err != nil {
			return nil, fmt.Errorf("resolving request body: %w", err)
		}
		body = resolved
	}

	media, ok := body.Content.Get(httputil.JSONMediaType)
	if !ok {
		for _, mediaType := range body.Content.Keys() {
			if httputil.IsJSONMediaType(mediaType) {
				media, ok = body.Content.Get(mediaType)
				break
			}
		}
	}
	if !ok || media == nil || media.Schema == nil {
		if body.Content.Len() > 0 {
			c.addIssue(severity.SeverityWarning, path, method, "request body has no JSON schema; body parameters are skipped")
		}
		return nil, nil
	}

	schema, err := c.doc.ResolveSchema(media.Schema)
	if err != nil {
		return nil, fmt.Errorf("resolving request body schema: %w", err)
	}
	if schema.Properties.Len() == 0 {
		c.addIssue(severity.SeverityWarning, path, method, "request body schema has no properties; body parameters are skipped")
		return nil, nil
	}

	params := make([]ParamInfo, 0, schema.Properties.Len())
	for _, name := range schema.Properties.Keys() {
		prop, _ := schema.Properties.Get(name)
		param := ParamInfo{
			Name:     name,
			In:       ParamInBody,
			Required: schema.IsRequired(name),
		}
		if prop != nil {
			param.SchemaType = prop.PrimaryType()
			param.Description = prop.Description
		}
		params = append(params, param)
	}
	return params, nil
}
