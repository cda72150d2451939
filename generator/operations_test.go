package generator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/namabar/namabar-go/internal/testutil"
	"github.com/namabar/namabar-go/oaserrors"
	"github.com/namabar/namabar-go/parser"
)

func collect(t *testing.T, spec string) ([]*OperationInfo, *collector) {
	t.Helper()
	result, err := parser.ParseBytes([]byte(spec))
	require.NoError(t, err)
	c := newCollector(result.Document)
	ops, err := c.collectOperations()
	require.NoError(t, err)
	return ops, c
}

func paramNames(params []ParamInfo) []string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.GoName
	}
	return names
}

func TestCollectNamabarOperations(t *testing.T) {
	ops, c := collect(t, testutil.NamabarSpecJSON)
	assert.Empty(t, c.issues)

	require.Len(t, ops, 6)
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.GoName
	}
	assert.Equal(t, []string{
		"CreateVerificationCode",
		"VerifyVerificationCode",
		"GetVerificationCodeById",
		"SendMessage",
		"GetMessage",
		"GetMessageStatus",
	}, names)

	create := ops[0]
	assert.Equal(t, "create_verification_code", create.Name)
	assert.Equal(t, "POST", create.Method)
	assert.Equal(t, []string{"to", "locale", "externalId", "code", "serviceId", "templateData"}, paramNames(create.Params))
	assert.Equal(t, []string{"to", "serviceId", "locale", "externalId", "code", "templateData"}, paramNames(create.SignatureParams()))

	byName := map[string]ParamInfo{}
	for _, p := range create.Params {
		byName[p.Name] = p
	}
	assert.Equal(t, TypeRef{Base: "string"}, byName["to"].Type)
	assert.Equal(t, TypeRef{Base: "string", Optional: true}, byName["locale"].Type, "untyped $ref property maps to string")
	assert.Equal(t, TypeRef{Base: "map[string]any", Optional: true}, byName["templateData"].Type)
	assert.Equal(t, "external_id", byName["externalId"].SnakeName)
	assert.Equal(t, ParamInBody, byName["to"].In)

	verify := ops[1]
	require.Len(t, verify.Params, 2)
	assert.Equal(t, parser.ParamInPath, verify.Params[0].In)
	assert.Equal(t, "The id of the verification code to verify.", verify.Params[0].Description)
	assert.True(t, verify.Params[1].Required)

	send := ops[3]
	assert.Equal(t, []string{"type_", "to", "serviceId", "externalId", "text", "template"}, paramNames(send.SignatureParams()))
}

func TestOptionalParametersGetOptionalMarker(t *testing.T) {
	ops, _ := collect(t, testutil.NamabarSpecJSON)
	for _, op := range ops {
		for _, p := range op.Params {
			assert.Equal(t, !p.Required, p.Type.Optional, "%s %s", op.GoName, p.Name)
			if p.Required {
				assert.NotContains(t, p.Type.String(), "*", "%s %s", op.GoName, p.Name)
			}
		}
	}
}

const mergeSpec = `
openapi: 3.0.3
paths:
  /items/{id}:
    parameters:
      - name: id
        in: path
        required: true
        schema: {type: integer}
      - name: verbose
        in: query
        schema: {type: boolean}
    get:
      operationId: getItem
      parameters:
        - name: verbose
          in: query
          required: true
          schema: {type: string}
        - $ref: '#/components/parameters/Limit'
        - name: X-Trace
          in: header
          schema: {type: string}
    put:
      parameters:
        - name: tags
          in: query
          schema: {type: array, items: {type: string}}
      requestBody:
        $ref: '#/components/requestBodies/ItemBody'
components:
  parameters:
    Limit:
      name: limit
      in: query
      schema: {type: integer}
  requestBodies:
    ItemBody:
      content:
        application/vnd.api+json:
          schema:
            type: object
            required: [price]
            properties:
              price: {type: number}
              id: {type: string}
`

func TestCollectMergesAndResolves(t *testing.T) {
	ops, c := collect(t, mergeSpec)
	require.Len(t, ops, 2)

	get := ops[0]
	assert.Equal(t, []string{"id", "verbose", "limit", "xTrace"}, paramNames(get.Params))
	assert.Equal(t, TypeRef{Base: "int64"}, get.Params[0].Type)
	assert.Equal(t, TypeRef{Base: "string"}, get.Params[1].Type, "operation parameter overrides path-level one")
	assert.Equal(t, TypeRef{Base: "int64", Optional: true}, get.Params[2].Type)
	assert.Equal(t, parser.ParamInHeader, get.Params[3].In)

	put := ops[1]
	assert.Equal(t, "put_items_id", put.Name)
	assert.Equal(t, "PutItemsId", put.GoName)
	assert.Equal(t, []string{"id", "verbose", "tags", "price"}, paramNames(put.Params))
	assert.Equal(t, TypeRef{Base: "[]any", Optional: true}, put.Params[2].Type)
	assert.Equal(t, TypeRef{Base: "float64"}, put.Params[3].Type)

	// body property "id" collides with the path parameter
	require.Len(t, c.issues, 2)
	assert.Equal(t, SeverityInfo, c.issues[0].Severity)
	assert.Contains(t, c.issues[0].Message, "no operationId")
	assert.Equal(t, SeverityWarning, c.issues[1].Severity)
	assert.Contains(t, c.issues[1].Message, `"id"`)
}

func TestCollectDuplicateMethodNames(t *testing.T) {
	spec := `
openapi: 3.0.0
paths:
  /a:
    get: {operationId: list-items}
  /b:
    get: {operationId: list_items}
components: {}
`
	ops, c := collect(t, spec)
	require.Len(t, ops, 2)
	assert.Equal(t, "ListItems", ops[0].GoName)
	assert.Equal(t, "ListItems2", ops[1].GoName)
	require.Len(t, c.issues, 1)
	assert.Equal(t, SeverityWarning, c.issues[0].Severity)
}

func TestCollectRuntimeMethodNames(t *testing.T) {
	spec := `
openapi: 3.0.0
paths:
  /x:
    get: {operationId: do}
  /y:
    get: {operationId: default_headers}
  /z:
    get: {operationId: ping}
components: {}
`
	ops, c := collect(t, spec)
	require.Len(t, ops, 3)
	assert.Equal(t, "Do2", ops[0].GoName)
	assert.Equal(t, "DefaultHeaders2", ops[1].GoName)
	assert.Equal(t, "Ping", ops[2].GoName)
	require.Len(t, c.issues, 2)
	for _, iss := range c.issues {
		assert.Equal(t, SeverityWarning, iss.Severity)
		assert.Contains(t, iss.Message, "already used")
	}
}

func TestCollectWarnings(t *testing.T) {
	spec := `
openapi: 3.0.0
paths:
  /upload:
    post:
      operationId: upload
      parameters:
        - in: query
      requestBody:
        content:
          multipart/form-data:
            schema: {type: object}
  /list:
    post:
      operationId: replaceList
      requestBody:
        content:
          application/json:
            schema: {type: array, items: {type: string}}
  /shared:
    $ref: '#/components/pathItems/Shared'
components: {}
`
	ops, c := collect(t, spec)
	require.Len(t, ops, 2)
	assert.Empty(t, ops[0].Params)
	assert.Empty(t, ops[1].Params)

	require.Len(t, c.issues, 4)
	for _, issue := range c.issues {
		assert.Equal(t, SeverityWarning, issue.Severity, issue.Message)
	}
	assert.Contains(t, c.issues[0].Message, "without a name")
	assert.Contains(t, c.issues[1].Message, "no JSON schema")
	assert.Contains(t, c.issues[2].Message, "no properties")
	assert.Contains(t, c.issues[3].Message, "not expanded")
}

func TestCollectBrokenReferences(t *testing.T) {
	tests := []struct {
		name string
		spec string
	}{
		{
			name: "schema",
			spec: `{"openapi":"3.0.0","components":{},"paths":{"/m":{"post":{"requestBody":{"content":{"application/json":{"schema":{"$ref":"#/components/schemas/Missing"}}}}}}}}`,
		},
		{
			name: "parameter",
			spec: `{"openapi":"3.0.0","components":{},"paths":{"/m":{"get":{"parameters":[{"$ref":"#/components/parameters/Missing"}]}}}}`,
		},
		{
			name: "request body",
			spec: `{"openapi":"3.0.0","components":{},"paths":{"/m":{"post":{"requestBody":{"$ref":"#/components/requestBodies/Missing"}}}}}`,
		},
		{
			name: "path-level parameter",
			spec: `{"openapi":"3.0.0","components":{},"paths":{"/m":{"parameters":[{"$ref":"#/components/parameters/Missing"}],"get":{}}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parser.ParseBytes([]byte(tt.spec))
			require.NoError(t, err)
			_, err = newCollector(result.Document).collectOperations()
			require.Error(t, err)
			assert.True(t, errors.Is(err, oaserrors.ErrReference))
			assert.Contains(t, err.Error(), "/m")
		})
	}
}
