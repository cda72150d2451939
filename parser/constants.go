package parser

// Parameter location constants (used in Parameter.In field)
const (
	// ParamInQuery indicates the parameter is passed in the query string
	ParamInQuery = "query"
	// ParamInHeader indicates the parameter is passed in a request header
	ParamInHeader = "header"
	// ParamInPath indicates the parameter is part of the URL path
	ParamInPath = "path"
	// ParamInCookie indicates the parameter is passed as a cookie
	ParamInCookie = "cookie"
)

// Local component reference prefixes understood by the resolver.
const (
	SchemaRefPrefix      = "#/components/schemas/"
	ParameterRefPrefix   = "#/components/parameters/"
	RequestBodyRefPrefix = "#/components/requestBodies/"
)

// RequiredKeys are the top-level keys every document must carry, in the
// order they are reported when missing.
var RequiredKeys = []string{"openapi", "paths", "components"}
