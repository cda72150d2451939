package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "already snake", input: "service_id", want: "service_id"},
		{name: "camelCase", input: "externalId", want: "external_id"},
		{name: "camelCase two humps", input: "templateDataValue", want: "template_data_value"},
		{name: "PascalCase", input: "ServiceId", want: "service_id"},
		{name: "leading acronym", input: "APIKey", want: "api_key"},
		{name: "trailing acronym", input: "requestID", want: "request_id"},
		{name: "header style", input: "X-Request-ID", want: "x_request_id"},
		{name: "digits", input: "line2Address", want: "line2_address"},
		{name: "dots and spaces", input: "page.size value", want: "page_size_value"},
		{name: "single word", input: "to", want: "to"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToSnakeCase(tt.input))
		})
	}
}
