// This file implements name conversion from OpenAPI identifiers to method
// names and valid Go identifiers, including reserved word escaping.

package generator

import (
	"strings"
	"unicode"

	"github.com/namabar/namabar-go/internal/naming"
)

// maxDescriptionLength is the maximum length for descriptions in Go comments
// before truncation.
const maxDescriptionLength = 200

// goReservedWords contains Go reserved keywords that cannot be used as identifiers.
// Predeclared identifiers such as "error" can be shadowed and are left alone.
var goReservedWords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

// generatedLocals are identifiers the generated method body refers to. A
// parameter with one of these names would shadow them.
var generatedLocals = map[string]bool{
	"ctx": true, "req": true, "c": true, "http": true, "newRequest": true,
}

// escapeReservedWord appends an underscore to Go keywords. The check is
// case-insensitive so PascalCase names like "Type" are escaped too.
func escapeReservedWord(name string) string {
	if goReservedWords[strings.ToLower(name)] {
		return name + "_"
	}
	return name
}

// MethodName derives the method name for an operation: the operationId, or
// method + "_" + path when there is none, with every character outside
// [0-9A-Za-z_] turned into an underscore, runs of underscores collapsed,
// leading and trailing underscores trimmed, and the result lower-cased.
//
// Example: "Send Message!" -> "send_message"
// Example: ("", "get", "/messages/{id}") -> "get_messages_id"
func MethodName(operationID, method, path string) string {
	base := operationID
	if base == "" {
		base = method + "_" + path
	}

	var b strings.Builder
	b.Grow(len(base))
	lastUnderscore := false
	for i := 0; i < len(base); i++ {
		ch := base[i]
		if !isIdentByte(ch) {
			ch = '_'
		}
		if ch == '_' {
			if lastUnderscore {
				continue
			}
			lastUnderscore = true
		} else {
			lastUnderscore = false
		}
		b.WriteByte(ch)
	}

	name := strings.ToLower(strings.Trim(b.String(), "_"))
	if name == "" {
		return "operation"
	}
	return name
}

func isIdentByte(ch byte) bool {
	return ch == '_' ||
		('0' <= ch && ch <= '9') ||
		('a' <= ch && ch <= 'z') ||
		('A' <= ch && ch <= 'Z')
}

// operationBase is the string both method names are derived from.
func operationBase(operationID, method, path string) string {
	if operationID != "" {
		return operationID
	}
	return method + "_" + path
}

// pascalCase upper-cases the first letter of every alphanumeric run and drops
// everything else. It returns "" when s has no letters or digits.
func pascalCase(s string) string {
	var result strings.Builder
	capitalizeNext := true
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if capitalizeNext {
				result.WriteRune(unicode.ToUpper(r))
				capitalizeNext = false
			} else {
				result.WriteRune(r)
			}
		} else {
			capitalizeNext = true
		}
	}
	return result.String()
}

// toTypeName converts an OpenAPI name to a valid exported Go identifier (PascalCase).
// It ensures the name starts with a letter and escapes Go reserved words.
func toTypeName(s string) string {
	name := pascalCase(s)
	if name == "" {
		return "Operation"
	}
	if !unicode.IsLetter([]rune(name)[0]) {
		name = "Op" + name
	}
	return escapeReservedWord(name)
}

// toParamName converts an OpenAPI parameter or property name to a Go
// parameter name (camelCase). Keywords and identifiers used by the generated
// method body get an underscore suffix.
func toParamName(s string) string {
	name := pascalCase(s)
	if name == "" {
		return "param"
	}
	runes := []rune(name)
	if !unicode.IsLetter(runes[0]) {
		return "p" + name
	}
	runes[0] = unicode.ToLower(runes[0])
	name = string(runes)
	if generatedLocals[name] {
		return name + "_"
	}
	return escapeReservedWord(name)
}

// toSnakeName converts a wire name to the underscored form shown in listings.
func toSnakeName(s string) string {
	return naming.ToSnakeCase(s)
}

// cleanDescription prepares an OpenAPI description for use in Go comments.
// It removes newlines, trims whitespace, and truncates long descriptions.
func cleanDescription(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) > maxDescriptionLength {
		s = string(runes[:maxDescriptionLength-3]) + "..."
	}
	return s
}
