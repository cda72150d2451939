// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

// NamabarSpecJSON is a trimmed copy of the Namabar OpenAPI description with
// the six public endpoints. It exercises path parameters, $ref request body
// schemas, untyped properties and optional object properties.
const NamabarSpecJSON = `{
  "openapi": "3.0.1",
  "info": {"title": "Namabar API", "version": "v1"},
  "servers": [{"url": "https://api.namabar.krd"}],
  "paths": {
    "/verification-codes": {
      "post": {
        "tags": ["VerificationCodes"],
        "summary": "Create Verification Code",
        "description": "Generates and sends a new verification code to the specified recipient using the configured verify service.",
        "operationId": "create_verification_code",
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {"$ref": "#/components/schemas/CreateVerificationCodeRequest"}
            }
          },
          "required": true
        },
        "responses": {"200": {"description": "OK"}}
      }
    },
    "/verification-codes/{id}/verify": {
      "post": {
        "tags": ["VerificationCodes"],
        "summary": "Verify OTP Code",
        "description": "Verifies a previously sent verification code. Returns the verification status and any associated data.",
        "operationId": "verify_verification_code",
        "parameters": [
          {"name": "id", "in": "path", "description": "The id of the verification code to verify.", "required": true, "schema": {"type": "string"}}
        ],
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {"$ref": "#/components/schemas/VerifyVerificationCodeRequest"}
            }
          }
        },
        "responses": {"200": {"description": "OK"}}
      }
    },
    "/verification-codes/{id}": {
      "get": {
        "tags": ["VerificationCodes"],
        "summary": "Get Verification Code",
        "description": "Retrieves details about a specific verification code.",
        "operationId": "get_verification_code_by_id",
        "parameters": [
          {"name": "id", "in": "path", "description": "The ID of the verification code to retrieve", "required": true, "schema": {"type": "string"}}
        ],
        "responses": {"200": {"description": "OK"}}
      }
    },
    "/messages": {
      "post": {
        "tags": ["Messages"],
        "summary": "Send New Message",
        "description": "Creates and sends a new message through the specified messaging service. Requires the CreateMessage permission.",
        "operationId": "send_message",
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {"$ref": "#/components/schemas/SendMessageRequest"}
            }
          },
          "required": true
        },
        "responses": {"200": {"description": "OK"}}
      }
    },
    "/messages/{id}": {
      "get": {
        "tags": ["Messages"],
        "summary": "Get Message Details",
        "description": "Retrieves detailed information about a specific message including its status, cost, and delivery information.",
        "operationId": "get_message",
        "parameters": [
          {"name": "id", "in": "path", "description": "The ID of the message to get.", "required": true, "schema": {"type": "string"}}
        ],
        "responses": {"200": {"description": "OK"}}
      }
    },
    "/messages/{id}/status": {
      "get": {
        "tags": ["Messages"],
        "summary": "Get Message Status",
        "description": "Retrieves the status of a specific message, can be used for polling message delivery status.",
        "operationId": "get_message_status",
        "parameters": [
          {"name": "id", "in": "path", "description": "The ID of the message to get.", "required": true, "schema": {"type": "string"}}
        ],
        "responses": {"200": {"description": "OK"}}
      }
    }
  },
  "components": {
    "schemas": {
      "CreateVerificationCodeRequest": {
        "required": ["serviceId", "to"],
        "type": "object",
        "properties": {
          "to": {"type": "string"},
          "locale": {"$ref": "#/components/schemas/Locale"},
          "externalId": {"type": "string", "nullable": true},
          "code": {"type": "string", "nullable": true},
          "serviceId": {"$ref": "#/components/schemas/ServiceId"},
          "templateData": {"type": "object", "additionalProperties": {"type": "string"}, "nullable": true}
        }
      },
      "VerifyVerificationCodeRequest": {
        "required": ["code"],
        "type": "object",
        "properties": {
          "code": {"type": "string"}
        }
      },
      "SendMessageRequest": {
        "required": ["serviceId", "to", "type"],
        "type": "object",
        "properties": {
          "type": {"$ref": "#/components/schemas/MessageType"},
          "to": {"type": "string"},
          "externalId": {"type": "string", "nullable": true},
          "serviceId": {"$ref": "#/components/schemas/ServiceId"},
          "text": {"type": "string", "nullable": true},
          "template": {"$ref": "#/components/schemas/MessageTemplate"}
        }
      },
      "Locale": {"enum": ["en", "ar", "ckb"], "type": "string"},
      "MessageType": {"enum": ["Text", "Template"], "type": "string"},
      "ServiceId": {"type": "string", "format": "uuid"},
      "MessageTemplate": {
        "type": "object",
        "properties": {
          "name": {"type": "string"},
          "data": {"type": "object", "additionalProperties": {"type": "string"}}
        }
      }
    }
  }
}
`

// WriteTempFile writes content to name inside a fresh temporary directory and
// returns the file path. The directory is removed when the test completes.
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write temporary file: %v", err)
	}
	return path
}

// NewSpecServer starts an HTTP server that answers every request with body
// as JSON and records the last User-Agent it saw in *userAgent when non-nil.
func NewSpecServer(t *testing.T, body string, userAgent *string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userAgent != nil {
			*userAgent = r.UserAgent()
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}
