// Package namabar is a Go client for the Namabar messaging and verification API.
//
// The endpoint methods on [Client] (see endpoints.go) are generated from the
// API's OpenAPI description by cmd/namabar-gen. The rest of the package is the
// small runtime they call into: configuration, default headers, request
// building and the [Response] wrapper.
//
// # Quick Start
//
//	client, err := namabar.NewClient(namabar.Config{APIKey: os.Getenv("NAMABAR_API_KEY")})
//	if err != nil {
//		log.Fatal(err)
//	}
//	resp, err := client.SendMessage(ctx, "Text", "+9647501234567", serviceID, nil, &text, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if !resp.IsSuccess() {
//		log.Printf("send failed: HTTP %d: %s", resp.StatusCode, resp.Body)
//	}
//
// # Errors
//
// Methods return an error only when the request could not be sent or its
// response could not be read. Any HTTP status, including 4xx and 5xx, comes
// back as a [Response] for the caller to inspect.
//
// # Regenerating
//
// To regenerate the endpoint methods from the live description:
//
//	go run ./cmd/namabar-gen generate -o .
package namabar
