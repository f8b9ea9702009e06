// Package types holds the JSON envelopes shared by every storefront
// endpoint: successful responses wrap their payload in {"data": ...},
// failures in {"error": {...}} with a machine-readable code.
package types

type SuccessEnvelope struct {
	Data any `json:"data"`
}

// APIError is the wire form of a request failure. Code matches the
// pkg/errors code that produced it, e.g. "VALIDATION_ERROR" or "NOT_FOUND".
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
