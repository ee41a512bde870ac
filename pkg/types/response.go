package types

// APIError is the wire shape of a failed request.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorEnvelope wraps APIError. Successful responses are written bare (the
// dashboard frontend consumes plain arrays and objects), so there is no
// success envelope.
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
