// internal/api/types/response.go
package types

// MessageResponse is the acknowledgement body returned by endpoints
// that have nothing else to report.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries a client-facing error description.
type ErrorResponse struct {
	Error string `json:"error"`
}

// FlowerCreatedResponse carries the store-generated flower identifier.
type FlowerCreatedResponse struct {
	FlowerID string `json:"flower_id"`
}
