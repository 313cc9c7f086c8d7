package handler

// successResponse is the standard envelope returned on all 2xx responses.
// Errors use the error handler's {"success": false, "error": ...} envelope.
type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// errorResponse documents the error envelope for swagger; the actual encoding
// happens in the central HTTP error handler.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
