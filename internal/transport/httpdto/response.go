package httpdto

// ErrorResponse is the body of every failure response.
type ErrorResponse struct {
	Error string `json:"error"`
}

func NewErrorResponse(err string) ErrorResponse {
	return ErrorResponse{Error: err}
}

// MessageResponse is the body of plain acknowledgement responses.
type MessageResponse struct {
	Message string `json:"message"`
}
