package httpserver

import "github.com/Skotchmaster/jewelry_store/internal/transport"

// Response is the envelope every endpoint answers with. Stack is only filled
// outside production.
type Response struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message,omitempty"`
	Count   *int                   `json:"count,omitempty"`
	Data    any                    `json:"data,omitempty"`
	Errors  []transport.FieldError `json:"errors,omitempty"`
	Stack   string                 `json:"stack,omitempty"`
}

func ok(data any) Response {
	return Response{Success: true, Data: data}
}

func okMsg(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

func fail(message string) Response {
	return Response{Success: false, Message: message}
}
