// File: internal/dto/http_error.go
package dto

// Status values carried in response bodies.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// HTTPError 全域錯誤響應模型
// swagger:model dto.HTTPError
type HTTPError struct {
	// status 固定為 "error"
	Status string `json:"status" example:"error"`
	// message 錯誤描述
	Message string `json:"message" example:"Something went wrong."`
}

func Error(message string) HTTPError {
	return HTTPError{Status: StatusError, Message: message}
}
