package appErrors

import "fmt"

type ErrorCode string

const (
	ValidationFailed ErrorCode = "VALIDATION_FAILED"
	LoginRequired    ErrorCode = "LOGIN_REQUIRED"
	NotFound         ErrorCode = "NOT_FOUND"
	InternalError    ErrorCode = "INTERNAL_ERROR"
)

type AppError struct {
	Code    ErrorCode
	Message string
}

func (e AppError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}
