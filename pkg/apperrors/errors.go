package apperrors

import "net/http"

// AppError es el error tipado que cruza las capas del servicio. El handler
// responde siempre {"error": Message} con el status que corresponde al Code.
type AppError struct {
	Code    string
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

// HTTPStatus mapea el código de error al status HTTP de la API. Los
// conflictos (email duplicado) responden 400 para mantener compatibilidad
// con el contrato original.
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case "ValidationError", "Conflict", "InsufficientStock":
		return http.StatusBadRequest
	case "NotFound":
		return http.StatusNotFound
	case "Unauthorized":
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func New(code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func NewValidation(message string) *AppError {
	return New("ValidationError", message)
}

func NewNotFound(message string) *AppError {
	return New("NotFound", message)
}

func NewUnauthorized(message string) *AppError {
	return New("Unauthorized", message)
}

func NewConflict(message string) *AppError {
	return New("Conflict", message)
}

func NewInsufficientStock(message string) *AppError {
	return New("InsufficientStock", message)
}

func NewInternal(message string) *AppError {
	return New("InternalError", message)
}
