package parkingcore

import "errors"

var (
	// ErrConflict возвращается, когда окно пересекается с существующим
	// бронированием на той же площадке (HTTP 409)
	ErrConflict = errors.New("parkingcore client: time slot is already booked")

	// ErrNotFound возвращается, когда площадка или бронирование не найдены
	ErrNotFound = errors.New("parkingcore client: not found")

	// ErrUnauthorized возвращается при отсутствующем или истёкшем токене
	ErrUnauthorized = errors.New("parkingcore client: unauthorized")

	// ErrForbidden возвращается, когда токен валиден, но доступа
	// к ресурсу нет (чужое бронирование)
	ErrForbidden = errors.New("parkingcore client: forbidden")

	// ErrBadRequest возвращается, когда бэкенд отклонил запрос как некорректный
	ErrBadRequest = errors.New("parkingcore client: bad request")

	// ErrInternal возвращается при внутренних ошибках клиента или бэкенда
	ErrInternal = errors.New("parkingcore client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе бэкенда
	ErrInvalidResponse = errors.New("parkingcore client: invalid response")
)

// APIError ошибка, возвращённая ParkingCore. Message содержит текст detail
// из тела ответа как есть; Unwrap отдаёт сентинел по классу статуса,
// поэтому errors.Is продолжает работать.
type APIError struct {
	StatusCode int
	Message    string
	kind       error
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return e.kind.Error()
	}
	return e.kind.Error() + ": " + e.Message
}

func (e *APIError) Unwrap() error {
	return e.kind
}

func newAPIError(statusCode int, message string) *APIError {
	var kind error
	switch {
	case statusCode == 409:
		kind = ErrConflict
	case statusCode == 404:
		kind = ErrNotFound
	case statusCode == 401:
		kind = ErrUnauthorized
	case statusCode == 403:
		kind = ErrForbidden
	case statusCode >= 400 && statusCode < 500:
		kind = ErrBadRequest
	default:
		kind = ErrInternal
	}
	return &APIError{StatusCode: statusCode, Message: message, kind: kind}
}

// MessageFromError извлекает текст ошибки бэкенда дословно.
// Возвращает пустую строку, если err не содержит ответа ParkingCore.
func MessageFromError(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}
