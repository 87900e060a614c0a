package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrCannotCancel возвращается, когда бронирование не может быть отменено
	// из его текущего статуса
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrTransitionRejected возвращается, когда ParkingCore отклонил
	// переход статуса. Локальная копия при этом не меняется
	ErrTransitionRejected = errors.New("status transition rejected")

	// ErrUnauthenticated возвращается, когда токен отсутствует или отклонён
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrAccessDenied возвращается, когда бронирование принадлежит
	// другому пользователю
	ErrAccessDenied = errors.New("access to booking denied")

	// ErrInvalidStatus возвращается при некорректном фильтре статуса
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
