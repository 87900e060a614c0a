package calculate_price

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("calculate_price: invalid input data")

	// ErrInvalidWindow возвращается, когда конец окна не позже начала.
	// Это состояние "нет котировки", а не фатальная ошибка.
	ErrInvalidWindow = errors.New("calculate_price: window end must be after start")

	// ErrSpotNotFound возвращается, когда площадка не найдена
	ErrSpotNotFound = errors.New("calculate_price: parking spot not found")

	// ErrQuoteUnavailable возвращается, когда ParkingCore недоступен
	// и локальная оценка невозможна (не передана ставка площадки)
	ErrQuoteUnavailable = errors.New("calculate_price: quote unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("calculate_price: internal error")
)
