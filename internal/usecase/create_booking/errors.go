package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrEmptyPlate возвращается, когда номер автомобиля пуст после trim
	ErrEmptyPlate = errors.New("create_booking: vehicle plate is required")

	// ErrInvalidWindow возвращается, когда конец окна не позже начала
	ErrInvalidWindow = errors.New("create_booking: window end must be after start")

	// ErrStartInPast возвращается, когда начало окна уже прошло
	ErrStartInPast = errors.New("create_booking: start time is in the past")

	// ErrSpotNotFound возвращается, когда площадка не найдена
	ErrSpotNotFound = errors.New("create_booking: parking spot not found")

	// ErrSpotUnavailable возвращается, когда площадка занята на это окно.
	// Отличается от ошибок валидации: окно корректно, но конфликтует
	// с существующим бронированием на стороне ParkingCore
	ErrSpotUnavailable = errors.New("create_booking: spot is not available for this window")

	// ErrUnauthenticated возвращается, когда токен отсутствует или отклонён
	ErrUnauthenticated = errors.New("create_booking: unauthenticated")

	// ErrAccessDenied возвращается, когда ParkingCore запретил операцию
	// для этого пользователя
	ErrAccessDenied = errors.New("create_booking: access denied")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
