package bookingcache

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено в зеркале
	ErrBookingNotFound = errors.New("bookingcache.repository: booking not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("bookingcache.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("bookingcache.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("bookingcache.repository: failed to scan row")
)
