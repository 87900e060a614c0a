package sync

import "errors"

var (
	// ErrListActive возвращается, когда не удалось прочитать активные
	// бронирования из локальной истории
	ErrListActive = errors.New("sync: failed to list active bookings")
)
