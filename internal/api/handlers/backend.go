package handlers

import (
	"net/http"

	"github.com/m04kA/SMC-ParkingGateway/internal/integrations/parkingcore"
)

// BackendMessage возвращает текст отказа ParkingCore дословно, если ошибка
// его содержит, иначе fallback. Так пользователь видит причину отказа
// ("Parking spot is not available"), а не обобщённую формулировку гейтвея
func BackendMessage(err error, fallback string) string {
	if msg := parkingcore.MessageFromError(err); msg != "" {
		return msg
	}
	return fallback
}

// RespondBackendError отправляет 500 с текстом ParkingCore, если ошибка
// его содержит, иначе стандартное сообщение
func RespondBackendError(w http.ResponseWriter, err error) {
	if msg := parkingcore.MessageFromError(err); msg != "" {
		RespondError(w, http.StatusInternalServerError, msg)
		return
	}
	RespondInternalError(w)
}
