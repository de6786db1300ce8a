package build_booking

import (
	"github.com/m04kA/SMC-DentalScheduling/internal/domain"
)

// Request модель запроса на бронирование визита
type Request struct {
	Draft domain.AppointmentDraft // Выбор пользователя: услуги, врач, дата, блок
	Guest *domain.GuestContact    // Контакты гостя; nil для авторизованного пациента
}

// IsGuest возвращает true, если бронирование выполняется без учетной записи
func (r *Request) IsGuest() bool {
	return r.Guest != nil
}

// Response модель ответа с созданным визитом
type Response struct {
	AppointmentGUID string                // GUID визита на бэкенде
	Payload         domain.BookingPayload // Отправленный запрос (длительность в единицах)
}
