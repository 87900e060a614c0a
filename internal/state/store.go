package state

import (
	"sync"

	"github.com/m04kA/SMC-ParkingGateway/internal/domain"
)

// Store централизованное состояние клиента: закэшированные бронирования
// и слот последней котировки. Мутации только через методы-действия;
// читатели всегда получают копии, поэтому снимок нельзя испортить извне.
type Store struct {
	mu sync.RWMutex

	myBookings    []domain.Booking
	ownerBookings []domain.Booking

	// Слот котировки. Номер запроса монотонно растёт при выдаче;
	// применяется только ответ с наибольшим выданным номером
	// (last-writer-wins по порядку выдачи, не по порядку прибытия).
	quote     *domain.PriceQuote
	quoteSeq  uint64 // номер последнего применённого ответа
	issuedSeq uint64 // номер последнего выданного запроса
}

// NewStore создает пустой контейнер состояния
func NewStore() *Store {
	return &Store{}
}

// BeginQuote выдает номер очередного запроса котировки
func (s *Store) BeginQuote() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issuedSeq++
	return s.issuedSeq
}

// ApplyQuote применяет ответ котировки с номером seq.
// Возвращает false, если ответ устарел (уже применён более поздний) -
// такой ответ отбрасывается, состояние не меняется.
func (s *Store) ApplyQuote(seq uint64, quote *domain.PriceQuote) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq <= s.quoteSeq {
		return false
	}
	s.quoteSeq = seq

	if quote == nil {
		s.quote = nil
		return true
	}
	q := *quote
	s.quote = &q
	return true
}

// Quote возвращает копию текущей котировки (nil, если её нет)
func (s *Store) Quote() *domain.PriceQuote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.quote == nil {
		return nil
	}
	q := *s.quote
	return &q
}

// SetMyBookings замещает список бронирований пользователя
func (s *Store) SetMyBookings(bookings []domain.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.myBookings = copyBookings(bookings)
}

// SetOwnerBookings замещает список бронирований на площадках владельца
func (s *Store) SetOwnerBookings(bookings []domain.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ownerBookings = copyBookings(bookings)
}

// PrependMyBooking добавляет свежесозданное бронирование в начало списка
func (s *Store) PrependMyBooking(b domain.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.myBookings = append([]domain.Booking{b}, s.myBookings...)
}

// ReplaceBooking замещает закэшированное бронирование с тем же ID целиком
// серверным представлением. Остальные бронирования не меняются.
// Возвращает true, если хотя бы одна копия была замещена.
func (s *Store) ReplaceBooking(b domain.Booking) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	replaced := false
	for i := range s.myBookings {
		if s.myBookings[i].ID == b.ID {
			s.myBookings[i] = b
			replaced = true
		}
	}
	for i := range s.ownerBookings {
		if s.ownerBookings[i].ID == b.ID {
			s.ownerBookings[i] = b
			replaced = true
		}
	}
	return replaced
}

// BookingByID возвращает копию закэшированного бронирования по ID
func (s *Store) BookingByID(id string) (domain.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.myBookings {
		if s.myBookings[i].ID == id {
			return s.myBookings[i], true
		}
	}
	for i := range s.ownerBookings {
		if s.ownerBookings[i].ID == id {
			return s.ownerBookings[i], true
		}
	}
	return domain.Booking{}, false
}

// MyBookings возвращает снимок списка бронирований пользователя
func (s *Store) MyBookings() []domain.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyBookings(s.myBookings)
}

// OwnerBookings возвращает снимок списка бронирований владельца
func (s *Store) OwnerBookings() []domain.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyBookings(s.ownerBookings)
}

func copyBookings(src []domain.Booking) []domain.Booking {
	dst := make([]domain.Booking, len(src))
	copy(dst, src)
	return dst
}
