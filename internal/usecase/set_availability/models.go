package set_availability

// Request модель запроса на установку вероятности участия
type Request struct {
	BookingID   string  // ID бронирования
	Probability float64 // Вероятность участия в процентах, округляется до целого
}

// Response сохранённый ответ пользователя
type Response struct {
	BookingID   string
	UserID      string
	Probability int
}
