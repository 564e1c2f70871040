package create_event

import "time"

// Request модель запроса на создание встречи
type Request struct {
	Name   string
	Email  string
	Mobile string
	Notes  *string // опционально
	Date   string  // DD/MM/YYYY
	Time   string  // HH:mm
}

// Response созданное событие календаря
type Response struct {
	EventID string
	Link    string
	Start   time.Time
	End     time.Time
}
