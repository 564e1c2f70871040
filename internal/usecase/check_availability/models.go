package check_availability

import "time"

// Request модель запроса проверки слота
type Request struct {
	Date string // DD/MM/YYYY
	Time string // HH:mm
}

// Response результат проверки
type Response struct {
	Slot      string // "<date> <time>" как в запросе
	Start     time.Time
	Available bool
}
