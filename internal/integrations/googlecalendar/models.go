package googlecalendar

import "time"

// Имена операций для метрик
const (
	OperationFreeBusy    = "freebusy"
	OperationInsertEvent = "insert_event"
)

// Config параметры подключения к календарю
type Config struct {
	CalendarID  string
	ClientEmail string
	PrivateKey  string
	// Endpoint переопределяет базовый URL API, пусто - боевой
	Endpoint string
	Timeout  time.Duration
}
