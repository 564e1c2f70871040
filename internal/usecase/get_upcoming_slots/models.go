package get_upcoming_slots

import "time"

// Response ближайшие свободные слоты в часовом поясе сервиса.
// Порядок - порядок выборки, не хронологический.
type Response struct {
	Slots []time.Time
}
