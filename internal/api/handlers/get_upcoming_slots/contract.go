package get_upcoming_slots

import (
	"context"

	getUpcomingSlots "github.com/m04kA/SMC-MeetingService/internal/usecase/get_upcoming_slots"
)

type GetUpcomingSlotsUseCase interface {
	Execute(ctx context.Context) (*getUpcomingSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
