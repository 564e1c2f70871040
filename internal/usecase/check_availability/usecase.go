package check_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-MeetingService/pkg/civiltime"
)

// UseCase use case для проверки доступности одного слота
type UseCase struct {
	checker AvailabilityChecker
	zone    *civiltime.Zone
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(checker AvailabilityChecker, zone *civiltime.Zone, logger Logger) *UseCase {
	return &UseCase{
		checker: checker,
		zone:    zone,
		logger:  logger,
	}
}

// Execute проверяет, не пересекается ли слот с занятыми периодами календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	start, err := uc.zone.FromCivil(req.Date, req.Time)
	if err != nil {
		uc.logger.Warn("CheckAvailability: invalid date/time %q %q: %v", req.Date, req.Time, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDateTime, err)
	}

	available, err := uc.checker.IsAvailable(ctx, start)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to check %s: %v", uc.zone.FormatSlot(start), err)
		return nil, fmt.Errorf("%w: failed to check availability: %v", ErrInternal, err)
	}

	uc.logger.Info("CheckAvailability: %s available=%t", uc.zone.FormatSlot(start), available)
	return &Response{
		Slot:      req.Date + " " + req.Time,
		Start:     start,
		Available: available,
	}, nil
}
