package get_upcoming_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MeetingService/internal/domain"
	"github.com/m04kA/SMC-MeetingService/pkg/logger"
)

type fakeSlots struct {
	slots []domain.Interval
	err   error

	now          time.Time
	limit, ahead int
}

func (f *fakeSlots) Upcoming(_ context.Context, now time.Time, limit, maxLookahead int) ([]domain.Interval, error) {
	f.now, f.limit, f.ahead = now, limit, maxLookahead
	return f.slots, f.err
}

type fakeMetrics struct {
	served map[string]int
}

func (f *fakeMetrics) SlotsServed(endpoint string, n int) {
	if f.served == nil {
		f.served = map[string]int{}
	}
	f.served[endpoint] += n
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func TestExecute(t *testing.T) {
	now := time.Date(2024, 1, 22, 9, 7, 0, 0, time.UTC)
	slot := domain.Interval{Start: now.Add(8 * time.Minute), End: now.Add(23 * time.Minute)}
	slots := &fakeSlots{slots: []domain.Interval{slot}}
	m := &fakeMetrics{}

	uc := NewUseCase(slots, m, logger.NewNop())
	uc.timeProvider = fixedTime{now}
	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []time.Time{slot.Start}, resp.Slots)
	assert.Equal(t, now, slots.now)
	assert.Equal(t, domain.UpcomingSlotsLimit, slots.limit)
	assert.Equal(t, domain.MaxLookaheadDays, slots.ahead)
	assert.Equal(t, 1, m.served["upcoming"])
}

func TestExecute_Empty(t *testing.T) {
	uc := NewUseCase(&fakeSlots{}, &fakeMetrics{}, logger.NewNop())

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
}

func TestExecute_Upstream(t *testing.T) {
	uc := NewUseCase(&fakeSlots{err: errors.New("calendar down")}, &fakeMetrics{}, logger.NewNop())

	_, err := uc.Execute(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
