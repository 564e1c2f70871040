package check_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MeetingService/internal/domain"
	"github.com/m04kA/SMC-MeetingService/pkg/civiltime"
	"github.com/m04kA/SMC-MeetingService/pkg/logger"
)

type fakeChecker struct {
	available bool
	err       error
	calls     []time.Time
}

func (f *fakeChecker) IsAvailable(_ context.Context, start time.Time) (bool, error) {
	f.calls = append(f.calls, start)
	return f.available, f.err
}

func newUseCase(t *testing.T, checker AvailabilityChecker) *UseCase {
	t.Helper()
	zone, err := civiltime.LoadZone(domain.DefaultTimezone)
	require.NoError(t, err)
	return NewUseCase(checker, zone, logger.NewNop())
}

func TestExecute(t *testing.T) {
	checker := &fakeChecker{available: true}

	resp, err := newUseCase(t, checker).Execute(context.Background(), &Request{Date: "22/01/2024", Time: "9:30"})
	require.NoError(t, err)

	assert.Equal(t, "22/01/2024 9:30", resp.Slot)
	assert.True(t, resp.Available)
	require.Len(t, checker.calls, 1)
	assert.Equal(t, "2024-01-22T04:00:00Z", civiltime.ToExternal(checker.calls[0]))
}

func TestExecute_Busy(t *testing.T) {
	resp, err := newUseCase(t, &fakeChecker{available: false}).Execute(context.Background(), &Request{Date: "22/01/2024", Time: "10:10"})
	require.NoError(t, err)
	assert.False(t, resp.Available)
}

func TestExecute_Errors(t *testing.T) {
	checker := &fakeChecker{}
	_, err := newUseCase(t, checker).Execute(context.Background(), &Request{Date: "31/04/2024", Time: "10:00"})
	assert.ErrorIs(t, err, ErrInvalidDateTime)
	assert.Empty(t, checker.calls, "backend is not called for malformed input")

	_, err = newUseCase(t, &fakeChecker{err: errors.New("timeout")}).Execute(context.Background(), &Request{Date: "22/01/2024", Time: "10:00"})
	assert.ErrorIs(t, err, ErrInternal)
}
