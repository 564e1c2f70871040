package create_event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MeetingService/internal/domain"
	"github.com/m04kA/SMC-MeetingService/internal/infra/lock"
	"github.com/m04kA/SMC-MeetingService/internal/infra/storage/meeting"
	"github.com/m04kA/SMC-MeetingService/pkg/civiltime"
	"github.com/m04kA/SMC-MeetingService/pkg/logger"
	"github.com/m04kA/SMC-MeetingService/pkg/metrics"
)

// fakeCalendar хранит созданные события и считает их занятыми
type fakeCalendar struct {
	mu        sync.Mutex
	events    []domain.Meeting
	checkErr  error
	insertErr error
}

func (f *fakeCalendar) IsAvailable(_ context.Context, start time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.checkErr != nil {
		return false, f.checkErr
	}
	slot := domain.Interval{Start: start, End: start.Add(15 * time.Minute)}
	for _, e := range f.events {
		if slot.Overlaps(domain.Interval{Start: e.Start, End: e.End}) {
			return false, nil
		}
	}
	return true, nil
}

func (f *fakeCalendar) SlotMinutes() int { return domain.SlotDurationMinutes }

func (f *fakeCalendar) InsertEvent(_ context.Context, m domain.Meeting) (*domain.CreatedEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	// имитируем задержку внешнего API, чтобы гонка была заметна без блокировки
	time.Sleep(5 * time.Millisecond)
	f.events = append(f.events, m)
	id := fmt.Sprintf("evt-%d", len(f.events))
	return &domain.CreatedEvent{ID: id, Link: "https://calendar.example.com/" + id}, nil
}

type fakeLedger struct {
	reserveErr error
	attachErr  error
	nextID     int64
	reserved   []*domain.MeetingRecord
	attached   map[int64]string
	released   []int64
}

func (f *fakeLedger) Reserve(_ context.Context, rec *domain.MeetingRecord) (*domain.MeetingRecord, error) {
	if f.reserveErr != nil {
		return nil, f.reserveErr
	}
	f.nextID++
	rec.ID = f.nextID
	f.reserved = append(f.reserved, rec)
	return rec, nil
}

func (f *fakeLedger) AttachEvent(_ context.Context, id int64, event domain.CreatedEvent) error {
	if f.attached == nil {
		f.attached = map[int64]string{}
	}
	f.attached[id] = event.ID
	return f.attachErr
}

func (f *fakeLedger) Release(_ context.Context, id int64) error {
	f.released = append(f.released, id)
	return nil
}

type fakeLocker struct{ err error }

func (f fakeLocker) WithLock(ctx context.Context, _ string, fn func(ctx context.Context) error) error {
	if f.err != nil {
		return f.err
	}
	return fn(ctx)
}

type fakeMetrics struct {
	mu      sync.Mutex
	results map[string]int
}

func (f *fakeMetrics) Booking(result string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.results == nil {
		f.results = map[string]int{}
	}
	f.results[result]++
}

type deps struct {
	calendar *fakeCalendar
	ledger   *fakeLedger
	locker   Locker
	metrics  *fakeMetrics
}

func newDeps() *deps {
	return &deps{
		calendar: &fakeCalendar{},
		ledger:   &fakeLedger{},
		locker:   lock.NewMemoryLocker(time.Second),
		metrics:  &fakeMetrics{},
	}
}

func (d *deps) useCase(t *testing.T) *UseCase {
	t.Helper()
	zone, err := civiltime.LoadZone(domain.DefaultTimezone)
	require.NoError(t, err)
	ledger := MeetingLedger(d.ledger)
	return NewUseCase(d.calendar, d.calendar, d.locker, ledger, zone, "primary", d.metrics, logger.NewNop())
}

func fakeRequest(date, clock string) *Request {
	notes := gofakeit.Phrase()
	return &Request{
		Name:   gofakeit.Name(),
		Email:  gofakeit.Email(),
		Mobile: gofakeit.Numerify("9#########"),
		Notes:  &notes,
		Date:   date,
		Time:   clock,
	}
}

func TestExecute_Success(t *testing.T) {
	d := newDeps()
	req := fakeRequest("22/01/2024", "10:30")

	resp, err := d.useCase(t).Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "evt-1", resp.EventID)
	assert.Equal(t, "https://calendar.example.com/evt-1", resp.Link)
	assert.Equal(t, "2024-01-22T05:00:00Z", civiltime.ToExternal(resp.Start))
	assert.Equal(t, 15*time.Minute, resp.End.Sub(resp.Start))

	require.Len(t, d.calendar.events, 1)
	event := d.calendar.events[0]
	assert.Equal(t, "Meeting with "+req.Name, event.Summary())
	assert.Equal(t, domain.DefaultTimezone, event.Timezone)

	require.Len(t, d.ledger.reserved, 1)
	assert.Equal(t, "primary", d.ledger.reserved[0].CalendarID)
	assert.Equal(t, "evt-1", d.ledger.attached[1])
	assert.Equal(t, 1, d.metrics.results[metrics.BookingCreated])
}

func TestExecute_SlotTaken(t *testing.T) {
	d := newDeps()
	_, err := d.useCase(t).Execute(context.Background(), fakeRequest("22/01/2024", "10:30"))
	require.NoError(t, err)

	// 10:40 пересекается с 10:30-10:45
	_, err = d.useCase(t).Execute(context.Background(), fakeRequest("22/01/2024", "10:40"))
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Len(t, d.calendar.events, 1, "no event is created for a taken slot")
	assert.Len(t, d.ledger.reserved, 1)
	assert.Equal(t, 1, d.metrics.results[metrics.BookingConflict])
}

func TestExecute_ConcurrentBookingsOfOneSlot(t *testing.T) {
	d := newDeps()
	uc := d.useCase(t)

	const attempts = 8
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), fakeRequest("23/01/2024", "11:00"))
		}(i)
	}
	wg.Wait()

	var ok, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, ErrSlotUnavailable):
			conflicts++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, attempts-1, conflicts)
	assert.Len(t, d.calendar.events, 1)
}

func TestExecute_LedgerConflict(t *testing.T) {
	d := newDeps()
	d.ledger.reserveErr = fmt.Errorf("%w: calendar=primary", meeting.ErrSlotTaken)

	_, err := d.useCase(t).Execute(context.Background(), fakeRequest("22/01/2024", "12:00"))
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Empty(t, d.calendar.events)
}

func TestExecute_LockNotAcquired(t *testing.T) {
	d := newDeps()
	d.locker = fakeLocker{err: lock.ErrLockNotAcquired}

	_, err := d.useCase(t).Execute(context.Background(), fakeRequest("22/01/2024", "12:00"))
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Equal(t, 1, d.metrics.results[metrics.BookingConflict])
}

func TestExecute_InsertFailureReleasesReservation(t *testing.T) {
	d := newDeps()
	d.calendar.insertErr = errors.New("googleapi: 503")

	_, err := d.useCase(t).Execute(context.Background(), fakeRequest("22/01/2024", "12:00"))
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, []int64{1}, d.ledger.released)
	assert.Equal(t, 1, d.metrics.results[metrics.BookingFailed])
}

func TestExecute_AttachFailureStillSucceeds(t *testing.T) {
	d := newDeps()
	d.ledger.attachErr = errors.New("db gone")

	resp, err := d.useCase(t).Execute(context.Background(), fakeRequest("22/01/2024", "12:00"))
	require.NoError(t, err)
	assert.Equal(t, "evt-1", resp.EventID)
	assert.Empty(t, d.ledger.released)
}

func TestExecute_CheckFailure(t *testing.T) {
	d := newDeps()
	d.calendar.checkErr = errors.New("timeout")

	_, err := d.useCase(t).Execute(context.Background(), fakeRequest("22/01/2024", "12:00"))
	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, d.ledger.reserved)
}

func TestExecute_InvalidDateTime(t *testing.T) {
	d := newDeps()

	_, err := d.useCase(t).Execute(context.Background(), fakeRequest("29/02/2023", "12:00"))
	assert.ErrorIs(t, err, ErrInvalidDateTime)
	assert.Empty(t, d.metrics.results)
}
