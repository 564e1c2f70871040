package googlecalendar

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/m04kA/SMC-MeetingService/internal/domain"
	"github.com/m04kA/SMC-MeetingService/pkg/civiltime"
)

// Client клиент Google Calendar для одного календаря
type Client struct {
	svc        *calendar.Service
	calendarID string
	zone       *civiltime.Zone
	timeout    time.Duration
	log        Logger
	observer   Observer
}

// NewClient создает клиента, авторизованного через service account (JWT)
func NewClient(ctx context.Context, cfg Config, zone *civiltime.Zone, log Logger, observer Observer) (*Client, error) {
	jwtCfg := &jwt.Config{
		Email:      cfg.ClientEmail,
		PrivateKey: []byte(cfg.PrivateKey),
		Scopes:     []string{calendar.CalendarScope},
		TokenURL:   google.JWTTokenURL,
	}

	opts := []option.ClientOption{option.WithHTTPClient(jwtCfg.Client(ctx))}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create calendar service: %v", ErrInternal, err)
	}

	return NewClientWithService(svc, cfg, zone, log, observer), nil
}

// NewClientWithService оборачивает уже созданный calendar.Service
func NewClientWithService(svc *calendar.Service, cfg Config, zone *civiltime.Zone, log Logger, observer Observer) *Client {
	return &Client{
		svc:        svc,
		calendarID: cfg.CalendarID,
		zone:       zone,
		timeout:    cfg.Timeout,
		log:        log,
		observer:   observer,
	}
}


// QueryBusy возвращает занятые интервалы календаря в диапазоне [timeMin, timeMax].
// Интервалы переводятся в часовой пояс сервиса.
func (c *Client) QueryBusy(ctx context.Context, timeMin, timeMax time.Time) (busy []domain.Interval, err error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	started := time.Now()
	defer func() { c.observe(OperationFreeBusy, started, err) }()

	req := &calendar.FreeBusyRequest{
		TimeMin:  civiltime.ToExternal(timeMin),
		TimeMax:  civiltime.ToExternal(timeMax),
		TimeZone: c.zone.Name(),
		Items:    []*calendar.FreeBusyRequestItem{{Id: c.calendarID}},
	}

	resp, err := c.svc.Freebusy.Query(req).Context(ctx).Do()
	if err != nil {
		c.log.Error("QueryBusy: freebusy request failed (calendar=%s, %s..%s): %v",
			c.calendarID, req.TimeMin, req.TimeMax, err)
		return nil, fmt.Errorf("%w: freebusy query: %v", ErrUpstream, err)
	}

	cal, ok := resp.Calendars[c.calendarID]
	if !ok {
		return nil, fmt.Errorf("%w: calendar %s is missing in freebusy response", ErrInvalidResponse, c.calendarID)
	}
	if len(cal.Errors) > 0 {
		return nil, fmt.Errorf("%w: calendar %s: %s/%s", ErrInvalidResponse, c.calendarID, cal.Errors[0].Domain, cal.Errors[0].Reason)
	}

	busy = make([]domain.Interval, 0, len(cal.Busy))
	for i, period := range cal.Busy {
		if period == nil {
			return nil, fmt.Errorf("%w: busy period #%d is empty", ErrInvalidResponse, i)
		}
		start, err := c.zone.FromExternal(period.Start)
		if err != nil {
			return nil, fmt.Errorf("%w: busy period #%d start: %v", ErrInvalidResponse, i, err)
		}
		end, err := c.zone.FromExternal(period.End)
		if err != nil {
			return nil, fmt.Errorf("%w: busy period #%d end: %v", ErrInvalidResponse, i, err)
		}
		busy = append(busy, domain.Interval{Start: start, End: end})
	}

	c.log.Debug("QueryBusy: calendar=%s %s..%s busy=%d", c.calendarID, req.TimeMin, req.TimeMax, len(busy))
	return busy, nil
}

// InsertEvent создает событие встречи в календаре
func (c *Client) InsertEvent(ctx context.Context, meeting domain.Meeting) (created *domain.CreatedEvent, err error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	started := time.Now()
	defer func() { c.observe(OperationInsertEvent, started, err) }()

	timezone := meeting.Timezone
	if timezone == "" {
		timezone = c.zone.Name()
	}

	event := &calendar.Event{
		Summary:     meeting.Summary(),
		Description: meeting.Description(),
		Start: &calendar.EventDateTime{
			DateTime: civiltime.ToExternal(meeting.Start),
			TimeZone: timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: civiltime.ToExternal(meeting.End),
			TimeZone: timezone,
		},
	}

	resp, err := c.svc.Events.Insert(c.calendarID, event).Context(ctx).Do()
	if err != nil {
		c.log.Error("InsertEvent: insert failed (calendar=%s, start=%s): %v",
			c.calendarID, event.Start.DateTime, err)
		return nil, fmt.Errorf("%w: events insert: %v", ErrUpstream, err)
	}
	if resp.Id == "" {
		return nil, fmt.Errorf("%w: inserted event has no id", ErrInvalidResponse)
	}

	c.log.Info("InsertEvent: created event %s at %s", resp.Id, event.Start.DateTime)
	return &domain.CreatedEvent{ID: resp.Id, Link: resp.HtmlLink}, nil
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

func (c *Client) observe(operation string, started time.Time, err error) {
	if c.observer != nil {
		c.observer.ObserveCalendar(operation, time.Since(started), err)
	}
}
