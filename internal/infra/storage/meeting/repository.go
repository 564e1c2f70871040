package meeting

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-MeetingService/internal/domain"
	"github.com/m04kA/SMC-MeetingService/pkg/psqlbuilder"
)

const (
	table = "meetings"

	// unique_violation
	pqUniqueViolation = "23505"
)

var selectColumns = []string{
	"id",
	"calendar_id",
	"start_at",
	"end_at",
	"name",
	"email",
	"mobile",
	"notes",
	"status",
	"event_id",
	"event_link",
	"created_at",
	"updated_at",
}

// Repository журнал встреч в Postgres.
// Уникальный индекс (calendar_id, start_at) не дает забронировать слот дважды.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория встреч
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Reserve записывает встречу в статусе reserved до создания события в календаре
func (r *Repository) Reserve(ctx context.Context, record *domain.MeetingRecord) (*domain.MeetingRecord, error) {
	query, args, err := reserveQuery(record)
	if err != nil {
		return nil, fmt.Errorf("%w: Reserve - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&record.ID, &createdAt, &updatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: calendar=%s start=%s", ErrSlotTaken, record.CalendarID, record.StartAt.Format(time.RFC3339))
		}
		return nil, fmt.Errorf("%w: Reserve - execute insert: %v", ErrExecQuery, err)
	}

	record.Status = domain.StatusReserved
	record.CreatedAt = createdAt.Time
	record.UpdatedAt = updatedAt.Time
	return record, nil
}

// AttachEvent переводит резерв в booked и сохраняет id и ссылку события календаря
func (r *Repository) AttachEvent(ctx context.Context, id int64, event domain.CreatedEvent) error {
	query, args, err := attachEventQuery(id, event)
	if err != nil {
		return fmt.Errorf("%w: AttachEvent - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: AttachEvent - execute update: %v", ErrExecQuery, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: AttachEvent - rows affected: %v", ErrExecQuery, err)
	}
	if rows == 0 {
		return ErrMeetingNotFound
	}
	return nil
}

// Release удаляет резерв, для которого не удалось создать событие
func (r *Repository) Release(ctx context.Context, id int64) error {
	query, args, err := releaseQuery(id)
	if err != nil {
		return fmt.Errorf("%w: Release - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Release - execute delete: %v", ErrExecQuery, err)
	}
	return nil
}

// ListBetween возвращает встречи календаря, пересекающиеся с [from, to)
func (r *Repository) ListBetween(ctx context.Context, calendarID string, from, to time.Time) ([]domain.MeetingRecord, error) {
	query, args, err := listBetweenQuery(calendarID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBetween - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBetween - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var records []domain.MeetingRecord
	for rows.Next() {
		var (
			rec                  domain.MeetingRecord
			notes                sql.NullString
			eventID, eventLink   sql.NullString
			createdAt, updatedAt sql.NullTime
		)
		if err := rows.Scan(
			&rec.ID,
			&rec.CalendarID,
			&rec.StartAt,
			&rec.EndAt,
			&rec.Name,
			&rec.Email,
			&rec.Mobile,
			&notes,
			&rec.Status,
			&eventID,
			&eventLink,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListBetween - scan: %v", ErrScanRow, err)
		}

		rec.Notes = nullStringPtr(notes)
		rec.EventID = nullStringPtr(eventID)
		rec.EventLink = nullStringPtr(eventLink)
		rec.CreatedAt = createdAt.Time
		rec.UpdatedAt = updatedAt.Time
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBetween - rows: %v", ErrScanRow, err)
	}

	return records, nil
}

func reserveQuery(record *domain.MeetingRecord) (string, []interface{}, error) {
	return psqlbuilder.Insert(table).
		Columns(
			"calendar_id",
			"start_at",
			"end_at",
			"name",
			"email",
			"mobile",
			"notes",
			"status",
		).
		Values(
			record.CalendarID,
			record.StartAt.UTC(),
			record.EndAt.UTC(),
			record.Name,
			record.Email,
			record.Mobile,
			record.Notes,
			domain.StatusReserved,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
}

func attachEventQuery(id int64, event domain.CreatedEvent) (string, []interface{}, error) {
	return psqlbuilder.Update(table).
		Set("status", domain.StatusBooked).
		Set("event_id", event.ID).
		Set("event_link", event.Link).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
}

func releaseQuery(id int64) (string, []interface{}, error) {
	return psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id, "status": domain.StatusReserved}).
		ToSql()
}

func listBetweenQuery(calendarID string, from, to time.Time) (string, []interface{}, error) {
	return psqlbuilder.Select(selectColumns...).
		From(table).
		Where(squirrel.Eq{"calendar_id": calendarID}).
		Where(squirrel.Lt{"start_at": to.UTC()}).
		Where(squirrel.Gt{"end_at": from.UTC()}).
		OrderBy("start_at").
		ToSql()
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}

func nullStringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
