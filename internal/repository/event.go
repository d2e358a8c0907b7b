package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/stpnv0/SlotBooker/internal/domain"
)

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts the event together with its slot templates and materialized
// slot instances in one transaction, so a half-created series never exists.
func (r *EventRepository) Create(
	ctx context.Context,
	e *domain.Event,
	templates []domain.SlotTemplate,
	instances []domain.SlotInstance,
) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()

	eventQuery := `INSERT INTO events (id, organizer_id, title, description, start_date, status,
					recurrence_freq, recurrence_interval, recurrence_count, recurrence_until, recurrence_weekdays,
					created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	freq, interval, count, until, weekdaysArr := recurrenceColumns(e.Recurrence)
	_, err = tx.ExecContext(
		ctx, eventQuery,
		e.ID, nullString(e.OrganizerID), e.Title, e.Description, e.StartDate, e.Status,
		freq, interval, count, until, weekdaysArr,
		now, now,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	tplQuery := `INSERT INTO slot_templates (id, event_id, name, kind, capacity, occurrence_date, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, tpl := range templates {
		if _, err = tx.ExecContext(
			ctx, tplQuery,
			tpl.ID, tpl.EventID, tpl.Name, tpl.Kind, tpl.Capacity, tpl.OccurrenceDate, now,
		); err != nil {
			return fmt.Errorf("insert slot template: %w", err)
		}
	}

	instQuery := `INSERT INTO slot_instances (id, event_id, slot_template_id, occurrence_date, capacity)
			  VALUES ($1, $2, $3, $4, $5)`
	for _, inst := range instances {
		if _, err = tx.ExecContext(
			ctx, instQuery,
			inst.ID, inst.EventID, inst.SlotTemplateID, inst.OccurrenceDate, inst.Capacity,
		); err != nil {
			return fmt.Errorf("insert slot instance: %w", err)
		}
	}

	return tx.Commit()
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT id, organizer_id, title, description, start_date, status,
					recurrence_freq, recurrence_interval, recurrence_count, recurrence_until, recurrence_weekdays,
					created_at, updated_at
			  FROM events
			  WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT id, organizer_id, title, description, start_date, status,
					recurrence_freq, recurrence_interval, recurrence_count, recurrence_until, recurrence_weekdays,
					created_at, updated_at
			  FROM events
			  ORDER BY start_date DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

// GetDetails returns the event with every slot instance and its derived
// availability. Available spots are computed from confirmed reservations at
// query time, never read from a stored counter.
func (r *EventRepository) GetDetails(ctx context.Context, eventID string) (*domain.EventDetails, error) {
	event, err := r.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT
			si.id, si.event_id, si.slot_template_id, si.occurrence_date, si.capacity,
			st.name, st.kind,
			COUNT(res.id) FILTER (WHERE res.status = $2) AS confirmed,
			COUNT(res.id) FILTER (WHERE res.status = $3) AS waitlisted
		FROM slot_instances si
		JOIN slot_templates st ON st.id = si.slot_template_id
		LEFT JOIN reservations res ON res.slot_instance_id = si.id
		WHERE si.event_id = $1
		GROUP BY si.id, st.name, st.kind, st.created_at
		ORDER BY si.occurrence_date, st.created_at`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query, eventID,
		domain.ReservationStatusConfirmed, domain.ReservationStatusWaitlisted,
	)
	if err != nil {
		return nil, fmt.Errorf("get event details: %w", err)
	}
	defer rows.Close()

	details := &domain.EventDetails{Event: *event}
	seen := make(map[time.Time]bool)
	for rows.Next() {
		var s domain.SlotAvailability
		if err = rows.Scan(
			&s.Instance.ID, &s.Instance.EventID, &s.Instance.SlotTemplateID,
			&s.Instance.OccurrenceDate, &s.Instance.Capacity,
			&s.Name, &s.Kind, &s.Confirmed, &s.Waitlisted,
		); err != nil {
			return nil, fmt.Errorf("scan slot availability: %w", err)
		}
		s.Instance.OccurrenceDate = s.Instance.OccurrenceDate.UTC()
		s.Available = s.Instance.Capacity - s.Confirmed

		if !seen[s.Instance.OccurrenceDate] {
			seen[s.Instance.OccurrenceDate] = true
			details.Occurrences = append(details.Occurrences, s.Instance.OccurrenceDate)
		}
		details.Slots = append(details.Slots, s)
	}

	return details, rows.Err()
}

func (r *EventRepository) Update(ctx context.Context, id string, input domain.UpdateEventInput) error {
	var status *string
	if input.Status != nil {
		s := string(*input.Status)
		status = &s
	}

	query := `UPDATE events
			  SET title = COALESCE($2, title),
				  description = COALESCE($3, description),
				  status = COALESCE($4, status),
				  updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, input.Title, input.Description, status)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

// Delete removes the event; slot templates, slot instances and reservations
// go with it through ON DELETE CASCADE in a single statement.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM events WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

// DeleteOccurrence removes every slot instance of the event on one date;
// their reservations cascade with them.
func (r *EventRepository) DeleteOccurrence(ctx context.Context, eventID string, date time.Time) error {
	query := `DELETE FROM slot_instances WHERE event_id=$1 AND occurrence_date=$2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, eventID, date)
	if err != nil {
		return fmt.Errorf("delete occurrence: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete occurrence rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrOccurrenceNotFound
	}

	return nil
}

func (r *EventRepository) GetSlotTemplate(ctx context.Context, id string) (*domain.SlotTemplate, error) {
	query := `SELECT id, event_id, name, kind, capacity, occurrence_date, created_at
			  FROM slot_templates
			  WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get slot template: %w", err)
	}

	var tpl domain.SlotTemplate
	var occDate sql.NullTime
	if err = row.Scan(&tpl.ID, &tpl.EventID, &tpl.Name, &tpl.Kind, &tpl.Capacity, &occDate, &tpl.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, fmt.Errorf("scan slot template: %w", err)
	}
	if occDate.Valid {
		d := occDate.Time.UTC()
		tpl.OccurrenceDate = &d
	}

	return &tpl, nil
}

// UpdateSlotCapacity changes the template capacity and propagates it to all
// of its instances in one transaction.
func (r *EventRepository) UpdateSlotCapacity(ctx context.Context, templateID string, capacity int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `UPDATE slot_templates SET capacity=$2 WHERE id=$1`, templateID, capacity)
	if err != nil {
		return fmt.Errorf("update slot template capacity: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("capacity rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrSlotNotFound
	}

	if _, err = tx.ExecContext(
		ctx, `UPDATE slot_instances SET capacity=$2 WHERE slot_template_id=$1`,
		templateID, capacity,
	); err != nil {
		return fmt.Errorf("update slot instance capacity: %w", err)
	}

	return tx.Commit()
}

func (r *EventRepository) ResolveSlotInstance(ctx context.Context, templateID string, date time.Time) (*domain.SlotInstance, error) {
	query := `SELECT id, event_id, slot_template_id, occurrence_date, capacity
			  FROM slot_instances
			  WHERE slot_template_id=$1 AND occurrence_date=$2`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, templateID, date)
	if err != nil {
		return nil, fmt.Errorf("resolve slot instance: %w", err)
	}

	var si domain.SlotInstance
	if err = row.Scan(&si.ID, &si.EventID, &si.SlotTemplateID, &si.OccurrenceDate, &si.Capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOccurrenceNotFound
		}
		return nil, fmt.Errorf("scan slot instance: %w", err)
	}
	si.OccurrenceDate = si.OccurrenceDate.UTC()

	return &si, nil
}

// MaxConfirmed returns the highest confirmed count across the template's
// instances, used to guard capacity reductions.
func (r *EventRepository) MaxConfirmed(ctx context.Context, templateID string) (int, error) {
	query := `SELECT COALESCE(MAX(c), 0) FROM (
				SELECT COUNT(*) AS c
				FROM reservations res
				JOIN slot_instances si ON si.id = res.slot_instance_id
				WHERE si.slot_template_id = $1 AND res.status = $2
				GROUP BY res.slot_instance_id
			  ) t`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, templateID, domain.ReservationStatusConfirmed)
	if err != nil {
		return 0, fmt.Errorf("max confirmed: %w", err)
	}

	var confirmed int
	if err = row.Scan(&confirmed); err != nil {
		return 0, fmt.Errorf("scan max confirmed: %w", err)
	}

	return confirmed, nil
}

func scanEvent(scan func(dest ...any) error) (*domain.Event, error) {
	var e domain.Event
	var organizerID, freq sql.NullString
	var interval, count sql.NullInt64
	var until sql.NullTime
	var weekdaysArr pq.Int64Array

	if err := scan(
		&e.ID, &organizerID, &e.Title, &e.Description, &e.StartDate, &e.Status,
		&freq, &interval, &count, &until, &weekdaysArr,
		&e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}

	e.OrganizerID = organizerID.String
	e.StartDate = e.StartDate.UTC()

	if freq.Valid {
		rule := &domain.RecurrenceRule{
			Frequency: domain.Frequency(freq.String),
			Interval:  int(interval.Int64),
			Count:     int(count.Int64),
		}
		if until.Valid {
			u := until.Time.UTC()
			rule.Until = &u
		}
		for _, wd := range weekdaysArr {
			rule.Weekdays = append(rule.Weekdays, time.Weekday(wd))
		}
		e.Recurrence = rule
	}

	return &e, nil
}

func recurrenceColumns(rule *domain.RecurrenceRule) (freq, interval, count, until, weekdaysArr any) {
	if rule == nil {
		return nil, nil, nil, nil, nil
	}

	freq = string(rule.Frequency)
	interval = rule.Interval
	if rule.Count > 0 {
		count = rule.Count
	}
	if rule.Until != nil {
		until = *rule.Until
	}
	if len(rule.Weekdays) > 0 {
		arr := make(pq.Int64Array, 0, len(rule.Weekdays))
		for _, wd := range rule.Weekdays {
			arr = append(arr, int64(wd))
		}
		weekdaysArr = arr
	}
	return freq, interval, count, until, weekdaysArr
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
