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

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create admits a reservation. The capacity recount and the insert run in one
// transaction holding the slot instance row lock, so two requests for the
// last open spot cannot both confirm. Waitlist-kind slots are capacity-exempt
// and always confirm.
func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	lockQuery := `SELECT si.capacity, st.kind
			  FROM slot_instances si
			  JOIN slot_templates st ON st.id = si.slot_template_id
			  WHERE si.id = $1
			  FOR UPDATE OF si`
	var capacity int
	var kind domain.SlotKind
	if err = tx.QueryRowContext(ctx, lockQuery, res.SlotInstanceID).Scan(&capacity, &kind); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrSlotNotFound
		}
		return fmt.Errorf("lock slot instance: %w", err)
	}

	confirmedQuery := `SELECT COUNT(*) FROM reservations
			  WHERE slot_instance_id = $1 AND status = $2`
	var confirmed int
	if err = tx.QueryRowContext(
		ctx, confirmedQuery, res.SlotInstanceID, domain.ReservationStatusConfirmed,
	).Scan(&confirmed); err != nil {
		return fmt.Errorf("count confirmed: %w", err)
	}

	if kind == domain.SlotKindWaitlist || confirmed < capacity {
		res.Status = domain.ReservationStatusConfirmed
		res.Position = 0
	} else {
		var waitlisted int
		waitlistedQuery := `SELECT COUNT(*) FROM reservations
			  WHERE slot_instance_id = $1 AND status = $2`
		if err = tx.QueryRowContext(
			ctx, waitlistedQuery, res.SlotInstanceID, domain.ReservationStatusWaitlisted,
		).Scan(&waitlisted); err != nil {
			return fmt.Errorf("count waitlisted: %w", err)
		}
		res.Status = domain.ReservationStatusWaitlisted
		res.Position = waitlisted + 1
	}

	insertQuery := `INSERT INTO reservations (id, slot_instance_id, name, email, phone, status, manage_token, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = tx.ExecContext(
		ctx, insertQuery,
		res.ID, res.SlotInstanceID, res.Name, res.Email, res.Phone,
		res.Status, res.ManageToken, res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateSignup
		}
		return fmt.Errorf("insert reservation: %w", err)
	}

	return tx.Commit()
}

// GetActive is the duplicate guard: finds a confirmed or waitlisted
// reservation for the identity on the slot instance. Cancelled reservations
// never block a new attempt.
func (r *ReservationRepository) GetActive(ctx context.Context, slotInstanceID, email string) (*domain.Reservation, error) {
	query := `SELECT id, slot_instance_id, name, email, phone, status, manage_token, created_at, updated_at
			  FROM reservations
			  WHERE slot_instance_id=$1 AND email=$2 AND status = ANY($3)
			  LIMIT 1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, slotInstanceID, email, pq.Array(domain.ActiveStatuses))
	if err != nil {
		return nil, fmt.Errorf("get active reservation: %w", err)
	}

	res, err := scanReservation(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	return res, nil
}

func (r *ReservationRepository) GetDetailsByToken(ctx context.Context, token string) (*domain.ReservationDetails, error) {
	return r.getDetails(ctx, "res.manage_token", token)
}

func (r *ReservationRepository) GetDetailsByID(ctx context.Context, id string) (*domain.ReservationDetails, error) {
	return r.getDetails(ctx, "res.id", id)
}

func (r *ReservationRepository) getDetails(ctx context.Context, column, key string) (*domain.ReservationDetails, error) {
	query := `SELECT res.id, res.slot_instance_id, res.name, res.email, res.phone, res.status, res.manage_token,
					res.created_at, res.updated_at,
					e.id, e.title, st.name, si.occurrence_date,
					CASE WHEN res.status = $2 THEN (
						SELECT COUNT(*) FROM reservations w
						WHERE w.slot_instance_id = res.slot_instance_id
						  AND w.status = $2
						  AND (w.created_at, w.id) <= (res.created_at, res.id)
					) ELSE 0 END AS position
			  FROM reservations res
			  JOIN slot_instances si ON si.id = res.slot_instance_id
			  JOIN slot_templates st ON st.id = si.slot_template_id
			  JOIN events e ON e.id = si.event_id
			  WHERE ` + column + ` = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, key, domain.ReservationStatusWaitlisted)
	if err != nil {
		return nil, fmt.Errorf("get reservation details: %w", err)
	}

	var d domain.ReservationDetails
	res := &d.Reservation
	if err = row.Scan(
		&res.ID, &res.SlotInstanceID, &res.Name, &res.Email, &res.Phone, &res.Status, &res.ManageToken,
		&res.CreatedAt, &res.UpdatedAt,
		&d.EventID, &d.EventTitle, &d.SlotName, &d.OccurrenceDate,
		&res.Position,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation details: %w", err)
	}
	d.OccurrenceDate = d.OccurrenceDate.UTC()

	return &d, nil
}

func (r *ReservationRepository) UpdateContact(ctx context.Context, token, name, phone string) error {
	query := `UPDATE reservations
			  SET name = $2, phone = $3, updated_at = now()
			  WHERE manage_token = $1 AND status = ANY($4)`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, token, name, phone, pq.Array(domain.ActiveStatuses))
	if err != nil {
		return fmt.Errorf("update contact: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update contact rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrReservationNotFound
	}

	return nil
}

func (r *ReservationRepository) CancelByID(ctx context.Context, id string) (*domain.Reservation, error) {
	return r.cancel(ctx, "id", id)
}

func (r *ReservationRepository) CancelByToken(ctx context.Context, token string) (*domain.Reservation, error) {
	return r.cancel(ctx, "manage_token", token)
}

// cancel marks an active reservation cancelled and returns its pre-cancel
// state. The row lock pins the status read to the update.
func (r *ReservationRepository) cancel(ctx context.Context, column, key string) (*domain.Reservation, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `SELECT id, slot_instance_id, name, email, phone, status, manage_token, created_at, updated_at
			  FROM reservations
			  WHERE ` + column + ` = $1 AND status = ANY($2)
			  FOR UPDATE`
	row := tx.QueryRowContext(ctx, query, key, pq.Array(domain.ActiveStatuses))

	res, err := scanReservation(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	if _, err = tx.ExecContext(
		ctx, `UPDATE reservations SET status=$2, updated_at=now() WHERE id=$1`,
		res.ID, domain.ReservationStatusCancelled,
	); err != nil {
		return nil, fmt.Errorf("cancel reservation: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit cancel: %w", err)
	}

	return res, nil
}

func (r *ReservationRepository) ListActiveByEventAndEmail(ctx context.Context, eventID, email string) ([]*domain.Reservation, error) {
	query := `SELECT res.id, res.slot_instance_id, res.name, res.email, res.phone, res.status, res.manage_token,
					res.created_at, res.updated_at
			  FROM reservations res
			  JOIN slot_instances si ON si.id = res.slot_instance_id
			  WHERE si.event_id = $1 AND res.email = $2 AND res.status = ANY($3)
			  ORDER BY res.created_at`
	return r.list(ctx, query, eventID, email, pq.Array(domain.ActiveStatuses))
}

func (r *ReservationRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Reservation, error) {
	query := `SELECT res.id, res.slot_instance_id, res.name, res.email, res.phone, res.status, res.manage_token,
					res.created_at, res.updated_at
			  FROM reservations res
			  JOIN slot_instances si ON si.id = res.slot_instance_id
			  WHERE si.event_id = $1 AND res.status = ANY($2)
			  ORDER BY res.created_at`
	return r.list(ctx, query, eventID, pq.Array(domain.ActiveStatuses))
}

func (r *ReservationRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Reservation, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	var res []*domain.Reservation
	for rows.Next() {
		rv, err := scanReservation(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		res = append(res, rv)
	}

	return res, rows.Err()
}

// PromoteNext promotes the earliest waitlisted reservation of the slot
// instance, provided a confirmed spot is free. Promotions for one slot
// instance serialize on the row lock; a waitlisted entry cancelled
// concurrently loses the conditional update and the next-earliest candidate
// is taken, bounded by the waitlist length at entry.
func (r *ReservationRepository) PromoteNext(ctx context.Context, slotInstanceID string) (*domain.Reservation, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var capacity int
	lockQuery := `SELECT capacity FROM slot_instances WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, slotInstanceID).Scan(&capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, fmt.Errorf("lock slot instance: %w", err)
	}

	countQuery := `SELECT COUNT(*) FROM reservations WHERE slot_instance_id = $1 AND status = $2`

	var confirmed int
	if err = tx.QueryRowContext(
		ctx, countQuery, slotInstanceID, domain.ReservationStatusConfirmed,
	).Scan(&confirmed); err != nil {
		return nil, fmt.Errorf("count confirmed: %w", err)
	}
	if confirmed >= capacity {
		return nil, nil
	}

	var waitlisted int
	if err = tx.QueryRowContext(
		ctx, countQuery, slotInstanceID, domain.ReservationStatusWaitlisted,
	).Scan(&waitlisted); err != nil {
		return nil, fmt.Errorf("count waitlisted: %w", err)
	}

	candidateQuery := `SELECT id, slot_instance_id, name, email, phone, status, manage_token, created_at, updated_at
			  FROM reservations
			  WHERE slot_instance_id = $1 AND status = $2
			  ORDER BY created_at, id
			  LIMIT 1`

	for attempt := 0; attempt < waitlisted; attempt++ {
		row := tx.QueryRowContext(ctx, candidateQuery, slotInstanceID, domain.ReservationStatusWaitlisted)

		candidate, err := scanReservation(row.Scan)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				break
			}
			return nil, fmt.Errorf("select promotion candidate: %w", err)
		}

		res, err := tx.ExecContext(
			ctx,
			`UPDATE reservations SET status=$2, updated_at=now() WHERE id=$1 AND status=$3`,
			candidate.ID, domain.ReservationStatusConfirmed, domain.ReservationStatusWaitlisted,
		)
		if err != nil {
			return nil, fmt.Errorf("promote reservation: %w", err)
		}

		rows, err := res.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("promote rows affected: %w", err)
		}
		if rows == 0 {
			// candidate was cancelled between select and update
			continue
		}

		if err = tx.Commit(); err != nil {
			return nil, fmt.Errorf("commit promotion: %w", err)
		}

		candidate.Status = domain.ReservationStatusConfirmed
		candidate.Position = 0
		return candidate, nil
	}

	return nil, nil
}

// ListPromotableSlots returns slot instances that have waitlisted entries
// and a free confirmed spot. Used by the periodic promotion sweep.
func (r *ReservationRepository) ListPromotableSlots(ctx context.Context) ([]string, error) {
	query := `SELECT si.id
			  FROM slot_instances si
			  JOIN slot_templates st ON st.id = si.slot_template_id
			  LEFT JOIN reservations res ON res.slot_instance_id = si.id AND res.status = ANY($1)
			  WHERE st.kind = $2
			  GROUP BY si.id
			  HAVING COUNT(res.id) FILTER (WHERE res.status = $3) > 0
				 AND COUNT(res.id) FILTER (WHERE res.status = $4) < si.capacity`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		pq.Array(domain.ActiveStatuses), domain.SlotKindRegular,
		domain.ReservationStatusWaitlisted, domain.ReservationStatusConfirmed,
	)
	if err != nil {
		return nil, fmt.Errorf("list promotable slots: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan slot instance id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func scanReservation(scan func(dest ...any) error) (*domain.Reservation, error) {
	var res domain.Reservation
	if err := scan(
		&res.ID, &res.SlotInstanceID, &res.Name, &res.Email, &res.Phone,
		&res.Status, &res.ManageToken, &res.CreatedAt, &res.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &res, nil
}
