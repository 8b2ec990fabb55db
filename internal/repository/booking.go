package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Aashutosh-Mahajan/Ground-Booking-System/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `id, student_name, student_email, roll_number, ground, sport,
		date, time_slot, purpose, equipment, number_of_players, status, created_at, updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO bookings (` + bookingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err = tx.ExecContext(
		ctx, query, b.ID, b.StudentName, b.StudentEmail, b.RollNumber,
		b.Ground, b.Sport, b.Date, b.TimeSlot, b.Purpose, b.Equipment,
		b.NumberOfPlayers, b.Status, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	playerQuery := `INSERT INTO players (id, booking_id, email, name, branch, year, division)
					VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, p := range b.Players {
		if _, err = tx.ExecContext(
			ctx, playerQuery, p.ID, b.ID, p.Email, p.Name, p.Branch, p.Year, p.Division,
		); err != nil {
			return fmt.Errorf("insert player: %w", err)
		}
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		return nil, err
	}

	if b.Players, err = r.listPlayers(ctx, b.ID); err != nil {
		return nil, err
	}

	return b, nil
}

func (r *BookingRepository) listPlayers(ctx context.Context, bookingID string) ([]domain.Player, error) {
	query := `SELECT id, email, name, branch, year, division
			  FROM players
			  WHERE booking_id = $1
			  ORDER BY id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer rows.Close()

	var res []domain.Player
	for rows.Next() {
		var p domain.Player
		if err = rows.Scan(&p.ID, &p.Email, &p.Name, &p.Branch, &p.Year, &p.Division); err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		res = append(res, p)
	}

	return res, rows.Err()
}

func (r *BookingRepository) List(ctx context.Context, status domain.BookingStatus) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE ($1 = '' OR status = $1)
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, string(status))
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *BookingRepository) ListByStudent(ctx context.Context, email string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE student_email = $1
			  ORDER BY date DESC, created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, email)
	if err != nil {
		return nil, fmt.Errorf("list bookings by student: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListApprovedSlots возвращает строки слотов утверждённых заявок на дату и вид
// спорта. Площадка в выборке не участвует: занятость считается по date+sport.
func (r *BookingRepository) ListApprovedSlots(ctx context.Context, date time.Time, sport string) ([]string, error) {
	query := `SELECT time_slot FROM bookings
			  WHERE date = $1 AND lower(sport) = lower($2) AND status = $3`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, date, sport, domain.BookingStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("list approved slots: %w", err)
	}
	defer rows.Close()

	var res []string
	for rows.Next() {
		var slot string
		if err = rows.Scan(&slot); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		res = append(res, slot)
	}

	return res, rows.Err()
}

// Approve — транзакция резолвера. Блокируем конкурирующий набор
// (date + sport без учёта регистра + точная строка слота), выбираем самую
// раннюю Pending-заявку, остальные Pending отклоняем, запись о выделении
// слота создаём/обновляем тем же коммитом. Блокировки берутся только через
// упорядоченный запрос конкурирующего набора: единый порядок захвата строк
// не даёт двум одновременным одобрениям одного слота взять их навстречу
// друг другу и взаимно заблокироваться.
func (r *BookingRepository) Approve(ctx context.Context, id string) (*domain.ApprovalResult, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// ключ слота читаем без блокировки; date/sport/time_slot неизменяемы
	keyQuery := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	key, err := scanBooking(tx.QueryRowContext(ctx, keyQuery, id))
	if err != nil {
		return nil, err
	}

	competingQuery := `SELECT ` + bookingColumns + `
					   FROM bookings
					   WHERE date = $1 AND lower(sport) = lower($2) AND time_slot = $3
					   ORDER BY created_at, id
					   FOR UPDATE`
	rows, err := tx.QueryContext(ctx, competingQuery, key.Date, key.Sport, key.TimeSlot)
	if err != nil {
		return nil, fmt.Errorf("lock competing set: %w", err)
	}
	competitors, err := scanBookings(rows)
	rows.Close()
	if err != nil {
		return nil, err
	}

	// статус берём из заблокированного снимка, не из чтения до блокировки
	target, err := pickTarget(competitors, id)
	if err != nil {
		return nil, err
	}

	decision := domain.ResolveAllotment(target, competitors)
	winner := decision.Winner

	if decision.Promote {
		if err = r.setStatus(ctx, tx, []string{winner.ID}, domain.BookingStatusApproved); err != nil {
			return nil, err
		}
		winner.Status = domain.BookingStatusApproved
	}

	if len(decision.AutoRejected) > 0 {
		ids := make([]string, 0, len(decision.AutoRejected))
		for _, b := range decision.AutoRejected {
			ids = append(ids, b.ID)
		}
		if err = r.setStatus(ctx, tx, ids, domain.BookingStatusRejected); err != nil {
			return nil, err
		}
		for _, b := range decision.AutoRejected {
			b.Status = domain.BookingStatusRejected
		}
	}

	if decision.Materialize {
		if err = upsertAllotment(ctx, tx, winner); err != nil {
			return nil, err
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit approve: %w", err)
	}

	return &domain.ApprovalResult{
		Winner:       winner,
		AutoRejected: decision.AutoRejected,
		Promoted:     decision.Promote,
	}, nil
}

func (r *BookingRepository) setStatus(ctx context.Context, tx *sql.Tx, ids []string, status domain.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = now() WHERE id = ANY($1)`
	if _, err := tx.ExecContext(ctx, query, pq.Array(ids), status); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// частичный уникальный индекс по Approved: слот уже выделен
			// параллельной транзакцией
			return domain.ErrSlotTaken
		}
		return fmt.Errorf("set status %s: %w", status, err)
	}
	return nil
}

func upsertAllotment(ctx context.Context, tx *sql.Tx, winner *domain.Booking) error {
	query := `INSERT INTO allotments
				(id, booking_id, date, ground, time_slot, allotted_to, roll_number, purpose, players, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
			  ON CONFLICT (date, ground, time_slot) DO UPDATE SET
				booking_id  = EXCLUDED.booking_id,
				allotted_to = EXCLUDED.allotted_to,
				roll_number = EXCLUDED.roll_number,
				purpose     = EXCLUDED.purpose,
				players     = EXCLUDED.players,
				updated_at  = now()`
	_, err := tx.ExecContext(
		ctx, query, newID(), winner.ID, winner.Date, winner.Ground, winner.TimeSlot,
		winner.StudentName, winner.RollNumber, winner.Purpose, winner.NumberOfPlayers,
	)
	if err != nil {
		return fmt.Errorf("upsert allotment: %w", err)
	}
	return nil
}

func (r *BookingRepository) Reject(ctx context.Context, id string) (*domain.Booking, error) {
	query := `UPDATE bookings SET status = $2, updated_at = now()
			  WHERE id = $1
			  RETURNING ` + bookingColumns

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, domain.BookingStatusRejected)
	if err != nil {
		return nil, fmt.Errorf("reject booking: %w", err)
	}

	return scanBooking(row)
}

// RejectExpired массово отклоняет Pending-заявки с прошедшей датой.
func (r *BookingRepository) RejectExpired(ctx context.Context, before time.Time) ([]*domain.Booking, error) {
	query := `UPDATE bookings SET status = $3, updated_at = now()
			  WHERE status = $2 AND date < $1
			  RETURNING ` + bookingColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query, before,
		domain.BookingStatusPending, domain.BookingStatusRejected,
	)
	if err != nil {
		return nil, fmt.Errorf("reject expired: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// HasRecentApproved — проверка кулдауна: есть ли у кого-то из emails
// утверждённая заявка с датой не раньше since (как организатор или игрок).
func (r *BookingRepository) HasRecentApproved(ctx context.Context, emails []string, since time.Time) (bool, error) {
	query := `SELECT EXISTS (
				SELECT 1 FROM bookings b
				LEFT JOIN players p ON p.booking_id = b.id
				WHERE b.status = $1 AND b.date >= $2
				  AND (b.student_email = ANY($3) OR p.email = ANY($3)))`

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusApproved, since, pq.Array(emails),
	)
	if err != nil {
		return false, fmt.Errorf("check recent approved: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan recent approved: %w", err)
	}

	return exists, nil
}

// pickTarget находит заявку в заблокированном наборе. Пустой результат
// означает, что заявку удалили между чтением ключа и захватом блокировок.
func pickTarget(bookings []*domain.Booking, id string) (*domain.Booking, error) {
	for _, b := range bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, domain.ErrBookingNotFound
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.ID, &b.StudentName, &b.StudentEmail, &b.RollNumber, &b.Ground, &b.Sport,
		&b.Date, &b.TimeSlot, &b.Purpose, &b.Equipment, &b.NumberOfPlayers,
		&b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}
	return &b, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, b)
	}
	return res, rows.Err()
}
