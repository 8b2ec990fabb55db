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

type UserRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.StudentUser, passwordHash string) error {
	query := `INSERT INTO student_users
				(id, email, password_hash, name, roll_number, branch, year, division, telegram_chat_id, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		user.ID, user.Email, passwordHash, user.Name, user.RollNumber,
		user.Branch, user.Year, user.Division, user.TelegramChatID, user.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert student: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.StudentUser, error) {
	query := `SELECT id, email, name, roll_number, branch, year, division, telegram_chat_id, created_at
			  FROM student_users
			  WHERE email = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, email)
	if err != nil {
		return nil, fmt.Errorf("get student: %w", err)
	}

	var u domain.StudentUser
	if err = row.Scan(
		&u.ID, &u.Email, &u.Name, &u.RollNumber,
		&u.Branch, &u.Year, &u.Division, &u.TelegramChatID, &u.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, fmt.Errorf("scan student: %w", err)
	}

	return &u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.StudentUser, error) {
	query := `SELECT id, email, name, roll_number, branch, year, division, telegram_chat_id, created_at
			  FROM student_users
			  ORDER BY roll_number`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer rows.Close()

	var res []*domain.StudentUser
	for rows.Next() {
		var u domain.StudentUser
		if err = rows.Scan(
			&u.ID, &u.Email, &u.Name, &u.RollNumber,
			&u.Branch, &u.Year, &u.Division, &u.TelegramChatID, &u.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		res = append(res, &u)
	}

	return res, rows.Err()
}
