package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sanosuguru/go-event-calendar/internal/domain/registration"
)

type registrationRow struct {
	EventID      string    `db:"event_id"`
	PersonID     string    `db:"person_id"`
	RegisteredAt time.Time `db:"registered_at"`
}

// RegistrationRepository は参加登録リポジトリのPostgreSQL実装
type RegistrationRepository struct {
	db *sqlx.DB
}

// NewRegistrationRepository はRegistrationRepositoryを作成する
func NewRegistrationRepository(db *sqlx.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// Create は参加登録を記録する
func (r *RegistrationRepository) Create(ctx context.Context, reg *registration.Registration) error {
	query := `INSERT INTO registrations (event_id, person_id, registered_at) VALUES ($1, $2, $3)`
	if _, err := r.db.ExecContext(ctx, query, reg.EventID, reg.PersonID, reg.RegisteredAt); err != nil {
		if isUniqueViolation(err) {
			return registration.ErrDuplicateRegistration
		}
		return fmt.Errorf("参加登録の作成に失敗しました: %w", err)
	}
	return nil
}

// Delete は参加登録を削除する
func (r *RegistrationRepository) Delete(ctx context.Context, eventID, personID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM registrations WHERE event_id = $1 AND person_id = $2`, eventID, personID)
	if err != nil {
		return fmt.Errorf("参加登録の削除に失敗しました: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("削除結果の確認に失敗しました: %w", err)
	}
	if rowsAffected == 0 {
		return registration.ErrRegistrationNotFound
	}
	return nil
}

// List は参加登録を登録順に取得する
func (r *RegistrationRepository) List(ctx context.Context) ([]*registration.Registration, error) {
	var rows []registrationRow
	if err := r.db.SelectContext(ctx, &rows,
		`SELECT event_id, person_id, registered_at FROM registrations ORDER BY seq`); err != nil {
		return nil, fmt.Errorf("参加登録一覧取得に失敗しました: %w", err)
	}

	regs := make([]*registration.Registration, len(rows))
	for i, row := range rows {
		regs[i] = &registration.Registration{
			EventID:      row.EventID,
			PersonID:     row.PersonID,
			RegisteredAt: row.RegisteredAt,
		}
	}
	return regs, nil
}

// インターフェースを満たしているか確認
var _ registration.Repository = (*RegistrationRepository)(nil)
