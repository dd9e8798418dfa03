package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sanosuguru/go-event-calendar/internal/domain/person"
)

// personRow はDBの行を表す構造体
type personRow struct {
	ID          string    `db:"id"`
	LastName    string    `db:"last_name"`
	FirstName   string    `db:"first_name"`
	MailAddress string    `db:"mail_address"`
	PhoneNumber string    `db:"phone_number"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r *personRow) toEntity() *person.Person {
	return &person.Person{
		ID:          r.ID,
		LastName:    r.LastName,
		FirstName:   r.FirstName,
		MailAddress: r.MailAddress,
		PhoneNumber: r.PhoneNumber,
		EventIDs:    []string{},
		CreatedAt:   r.CreatedAt,
	}
}

// PersonRepository は人物リポジトリのPostgreSQL実装
type PersonRepository struct {
	db *sqlx.DB
}

// NewPersonRepository はPersonRepositoryを作成する
func NewPersonRepository(db *sqlx.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

// Create は人物を記録する
func (r *PersonRepository) Create(ctx context.Context, p *person.Person) error {
	query := `
		INSERT INTO persons (id, last_name, first_name, mail_address, phone_number, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := r.db.ExecContext(ctx, query,
		p.ID, p.LastName, p.FirstName, p.MailAddress, p.PhoneNumber, p.CreatedAt,
	); err != nil {
		return fmt.Errorf("人物の作成に失敗しました: %w", err)
	}
	return nil
}

// List は人物を記録順に取得する
func (r *PersonRepository) List(ctx context.Context) ([]*person.Person, error) {
	query := `SELECT id, last_name, first_name, mail_address, phone_number, created_at FROM persons ORDER BY seq`

	var rows []personRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("人物一覧取得に失敗しました: %w", err)
	}

	persons := make([]*person.Person, len(rows))
	for i := range rows {
		persons[i] = rows[i].toEntity()
	}
	return persons, nil
}

// インターフェースを満たしているか確認
var _ person.Repository = (*PersonRepository)(nil)
