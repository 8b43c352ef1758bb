package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"quiz-widget/internal/domain"
)

type questionSetRow struct {
	bun.BaseModel `bun:"table:question_sets"`

	ID        string             `bun:"id,pk"`
	Title     string             `bun:"title"`
	Data      domain.QuestionSet `bun:"data,type:jsonb"`
	UpdatedAt time.Time          `bun:"updated_at"`
}

// OpenBun opens a bun handle over the pgdriver connector.
func OpenBun(dsn string) *bun.DB {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	return bun.NewDB(sqldb, pgdialect.New())
}

// Seeder writes validated question sets into Postgres.
type Seeder struct {
	db  *bun.DB
	now func() time.Time
}

func NewSeeder(db *bun.DB) *Seeder {
	return &Seeder{db: db, now: time.Now}
}

// Upsert inserts or replaces each set. Sets are validated first; nothing is
// written if any of them is invalid.
func (s *Seeder) Upsert(ctx context.Context, sets ...domain.QuestionSet) error {
	for _, set := range sets {
		if set.ID == "" {
			return fmt.Errorf("%w: question set without id", domain.ErrInvalidQuestion)
		}
		if err := set.Validate(); err != nil {
			return fmt.Errorf("question set %s: %w", set.ID, err)
		}
	}

	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for _, set := range sets {
			row := &questionSetRow{
				ID:        set.ID,
				Title:     set.Title,
				Data:      set,
				UpdatedAt: s.now(),
			}
			_, err := tx.NewInsert().
				Model(row).
				On("CONFLICT (id) DO UPDATE").
				Set("title = EXCLUDED.title").
				Set("data = EXCLUDED.data").
				Set("updated_at = EXCLUDED.updated_at").
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("upsert question set %s: %w", set.ID, err)
			}
		}
		return nil
	})
}
