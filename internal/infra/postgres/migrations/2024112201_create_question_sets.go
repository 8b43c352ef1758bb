package migrations

import (
	"context"
	_ "embed"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

// Migrations holds every schema change, applied in file-name order.
var Migrations = migrate.NewMigrations()

//go:embed 0001_create_question_sets.sql
var questionSetsDDL string

func init() {
	Migrations.MustRegister(createQuestionSets, dropQuestionSets)
}

// createQuestionSets adds the table sets are stored in: one JSONB document per set.
func createQuestionSets(ctx context.Context, db *bun.DB) error {
	_, err := db.ExecContext(ctx, questionSetsDDL)
	return err
}

func dropQuestionSets(ctx context.Context, db *bun.DB) error {
	_, err := db.NewDropTable().Table("question_sets").IfExists().Exec(ctx)
	return err
}
