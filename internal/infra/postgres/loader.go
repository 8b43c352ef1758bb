package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"quiz-widget/internal/domain"
)

// Loader loads question set JSONB from Postgres.
type Loader struct {
	pool *pgxpool.Pool
}

func NewLoader(pool *pgxpool.Pool) *Loader {
	return &Loader{pool: pool}
}

func (l *Loader) LoadQuestionSet(ctx context.Context, setID string) (domain.QuestionSet, error) {
	var raw []byte
	err := l.pool.QueryRow(ctx, `SELECT data FROM question_sets WHERE id=$1`, setID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.QuestionSet{}, fmt.Errorf("%w: %s", domain.ErrQuestionSetNotFound, setID)
	}
	if err != nil {
		return domain.QuestionSet{}, fmt.Errorf("load question set: %w", err)
	}
	var set domain.QuestionSet
	if err := json.Unmarshal(raw, &set); err != nil {
		return domain.QuestionSet{}, fmt.Errorf("unmarshal question set: %w", err)
	}
	if set.ID == "" {
		set.ID = setID
	}
	return set, nil
}
