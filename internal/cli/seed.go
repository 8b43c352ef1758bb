package cli

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"quiz-widget/internal/config"
	"quiz-widget/internal/infra/file"
	"quiz-widget/internal/infra/postgres"
	redisinfra "quiz-widget/internal/infra/redis"
	"quiz-widget/internal/logger"
)

// NewSeedCmd loads question sets from a YAML file into Postgres.
func NewSeedCmd(configPath *string) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Validate a question sets file and upsert it into Postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), *configPath, path)
		},
	}
	cmd.Flags().StringVar(&path, "file", "", "question sets YAML (defaults to quiz.sets_file)")
	return cmd
}

func runSeed(ctx context.Context, configPath, path string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Env)
	if err != nil {
		return err
	}
	defer log.Sync()

	if path == "" {
		path = cfg.Quiz.SetsFile
	}
	sets, err := file.LoadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	if err := runMigrationsWithConfig(ctx, cfg, log); err != nil {
		return err
	}

	db := postgres.OpenBun(cfg.Postgres.URL)
	defer db.Close()
	if err := postgres.NewSeeder(db).Upsert(ctx, sets...); err != nil {
		return err
	}
	log.Info("question sets seeded", zap.String("file", path), zap.Int("sets", len(sets)))

	if cfg.Redis.Addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer client.Close()
	cache := redisinfra.NewQuestionSetRepository(client, nil, cfg.Quiz.TTL)
	for _, set := range sets {
		if err := cache.Invalidate(ctx, set.ID); err != nil {
			log.Warn("failed to invalidate cached set", zap.String("set_id", set.ID), zap.Error(err))
		}
	}
	return nil
}
