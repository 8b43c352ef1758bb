package cli

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"quiz-widget/internal/app"
	"quiz-widget/internal/config"
	"quiz-widget/internal/infra/file"
	"quiz-widget/internal/infra/memory"
	pgloader "quiz-widget/internal/infra/postgres"
	redisinfra "quiz-widget/internal/infra/redis"
	"quiz-widget/internal/logger"
)

// deps is the wired object graph shared by the subcommands.
type deps struct {
	cfg     config.Config
	logger  *zap.Logger
	service *app.QuizService
	closers []func()
}

func (d *deps) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i]()
	}
	_ = d.logger.Sync()
}

// buildDeps picks storage from config: Postgres when a URL is set, otherwise
// the YAML sets file; Redis fronts both when an address is set. A non-empty
// setsFile overrides both Postgres and quiz.sets_file.
func buildDeps(ctx context.Context, configPath, setsFile string) (*deps, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.Env)
	if err != nil {
		return nil, err
	}
	d := &deps{cfg: cfg, logger: log}

	if setsFile != "" {
		cfg.Quiz.SetsFile = setsFile
	}
	var loader memory.Loader = file.NewLoader(cfg.Quiz.SetsFile)
	if cfg.Postgres.URL != "" && setsFile == "" {
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			d.Close()
			return nil, err
		}
		d.closers = append(d.closers, pool.Close)
		loader = pgloader.NewLoader(pool)
		log.Info("loading question sets from postgres")
	} else {
		log.Info("loading question sets from file", zap.String("path", cfg.Quiz.SetsFile))
	}

	var (
		sets  app.QuestionSetRepository
		store app.SessionRepository
	)
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		d.closers = append(d.closers, func() { _ = client.Close() })
		sets = redisinfra.NewQuestionSetRepository(client, loader, cfg.Quiz.TTL)
		store = redisinfra.NewSessionStore(client, cfg.Redis.TTL)
	} else {
		sets = memory.NewQuestionSetRepository(loader, cfg.Quiz.TTL)
		store = memory.NewSessionStore()
	}

	d.service = app.NewQuizService(store, sets, log)
	return d, nil
}
