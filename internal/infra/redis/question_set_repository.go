package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"quiz-widget/internal/domain"
)

// Loader fetches question sets from a backing store (file, Postgres, ...).
type Loader interface {
	LoadQuestionSet(ctx context.Context, setID string) (domain.QuestionSet, error)
}

// QuestionSetRepository caches whole question sets in Redis and falls back to a loader on cache miss.
// Sets are stored as JSON: SET quiz:set:{setID} {json} EX {ttl}
type QuestionSetRepository struct {
	client *redis.Client
	loader Loader
	ttl    time.Duration
	sf     singleflight.Group

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewQuestionSetRepository(client *redis.Client, loader Loader, ttl time.Duration) *QuestionSetRepository {
	return &QuestionSetRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *QuestionSetRepository) GetQuestionSet(ctx context.Context, setID string) (domain.QuestionSet, error) {
	if set, ok := r.fromCache(ctx, setID); ok {
		return set, nil
	}

	result, err, _ := r.sf.Do(setID, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		if set, ok := r.fromCache(ctx, setID); ok {
			return set, nil
		}

		set, err := r.loader.LoadQuestionSet(ctx, setID)
		if err != nil {
			return domain.QuestionSet{}, err
		}

		if raw, err := json.Marshal(set); err == nil {
			// best-effort fill; a failed write only costs a reload
			_ = r.client.Set(ctx, r.key(setID), raw, r.ttlWithJitter()).Err()
		}
		return set, nil
	})
	if err != nil {
		return domain.QuestionSet{}, err
	}
	return result.(domain.QuestionSet), nil
}

// Invalidate drops the cached copy of a set.
func (r *QuestionSetRepository) Invalidate(ctx context.Context, setID string) error {
	return r.client.Del(ctx, r.key(setID)).Err()
}

func (r *QuestionSetRepository) fromCache(ctx context.Context, setID string) (domain.QuestionSet, bool) {
	raw, err := r.client.Get(ctx, r.key(setID)).Bytes()
	if err != nil {
		return domain.QuestionSet{}, false
	}
	var set domain.QuestionSet
	if err := json.Unmarshal(raw, &set); err != nil {
		return domain.QuestionSet{}, false
	}
	return set, true
}

func (r *QuestionSetRepository) key(setID string) string {
	return "quiz:set:" + setID
}

func (r *QuestionSetRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
