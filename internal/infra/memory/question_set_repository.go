package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"quiz-widget/internal/domain"
)

// Loader fetches question sets from a backing store (file, Postgres, ...).
type Loader interface {
	LoadQuestionSet(ctx context.Context, setID string) (domain.QuestionSet, error)
}

// QuestionSetRepository caches question sets with TTL to avoid repeated loads.
type QuestionSetRepository struct {
	loader Loader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group

	mu    sync.RWMutex
	rnd   *rand.Rand
	cache map[string]cachedSet
}

type cachedSet struct {
	set       domain.QuestionSet
	expiresAt time.Time
}

func NewQuestionSetRepository(loader Loader, ttl time.Duration) *QuestionSetRepository {
	return &QuestionSetRepository{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		cache:  make(map[string]cachedSet),
	}
}

func (r *QuestionSetRepository) GetQuestionSet(ctx context.Context, setID string) (domain.QuestionSet, error) {
	if set, ok := r.cached(setID); ok {
		return set, nil
	}

	result, err, _ := r.sf.Do(setID, func() (interface{}, error) {
		if set, ok := r.cached(setID); ok {
			return set, nil
		}

		set, err := r.loader.LoadQuestionSet(ctx, setID)
		if err != nil {
			return domain.QuestionSet{}, err
		}

		r.mu.Lock()
		r.cache[setID] = cachedSet{
			set:       set,
			expiresAt: r.clock().Add(r.ttlWithJitterLocked()),
		}
		r.mu.Unlock()
		return set, nil
	})
	if err != nil {
		return domain.QuestionSet{}, err
	}
	return result.(domain.QuestionSet), nil
}

func (r *QuestionSetRepository) cached(setID string) (domain.QuestionSet, bool) {
	now := r.clock()
	r.mu.RLock()
	defer r.mu.RUnlock()
	if entry, ok := r.cache[setID]; ok && entry.expiresAt.After(now) {
		return entry.set, true
	}
	return domain.QuestionSet{}, false
}

// ttlWithJitterLocked adds up to 10% jitter to spread expirations. r.mu must be held.
func (r *QuestionSetRepository) ttlWithJitterLocked() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}

// StaticLoader is a simple loader backed by an in-memory map (useful for tests/demos).
type StaticLoader struct {
	sets map[string]domain.QuestionSet
}

func NewStaticLoader(sets map[string]domain.QuestionSet) *StaticLoader {
	return &StaticLoader{sets: sets}
}

func (l *StaticLoader) LoadQuestionSet(_ context.Context, setID string) (domain.QuestionSet, error) {
	if set, ok := l.sets[setID]; ok {
		return set, nil
	}
	return domain.QuestionSet{}, domain.ErrQuestionSetNotFound
}
