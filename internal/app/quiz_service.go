package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"quiz-widget/internal/domain"
	"quiz-widget/internal/widget"
)

// SessionRepository abstracts where live quiz sessions are kept (in-memory, Redis-marked, etc).
type SessionRepository interface {
	Put(session *Session)
	Get(sessionID string) (*Session, bool)
	Delete(sessionID string)
}

// QuestionSetRepository loads question sets (from cache/backing store).
type QuestionSetRepository interface {
	GetQuestionSet(ctx context.Context, setID string) (domain.QuestionSet, error)
}

// QuizService contains the quiz session use cases.
type QuizService struct {
	sessions SessionRepository
	sets     QuestionSetRepository
	logger   *zap.Logger
	newID    func() string
}

func NewQuizService(store SessionRepository, sets QuestionSetRepository, logger *zap.Logger) *QuizService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuizService{sessions: store, sets: sets, logger: logger, newID: uuid.NewString}
}

// NewSession is exported for infrastructure layers that need to seed sessions.
func NewSession(id string, set domain.QuestionSet) *Session {
	return NewSessionWithClock(id, set, time.Now)
}

// NewSessionWithClock is test-only for deterministic timestamps.
func NewSessionWithClock(id string, set domain.QuestionSet, now func() time.Time) *Session {
	s := &Session{
		id:          id,
		setID:       set.ID,
		createdAt:   now(),
		widget:      widget.New(set),
		subscribers: make(map[chan widget.View]struct{}),
	}
	// widget mutations only happen with s.mu held
	s.widget.OnChange(s.broadcastLocked)
	return s
}

// Start loads and validates a question set and opens a fresh session over it.
func (s *QuizService) Start(ctx context.Context, setID string) (*Session, widget.View, error) {
	set, err := s.sets.GetQuestionSet(ctx, setID)
	if err != nil {
		return nil, widget.View{}, err
	}
	if err := set.Validate(); err != nil {
		return nil, widget.View{}, fmt.Errorf("question set %s: %w", setID, err)
	}

	session := NewSession(s.newID(), set)
	s.sessions.Put(session)
	s.logger.Info("quiz session started",
		zap.String("session_id", session.id),
		zap.String("set_id", setID),
		zap.Int("questions", len(set.Questions)),
	)
	return session, session.view(), nil
}

// Select records the user's current choice without scoring it.
func (s *QuizService) Select(_ context.Context, sessionID, option string) (widget.View, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return widget.View{}, domain.ErrSessionNotFound
	}
	return session.selectOption(option)
}

// Submit scores the current selection and advances the session.
func (s *QuizService) Submit(_ context.Context, sessionID string) (widget.View, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return widget.View{}, domain.ErrSessionNotFound
	}
	v := session.submit()
	if v.Mode == widget.ModeCompleted {
		s.logger.Info("quiz session completed",
			zap.String("session_id", sessionID),
			zap.Int("score", v.Score),
			zap.Int("total", v.Total),
		)
	}
	return v, nil
}

// View returns the current frame of a session.
func (s *QuizService) View(_ context.Context, sessionID string) (widget.View, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return widget.View{}, domain.ErrSessionNotFound
	}
	return session.view(), nil
}

// Summary returns the score and answer log of a session.
func (s *QuizService) Summary(_ context.Context, sessionID string) (domain.Summary, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.Summary{}, domain.ErrSessionNotFound
	}
	return session.summary(), nil
}

// Subscribe returns a channel that receives a view after every change to the session.
// The caller must invoke the returned cancel function to avoid leaks.
func (s *QuizService) Subscribe(_ context.Context, sessionID string) (<-chan widget.View, func(), error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, nil, domain.ErrSessionNotFound
	}
	ch, cancel := session.subscribe()
	return ch, cancel, nil
}

// End discards the session.
func (s *QuizService) End(_ context.Context, sessionID string) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return
	}
	session.closeSubscribers()
	s.sessions.Delete(sessionID)
	s.logger.Debug("quiz session ended", zap.String("session_id", sessionID))
}

// Session is one live quiz attempt. All access to the widget goes through mu.
type Session struct {
	id        string
	setID     string
	createdAt time.Time

	mu          sync.Mutex
	widget      *widget.Widget
	subscribers map[chan widget.View]struct{}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// SetID returns the identifier of the question set being played.
func (s *Session) SetID() string { return s.setID }

// CreatedAt returns when the session was opened.
func (s *Session) CreatedAt() time.Time { return s.createdAt }

func (s *Session) selectOption(option string) (widget.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.widget.Select(option)
	return s.widget.View(), err
}

func (s *Session) submit() widget.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.widget.Submit()
}

func (s *Session) view() widget.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.widget.View()
}

func (s *Session) summary() domain.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.widget.State().Summary()
}

func (s *Session) subscribe() (<-chan widget.View, func()) {
	ch := make(chan widget.View, 8)

	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	ch <- s.widget.View() // buffer is empty, never blocks
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

func (s *Session) closeSubscribers() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for ch := range s.subscribers {
		delete(s.subscribers, ch)
		close(ch)
	}
}

func (s *Session) broadcastLocked(v widget.View) {
	for ch := range s.subscribers {
		select {
		case ch <- v:
		default:
			// slow subscriber: drop its oldest frame, it only needs the latest
			select {
			case <-ch:
			default:
			}
			ch <- v
		}
	}
}
