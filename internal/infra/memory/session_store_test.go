package memory

import (
	"testing"

	"quiz-widget/internal/app"
	"quiz-widget/internal/domain"
)

func TestSessionStoreLifecycle(t *testing.T) {
	store := NewSessionStore()

	store.Put(app.NewSession("s1", sampleSet()))
	session, ok := store.Get("s1")
	if !ok || session.ID() != "s1" {
		t.Fatalf("expected session present")
	}
	if store.Len() != 1 {
		t.Fatalf("expected 1 session, got %d", store.Len())
	}

	store.Delete("s1")
	if _, ok := store.Get("s1"); ok {
		t.Fatalf("expected session removed")
	}
	store.Delete("s1")
}

func TestSessionStoreKeepsSessionsApart(t *testing.T) {
	store := NewSessionStore()
	store.Put(app.NewSession("a", sampleSet()))
	store.Put(app.NewSession("b", domain.QuestionSet{ID: "other"}))

	a, _ := store.Get("a")
	b, _ := store.Get("b")
	if a.SetID() != "set-1" || b.SetID() != "other" {
		t.Fatalf("sessions mixed up: %s %s", a.SetID(), b.SetID())
	}
}
