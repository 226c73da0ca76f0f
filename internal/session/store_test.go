package session

import (
	"math/rand"
	"testing"
	"time"

	"github.com/e-zhenka/letter-exam-bot/internal/domain"

	"github.com/stretchr/testify/assert"
)

func testWords() []domain.VocabularyEntry {
	return []domain.VocabularyEntry{
		{ID: 1, UserID: 42, Incorrect: "recieve", Correct: "receive", Translation: "получать"},
		{ID: 2, UserID: 42, Incorrect: "adress", Correct: "address", Translation: "адрес"},
		{ID: 3, UserID: 42, Incorrect: "wich", Correct: "which", Translation: "который"},
	}
}

func newTestStore(ttl time.Duration) *Store {
	return NewStore(ttl, rand.New(rand.NewSource(1)))
}

func TestStore_Create(t *testing.T) {
	store := newTestStore(15 * time.Minute)
	words := testWords()

	sess := store.Create(42, words)

	assert.Equal(t, int64(42), sess.UserID)
	assert.Equal(t, 0, sess.Cursor)
	assert.Equal(t, 0, sess.Correct)
	assert.Equal(t, 3, sess.Total)
	assert.ElementsMatch(t, words, sess.Words)
}

func TestStore_Create_SnapshotIsCopy(t *testing.T) {
	store := newTestStore(15 * time.Minute)
	words := testWords()

	sess := store.Create(42, words)

	// Mutating the caller's slice must not affect the session snapshot
	words[0].Correct = "mutated"

	got, exists := store.Get(42)
	assert.True(t, exists)
	assert.ElementsMatch(t, sess.Words, got.Words)
	for _, w := range got.Words {
		assert.NotEqual(t, "mutated", w.Correct)
	}
}

func TestStore_Create_OverwritesExisting(t *testing.T) {
	store := newTestStore(15 * time.Minute)

	store.Create(42, testWords())
	store.Mutate(42, func(sess *domain.TrainingSession) bool {
		sess.Cursor = 2
		return true
	})

	second := store.Create(42, testWords()[:1])

	got, exists := store.Get(42)
	assert.True(t, exists)
	assert.Equal(t, 0, got.Cursor)
	assert.Equal(t, second.Total, got.Total)
	assert.Equal(t, 1, got.Total)
}

func TestStore_GetAbsent(t *testing.T) {
	store := newTestStore(15 * time.Minute)

	_, exists := store.Get(42)

	assert.False(t, exists)
}

func TestStore_Mutate(t *testing.T) {
	store := newTestStore(15 * time.Minute)
	store.Create(42, testWords())

	exists := store.Mutate(42, func(sess *domain.TrainingSession) bool {
		sess.Cursor = 1
		sess.Correct = 1
		return true
	})

	assert.True(t, exists)

	got, exists := store.Get(42)
	assert.True(t, exists)
	assert.Equal(t, 1, got.Cursor)
	assert.Equal(t, 1, got.Correct)
}

func TestStore_Mutate_Absent(t *testing.T) {
	store := newTestStore(15 * time.Minute)

	exists := store.Mutate(42, func(sess *domain.TrainingSession) bool {
		t.Fatal("fn must not run without a session")
		return true
	})

	assert.False(t, exists)
}

func TestStore_Mutate_Expired(t *testing.T) {
	store := newTestStore(15 * time.Minute)
	store.Create(42, testWords())

	current := time.Now()
	store.now = func() time.Time { return current.Add(16 * time.Minute) }

	exists := store.Mutate(42, func(sess *domain.TrainingSession) bool {
		t.Fatal("fn must not run on an expired session")
		return true
	})

	assert.False(t, exists)
	_, exists = store.Get(42)
	assert.False(t, exists)
}

func TestStore_Mutate_RemovesWhenNotKept(t *testing.T) {
	store := newTestStore(15 * time.Minute)
	store.Create(42, testWords())

	exists := store.Mutate(42, func(sess *domain.TrainingSession) bool {
		return false
	})

	assert.True(t, exists)
	_, exists = store.Get(42)
	assert.False(t, exists)
}

func TestStore_Remove(t *testing.T) {
	store := newTestStore(15 * time.Minute)
	store.Create(42, testWords())

	store.Remove(42)

	_, exists := store.Get(42)
	assert.False(t, exists)

	// Removing an absent session is a no-op
	store.Remove(42)
}

func TestStore_Get_ExpiresIdleSession(t *testing.T) {
	store := newTestStore(15 * time.Minute)
	store.Create(42, testWords())

	current := time.Now()
	store.now = func() time.Time { return current.Add(16 * time.Minute) }

	_, exists := store.Get(42)
	assert.False(t, exists)
}

func TestStore_Mutate_RefreshesActivity(t *testing.T) {
	store := newTestStore(15 * time.Minute)
	store.Create(42, testWords())

	current := time.Now()
	store.now = func() time.Time { return current.Add(10 * time.Minute) }
	store.Mutate(42, func(sess *domain.TrainingSession) bool { return true })

	// 14 minutes after the mutation, still within the idle window
	store.now = func() time.Time { return current.Add(24 * time.Minute) }

	_, exists := store.Get(42)
	assert.True(t, exists)
}

func TestStore_Sweep(t *testing.T) {
	store := newTestStore(15 * time.Minute)
	store.Create(1, testWords())
	store.Create(2, testWords())

	current := time.Now()
	store.now = func() time.Time { return current.Add(20 * time.Minute) }
	store.Create(3, testWords())

	removed := store.Sweep()

	assert.Equal(t, 2, removed)

	_, exists := store.Get(3)
	assert.True(t, exists)
}

func TestStore_SeededShuffleIsDeterministic(t *testing.T) {
	a := NewStore(15*time.Minute, rand.New(rand.NewSource(7)))
	b := NewStore(15*time.Minute, rand.New(rand.NewSource(7)))

	sessA := a.Create(42, testWords())
	sessB := b.Create(42, testWords())

	assert.Equal(t, sessA.Words, sessB.Words)
}
