package session

import (
	"math/rand"
	"sync"
	"time"

	"github.com/e-zhenka/letter-exam-bot/internal/domain"
)

// Store keeps at most one training session per user.
// Sessions idle longer than ttl are dropped lazily on access
// and by the periodic Sweep.
type Store struct {
	mu       sync.Mutex
	sessions map[int64]domain.TrainingSession
	ttl      time.Duration
	rnd      *rand.Rand
	now      func() time.Time
}

// NewStore creates a session store. The rand source is used to
// shuffle word snapshots; tests pass a seeded one.
func NewStore(ttl time.Duration, rnd *rand.Rand) *Store {
	return &Store{
		sessions: make(map[int64]domain.TrainingSession),
		ttl:      ttl,
		rnd:      rnd,
		now:      time.Now,
	}
}

// Create starts a session over a shuffled copy of words,
// replacing any session the user already has.
func (s *Store) Create(userID int64, words []domain.VocabularyEntry) domain.TrainingSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]domain.VocabularyEntry, len(words))
	copy(snapshot, words)
	s.rnd.Shuffle(len(snapshot), func(i, j int) {
		snapshot[i], snapshot[j] = snapshot[j], snapshot[i]
	})

	sess := domain.TrainingSession{
		UserID:       userID,
		Words:        snapshot,
		Cursor:       0,
		Correct:      0,
		Total:        len(snapshot),
		LastActivity: s.now(),
	}
	s.sessions[userID] = sess
	return sess
}

// Get returns the user's session. An idle-expired session is
// removed and reported absent.
func (s *Store) Get(userID int64) (domain.TrainingSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, exists := s.sessions[userID]
	if !exists {
		return domain.TrainingSession{}, false
	}
	if s.now().Sub(sess.LastActivity) > s.ttl {
		delete(s.sessions, userID)
		return domain.TrainingSession{}, false
	}
	return sess, true
}

// Mutate runs fn on the user's session inside one critical section,
// so a read-modify-write cannot interleave with another handler
// goroutine for the same user. fn returns whether to keep the session:
// true writes it back with refreshed activity, false removes it.
// Mutate reports whether a live session existed.
func (s *Store) Mutate(userID int64, fn func(sess *domain.TrainingSession) (keep bool)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, exists := s.sessions[userID]
	if !exists {
		return false
	}
	if s.now().Sub(sess.LastActivity) > s.ttl {
		delete(s.sessions, userID)
		return false
	}

	if fn(&sess) {
		sess.LastActivity = s.now()
		s.sessions[userID] = sess
	} else {
		delete(s.sessions, userID)
	}
	return true
}

// Remove drops the user's session. Removing an absent session is a no-op.
func (s *Store) Remove(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// Sweep removes all idle-expired sessions and returns how many were dropped.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	now := s.now()
	for userID, sess := range s.sessions {
		if now.Sub(sess.LastActivity) > s.ttl {
			delete(s.sessions, userID)
			removed++
		}
	}
	return removed
}
