package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Turn is one user utterance with everything the pipeline produced for it.
// Immutable once appended.
type Turn struct {
	Seq      int
	Question string
	Query    string
	Context  string
	Answer   string
}

// Entity is the subject the conversation is currently about, used to
// resolve vague follow-ups.
type Entity struct {
	Type string
	Name string
}

// Session holds all conversation state for one logical conversation.
// Methods are safe for concurrent use; a single conversation is still
// processed one turn at a time.
type Session struct {
	ID string

	mu            sync.RWMutex
	turns         []Turn
	entity        Entity
	cache         map[string]string
	firstQuestion string
	lastActive    time.Time
}

func New() *Session {
	return &Session{
		ID:         uuid.NewString(),
		cache:      make(map[string]string),
		lastActive: time.Now(),
	}
}

func (s *Session) Touch() {
	s.mu.Lock()
	s.lastActive = time.Now()
	s.mu.Unlock()
}

func (s *Session) LastActive() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastActive
}

// AppendTurn stores a completed turn and captures the first question once.
func (s *Session) AppendTurn(t Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.Seq = len(s.turns) + 1
	s.turns = append(s.turns, t)
	if s.firstQuestion == "" {
		s.firstQuestion = t.Question
	}
	s.lastActive = time.Now()
}

// Window returns a copy of the last n turns, oldest first.
func (s *Session) Window(n int) []Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if n <= 0 || len(s.turns) == 0 {
		return nil
	}
	start := len(s.turns) - n
	if start < 0 {
		start = 0
	}
	out := make([]Turn, len(s.turns)-start)
	copy(out, s.turns[start:])
	return out
}

func (s *Session) TurnCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.turns)
}

func (s *Session) FirstQuestion() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.firstQuestion
}

func (s *Session) Entity() Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entity
}

// SetEntity overwrites the tracked entity; later specific turns win.
func (s *Session) SetEntity(e Entity) {
	s.mu.Lock()
	s.entity = e
	s.mu.Unlock()
}

// CachedContext returns previously retrieved text for the exact question
// string. Keys are not normalized, so near-duplicates never hit.
func (s *Session) CachedContext(question string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	text, ok := s.cache[question]
	return text, ok
}

// CacheContext stores retrieved text under the literal question. Write-once:
// an existing key is left alone. The cache is never evicted or invalidated.
func (s *Session) CacheContext(question, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cache[question]; ok {
		return
	}
	s.cache[question] = text
}
