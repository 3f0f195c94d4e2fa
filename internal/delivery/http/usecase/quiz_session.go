package usecase

import (
	"errors"
	"math/rand"
	"strings"

	"github.com/evandrarf/wordbook-be/internal/delivery/http/entity"
)

var (
	ErrEmptyPool         = errors.New("no words available")
	ErrInvalidTransition = errors.New("invalid quiz transition")
)

const DefaultAcknowledgeKey = "Enter"

// QuizSession is one quiz run over a fixed pool of words. It is not safe for
// concurrent use.
type QuizSession struct {
	pool []entity.WordRecord
	rnd  *rand.Rand

	// indices into pool not served yet; drawn with swap-remove
	remaining []int
	usedIDs   map[int]struct{}
	current   *entity.WordRecord
	score     int
	incorrect []entity.WordRecord
	state     entity.QuizState
}

// NewQuizSession snapshots pool. Records repeating an earlier id are ignored
// so that every id is served at most once.
func NewQuizSession(pool []entity.WordRecord, rnd *rand.Rand) *QuizSession {
	snapshot := make([]entity.WordRecord, 0, len(pool))
	seen := make(map[int]struct{}, len(pool))
	for _, w := range pool {
		if _, dup := seen[w.ID]; dup {
			continue
		}
		seen[w.ID] = struct{}{}
		snapshot = append(snapshot, w)
	}

	s := &QuizSession{pool: snapshot, rnd: rnd}
	s.Reset()
	return s
}

// Start serves the first question. An empty pool leaves the session untouched
// and returns ErrEmptyPool.
func (s *QuizSession) Start() error {
	if s.state != entity.QuizStateNotStarted {
		return ErrInvalidTransition
	}
	if len(s.pool) == 0 {
		return ErrEmptyPool
	}

	s.remaining = make([]int, len(s.pool))
	for i := range s.remaining {
		s.remaining[i] = i
	}
	s.usedIDs = make(map[int]struct{}, len(s.pool))
	s.score = 0
	s.incorrect = nil
	s.serveNext()
	return nil
}

// Submit checks answer against the current term, ignoring case but not
// surrounding whitespace. A correct answer moves straight on to the next
// question; a wrong one waits for acknowledgement.
func (s *QuizSession) Submit(answer string) (entity.QuizAnswerResult, error) {
	if s.state != entity.QuizStateAwaitingInput {
		return entity.QuizAnswerResult{}, ErrInvalidTransition
	}

	word := *s.current
	result := entity.QuizAnswerResult{
		Correct:       strings.EqualFold(answer, word.Term),
		CorrectAnswer: word.Term,
	}

	if result.Correct {
		s.score++
		s.serveNext()
	} else {
		s.incorrect = append(s.incorrect, word)
		s.state = entity.QuizStateAwaitingAcknowledgement
	}
	return result, nil
}

// Advance moves past a wrongly answered question.
func (s *QuizSession) Advance() error {
	if s.state != entity.QuizStateAwaitingAcknowledgement {
		return ErrInvalidTransition
	}
	s.serveNext()
	return nil
}

// HandleKey advances when key is the acknowledge key and the session is
// waiting for acknowledgement. Any other key or state is ignored.
func (s *QuizSession) HandleKey(key, acknowledgeKey string) bool {
	if key != acknowledgeKey || s.state != entity.QuizStateAwaitingAcknowledgement {
		return false
	}
	s.serveNext()
	return true
}

// Reset returns to NotStarted and clears everything but the pool.
func (s *QuizSession) Reset() {
	s.remaining = nil
	s.usedIDs = make(map[int]struct{})
	s.current = nil
	s.score = 0
	s.incorrect = nil
	s.state = entity.QuizStateNotStarted
}

func (s *QuizSession) serveNext() {
	if len(s.remaining) == 0 {
		s.current = nil
		s.state = entity.QuizStateFinished
		return
	}

	k := s.rnd.Intn(len(s.remaining))
	idx := s.remaining[k]
	last := len(s.remaining) - 1
	s.remaining[k] = s.remaining[last]
	s.remaining = s.remaining[:last]

	word := s.pool[idx]
	s.current = &word
	s.usedIDs[word.ID] = struct{}{}
	s.state = entity.QuizStateAwaitingInput
}

func (s *QuizSession) State() entity.QuizState {
	return s.state
}

// Current returns the word being asked, if any.
func (s *QuizSession) Current() (entity.WordRecord, bool) {
	if s.current == nil {
		return entity.WordRecord{}, false
	}
	return *s.current, true
}

func (s *QuizSession) Score() int {
	return s.score
}

func (s *QuizSession) Used() int {
	return len(s.usedIDs)
}

func (s *QuizSession) WasUsed(id int) bool {
	_, ok := s.usedIDs[id]
	return ok
}

func (s *QuizSession) PoolSize() int {
	return len(s.pool)
}

func (s *QuizSession) IncorrectAnswers() []entity.WordRecord {
	out := make([]entity.WordRecord, len(s.incorrect))
	copy(out, s.incorrect)
	return out
}
