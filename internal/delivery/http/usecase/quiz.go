package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/evandrarf/wordbook-be/internal/delivery/http/entity"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrSessionNotFound = errors.New("quiz session not found")

type QuizUsecase interface {
	StartQuiz(ctx context.Context, set string) (*entity.QuizView, error)
	GetQuiz(ctx context.Context, sessionID string) (*entity.QuizView, error)
	SubmitAnswer(ctx context.Context, sessionID string, answer string) (*entity.QuizAnswerResponse, error)
	Advance(ctx context.Context, sessionID string) (*entity.QuizView, error)
	PressKey(ctx context.Context, sessionID string, key string) (*entity.QuizView, error)
	Hint(ctx context.Context, sessionID string) (*entity.QuizHintResponse, error)
	ResetQuiz(ctx context.Context, sessionID string) (*entity.QuizView, error)
}

type QuizConfig struct {
	Vocabulary     VocabularyUsecase
	Hints          HintGenerator // nil disables AI hints
	PromptTemplate string
	SessionTTL     time.Duration
	AcknowledgeKey string
	Log            *logrus.Logger
	// Now and NewRand are overridable in tests
	Now     func() time.Time
	NewRand func() *rand.Rand
}

type quizEntry struct {
	set      string
	session  *QuizSession
	lastSeen time.Time
}

type quizUsecase struct {
	cfg QuizConfig

	mu       sync.Mutex
	sessions map[string]*quizEntry
}

func NewQuizUsecase(cfg QuizConfig) QuizUsecase {
	if cfg.PromptTemplate == "" {
		cfg.PromptTemplate = defaultHintPromptTemplate
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 30 * time.Minute
	}
	if cfg.AcknowledgeKey == "" {
		cfg.AcknowledgeKey = DefaultAcknowledgeKey
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.NewRand == nil {
		cfg.NewRand = func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		}
	}
	return &quizUsecase{
		cfg:      cfg,
		sessions: make(map[string]*quizEntry),
	}
}

func (u *quizUsecase) StartQuiz(ctx context.Context, set string) (*entity.QuizView, error) {
	pool, err := u.cfg.Vocabulary.Pool(ctx, set)
	if err != nil {
		return nil, err
	}

	session := NewQuizSession(pool, u.cfg.NewRand())
	if err := session.Start(); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	now := u.cfg.Now()

	u.mu.Lock()
	u.evictExpired(now)
	u.sessions[id] = &quizEntry{set: set, session: session, lastSeen: now}
	u.mu.Unlock()

	u.cfg.Log.WithFields(logrus.Fields{"session_id": id, "set": set, "pool": session.PoolSize()}).Info("quiz started")

	view := buildQuizView(id, set, session)
	return &view, nil
}

func (u *quizUsecase) evictExpired(now time.Time) {
	for id, e := range u.sessions {
		if now.Sub(e.lastSeen) > u.cfg.SessionTTL {
			delete(u.sessions, id)
		}
	}
}

// withSession runs fn while holding the registry lock.
func (u *quizUsecase) withSession(sessionID string, fn func(e *quizEntry) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	now := u.cfg.Now()
	e, ok := u.sessions[sessionID]
	if !ok || now.Sub(e.lastSeen) > u.cfg.SessionTTL {
		delete(u.sessions, sessionID)
		return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	e.lastSeen = now
	return fn(e)
}

func (u *quizUsecase) GetQuiz(_ context.Context, sessionID string) (*entity.QuizView, error) {
	var view entity.QuizView
	err := u.withSession(sessionID, func(e *quizEntry) error {
		view = buildQuizView(sessionID, e.set, e.session)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (u *quizUsecase) SubmitAnswer(_ context.Context, sessionID string, answer string) (*entity.QuizAnswerResponse, error) {
	var res entity.QuizAnswerResponse
	err := u.withSession(sessionID, func(e *quizEntry) error {
		result, err := e.session.Submit(answer)
		if err != nil {
			return err
		}
		res.Result = result
		res.Quiz = buildQuizView(sessionID, e.set, e.session)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (u *quizUsecase) Advance(_ context.Context, sessionID string) (*entity.QuizView, error) {
	var view entity.QuizView
	err := u.withSession(sessionID, func(e *quizEntry) error {
		if err := e.session.Advance(); err != nil {
			return err
		}
		view = buildQuizView(sessionID, e.set, e.session)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// PressKey forwards a key event; unrelated keys leave the session as is.
func (u *quizUsecase) PressKey(_ context.Context, sessionID string, key string) (*entity.QuizView, error) {
	var view entity.QuizView
	err := u.withSession(sessionID, func(e *quizEntry) error {
		e.session.HandleKey(key, u.cfg.AcknowledgeKey)
		view = buildQuizView(sessionID, e.set, e.session)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (u *quizUsecase) Hint(ctx context.Context, sessionID string) (*entity.QuizHintResponse, error) {
	var word entity.WordRecord
	err := u.withSession(sessionID, func(e *quizEntry) error {
		if e.session.State() != entity.QuizStateAwaitingInput {
			return ErrInvalidTransition
		}
		word, _ = e.session.Current()
		return nil
	})
	if err != nil {
		return nil, err
	}

	// the model call happens outside the registry lock
	res := &entity.QuizHintResponse{SessionID: sessionID}
	if u.cfg.Hints != nil {
		raw, err := u.cfg.Hints.GenerateJSON(ctx, buildHintPrompt(u.cfg.PromptTemplate, word.Definition, word.Term))
		if err == nil {
			if hint, ok := parseHint(raw, word.Term); ok {
				res.Hint = hint
				res.Source = HintSourceAI
				return res, nil
			}
			u.cfg.Log.WithField("session_id", sessionID).Warn("AI hint rejected, using fallback")
		} else {
			u.cfg.Log.WithError(err).WithField("session_id", sessionID).Warn("AI hint failed, using fallback")
		}
	}

	res.Hint = fallbackHint(word.Term)
	res.Source = HintSourceFallback
	return res, nil
}

// ResetQuiz clears the session and forgets it; a new run needs StartQuiz.
func (u *quizUsecase) ResetQuiz(_ context.Context, sessionID string) (*entity.QuizView, error) {
	var view entity.QuizView
	err := u.withSession(sessionID, func(e *quizEntry) error {
		e.session.Reset()
		view = buildQuizView(sessionID, e.set, e.session)
		delete(u.sessions, sessionID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func buildQuizView(sessionID, set string, s *QuizSession) entity.QuizView {
	view := entity.QuizView{
		SessionID: sessionID,
		Set:       set,
		State:     s.State(),
		Score:     s.Score(),
		Served:    s.Used(),
		Total:     s.PoolSize(),
	}
	if word, ok := s.Current(); ok {
		view.Definition = word.Definition
		if s.State() == entity.QuizStateAwaitingAcknowledgement {
			view.CorrectAnswer = word.Term
		}
	}
	if s.State() == entity.QuizStateFinished {
		view.IncorrectAnswers = s.IncorrectAnswers()
	}
	return view
}
