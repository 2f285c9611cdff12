// Package session holds in-memory interview session state. Sessions are
// keyed by UUID and live until deleted explicitly or, when a TTL is
// configured, until the background sweep removes them.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/interview-coach/internal/interview"
	"github.com/jonathan/interview-coach/internal/scoring"
	"github.com/jonathan/interview-coach/internal/types"
)

// Sentinel errors for session lookup and lifecycle preconditions.
var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrResumeNotUploaded   = errors.New("resume not uploaded yet")
	ErrJDNotAnalyzed       = errors.New("job description not analyzed yet")
	ErrInterviewNotStarted = errors.New("interview not started")
	ErrNoQuestionPending   = errors.New("no question to answer")
)

// AnswerRecord captures one submitted answer.
type AnswerRecord struct {
	QuestionNumber int    `json:"question_number"`
	Answer         string `json:"answer"`
	TimeTaken      int    `json:"time_taken"`
}

// Status is a point-in-time snapshot of session progress.
type Status struct {
	SessionID         string            `json:"session_id"`
	ResumeUploaded    bool              `json:"resume_uploaded"`
	JDAnalyzed        bool              `json:"jd_analyzed"`
	InterviewStarted  bool              `json:"interview_started"`
	QuestionsAnswered int               `json:"questions_answered"`
	CurrentDifficulty *types.Difficulty `json:"current_difficulty"`
}

// Session is the unit of interview state. Handlers that read or mutate more
// than one field must hold the session lock across the whole operation.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	Resume *types.ResumeProfile
	JD     *types.JDProfile
	Match  *types.SkillMatch

	Engine *interview.Engine
	Scorer *scoring.Scorer

	QuestionsAsked []types.Question
	AnswersGiven   []AnswerRecord
	Scores         []types.AnswerScore

	mu sync.Mutex
}

// Lock serializes access to the session state.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session lock.
func (s *Session) Unlock() { s.mu.Unlock() }

// AttachJD stores the analyzed job description and the computed skill match.
// The caller must hold the session lock.
func (s *Session) AttachJD(jd *types.JDProfile, match *types.SkillMatch) error {
	if s.Resume == nil {
		return ErrResumeNotUploaded
	}
	s.JD = jd
	s.Match = match
	return nil
}

// StartInterview wires the engine and scorer into the session. The caller
// must hold the session lock.
func (s *Session) StartInterview(engine *interview.Engine, scorer *scoring.Scorer) error {
	if s.Resume == nil {
		return ErrResumeNotUploaded
	}
	if s.JD == nil {
		return ErrJDNotAnalyzed
	}
	s.Engine = engine
	s.Scorer = scorer
	return nil
}

// CurrentQuestion returns the question awaiting an answer. The caller must
// hold the session lock.
func (s *Session) CurrentQuestion() (types.Question, error) {
	if s.Engine == nil || s.Scorer == nil {
		return types.Question{}, ErrInterviewNotStarted
	}
	if len(s.QuestionsAsked) == 0 {
		return types.Question{}, ErrNoQuestionPending
	}
	return s.QuestionsAsked[len(s.QuestionsAsked)-1], nil
}

// RecordAnswer appends the answer and its score to the session history. The
// caller must hold the session lock.
func (s *Session) RecordAnswer(record AnswerRecord, score types.AnswerScore) {
	s.AnswersGiven = append(s.AnswersGiven, record)
	s.Scores = append(s.Scores, score)
}

// OverallScores returns the overall score of every answered question in
// submission order. The caller must hold the session lock.
func (s *Session) OverallScores() []float64 {
	overall := make([]float64, len(s.Scores))
	for i, score := range s.Scores {
		overall[i] = score.Overall
	}
	return overall
}

// Snapshot reports session progress for the status endpoint.
func (s *Session) Snapshot() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := Status{
		SessionID:         s.ID.String(),
		ResumeUploaded:    s.Resume != nil,
		JDAnalyzed:        s.JD != nil,
		InterviewStarted:  s.Engine != nil,
		QuestionsAnswered: len(s.AnswersGiven),
	}
	if s.Engine != nil {
		d := s.Engine.Difficulty()
		status.CurrentDifficulty = &d
	}
	return status
}

// Config controls store behavior. A zero TTL or SweepInterval disables the
// background sweep and sessions live until deleted.
type Config struct {
	TTL           time.Duration
	SweepInterval time.Duration
}

// Store is a concurrency-safe registry of active sessions.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session

	ttl         time.Duration
	sweepTicker *time.Ticker
	sweepStop   chan struct{}
}

// NewStore creates a session store. When cfg enables expiry, a background
// goroutine sweeps out sessions older than the TTL.
func NewStore(cfg Config) *Store {
	s := &Store{
		sessions: make(map[uuid.UUID]*Session),
		ttl:      cfg.TTL,
	}

	if cfg.TTL > 0 && cfg.SweepInterval > 0 {
		s.sweepTicker = time.NewTicker(cfg.SweepInterval)
		s.sweepStop = make(chan struct{})
		go s.sweep()
	}

	return s
}

// Create registers a new session seeded with the parsed resume.
func (s *Store) Create(resume *types.ResumeProfile) *Session {
	sess := &Session{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		Resume:    resume,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess
}

// Get looks up a session by id.
func (s *Store) Get(id uuid.UUID) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Delete removes a session.
func (s *Store) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *Store) sweep() {
	for {
		select {
		case <-s.sweepTicker.C:
			s.sweepExpired()
		case <-s.sweepStop:
			return
		}
	}
}

func (s *Store) sweepExpired() {
	cutoff := time.Now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, sess := range s.sessions {
		if sess.CreatedAt.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}

// Stop halts the background sweep goroutine if one is running.
func (s *Store) Stop() {
	if s.sweepTicker != nil {
		s.sweepTicker.Stop()
	}
	if s.sweepStop != nil {
		close(s.sweepStop)
	}
}
