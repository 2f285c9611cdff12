package session

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-coach/internal/interview"
	"github.com/jonathan/interview-coach/internal/scoring"
	"github.com/jonathan/interview-coach/internal/taxonomy"
	"github.com/jonathan/interview-coach/internal/types"
)

func testResume() *types.ResumeProfile {
	return &types.ResumeProfile{Skills: types.SkillProfile{"languages": {"Go"}}}
}

func testEngine(t *testing.T) *interview.Engine {
	t.Helper()
	bank, err := taxonomy.LoadQuestionBank()
	require.NoError(t, err)
	return interview.NewEngine(bank, rand.New(rand.NewSource(1)))
}

func TestStore_CreateGetDelete(t *testing.T) {
	store := NewStore(Config{})
	defer store.Stop()

	sess := store.Create(testResume())
	assert.NotEqual(t, uuid.Nil, sess.ID)
	assert.False(t, sess.CreatedAt.IsZero())
	assert.Equal(t, 1, store.Len())

	got, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Same(t, sess, got)

	require.NoError(t, store.Delete(sess.ID))
	assert.Zero(t, store.Len())

	_, err = store.Get(sess.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, store.Delete(sess.ID), ErrSessionNotFound)
}

func TestStore_GetUnknownID(t *testing.T) {
	store := NewStore(Config{})
	defer store.Stop()

	_, err := store.Get(uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSession_LifecyclePreconditions(t *testing.T) {
	store := NewStore(Config{})
	defer store.Stop()

	sess := store.Create(testResume())
	sess.Lock()
	defer sess.Unlock()

	// The interview cannot start before the job description is analyzed.
	err := sess.StartInterview(testEngine(t), scoring.NewScorer())
	assert.ErrorIs(t, err, ErrJDNotAnalyzed)

	_, err = sess.CurrentQuestion()
	assert.ErrorIs(t, err, ErrInterviewNotStarted)

	require.NoError(t, sess.AttachJD(&types.JDProfile{}, &types.SkillMatch{}))
	require.NoError(t, sess.StartInterview(testEngine(t), scoring.NewScorer()))

	_, err = sess.CurrentQuestion()
	assert.ErrorIs(t, err, ErrNoQuestionPending)

	sess.QuestionsAsked = append(sess.QuestionsAsked, types.Question{Number: 1})
	q, err := sess.CurrentQuestion()
	require.NoError(t, err)
	assert.Equal(t, 1, q.Number)
}

func TestSession_AttachJDRequiresResume(t *testing.T) {
	sess := &Session{}
	sess.Lock()
	defer sess.Unlock()

	err := sess.AttachJD(&types.JDProfile{}, nil)
	assert.ErrorIs(t, err, ErrResumeNotUploaded)
}

func TestSession_RecordAnswerAndOverallScores(t *testing.T) {
	store := NewStore(Config{})
	defer store.Stop()

	sess := store.Create(testResume())
	sess.Lock()
	sess.RecordAnswer(AnswerRecord{QuestionNumber: 1, Answer: "a", TimeTaken: 40},
		types.AnswerScore{Overall: 62.5})
	sess.RecordAnswer(AnswerRecord{QuestionNumber: 2, Answer: "b", TimeTaken: 50},
		types.AnswerScore{Overall: 48})
	overall := sess.OverallScores()
	sess.Unlock()

	assert.Equal(t, []float64{62.5, 48}, overall)
	assert.Len(t, sess.AnswersGiven, 2)
}

func TestSession_Snapshot(t *testing.T) {
	store := NewStore(Config{})
	defer store.Stop()

	sess := store.Create(testResume())

	status := sess.Snapshot()
	assert.Equal(t, sess.ID.String(), status.SessionID)
	assert.True(t, status.ResumeUploaded)
	assert.False(t, status.JDAnalyzed)
	assert.False(t, status.InterviewStarted)
	assert.Zero(t, status.QuestionsAnswered)
	assert.Nil(t, status.CurrentDifficulty)

	sess.Lock()
	require.NoError(t, sess.AttachJD(&types.JDProfile{}, nil))
	require.NoError(t, sess.StartInterview(testEngine(t), scoring.NewScorer()))
	sess.Unlock()

	status = sess.Snapshot()
	assert.True(t, status.JDAnalyzed)
	assert.True(t, status.InterviewStarted)
	require.NotNil(t, status.CurrentDifficulty)
	assert.Equal(t, types.DifficultyEasy, *status.CurrentDifficulty)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	store := NewStore(Config{})
	defer store.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sess := store.Create(testResume())
			_, err := store.Get(sess.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, store.Len())
}

func TestStore_SweepRemovesExpiredSessions(t *testing.T) {
	store := NewStore(Config{TTL: 10 * time.Millisecond, SweepInterval: 5 * time.Millisecond})
	defer store.Stop()

	sess := store.Create(testResume())

	assert.Eventually(t, func() bool {
		_, err := store.Get(sess.ID)
		return err != nil
	}, time.Second, 5*time.Millisecond, "expired session should be swept")
}

func TestStore_NoSweepByDefault(t *testing.T) {
	store := NewStore(Config{})
	defer store.Stop()

	sess := store.Create(testResume())
	time.Sleep(20 * time.Millisecond)

	_, err := store.Get(sess.ID)
	assert.NoError(t, err, "sessions persist when no TTL is configured")
}
