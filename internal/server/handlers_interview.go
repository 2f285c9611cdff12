package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/interview-coach/internal/extraction"
	"github.com/jonathan/interview-coach/internal/interview"
	"github.com/jonathan/interview-coach/internal/session"
	"github.com/jonathan/interview-coach/internal/types"
)

// JDAnalysis is the condensed job description analysis.
type JDAnalysis struct {
	RequiredSkills      types.SkillProfile `json:"required_skills"`
	TotalRequiredSkills int                `json:"total_required_skills"`
	ExperienceRequired  int                `json:"experience_required"`
	RoleLevel           types.RoleLevel    `json:"role_level"`
}

// AnalyzeJDResponse is the response for /api/analyze-jd.
type AnalyzeJDResponse struct {
	Success    bool             `json:"success"`
	JDAnalysis JDAnalysis       `json:"jd_analysis"`
	SkillMatch types.SkillMatch `json:"skill_match"`
}

// StartInterviewResponse is the response for /api/start-interview.
type StartInterviewResponse struct {
	Success      bool           `json:"success"`
	QuestionData types.Question `json:"question_data"`
}

// SubmitAnswerRequest is the JSON body for /api/submit-answer.
type SubmitAnswerRequest struct {
	SessionID string `json:"session_id" validate:"required,uuid"`
	Answer    string `json:"answer"`
	TimeTaken int    `json:"time_taken"`
}

// SubmitAnswerResponse is the response for /api/submit-answer. NextQuestion
// and DifficultyAdjusted are set while the interview continues, FinalResults
// once it completes.
type SubmitAnswerResponse struct {
	Success            bool               `json:"success"`
	CurrentScore       types.AnswerScore  `json:"current_score"`
	InterviewComplete  bool               `json:"interview_complete"`
	NextQuestion       *types.Question    `json:"next_question,omitempty"`
	DifficultyAdjusted *bool              `json:"difficulty_adjusted,omitempty"`
	FinalResults       *types.FinalReport `json:"final_results,omitempty"`
}

// handleAnalyzeJD parses the job description and computes the skill match
// against the session's resume.
func (s *Server) handleAnalyzeJD(w http.ResponseWriter, r *http.Request) {
	sessionID := r.FormValue("session_id")
	jdText := r.FormValue("jd_text")
	if sessionID == "" || jdText == "" {
		s.errorResponse(w, http.StatusBadRequest, "session_id and jd_text are required")
		return
	}

	sess, err := s.sessionByID(sessionID)
	if err != nil {
		s.errorResponse(w, httpStatus(err), "Session not found")
		return
	}

	jd := s.jds.Parse(jdText)

	sess.Lock()
	defer sess.Unlock()

	if sess.Resume == nil {
		s.errorResponse(w, http.StatusBadRequest, "Resume not uploaded yet")
		return
	}

	match := extraction.ComputeSkillMatch(sess.Resume.Skills, jd.RequiredSkills)
	if err := sess.AttachJD(jd, &match); err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, AnalyzeJDResponse{
		Success: true,
		JDAnalysis: JDAnalysis{
			RequiredSkills:      jd.RequiredSkills,
			TotalRequiredSkills: jd.TotalRequiredSkills,
			ExperienceRequired:  jd.ExperienceRequired,
			RoleLevel:           jd.RoleLevel,
		},
		SkillMatch: match,
	})
}

// handleStartInterview initializes the engine and returns the first question.
func (s *Server) handleStartInterview(w http.ResponseWriter, r *http.Request) {
	sessionID := r.FormValue("session_id")
	if sessionID == "" {
		s.errorResponse(w, http.StatusBadRequest, "session_id is required")
		return
	}

	sess, err := s.sessionByID(sessionID)
	if err != nil {
		s.errorResponse(w, httpStatus(err), "Session not found")
		return
	}

	sess.Lock()
	defer sess.Unlock()

	if err := sess.StartInterview(s.newEngine(), s.scorer); err != nil {
		s.errorResponse(w, httpStatus(err), "Resume and JD must be uploaded before starting interview")
		return
	}

	question, err := sess.Engine.ConductInterview(sess.Resume, sess.JD)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Error starting interview: "+err.Error())
		return
	}
	sess.QuestionsAsked = append(sess.QuestionsAsked, *question)

	s.jsonResponse(w, http.StatusOK, StartInterviewResponse{
		Success:      true,
		QuestionData: *question,
	})
}

// handleSubmitAnswer scores the pending answer and either continues with the
// next question or closes the interview with the final report. Early
// termination is checked before the question cap.
func (s *Server) handleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var req SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	sess, err := s.sessionByID(req.SessionID)
	if err != nil {
		s.errorResponse(w, httpStatus(err), "Session not found")
		return
	}

	sess.Lock()
	defer sess.Unlock()

	current, err := sess.CurrentQuestion()
	if err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}

	score := sess.Scorer.ScoreAnswer(current.Text, req.Answer, current.ExpectedTopics,
		req.TimeTaken, interview.TimeLimitSeconds)
	sess.RecordAnswer(session.AnswerRecord{
		QuestionNumber: current.Number,
		Answer:         req.Answer,
		TimeTaken:      req.TimeTaken,
	}, score)

	overall := sess.OverallScores()

	switch {
	case sess.Engine.ShouldTerminateEarly(overall):
		report := sess.Scorer.CalculateFinalScore(sess.Scores)
		report.EarlyTermination = true
		report.TerminationReason = "Performance below threshold"
		s.jsonResponse(w, http.StatusOK, SubmitAnswerResponse{
			Success:           true,
			CurrentScore:      score,
			InterviewComplete: true,
			FinalResults:      &report,
		})

	case sess.Engine.MaxReached():
		report := sess.Scorer.CalculateFinalScore(sess.Scores)
		s.jsonResponse(w, http.StatusOK, SubmitAnswerResponse{
			Success:           true,
			CurrentScore:      score,
			InterviewComplete: true,
			FinalResults:      &report,
		})

	default:
		newDifficulty := sess.Engine.AdjustDifficulty(overall)
		next, err := sess.Engine.ConductInterview(sess.Resume, sess.JD)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Error processing answer: "+err.Error())
			return
		}
		sess.QuestionsAsked = append(sess.QuestionsAsked, *next)

		adjusted := newDifficulty != current.Difficulty
		s.jsonResponse(w, http.StatusOK, SubmitAnswerResponse{
			Success:            true,
			CurrentScore:       score,
			InterviewComplete:  false,
			NextQuestion:       next,
			DifficultyAdjusted: &adjusted,
		})
	}
}

// sessionByID resolves a session id string to a live session.
func (s *Server) sessionByID(raw string) (*session.Session, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, session.ErrSessionNotFound
	}
	return s.store.Get(id)
}
