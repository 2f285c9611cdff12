package server

import (
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/interview-coach/internal/extraction"
	"github.com/jonathan/interview-coach/internal/session"
	"github.com/jonathan/interview-coach/internal/types"
)

// maxUploadBytes caps resume uploads at 10 MB.
const maxUploadBytes = 10 << 20

// ResumeSummary is the condensed parse result returned after upload.
type ResumeSummary struct {
	Skills          types.SkillProfile `json:"skills"`
	TotalSkills     int                `json:"total_skills"`
	ExperienceYears int                `json:"experience_years"`
	ProjectsFound   int                `json:"projects_found"`
}

// UploadResumeResponse is the response for /api/upload-resume.
type UploadResumeResponse struct {
	Success    bool          `json:"success"`
	SessionID  string        `json:"session_id"`
	ResumeData ResumeSummary `json:"resume_data"`
}

// SessionStatusResponse is the response for /api/session-status/{id}.
type SessionStatusResponse struct {
	Success bool `json:"success"`
	session.Status
}

// handleUploadResume parses an uploaded resume and opens a session.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing resume file")
		return
	}
	defer file.Close()

	format, ok := documentFormat(header.Header.Get("Content-Type"), header.Filename)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Only PDF and TXT files are supported")
		return
	}

	content, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read resume file")
		return
	}

	text, err := s.extractor.ExtractText(content, format)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Error parsing resume: "+err.Error())
		return
	}

	resume := s.resumes.Parse(text)
	sess := s.store.Create(resume)

	s.jsonResponse(w, http.StatusOK, UploadResumeResponse{
		Success:   true,
		SessionID: sess.ID.String(),
		ResumeData: ResumeSummary{
			Skills:          resume.Skills,
			TotalSkills:     resume.TotalSkills,
			ExperienceYears: resume.Experience.Years,
			ProjectsFound:   len(resume.Projects),
		},
	})
}

// handleSessionStatus reports session progress.
func (s *Server) handleSessionStatus(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessionFromPath(r)
	if err != nil {
		s.errorResponse(w, httpStatus(err), "Session not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, SessionStatusResponse{
		Success: true,
		Status:  sess.Snapshot(),
	})
}

// handleDeleteSession removes a session.
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusNotFound, "Session not found")
		return
	}

	if err := s.store.Delete(id); err != nil {
		s.errorResponse(w, httpStatus(err), "Session not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Session deleted",
	})
}

// sessionFromPath resolves the {id} path segment to a live session.
func (s *Server) sessionFromPath(r *http.Request) (*session.Session, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return nil, session.ErrSessionNotFound
	}
	return s.store.Get(id)
}

// documentFormat maps the upload's media type to a supported format, falling
// back to the filename extension when no content type is set.
func documentFormat(contentType, filename string) (extraction.DocumentFormat, bool) {
	if mediaType, _, found := strings.Cut(contentType, ";"); found || mediaType != "" {
		contentType = strings.TrimSpace(mediaType)
	}

	switch contentType {
	case "text/plain":
		return extraction.FormatPlainText, true
	case "application/pdf":
		return extraction.FormatPDF, true
	}

	switch {
	case strings.HasSuffix(strings.ToLower(filename), ".txt"):
		return extraction.FormatPlainText, true
	case strings.HasSuffix(strings.ToLower(filename), ".pdf"):
		return extraction.FormatPDF, true
	}

	return "", false
}
