package entities

import (
	"strings"
	"time"
	"unicode/utf8"

	domainerrors "github.com/rafabene/hiresphere-backend/internal/domain/errors"
)

// MaxCoverLetterLength limita a carta de apresentação
const MaxCoverLetterLength = 2000

// JobApplication é a candidatura de um JobSeeker a uma vaga
type JobApplication struct {
	ID              string
	JobID           string
	ApplicantUserID string
	ResumeURL       string
	CoverLetter     *string
	Status          ApplicationStatus
	AppliedAt       time.Time
}

// NewJobApplication cria uma candidatura no estado Applied
func NewJobApplication(jobID, applicantUserID, resumeURL string, coverLetter *string, now time.Time) (*JobApplication, error) {
	a := &JobApplication{
		JobID:           jobID,
		ApplicantUserID: applicantUserID,
		Status:          StatusApplied,
		AppliedAt:       now.UTC(),
	}

	if err := a.UpdateResumeURL(resumeURL); err != nil {
		return nil, err
	}
	if coverLetter != nil {
		if err := a.AddCoverLetter(*coverLetter); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// ChangeStatus aplica a transição; em caso de erro o status não muda
func (a *JobApplication) ChangeStatus(requested ApplicationStatus) error {
	next, err := TransitionStatus(a.Status, requested)
	if err != nil {
		return err
	}
	a.Status = next
	return nil
}

// AddCoverLetter define a carta de apresentação
func (a *JobApplication) AddCoverLetter(coverLetter string) error {
	letter := strings.TrimSpace(coverLetter)
	if letter == "" {
		return domainerrors.NewValidationError("coverLetter", "validation.required")
	}
	if utf8.RuneCountInString(letter) > MaxCoverLetterLength {
		return domainerrors.NewValidationError("coverLetter", "validation.max_length", map[string]interface{}{"Max": MaxCoverLetterLength})
	}
	a.CoverLetter = &letter
	return nil
}

// UpdateResumeURL valida e define o link do currículo
func (a *JobApplication) UpdateResumeURL(resumeURL string) error {
	resumeURL = strings.TrimSpace(resumeURL)
	if !isAbsoluteHTTPURL(resumeURL) {
		return domainerrors.NewValidationError("resumeUrl", "validation.url")
	}
	a.ResumeURL = resumeURL
	return nil
}

// IsOwnedBy verifica se o usuário é o candidato
func (a *JobApplication) IsOwnedBy(userID string) bool {
	return a.ApplicantUserID == userID
}
