package entities

import (
	"strings"

	domainerrors "github.com/rafabene/hiresphere-backend/internal/domain/errors"
)

// ApplicationStatus é o estado de uma candidatura.
// Os valores numéricos são persistidos e expostos na API.
type ApplicationStatus int

const (
	StatusApplied   ApplicationStatus = 0
	StatusScreening ApplicationStatus = 1
	StatusInterview ApplicationStatus = 2
	StatusOffered   ApplicationStatus = 3
	StatusAccepted  ApplicationStatus = 4
	StatusRejected  ApplicationStatus = 5
	StatusWithdrawn ApplicationStatus = 6
)

var statusNames = [...]string{
	StatusApplied:   "Applied",
	StatusScreening: "Screening",
	StatusInterview: "Interview",
	StatusOffered:   "Offered",
	StatusAccepted:  "Accepted",
	StatusRejected:  "Rejected",
	StatusWithdrawn: "Withdrawn",
}

// allowedTransitions é a lista fechada de mudanças de status.
// Estados ausentes são terminais.
var allowedTransitions = map[ApplicationStatus][]ApplicationStatus{
	StatusApplied:   {StatusScreening, StatusRejected},
	StatusScreening: {StatusInterview, StatusRejected},
	StatusInterview: {StatusOffered, StatusRejected},
	StatusOffered:   {StatusAccepted, StatusRejected},
}

// AllApplicationStatuses lista todos os estados em ordem
func AllApplicationStatuses() []ApplicationStatus {
	return []ApplicationStatus{
		StatusApplied, StatusScreening, StatusInterview, StatusOffered,
		StatusAccepted, StatusRejected, StatusWithdrawn,
	}
}

func (s ApplicationStatus) String() string {
	if s.IsValid() {
		return statusNames[s]
	}
	return "Unknown"
}

// IsValid verifica se o status é conhecido
func (s ApplicationStatus) IsValid() bool {
	return s >= StatusApplied && s <= StatusWithdrawn
}

// IsTerminal indica que nenhuma transição sai deste estado
func (s ApplicationStatus) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0
}

// ParseApplicationStatus converte o nome de um status (case-insensitive)
func ParseApplicationStatus(name string) (ApplicationStatus, bool) {
	for i, n := range statusNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return ApplicationStatus(i), true
		}
	}
	return 0, false
}

// CanTransition verifica se current -> requested está permitido
func CanTransition(current, requested ApplicationStatus) bool {
	for _, next := range allowedTransitions[current] {
		if next == requested {
			return true
		}
	}
	return false
}

// TransitionStatus aplica a regra de transição sem efeitos colaterais.
// Retorna o novo status ou *errors.InvalidTransitionError.
func TransitionStatus(current, requested ApplicationStatus) (ApplicationStatus, error) {
	if !CanTransition(current, requested) {
		return current, &domainerrors.InvalidTransitionError{From: current.String(), To: requested.String()}
	}
	return requested, nil
}
