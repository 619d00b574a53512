package entities_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/hiresphere-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/hiresphere-backend/internal/domain/errors"
)

var allowed = map[entities.ApplicationStatus][]entities.ApplicationStatus{
	entities.StatusApplied:   {entities.StatusScreening, entities.StatusRejected},
	entities.StatusScreening: {entities.StatusInterview, entities.StatusRejected},
	entities.StatusInterview: {entities.StatusOffered, entities.StatusRejected},
	entities.StatusOffered:   {entities.StatusAccepted, entities.StatusRejected},
}

func isAllowed(from, to entities.ApplicationStatus) bool {
	for _, s := range allowed[from] {
		if s == to {
			return true
		}
	}
	return false
}

var _ = Describe("ApplicationStatus", func() {
	Describe("TransitionStatus", func() {
		It("aceita exatamente as transições permitidas", func() {
			for _, from := range entities.AllApplicationStatuses() {
				for _, to := range entities.AllApplicationStatuses() {
					next, err := entities.TransitionStatus(from, to)
					if isAllowed(from, to) {
						Expect(err).NotTo(HaveOccurred(), "%s -> %s", from, to)
						Expect(next).To(Equal(to))
					} else {
						Expect(err).To(HaveOccurred(), "%s -> %s", from, to)
						Expect(next).To(Equal(from))
					}
				}
			}
		})

		DescribeTable("rejeita transições fora da lista",
			func(from, to entities.ApplicationStatus) {
				_, err := entities.TransitionStatus(from, to)

				var transitionErr *domainerrors.InvalidTransitionError
				Expect(errors.As(err, &transitionErr)).To(BeTrue())
				Expect(transitionErr.From).To(Equal(from.String()))
				Expect(err.Error()).To(ContainSubstring("from " + from.String()))
			},
			Entry("pular etapas", entities.StatusApplied, entities.StatusOffered),
			Entry("voltar etapas", entities.StatusInterview, entities.StatusScreening),
			Entry("mesma etapa", entities.StatusScreening, entities.StatusScreening),
			Entry("sair de Accepted", entities.StatusAccepted, entities.StatusRejected),
			Entry("sair de Rejected", entities.StatusRejected, entities.StatusScreening),
			Entry("sair de Withdrawn", entities.StatusWithdrawn, entities.StatusApplied),
			Entry("ir para Withdrawn", entities.StatusApplied, entities.StatusWithdrawn),
		)

		It("marca Accepted, Rejected e Withdrawn como terminais", func() {
			Expect(entities.StatusAccepted.IsTerminal()).To(BeTrue())
			Expect(entities.StatusRejected.IsTerminal()).To(BeTrue())
			Expect(entities.StatusWithdrawn.IsTerminal()).To(BeTrue())
			Expect(entities.StatusOffered.IsTerminal()).To(BeFalse())
		})
	})

	Describe("ParseApplicationStatus", func() {
		It("converte nomes sem diferenciar maiúsculas", func() {
			status, ok := entities.ParseApplicationStatus("interview")
			Expect(ok).To(BeTrue())
			Expect(status).To(Equal(entities.StatusInterview))
		})

		It("rejeita nomes desconhecidos", func() {
			_, ok := entities.ParseApplicationStatus("Hired")
			Expect(ok).To(BeFalse())
		})
	})
})
