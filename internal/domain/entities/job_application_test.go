package entities_test

import (
	"errors"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/hiresphere-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/hiresphere-backend/internal/domain/errors"
)

var _ = Describe("JobApplication", func() {
	var (
		now         time.Time
		application *entities.JobApplication
	)

	BeforeEach(func() {
		now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		var err error
		application, err = entities.NewJobApplication("job-1", "user-1", "https://cv.example.com/me.pdf", nil, now)
		Expect(err).NotTo(HaveOccurred())
	})

	It("sempre começa em Applied", func() {
		Expect(application.Status).To(Equal(entities.StatusApplied))
		Expect(application.AppliedAt).To(Equal(now))
	})

	It("percorre o fluxo completo até Accepted", func() {
		for _, next := range []entities.ApplicationStatus{
			entities.StatusScreening, entities.StatusInterview, entities.StatusOffered, entities.StatusAccepted,
		} {
			Expect(application.ChangeStatus(next)).To(Succeed())
			Expect(application.Status).To(Equal(next))
		}
	})

	It("mantém o status quando a transição é inválida", func() {
		err := application.ChangeStatus(entities.StatusAccepted)
		Expect(err).To(HaveOccurred())
		Expect(application.Status).To(Equal(entities.StatusApplied))
	})

	It("rejeita URL de currículo inválida", func() {
		_, err := entities.NewJobApplication("job-1", "user-1", "not a url", nil, now)
		Expect(errors.Is(err, domainerrors.ErrValidation)).To(BeTrue())
	})

	Describe("AddCoverLetter", func() {
		It("rejeita carta vazia", func() {
			Expect(application.AddCoverLetter("   ")).To(MatchError(domainerrors.ErrValidation))
			Expect(application.CoverLetter).To(BeNil())
		})

		It("rejeita carta com mais de 2000 caracteres", func() {
			Expect(application.AddCoverLetter(strings.Repeat("a", 2001))).To(MatchError(domainerrors.ErrValidation))
		})

		It("aceita carta com exatamente 2000 caracteres", func() {
			Expect(application.AddCoverLetter(strings.Repeat("a", 2000))).To(Succeed())
			Expect(*application.CoverLetter).To(HaveLen(2000))
		})
	})
})
