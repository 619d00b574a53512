package entities_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/hiresphere-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/hiresphere-backend/internal/domain/errors"
	"github.com/rafabene/hiresphere-backend/internal/domain/valueobjects"
)

var _ = Describe("User", func() {
	var email valueobjects.Email

	BeforeEach(func() {
		var err error
		email, err = valueobjects.NewEmail("jane@example.com")
		Expect(err).NotTo(HaveOccurred())
	})

	DescribeTable("aceita telefones válidos",
		func(phone string) {
			_, err := entities.NewUser(email, "hash", entities.RoleJobSeeker, "Jane", "Doe", &phone)
			Expect(err).NotTo(HaveOccurred())
		},
		Entry("formato americano", "+1 (123) 456-7890"),
		Entry("com hífens", "123-456-7890"),
		Entry("formato britânico", "+44 20 1234 5678"),
	)

	It("rejeita telefone inválido", func() {
		phone := "call me"
		_, err := entities.NewUser(email, "hash", entities.RoleJobSeeker, "Jane", "Doe", &phone)
		Expect(err).To(MatchError(domainerrors.ErrValidation))
	})

	It("rejeita role inválido", func() {
		_, err := entities.NewUser(email, "hash", entities.Role(9), "Jane", "Doe", nil)
		Expect(err).To(MatchError(domainerrors.ErrValidation))
	})

	It("reseta a confirmação ao trocar o email", func() {
		user, err := entities.NewUser(email, "hash", entities.RoleJobSeeker, "Jane", "Doe", nil)
		Expect(err).NotTo(HaveOccurred())
		user.ConfirmEmail()

		other, _ := valueobjects.NewEmail("jane.doe@example.com")
		user.UpdateEmail(other)

		Expect(user.Email.String()).To(Equal("jane.doe@example.com"))
		Expect(user.IsEmailConfirmed).To(BeFalse())
		Expect(user.FullName()).To(Equal("Jane Doe"))
	})

	It("não altera o perfil quando os dados são inválidos", func() {
		user, err := entities.NewUser(email, "hash", entities.RoleJobSeeker, "Jane", "Doe", nil)
		Expect(err).NotTo(HaveOccurred())

		Expect(user.UpdateProfile("J", "Doe", nil)).To(MatchError(domainerrors.ErrValidation))
		Expect(user.Name).To(Equal("Jane"))
	})
})
