package entities_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/hiresphere-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/hiresphere-backend/internal/domain/errors"
)

var _ = Describe("Company", func() {
	It("adiciona http:// ao site sem esquema", func() {
		company, err := entities.NewCompany("owner-1", entities.CompanyDetails{
			Name:    "Acme",
			Website: ptr("acme.example.com"),
		}, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(*company.Website).To(Equal("http://acme.example.com"))
	})

	DescribeTable("rejeita sites inválidos",
		func(website string) {
			_, err := entities.NewCompany("owner-1", entities.CompanyDetails{Name: "Acme", Website: &website}, nil)
			Expect(err).To(MatchError(domainerrors.ErrValidation))
		},
		Entry("com espaço", "invalid url"),
		Entry("só esquema", "http://"),
		Entry("prefixo incompleto", "www."),
	)

	It("aceita logo nulo e rejeita logo inválido", func() {
		company, err := entities.NewCompany("owner-1", entities.CompanyDetails{Name: "Acme"}, ptr("https://cdn.example.com/logo.png"))
		Expect(err).NotTo(HaveOccurred())

		Expect(company.UpdateLogoURL(ptr("logo.png"))).To(MatchError(domainerrors.ErrValidation))
		Expect(*company.LogoURL).To(Equal("https://cdn.example.com/logo.png"))

		Expect(company.UpdateLogoURL(nil)).To(Succeed())
		Expect(company.LogoURL).To(BeNil())
	})

	It("permite gestão apenas pelo dono ou admin", func() {
		company, err := entities.NewCompany("owner-1", entities.CompanyDetails{Name: "Acme"}, nil)
		Expect(err).NotTo(HaveOccurred())

		Expect(company.CanBeManagedBy(entities.Actor{UserID: "owner-1", Role: entities.RoleEmployer})).To(BeTrue())
		Expect(company.CanBeManagedBy(entities.Actor{UserID: "other", Role: entities.RoleEmployer})).To(BeFalse())
		Expect(company.CanBeManagedBy(entities.Actor{UserID: "admin", Role: entities.RoleAdmin})).To(BeTrue())
	})
})
