package entities_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/hiresphere-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/hiresphere-backend/internal/domain/errors"
)

var _ = Describe("Category", func() {
	It("gera o slug a partir do nome", func() {
		category, err := entities.NewCategory("  Data Science ")
		Expect(err).NotTo(HaveOccurred())
		Expect(category.Name).To(Equal("Data Science"))
		Expect(category.Slug).To(Equal("data-science"))
	})

	It("regenera o slug ao renomear", func() {
		category, err := entities.NewCategory("Software Engineering")
		Expect(err).NotTo(HaveOccurred())
		Expect(category.UpdateName("Machine Learning")).To(Succeed())
		Expect(category.Slug).To(Equal("machine-learning"))
	})

	It("mantém letras acentuadas e de outros alfabetos no slug", func() {
		acao, err := entities.NewCategory("Ação")
		Expect(err).NotTo(HaveOccurred())
		Expect(acao.Slug).To(Equal("acao"))

		marketing, err := entities.NewCategory("Маркетинг")
		Expect(err).NotTo(HaveOccurred())
		sales, err := entities.NewCategory("Продажи")
		Expect(err).NotTo(HaveOccurred())

		Expect(marketing.Slug).To(Equal("маркетинг"))
		Expect(sales.Slug).To(Equal("продажи"))
		Expect(marketing.Slug).NotTo(Equal(sales.Slug))
	})

	DescribeTable("rejeita nomes inválidos",
		func(name string) {
			_, err := entities.NewCategory(name)
			Expect(err).To(MatchError(domainerrors.ErrValidation))
		},
		Entry("muito curto", "A"),
		Entry("muito longo", strings.Repeat("a", 101)),
		Entry("caracteres especiais", "Cloud & DevOps"),
	)
})
