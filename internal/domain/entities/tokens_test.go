package entities_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/hiresphere-backend/internal/domain/entities"
)

var _ = Describe("RefreshToken", func() {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	It("é válido até expirar", func() {
		token := entities.NewRefreshToken("user-1", "opaque", now, 7*24*time.Hour)
		Expect(token.IsActive(now)).To(BeTrue())
		Expect(token.IsActive(now.Add(7*24*time.Hour - time.Second))).To(BeTrue())
		Expect(token.IsActive(now.Add(7 * 24 * time.Hour))).To(BeFalse())
	})

	It("deixa de ser válido quando revogado", func() {
		token := entities.NewRefreshToken("user-1", "opaque", now, time.Hour)
		token.Revoke()
		Expect(token.IsActive(now)).To(BeFalse())
	})
})

var _ = Describe("PasswordResetToken", func() {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	It("só pode ser usado uma vez", func() {
		token := entities.NewPasswordResetToken("user-1", "opaque", now, time.Hour)
		Expect(token.IsValid(now)).To(BeTrue())
		token.MarkUsed()
		Expect(token.IsValid(now)).To(BeFalse())
	})
})
