package valueobjects

import "unicode"

// MinPasswordLength é o tamanho mínimo de senha
const MinPasswordLength = 8

// MaxPasswordLength limita a entrada do bcrypt (72 bytes)
const MaxPasswordLength = 72

// IsComplexPassword verifica se a senha tem ao menos 8 caracteres com
// maiúscula, minúscula, dígito e símbolo.
func IsComplexPassword(password string) bool {
	if len(password) < MinPasswordLength || len(password) > MaxPasswordLength {
		return false
	}

	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}

	return upper && lower && digit && symbol
}
