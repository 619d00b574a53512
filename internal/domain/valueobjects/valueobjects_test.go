package valueobjects

import (
	"errors"
	"strings"
	"testing"

	domainerrors "github.com/rafabene/hiresphere-backend/internal/domain/errors"
)

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"email válido", "john@example.com", "john@example.com", false},
		{"normaliza maiúsculas e espaços", "  John.Doe@Example.COM ", "john.doe@example.com", false},
		{"sem arroba", "john.example.com", "", true},
		{"sem domínio", "john@", "", true},
		{"vazio", "", "", true},
		{"maior que 100 caracteres", strings.Repeat("a", 95) + "@x.com", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := NewEmail(tt.input)
			if tt.wantErr {
				if !errors.Is(err, domainerrors.ErrInvalidEmail) {
					t.Fatalf("esperava ErrInvalidEmail, obteve %v", err)
				}
				if !email.IsZero() {
					t.Errorf("esperava email vazio em caso de erro")
				}
				return
			}
			if err != nil {
				t.Fatalf("esperava sucesso, obteve erro: %v", err)
			}
			if email.String() != tt.expected {
				t.Errorf("esperava '%s', obteve '%s'", tt.expected, email.String())
			}
		})
	}
}

func TestIsComplexPassword(t *testing.T) {
	tests := []struct {
		password string
		expected bool
	}{
		{"Str0ng!Pass", true},
		{"Aa1!aaaa", true},
		{"short1!", false},
		{"alllowercase1!", false},
		{"ALLUPPERCASE1!", false},
		{"NoDigits!!", false},
		{"NoSymbols123", false},
		{strings.Repeat("Aa1!", 20), false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			if got := IsComplexPassword(tt.password); got != tt.expected {
				t.Errorf("IsComplexPassword(%q) = %v, esperava %v", tt.password, got, tt.expected)
			}
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Data Science", "data-science"},
		{"Software Engineering", "software-engineering"},
		{"  Front-End   Development  ", "front-end-development"},
		{"DevOps -- Cloud", "devops-cloud"},
		{"Web3", "web3"},
		{"Ação Social", "acao-social"},
		{"Tecnologia da Informação", "tecnologia-da-informacao"},
		{"Diseño Gráfico", "diseno-grafico"},
		{"Маркетинг", "маркетинг"},
		{"Продажи B2B", "продажи-b2b"},
		{"---", "category"},
		{"", "category"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.expected {
				t.Errorf("Slugify(%q) = %q, esperava %q", tt.input, got, tt.expected)
			}
		})
	}
}
