package valueobjects

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slugify gera um slug URL-safe: minúsculas, acentos removidos ("Ação" vira
// "acao"), sequências de caracteres que não são letra nem dígito viram um
// único hífen, sem hífens nas pontas. Letras de outros alfabetos são
// mantidas, então "Дизайн" e "Маркетинг" geram slugs distintos.
// Retorna "category" quando nada sobra.
func Slugify(name string) string {
	folded, _, err := transform.String(accentFolder(), strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		folded = strings.ToLower(strings.TrimSpace(name))
	}

	var b strings.Builder
	pendingHyphen := false

	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}

	if b.Len() == 0 {
		return "category"
	}
	return b.String()
}

// accentFolder decompõe (NFD), descarta as marcas combinantes e recompõe
func accentFolder() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}
