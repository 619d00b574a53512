package middleware

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/hiresphere-backend/internal/infrastructure/i18n"
)

const (
	// LanguageContextKey guarda o idioma escolhido para a requisição
	LanguageContextKey = "language"
	// I18nServiceContextKey guarda o serviço de tradução
	I18nServiceContextKey = "i18n_service"
)

// I18nMiddleware escolhe o idioma das mensagens de cada requisição
type I18nMiddleware struct {
	i18nService *i18n.Service
}

// NewI18nMiddleware cria um novo I18nMiddleware
func NewI18nMiddleware(i18nService *i18n.Service) *I18nMiddleware {
	return &I18nMiddleware{
		i18nService: i18nService,
	}
}

// DetectLanguage resolve o idioma na ordem: ?lang=, Accept-Language
// (respeitando os pesos q) e idioma padrão. O resultado é devolvido em
// Content-Language.
func (m *I18nMiddleware) DetectLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := m.match(c.Query("lang"))
		if lang == "" {
			lang = m.parseAcceptLanguage(c.GetHeader("Accept-Language"))
		}
		if lang == "" {
			lang = m.i18nService.GetDefaultLanguage()
		}

		c.Set(LanguageContextKey, lang)
		c.Set(I18nServiceContextKey, m.i18nService)
		c.Header("Content-Language", lang)

		c.Next()
	}
}

type weightedLanguage struct {
	tag     string
	quality float64
}

// parseAcceptLanguage devolve o idioma suportado de maior peso.
// "fr,pt;q=0.9,en;q=0.8" -> "pt-BR"
func (m *I18nMiddleware) parseAcceptLanguage(header string) string {
	if strings.TrimSpace(header) == "" {
		return ""
	}

	var candidates []weightedLanguage
	for _, part := range strings.Split(header, ",") {
		tag, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		if tag == "" || tag == "*" {
			continue
		}

		quality := 1.0
		if value, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
			q, err := strconv.ParseFloat(value, 64)
			if err != nil {
				continue
			}
			quality = q
		}
		if quality <= 0 {
			continue
		}
		candidates = append(candidates, weightedLanguage{tag: tag, quality: quality})
	}

	// Empates mantêm a ordem do header
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].quality > candidates[j].quality
	})

	for _, candidate := range candidates {
		if lang := m.match(candidate.tag); lang != "" {
			return lang
		}
	}
	return ""
}

// match aceita o tag exato (sem diferenciar maiúsculas), a base dele
// (pt-PT -> pt) ou a primeira variante regional suportada (pt -> pt-BR)
func (m *I18nMiddleware) match(tag string) string {
	if tag == "" {
		return ""
	}

	supported := m.i18nService.GetSupportedLanguages()
	for _, lang := range supported {
		if strings.EqualFold(lang, tag) {
			return lang
		}
	}

	base, _, _ := strings.Cut(tag, "-")
	for _, lang := range supported {
		if strings.EqualFold(lang, base) {
			return lang
		}
	}
	for _, lang := range supported {
		if langBase, _, _ := strings.Cut(lang, "-"); strings.EqualFold(langBase, base) {
			return lang
		}
	}
	return ""
}

// Language retorna o idioma escolhido para a requisição
func Language(c *gin.Context) string {
	if lang := c.GetString(LanguageContextKey); lang != "" {
		return lang
	}
	return "en"
}

// Translate traduz uma chave no idioma da requisição. Sem serviço de
// tradução no contexto a própria chave é devolvida.
func Translate(c *gin.Context, key string, params ...map[string]interface{}) string {
	value, ok := c.Get(I18nServiceContextKey)
	if !ok {
		return key
	}
	service, ok := value.(*i18n.Service)
	if !ok {
		return key
	}
	return service.T(Language(c), key, params...)
}
