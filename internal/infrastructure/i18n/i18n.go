package i18n

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
	"text/template"
)

//go:embed locales/*.json
var embeddedLocales embed.FS

// Service gerencia traduções e internacionalização
type Service struct {
	mu              sync.RWMutex
	translations    map[string]map[string]string // [language][key]message
	templates       map[string]*template.Template
	defaultLanguage string
}

// NewService carrega os arquivos JSON de localesDir.
// Com localesDir vazio usa os locales embutidos no binário.
func NewService(localesDir, defaultLang string) (*Service, error) {
	if localesDir == "" {
		return NewServiceFS(embeddedLocales, "locales", defaultLang)
	}
	return NewServiceFS(os.DirFS(localesDir), ".", defaultLang)
}

// NewEmbeddedService usa os locales embutidos no binário
func NewEmbeddedService(defaultLang string) (*Service, error) {
	return NewServiceFS(embeddedLocales, "locales", defaultLang)
}

// NewServiceFS carrega os arquivos <lang>.json do diretório dir em fsys
func NewServiceFS(fsys fs.FS, dir, defaultLang string) (*Service, error) {
	s := &Service{
		translations:    make(map[string]map[string]string),
		templates:       make(map[string]*template.Template),
		defaultLanguage: defaultLang,
	}

	files, err := fs.Glob(fsys, path.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to find locale files: %w", err)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no locale files found in %s", dir)
	}

	for _, file := range files {
		lang := strings.TrimSuffix(path.Base(file), ".json")

		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read locale file %s: %w", file, err)
		}

		var translations map[string]string
		if err := json.Unmarshal(data, &translations); err != nil {
			return nil, fmt.Errorf("failed to parse locale file %s: %w", file, err)
		}

		s.translations[lang] = translations
	}

	if _, ok := s.translations[defaultLang]; !ok {
		return nil, fmt.Errorf("default language %s not found in locale files", defaultLang)
	}

	return s, nil
}

// T traduz uma chave para o idioma especificado
// Suporta interpolação de parâmetros usando templates Go ({{.Name}}, {{.Max}}, etc.)
func (s *Service) T(lang, key string, params ...map[string]interface{}) string {
	s.mu.RLock()
	message := s.getTranslation(lang, key)
	if message == "" {
		lang = s.defaultLanguage
		message = s.getTranslation(lang, key)
	}
	s.mu.RUnlock()

	if message == "" {
		return key
	}

	if len(params) == 0 || !strings.Contains(message, "{{") {
		return message
	}

	tmpl, err := s.template(lang+":"+key, message)
	if err != nil {
		return message
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params[0]); err != nil {
		return message
	}

	return buf.String()
}

// template devolve o template compilado da mensagem, com cache
func (s *Service) template(id, message string) (*template.Template, error) {
	s.mu.RLock()
	tmpl, ok := s.templates[id]
	s.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	tmpl, err := template.New(id).Option("missingkey=zero").Parse(message)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.templates[id] = tmpl
	s.mu.Unlock()
	return tmpl, nil
}

// getTranslation busca uma tradução sem lock (uso interno)
func (s *Service) getTranslation(lang, key string) string {
	if langMap, ok := s.translations[lang]; ok {
		if msg, ok := langMap[key]; ok {
			return msg
		}
	}
	return ""
}

// GetDefaultLanguage retorna o idioma padrão configurado
func (s *Service) GetDefaultLanguage() string {
	return s.defaultLanguage
}

// GetSupportedLanguages retorna lista ordenada de idiomas suportados
func (s *Service) GetSupportedLanguages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	langs := make([]string, 0, len(s.translations))
	for lang := range s.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// IsLanguageSupported verifica se um idioma é suportado
func (s *Service) IsLanguageSupported(lang string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.translations[lang]
	return ok
}

// MissingKeys lista chaves do idioma padrão sem tradução em lang
func (s *Service) MissingKeys(lang string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var missing []string
	for key := range s.translations[s.defaultLanguage] {
		if _, ok := s.translations[lang][key]; !ok {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing
}
