package style

import (
	"embed"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-monthgrid/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Translator resolves translation keys against the embedded locale files.
type Translator struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	lang      string
	languages []string
}

// NewTranslator loads every embedded locale and selects lang.
// An empty lang selects config.DefaultLanguage.
func NewTranslator(lang string) *Translator {
	bundle, languages := loadBundle()
	t := &Translator{
		bundle:    bundle,
		languages: languages,
	}
	t.SetLanguage(lang)
	return t
}

// loadBundle reads locales/active.<lang>.json files. Broken files are logged and skipped.
func loadBundle() (*i18n.Bundle, []string) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
		return bundle, nil
	}

	var detectedLangs []string

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".json")
		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}

		detectedLangs = append(detectedLangs, langCode)
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, langCode,
			config.LogKeyFile, name,
		)
	}

	return bundle, detectedLangs
}

// SetLanguage switches the active language. Unknown languages fall back to English
// through the bundle's default.
func (t *Translator) SetLanguage(lang string) {
	if lang == "" {
		lang = config.DefaultLanguage
	}
	t.lang = lang
	t.localizer = i18n.NewLocalizer(t.bundle, lang)
}

// Lang returns the active language code.
func (t *Translator) Lang() string {
	return t.lang
}

// Tag returns the active language as a BCP 47 tag, English if it does not parse.
func (t *Translator) Tag() language.Tag {
	tag, err := language.Parse(t.lang)
	if err != nil {
		return language.English
	}
	return tag
}

// Languages lists the language codes found in the embedded locales.
func (t *Translator) Languages() []string {
	return t.languages
}

// Lookup translates key with optional template data and reports whether a
// translation was found.
func (t *Translator) Lookup(key string, data map[string]any) (string, bool) {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return "", false
	}
	return msg, true
}

// Msg translates key, returning the key itself when no translation exists.
func (t *Translator) Msg(key string) string {
	if msg, ok := t.Lookup(key, nil); ok {
		return msg
	}
	return key
}

// Template translates key with data, returning the key itself when no translation exists.
func (t *Translator) Template(key string, data map[string]any) string {
	if msg, ok := t.Lookup(key, data); ok {
		return msg
	}
	return key
}
