// Package locale translates user-facing strings, sport labels included.
// Translated labels are for display only and are never parsed back.
package locale

import (
	"embed"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-people/internal/config"
	"github.com/tartampluch/go-people/internal/sport"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

const (
	localeDir    = "locales"
	localePrefix = "active."
	localeSuffix = ".json"
)

// Translator wraps an i18n bundle and the localizer of the active language.
type Translator struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	languages []string
	lang      string
}

// New loads the embedded message files and activates lang.
func New(lang string) *Translator {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	t := &Translator{bundle: bundle}

	entries, err := localeFS.ReadDir(localeDir)
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, localePrefix) || !strings.HasSuffix(name, localeSuffix) {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, localePrefix), localeSuffix)
		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, localeDir+"/"+name); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}

		t.languages = append(t.languages, langCode)
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, langCode,
			config.LogKeyFile, name,
		)
	}

	t.SetLanguage(lang)
	return t
}

// SetLanguage switches the active language. Empty means the default.
func (t *Translator) SetLanguage(lang string) {
	if lang == "" {
		lang = config.DefaultLanguage
	}
	t.lang = lang
	t.localizer = i18n.NewLocalizer(t.bundle, lang)
}

// Language returns the active language code.
func (t *Translator) Language() string { return t.lang }

// Languages lists the languages found in the embedded message files.
func (t *Translator) Languages() []string {
	return append([]string(nil), t.languages...)
}

// Msg translates key. A missing key is returned as is.
func (t *Translator) Msg(key string) string {
	return t.localize(&i18n.LocalizeConfig{MessageID: key}, key)
}

// MsgWith translates key, filling template fields from data.
func (t *Translator) MsgWith(key string, data map[string]any) string {
	return t.localize(&i18n.LocalizeConfig{MessageID: key, TemplateData: data}, key)
}

// Plural translates key picking the plural form for count. The template gets
// count as {{.Count}}.
func (t *Translator) Plural(key string, count int) string {
	return t.localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: map[string]any{"Count": count},
		PluralCount:  count,
	}, key)
}

// Sport returns the display label of s in the active language. Other values
// and untranslated sports use their stored label.
func (t *Translator) Sport(s sport.Sport) string {
	if s.IsOther() {
		return s.Label()
	}
	key := config.TKeySportPrefix + s.Key()
	if msg := t.Msg(key); msg != key {
		return msg
	}
	return s.Label()
}

// SportWithGlyph prefixes the display label with the sport glyph when there is one.
func (t *Translator) SportWithGlyph(s sport.Sport) string {
	if g := s.Glyph(); g != "" {
		return g + " " + t.Sport(s)
	}
	return t.Sport(s)
}

func (t *Translator) localize(lc *i18n.LocalizeConfig, fallback string) string {
	if t == nil || t.localizer == nil {
		return fallback
	}
	// A message missing from the active language still resolves to the
	// default language text, alongside a not-found error.
	msg, err := t.localizer.Localize(lc)
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, lc.MessageID,
			config.LogKeyError, err,
		)
	}
	if msg == "" {
		return fallback
	}
	return msg
}
