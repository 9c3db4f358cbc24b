package i18n

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

// NewTranslations crea el bundle de traducciones. Los mensajes en inglés
// vienen embebidos como default; localesPath permite cargar los archivos
// active.*.toml (en tests se pasa una ruta relativa al paquete).
func NewTranslations(defaultLang string, localesPath string) (*Translations, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")

	if localesPath == "" {
		localesPath = "locales"
	}

	files, err := filepath.Glob(filepath.Join(localesPath, "active.*.toml"))
	if err != nil {
		return nil, fmt.Errorf("error leyendo locales: %w", err)
	}

	for _, file := range files {
		if _, err := bundle.LoadMessageFile(file); err != nil {
			return nil, fmt.Errorf("error cargando el archivo de locale %s: %w", file, err)
		}
	}

	return &Translations{
		bundle:   bundle,
		localize: i18n.NewLocalizer(bundle, defaultLang),
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("idioma '%s' no soportado", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}
