package registry

import (
	"testing"

	"github.com/Tomas-vilte/MateLog/internal/config"
	"github.com/Tomas-vilte/MateLog/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v3"
)

type mockCommandFactory struct {
	name string
}

func (m *mockCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{Name: m.name}
}

func TestRegistry(t *testing.T) {
	t.Run("debería registrar una factory nueva", func(t *testing.T) {
		translations, err := i18n.NewTranslations("en", "../../../locales")
		assert.NoError(t, err)
		reg := NewRegistry(&config.Config{}, translations)

		err = reg.Register("generate", &mockCommandFactory{name: "generate"})

		assert.NoError(t, err)
		assert.Len(t, reg.factories, 1)
	})

	t.Run("debería rechazar una factory duplicada", func(t *testing.T) {
		translations, err := i18n.NewTranslations("en", "../../../locales")
		assert.NoError(t, err)
		reg := NewRegistry(&config.Config{}, translations)

		_ = reg.Register("generate", &mockCommandFactory{name: "generate"})
		err = reg.Register("generate", &mockCommandFactory{name: "generate"})

		assert.Error(t, err)
		assert.Len(t, reg.factories, 1)
	})

	t.Run("debería crear los comandos en orden de registro", func(t *testing.T) {
		translations, err := i18n.NewTranslations("en", "../../../locales")
		assert.NoError(t, err)
		reg := NewRegistry(&config.Config{}, translations)

		_ = reg.Register("generate", &mockCommandFactory{name: "generate"})
		_ = reg.Register("config", &mockCommandFactory{name: "config"})

		commands := reg.CreateCommands()

		assert.Len(t, commands, 2)
		assert.Equal(t, "generate", commands[0].Name)
		assert.Equal(t, "config", commands[1].Name)
	})
}
