package git

import (
	"testing"

	"github.com/Tomas-vilte/MateLog/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestParseRepoURL(t *testing.T) {
	t.Run("debería parsear una URL SSH de GitHub", func(t *testing.T) {
		owner, repo, platform, err := parseRepoURL("git@github.com:Tomas-vilte/MateLog.git")

		assert.NoError(t, err)
		assert.Equal(t, "Tomas-vilte", owner)
		assert.Equal(t, "MateLog", repo)
		assert.Equal(t, config.PlatformGitHub, platform)
	})

	t.Run("debería parsear una URL HTTPS sin .git", func(t *testing.T) {
		owner, repo, platform, err := parseRepoURL("https://gitlab.com/equipo/proyecto")

		assert.NoError(t, err)
		assert.Equal(t, "equipo", owner)
		assert.Equal(t, "proyecto", repo)
		assert.Equal(t, config.PlatformGitLab, platform)
	})

	t.Run("debería detectar bitbucket y azure", func(t *testing.T) {
		_, _, platform, err := parseRepoURL("https://bitbucket.org/equipo/proyecto.git")
		assert.NoError(t, err)
		assert.Equal(t, config.PlatformBitbucket, platform)

		_, _, platform, err = parseRepoURL("git@ssh.dev.azure.com:org/proyecto.git")
		assert.NoError(t, err)
		assert.Equal(t, config.PlatformAzure, platform)
	})

	t.Run("debería fallar con una URL irreconocible", func(t *testing.T) {
		_, _, _, err := parseRepoURL("ftp://nada")
		assert.Error(t, err)
	})
}

func TestParseReflogCheckouts(t *testing.T) {
	t.Run("debería extraer destinos en orden de recencia sin duplicados", func(t *testing.T) {
		lines := []string{
			"checkout: moving from main to feature/login",
			"commit: arregla el parser",
			"checkout: moving from feature/login to main",
			"checkout: moving from main to feature/login",
			"checkout: moving from feature/login to hotfix-123",
		}

		recent := parseReflogCheckouts(lines, "main", 10)
		assert.Equal(t, []string{"feature/login", "hotfix-123"}, recent)
	})

	t.Run("debería excluir la branch actual y respetar el límite", func(t *testing.T) {
		lines := []string{
			"checkout: moving from a to main",
			"checkout: moving from main to uno",
			"checkout: moving from uno to dos",
			"checkout: moving from dos to tres",
		}

		recent := parseReflogCheckouts(lines, "main", 2)
		assert.Equal(t, []string{"uno", "dos"}, recent)
	})

	t.Run("debería ignorar checkouts a commits sueltos", func(t *testing.T) {
		lines := []string{
			"checkout: moving from main to 0123456789012345678901234567890123456789",
			"checkout: moving from 0123456789012345678901234567890123456789 to develop",
		}

		recent := parseReflogCheckouts(lines, "main", 10)
		assert.Equal(t, []string{"develop"}, recent)
	})

	t.Run("debería devolver vacío sin entradas de checkout", func(t *testing.T) {
		assert.Empty(t, parseReflogCheckouts([]string{"commit: algo"}, "main", 10))
	})
}

func TestWebURL(t *testing.T) {
	t.Run("debería convertir SSH a HTTPS", func(t *testing.T) {
		assert.Equal(t, "https://github.com/Tomas-vilte/MateLog", WebURL("git@github.com:Tomas-vilte/MateLog.git"))
	})

	t.Run("debería limpiar el sufijo .git de HTTPS", func(t *testing.T) {
		assert.Equal(t, "https://github.com/Tomas-vilte/MateLog", WebURL("https://github.com/Tomas-vilte/MateLog.git"))
	})
}
