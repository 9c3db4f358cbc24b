package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("debería crear la configuración por defecto si no existe", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")

		config, err := LoadConfig(path)

		assert.NoError(t, err)
		assert.FileExists(t, path)
		assert.Equal(t, "en", config.Language)
		assert.Equal(t, "gemini-2.5-flash", config.AIModel)
		assert.Equal(t, MergeModeAppend, config.MergeMode)
		assert.Equal(t, "CHANGELOG.md", config.ChangelogFile)
		assert.True(t, config.AutoIncrementVersion)
		assert.Contains(t, config.IgnorePatterns, "node_modules/")
	})

	t.Run("debería leer una configuración existente", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		data := `{"language": "es", "merge_mode": "standalone", "ai_temperature": 0.5}`
		assert.NoError(t, os.WriteFile(path, []byte(data), 0644))

		config, err := LoadConfig(path)

		assert.NoError(t, err)
		assert.Equal(t, "es", config.Language)
		assert.Equal(t, MergeModeStandalone, config.MergeMode)
		assert.Equal(t, 0.5, config.AITemperature)
		assert.Equal(t, path, config.PathFile)
	})

	t.Run("debería priorizar la API key del entorno", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		data := `{"gemini_api_key": "del-archivo"}`
		assert.NoError(t, os.WriteFile(path, []byte(data), 0644))
		t.Setenv("GEMINI_API_KEY", "del-entorno")

		config, err := LoadConfig(path)

		assert.NoError(t, err)
		assert.Equal(t, "del-entorno", config.GeminiAPIKey)
	})

	t.Run("debería rechazar un merge_mode inválido", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		data := `{"merge_mode": "replace"}`
		assert.NoError(t, os.WriteFile(path, []byte(data), 0644))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("debería rechazar una plataforma inválida", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		data := `{"platform": "gitea"}`
		assert.NoError(t, os.WriteFile(path, []byte(data), 0644))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("debería rechazar reglas de scope incompletas", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		data := `{"scope_mapping": [{"pattern": "src/api/**"}]}`
		assert.NoError(t, os.WriteFile(path, []byte(data), 0644))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}

func TestSaveConfig(t *testing.T) {
	t.Run("debería persistir los cambios", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		config, err := LoadConfig(path)
		assert.NoError(t, err)

		config.Language = "es"
		config.Platform = PlatformGitLab
		assert.NoError(t, SaveConfig(config))

		reloaded, err := LoadConfig(path)
		assert.NoError(t, err)
		assert.Equal(t, "es", reloaded.Language)
		assert.Equal(t, PlatformGitLab, reloaded.Platform)
	})

	t.Run("debería fallar sin ruta de archivo", func(t *testing.T) {
		err := SaveConfig(&Config{})
		assert.Error(t, err)
	})
}

func TestPullRequestPath(t *testing.T) {
	cases := []struct {
		platform string
		expected string
	}{
		{PlatformGitHub, "/pull/12"},
		{PlatformGitLab, "/-/merge_requests/12"},
		{PlatformBitbucket, "/pull-requests/12"},
		{PlatformAzure, "/pullrequest/12"},
		{"desconocida", "/pull/12"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, PullRequestPath(tc.platform, "12"), tc.platform)
	}
}

func TestComparePath(t *testing.T) {
	cases := []struct {
		platform string
		expected string
	}{
		{PlatformGitHub, "/compare/main...HEAD"},
		{PlatformGitLab, "/-/compare/main...HEAD"},
		{PlatformBitbucket, "/branches/compare/HEAD..main"},
		{PlatformAzure, "/branchCompare?baseVersion=GBmain&targetVersion=GBHEAD"},
		{"desconocida", "/compare/main...HEAD"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, ComparePath(tc.platform, "main", "HEAD"), tc.platform)
	}
}

func TestIsSupportedModel(t *testing.T) {
	assert.True(t, IsSupportedModel("gemini-2.5-flash"))
	assert.True(t, IsSupportedModel("gemini-2.5-pro"))
	assert.False(t, IsSupportedModel("gpt-1"))
}
