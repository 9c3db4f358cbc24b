package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

type (
	Config struct {
		GeminiAPIKey string `json:"gemini_api_key,omitempty"`
		Language     string `json:"language"`
		PathFile     string `json:"path_file"`

		AIModel       string  `json:"ai_model"`
		AITemperature float64 `json:"ai_temperature"`
		AIMaxTokens   int     `json:"ai_max_tokens"`

		IgnorePatterns []string    `json:"ignore_patterns"`
		ScopeMapping   []ScopeRule `json:"scope_mapping,omitempty"`

		ChangelogFile        string `json:"changelog_file"`
		MergeMode            string `json:"merge_mode"` // "append" | "standalone"
		AutoIncrementVersion bool   `json:"auto_increment_version"`

		Platform      string `json:"platform,omitempty"` // github, gitlab, bitbucket, azure
		RepoURL       string `json:"repo_url,omitempty"`
		TicketBaseURL string `json:"ticket_base_url,omitempty"` // plantilla con ${ticketId}

		MaxBranchesDisplay  int `json:"max_branches_display"`
		RecentBranchesLimit int `json:"recent_branches_limit"`

		GitHubToken string `json:"github_token,omitempty"`
	}

	// ScopeRule mapea un patrón glob de ruta a un scope explícito.
	// El orden de declaración importa: gana la primera regla que matchea.
	ScopeRule struct {
		Pattern string `json:"pattern"`
		Scope   string `json:"scope"`
	}
)

const (
	MergeModeAppend     = "append"
	MergeModeStandalone = "standalone"

	defaultLang                = "en"
	defaultModel               = "gemini-2.5-flash"
	defaultTemperature         = 0.3
	defaultMaxTokens           = 4096
	defaultChangelogFile       = "CHANGELOG.md"
	defaultMaxBranchesDisplay  = 10
	defaultRecentBranchesLimit = 10
)

func defaultIgnorePatterns() []string {
	return []string{
		"node_modules/",
		"vendor/",
		"dist/",
		"*.min.js",
		"*.lock",
		"*.sum",
		".idea/",
	}
}

func LoadConfig(path string) (*Config, error) {
	var configPath string

	if filepath.Ext(path) == ".json" {
		configPath = path
	} else {
		configDir := filepath.Join(path, ".matelog")
		configPath = filepath.Join(configDir, "config.json")

		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return nil, fmt.Errorf("error al crear el directorio de configuración: %w", err)
			}
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error al leer el archivo de configuración: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error al decodificar el archivo JSON: %w", err)
	}
	config.PathFile = configPath

	// La API key del entorno pisa a la del archivo
	if envKey := os.Getenv("GEMINI_API_KEY"); envKey != "" {
		config.GeminiAPIKey = envKey
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("la configuración cargada no es válida: %w", err)
	}

	return &config, nil
}

func createDefaultConfig(path string) (*Config, error) {
	config := &Config{
		Language:             defaultLang,
		PathFile:             path,
		AIModel:              defaultModel,
		AITemperature:        defaultTemperature,
		AIMaxTokens:          defaultMaxTokens,
		IgnorePatterns:       defaultIgnorePatterns(),
		ChangelogFile:        defaultChangelogFile,
		MergeMode:            MergeModeAppend,
		AutoIncrementVersion: true,
		MaxBranchesDisplay:   defaultMaxBranchesDisplay,
		RecentBranchesLimit:  defaultRecentBranchesLimit,
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error al crear el directorio de configuración: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error al codificar la configuración por defecto: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("error al guardar la configuración por defecto: %w", err)
	}

	if envKey := os.Getenv("GEMINI_API_KEY"); envKey != "" {
		config.GeminiAPIKey = envKey
	}

	return config, nil
}

func SaveConfig(config *Config) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("la configuración a guardar no es válida: %w", err)
	}

	if config.PathFile == "" {
		return errors.New("la ruta del archivo de configuración no está definida")
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error al codificar la configuración: %w", err)
	}

	if err := os.WriteFile(config.PathFile, data, 0644); err != nil {
		return fmt.Errorf("error al guardar la configuración: %w", err)
	}

	return nil
}

func validateConfig(config *Config) error {
	if config.Language == "" {
		config.Language = defaultLang
	}
	if config.AIModel == "" {
		config.AIModel = defaultModel
	}
	if config.AIMaxTokens <= 0 {
		config.AIMaxTokens = defaultMaxTokens
	}
	if config.AITemperature < 0 || config.AITemperature > 2 {
		return fmt.Errorf("ai_temperature fuera de rango: %v", config.AITemperature)
	}
	if config.ChangelogFile == "" {
		config.ChangelogFile = defaultChangelogFile
	}
	if config.MaxBranchesDisplay <= 0 {
		config.MaxBranchesDisplay = defaultMaxBranchesDisplay
	}
	if config.RecentBranchesLimit <= 0 {
		config.RecentBranchesLimit = defaultRecentBranchesLimit
	}

	switch config.MergeMode {
	case "":
		config.MergeMode = MergeModeAppend
	case MergeModeAppend, MergeModeStandalone:
	default:
		return fmt.Errorf("merge_mode no soportado: %s", config.MergeMode)
	}

	switch config.Platform {
	case "", PlatformGitHub, PlatformGitLab, PlatformBitbucket, PlatformAzure:
	default:
		return fmt.Errorf("plataforma no soportada: %s", config.Platform)
	}

	for _, rule := range config.ScopeMapping {
		if rule.Pattern == "" || rule.Scope == "" {
			return errors.New("cada regla de scope_mapping necesita pattern y scope")
		}
	}

	return nil
}
