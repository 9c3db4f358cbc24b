package config

import (
	"context"
	"errors"
	"os"
	"strconv"
	"strings"

	cfg "github.com/Tomas-vilte/MateLog/internal/config"
	"github.com/Tomas-vilte/MateLog/internal/i18n"
	"github.com/Tomas-vilte/MateLog/internal/ui"
	"github.com/urfave/cli/v3"
)

type ConfigCommandFactory struct{}

func NewConfigCommandFactory() *ConfigCommandFactory {
	return &ConfigCommandFactory{}
}

func (f *ConfigCommandFactory) CreateCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: t.GetMessage("config_command_usage", 0, nil),
		Commands: []*cli.Command{
			f.newInitCommand(t, config),
			f.newShowCommand(t, config),
			f.newSetCommand(t, config),
		},
	}
}

func (f *ConfigCommandFactory) newInitCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: t.GetMessage("config_init_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := cfg.SaveConfig(config); err != nil {
				return cli.Exit(err.Error(), 1)
			}
			ui.PrintSuccess(os.Stdout, t.GetMessage("config_initialized", 0, map[string]interface{}{
				"Path": config.PathFile,
			}))
			return nil
		},
	}
}

func (f *ConfigCommandFactory) newShowCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config_show_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ui.PrintInfo(t.GetMessage("config_current", 0, nil))
			ui.PrintKeyValue("language", config.Language)
			ui.PrintKeyValue("ai_model", config.AIModel)
			ui.PrintKeyValue("gemini_api_key", maskKey(config.GeminiAPIKey))
			ui.PrintKeyValue("changelog_file", config.ChangelogFile)
			ui.PrintKeyValue("merge_mode", config.MergeMode)
			ui.PrintKeyValue("auto_increment_version", strconv.FormatBool(config.AutoIncrementVersion))
			ui.PrintKeyValue("platform", config.Platform)
			ui.PrintKeyValue("repo_url", config.RepoURL)
			ui.PrintKeyValue("ticket_base_url", config.TicketBaseURL)
			ui.PrintKeyValue("ignore_patterns", strings.Join(config.IgnorePatterns, ", "))
			ui.PrintKeyValue("config_file", config.PathFile)
			return nil
		},
	}
}

func (f *ConfigCommandFactory) newSetCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "set",
		Usage: t.GetMessage("config_set_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args()
			if args.Len() < 2 {
				return cli.Exit(t.GetMessage("config_set_missing_args", 0, nil), 1)
			}

			key := args.Get(0)
			value := args.Get(1)

			if err := applyValue(config, key, value); err != nil {
				var unknownKey *unknownKeyError
				if errors.As(err, &unknownKey) {
					return cli.Exit(t.GetMessage("config_set_unknown_key", 0, map[string]interface{}{
						"Key": unknownKey.key,
					}), 1)
				}
				return cli.Exit(err.Error(), 1)
			}
			if err := cfg.SaveConfig(config); err != nil {
				return cli.Exit(err.Error(), 1)
			}

			ui.PrintSuccess(os.Stdout, t.GetMessage("config_saved", 0, nil))
			return nil
		},
	}
}

func applyValue(config *cfg.Config, key, value string) error {
	switch key {
	case "language":
		config.Language = value
	case "gemini_api_key":
		config.GeminiAPIKey = value
	case "ai_model":
		if !cfg.IsSupportedModel(value) {
			return &unknownValueError{key: key, value: value}
		}
		config.AIModel = value
	case "ai_temperature":
		temp, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		config.AITemperature = temp
	case "ai_max_tokens":
		tokens, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		config.AIMaxTokens = tokens
	case "changelog_file":
		config.ChangelogFile = value
	case "merge_mode":
		config.MergeMode = value
	case "auto_increment_version":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		config.AutoIncrementVersion = enabled
	case "platform":
		config.Platform = value
	case "repo_url":
		config.RepoURL = value
	case "ticket_base_url":
		config.TicketBaseURL = value
	case "github_token":
		config.GitHubToken = value
	default:
		return &unknownKeyError{key: key}
	}
	return nil
}

type unknownKeyError struct {
	key string
}

func (e *unknownKeyError) Error() string {
	return "clave de configuración desconocida: " + e.key
}

type unknownValueError struct {
	key   string
	value string
}

func (e *unknownValueError) Error() string {
	return "valor no soportado para " + e.key + ": " + e.value
}

func maskKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
