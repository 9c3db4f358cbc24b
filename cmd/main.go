package main

import (
	"context"
	"fmt"
	"log"
	"os"

	configcmd "github.com/Tomas-vilte/MateLog/internal/cli/command/config"
	"github.com/Tomas-vilte/MateLog/internal/cli/command/generate"
	"github.com/Tomas-vilte/MateLog/internal/cli/registry"
	cfg "github.com/Tomas-vilte/MateLog/internal/config"
	"github.com/Tomas-vilte/MateLog/internal/git"
	"github.com/Tomas-vilte/MateLog/internal/i18n"
	"github.com/Tomas-vilte/MateLog/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Error iniciando la cli: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		cli.HandleExitCoder(err)
		log.Fatal(err)
	}
}

func initializeApp() (*cli.Command, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("no se pudo obtener el directorio del usuario: %w", err)
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		return nil, fmt.Errorf("error al cargar las traducciones: %w", err)
	}

	gitService := git.NewGitService()

	registerCommand := registry.NewRegistry(cfgApp, translations)

	if err := registerCommand.Register("generate", generate.NewGenerateCommandFactory(gitService)); err != nil {
		return nil, fmt.Errorf("error al registrar el comando 'generate': %w", err)
	}

	if err := registerCommand.Register("config", configcmd.NewConfigCommandFactory()); err != nil {
		return nil, fmt.Errorf("error al registrar el comando 'config': %w", err)
	}

	commands := registerCommand.CreateCommands()

	helpCommand := &cli.Command{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   translations.GetMessage("help_command_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
	}
	commands = append(commands, helpCommand)

	return &cli.Command{
		Name:                  "matelog",
		Usage:                 translations.GetMessage("app_usage", 0, nil),
		Version:               version.Version,
		Description:           translations.GetMessage("app_description", 0, nil),
		Commands:              commands,
		EnableShellCompletion: true,
	}, nil
}
