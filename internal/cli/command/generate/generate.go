package generate

import (
	"context"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Tomas-vilte/MateLog/internal/ai/gemini"
	"github.com/Tomas-vilte/MateLog/internal/classifier"
	cfg "github.com/Tomas-vilte/MateLog/internal/config"
	"github.com/Tomas-vilte/MateLog/internal/domain/models"
	"github.com/Tomas-vilte/MateLog/internal/domain/ports"
	"github.com/Tomas-vilte/MateLog/internal/formatter"
	"github.com/Tomas-vilte/MateLog/internal/git"
	"github.com/Tomas-vilte/MateLog/internal/i18n"
	"github.com/Tomas-vilte/MateLog/internal/logger"
	"github.com/Tomas-vilte/MateLog/internal/merger"
	"github.com/Tomas-vilte/MateLog/internal/selector"
	"github.com/Tomas-vilte/MateLog/internal/summarizer"
	"github.com/Tomas-vilte/MateLog/internal/ui"
	vcsgithub "github.com/Tomas-vilte/MateLog/internal/vcs/github"
	"github.com/urfave/cli/v3"
)

// allowBreakingEnv desactiva el bloqueo por breaking changes para una corrida.
const allowBreakingEnv = "MATELOG_ALLOW_BREAKING"

const defaultPreviewFile = "CHANGELOG.preview.md"

// prNumberRegex saca el número de PR de un subject de merge, ej "... (#123)".
var prNumberRegex = regexp.MustCompile(`\(#(\d+)\)`)

// entryGenerator is a minimal interface for testing purposes
type entryGenerator interface {
	GenerateEntries(ctx context.Context, summary *models.RangeSummary) ([]models.ChangelogEntry, error)
	Close() error
}

// selectBaseFunc permite inyectar el selector interactivo en los tests
type selectBaseFunc func(ctx context.Context, gitSvc ports.GitService, config *cfg.Config, t *i18n.Translations) (string, bool, error)

type GenerateCommandFactory struct {
	gitService   ports.GitService
	newGenerator func(ctx context.Context, config *cfg.Config, t *i18n.Translations) (entryGenerator, error)
	selectBase   selectBaseFunc
}

func NewGenerateCommandFactory(gitSvc ports.GitService) *GenerateCommandFactory {
	return &GenerateCommandFactory{
		gitService: gitSvc,
		newGenerator: func(ctx context.Context, config *cfg.Config, t *i18n.Translations) (entryGenerator, error) {
			return gemini.NewEntryGenerator(ctx, config, t)
		},
		selectBase: selector.Run,
	}
}

func (f *GenerateCommandFactory) CreateCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:        "generate",
		Aliases:     []string{"g"},
		Usage:       t.GetMessage("generate_command_usage", 0, nil),
		Description: t.GetMessage("generate_command_description", 0, nil),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "preview",
				Aliases: []string{"p"},
				Usage:   t.GetMessage("generate_flag_preview", 0, nil),
			},
			&cli.StringFlag{
				Name:    "base",
				Aliases: []string{"b"},
				Usage:   t.GetMessage("generate_flag_base", 0, nil),
			},
			&cli.StringFlag{
				Name:    "range",
				Aliases: []string{"r"},
				Usage:   t.GetMessage("generate_flag_range", 0, nil),
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   t.GetMessage("generate_flag_output", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: t.GetMessage("generate_flag_debug", 0, nil),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger.Initialize(cmd.Bool("debug"), false)
			return f.run(ctx, cmd, t, config)
		},
	}
}

func (f *GenerateCommandFactory) run(ctx context.Context, cmd *cli.Command, t *i18n.Translations, config *cfg.Config) error {
	rang, cancelled, err := f.resolveRange(ctx, cmd, t, config)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	if cancelled {
		ui.PrintInfo(t.GetMessage("generate_cancelled", 0, nil))
		return nil
	}

	ui.PrintInfo(t.GetMessage("generate_range_label", 0, map[string]interface{}{"Range": rang}))

	if f.gitService.CommitCount(ctx, rang) == 0 {
		ui.PrintInfo(t.GetMessage("generate_no_commits", 0, map[string]interface{}{"Range": rang}))
		return nil
	}

	changed := f.gitService.ChangedFiles(ctx, rang)
	if len(changed) == 0 {
		ui.PrintInfo(t.GetMessage("generate_no_changed_files", 0, map[string]interface{}{"Range": rang}))
		return nil
	}

	ignore := append([]string{}, config.IgnorePatterns...)
	ignore = append(ignore, classifier.LoadIgnoreFile(".matelogignore")...)

	summ := summarizer.New(f.gitService, ignore, config.ScopeMapping)
	summary, err := summ.Summarize(ctx, rang)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	if len(summary.Files) == 0 {
		ui.PrintInfo(t.GetMessage("generate_no_relevant_files", 0, nil))
		return nil
	}

	f.enrichFromVCS(ctx, config, summary)

	ui.PrintInfo(t.GetMessage("generate_analyzing", len(summary.Files), map[string]interface{}{
		"Count": len(summary.Files),
	}))

	entries, err := f.generateEntries(ctx, t, config, summary)
	if err != nil {
		return cli.Exit(t.GetMessage("generate_error_ai", 0, map[string]interface{}{
			"Error": err.Error(),
		}), 1)
	}

	if len(entries) == 0 {
		ui.PrintInfo(t.GetMessage("generate_no_entries", 0, nil))
		return nil
	}

	preview := cmd.Bool("preview")

	if formatter.HasBreaking(entries) && !preview && os.Getenv(allowBreakingEnv) == "" {
		ui.PrintWarning(t.GetMessage("generate_breaking_blocked", 0, nil))
		ui.PrintInfo(t.GetMessage("generate_breaking_override_hint", 0, nil))
		return cli.Exit("", 1)
	}

	return f.writeOutput(cmd, t, config, summary, entries, preview)
}

// resolveRange arma el rango a comparar: --range manda, después --base, y si
// no hay ninguno el selector interactivo contra el branch actual.
func (f *GenerateCommandFactory) resolveRange(ctx context.Context, cmd *cli.Command, t *i18n.Translations, config *cfg.Config) (string, bool, error) {
	if rang := cmd.String("range"); rang != "" {
		return rang, false, nil
	}

	base := cmd.String("base")
	if base == "" {
		ui.PrintInfo(t.GetMessage("generate_fetching_remote", 0, map[string]interface{}{"Remote": "origin"}))
		if err := f.gitService.Fetch(ctx, "origin"); err != nil {
			logger.Debug(ctx, "fetch falló, sigo con las refs locales", "error", err)
		}

		ui.PrintInfo(t.GetMessage("generate_select_base", 0, nil))
		resolved, cancelled, err := f.selectBase(ctx, f.gitService, config, t)
		if err != nil {
			return "", false, err
		}
		if cancelled {
			return "", true, nil
		}
		base = resolved
	}

	return base + "..HEAD", false, nil
}

// enrichFromVCS completa el resumen con datos del proveedor remoto: el link
// de comparación y, si el último merge referencia un PR, su título real.
// Cualquier falla acá es soft, el changelog sale igual sin el enriquecido.
func (f *GenerateCommandFactory) enrichFromVCS(ctx context.Context, config *cfg.Config, summary *models.RangeSummary) {
	if config.Platform == "" {
		return
	}

	webURL := config.RepoURL
	if webURL == "" {
		if remote, err := f.gitService.RemoteURL(ctx); err == nil {
			webURL = git.WebURL(remote)
		}
	}

	if config.Platform != cfg.PlatformGitHub {
		// Para el resto de las plataformas solo podemos armar la URL de
		// comparación a partir de la base configurada.
		if base, head, ok := splitRange(summary.Range); ok && webURL != "" {
			summary.CompareURL = strings.TrimSuffix(webURL, "/") + cfg.ComparePath(config.Platform, base, head)
		}
		return
	}

	owner, repo, _, err := f.gitService.RepoInfo(ctx)
	if err != nil {
		logger.Debug(ctx, "no pude detectar el repo remoto", "error", err)
		return
	}

	client := vcsgithub.NewClient(owner, repo, webURL, config.GitHubToken)

	if base, head, ok := splitRange(summary.Range); ok {
		summary.CompareURL = client.CompareURL(base, head)
	}

	if matches := prNumberRegex.FindStringSubmatch(summary.Title); len(matches) > 1 {
		number, _ := strconv.Atoi(matches[1])
		title, err := client.PullRequestTitle(ctx, number)
		if err != nil {
			logger.Debug(ctx, "no pude traer el título del PR", "pr_number", number, "error", err)
			return
		}
		summary.Title = title
		summary.PRReference = "#" + matches[1]
	}
}

func (f *GenerateCommandFactory) generateEntries(ctx context.Context, t *i18n.Translations, config *cfg.Config, summary *models.RangeSummary) ([]models.ChangelogEntry, error) {
	generator, err := f.newGenerator(ctx, config, t)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = generator.Close()
	}()

	spinner := ui.NewSmartSpinner(t.GetMessage("generate_calling_ai", 0, map[string]interface{}{
		"Model": config.AIModel,
	}))
	spinner.Start()

	entries, err := generator.GenerateEntries(ctx, summary)
	spinner.Stop()

	return entries, err
}

func (f *GenerateCommandFactory) writeOutput(cmd *cli.Command, t *i18n.Translations, config *cfg.Config, summary *models.RangeSummary, entries []models.ChangelogEntry, preview bool) error {
	changelogFile := config.ChangelogFile
	if out := cmd.String("output"); out != "" && !preview {
		changelogFile = out
	}

	existing := ""
	if data, err := os.ReadFile(changelogFile); err == nil {
		existing = string(data)
	}

	version := formatter.DeriveVersion(existing, config.AutoIncrementVersion)
	date := time.Now().Format("2006-01-02")
	section := formatter.New(config).FormatSection(entries, version, date)

	if preview || config.MergeMode == cfg.MergeModeStandalone {
		target := cmd.String("output")
		if target == "" {
			target = defaultPreviewFile
		}
		if !preview {
			target = changelogFile
		}

		content := merger.BuildStandalone(section, summary.Range, summary.CompareURL)
		if err := merger.WriteStandalone(target, content); err != nil {
			return cli.Exit(err.Error(), 1)
		}

		messageID := "generate_preview_written"
		if !preview {
			messageID = "generate_standalone_written"
		}
		ui.PrintSection(t.GetMessage(messageID, 0, map[string]interface{}{
			"File": target,
		}), strings.TrimRight(section, "\n"))
		return nil
	}

	if err := merger.Append(changelogFile, section); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	ui.PrintSuccess(os.Stdout, t.GetMessage("generate_changelog_updated", 0, map[string]interface{}{
		"File": changelogFile,
	}))
	ui.PrintInfo(t.GetMessage("generate_version_label", 0, map[string]interface{}{
		"Version": version,
	}))
	return nil
}

func splitRange(rang string) (base, head string, ok bool) {
	parts := strings.SplitN(rang, "..", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	head = strings.TrimPrefix(parts[1], ".")
	return parts[0], head, true
}
