package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tomas-vilte/MateLog/internal/ai"
	"github.com/Tomas-vilte/MateLog/internal/config"
	"github.com/Tomas-vilte/MateLog/internal/domain/models"
	"github.com/Tomas-vilte/MateLog/internal/domain/ports"
	"github.com/Tomas-vilte/MateLog/internal/i18n"
	"github.com/Tomas-vilte/MateLog/internal/logger"
	"github.com/Tomas-vilte/MateLog/internal/summarizer"
	"github.com/Tomas-vilte/MateLog/internal/ui"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var _ ports.EntryGenerator = (*EntryGenerator)(nil)

// EntryGenerator le pide a Gemini las entradas del changelog. Una sola
// llamada por corrida: cualquier fallo aborta, sin reintentos.
type EntryGenerator struct {
	client *genai.Client
	model  *genai.GenerativeModel
	lang   string
	trans  *i18n.Translations
}

func NewEntryGenerator(ctx context.Context, cfg *config.Config, trans *i18n.Translations) (*EntryGenerator, error) {
	if cfg.GeminiAPIKey == "" {
		msg := trans.GetMessage("error_missing_api_key", 0, nil)
		return nil, fmt.Errorf("%s", msg)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		msg := trans.GetMessage("ai_service_error_ai_client", 0, map[string]interface{}{
			"Error": err,
		})
		return nil, fmt.Errorf("%s", msg)
	}

	model := client.GenerativeModel(cfg.AIModel)
	model.SetTemperature(float32(cfg.AITemperature))
	model.SetMaxOutputTokens(int32(cfg.AIMaxTokens))

	return &EntryGenerator{
		client: client,
		model:  model,
		lang:   cfg.Language,
		trans:  trans,
	}, nil
}

func (g *EntryGenerator) Close() error {
	return g.client.Close()
}

func (g *EntryGenerator) GenerateEntries(ctx context.Context, summary *models.RangeSummary) ([]models.ChangelogEntry, error) {
	prompt := ai.BuildPrompt(g.lang, summarizer.Payload(summary))

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		// el error del SDK ya trae status y cuerpo de la API
		return nil, fmt.Errorf("error llamando a Gemini: %w", err)
	}

	if len(resp.Candidates) == 0 {
		msg := g.trans.GetMessage("ai_service_error_no_ai_response", 0, nil)
		return nil, fmt.Errorf("%s", msg)
	}

	raw := flattenResponse(resp)
	if raw == "" {
		msg := g.trans.GetMessage("ai_service_error_empty_response", 0, nil)
		return nil, fmt.Errorf("%s", msg)
	}

	entries, dropped, err := ai.ParseEntries(raw)
	if err != nil {
		msg := g.trans.GetMessage("ai_service_error_parse", 0, map[string]interface{}{
			"Error": err.Error(),
			"Raw":   raw,
		})
		return nil, fmt.Errorf("%s", msg)
	}

	if dropped > 0 {
		logger.Warn(ctx, "se descartaron entradas mal formadas del modelo", "count", dropped)
		ui.StopActiveSpinner()
		ui.PrintWarning(g.trans.GetMessage("generate_invalid_entries_dropped", dropped, map[string]interface{}{
			"Count": dropped,
		}))
	}

	return entries, nil
}

func flattenResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			sb.WriteString(fmt.Sprintf("%v", part))
		}
	}
	return strings.TrimSpace(sb.String())
}
