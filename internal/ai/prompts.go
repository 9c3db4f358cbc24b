package ai

import "fmt"

const promptTemplateEN = `You are a release-notes assistant. Analyze the following git changes and produce changelog entries for end users.

Respond ONLY with a JSON object with this exact shape:
{
  "entries": [
    {
      "type": "feat|fix|breaking|improve|refactor|docs|test",
      "scope": "logical area taken from the file scopes below",
      "description": "one-line user-facing description",
      "prNumber": "123 (optional, only if a PR number appears in the commits)",
      "ticketId": "ABC-123 (optional, only if a ticket id appears in the commits)",
      "details": ["optional bullet with extra detail"]
    }
  ]
}

Rules:
1. One entry per user-visible change, not per commit.
2. Use "breaking" for any backward-incompatible change.
3. Skip pure noise (formatting, lockfiles, CI tweaks).
4. Write descriptions in the imperative, without trailing period.
5. If there are no user-facing changes, return {"entries": []}.

Git changes:
%s`

const promptTemplateES = `Sos un asistente de release notes. Analizá los siguientes cambios de git y producí entradas de changelog para usuarios finales.

Respondé SOLO con un objeto JSON con esta forma exacta:
{
  "entries": [
    {
      "type": "feat|fix|breaking|improve|refactor|docs|test",
      "scope": "área lógica tomada de los scopes de archivo de abajo",
      "description": "descripción de una línea orientada al usuario",
      "prNumber": "123 (opcional, solo si aparece un número de PR en los commits)",
      "ticketId": "ABC-123 (opcional, solo si aparece un id de ticket en los commits)",
      "details": ["bullet opcional con detalle extra"]
    }
  ]
}

Reglas:
1. Una entrada por cambio visible para el usuario, no por commit.
2. Usá "breaking" para cualquier cambio incompatible hacia atrás.
3. Salteá el ruido puro (formato, lockfiles, retoques de CI).
4. Escribí las descripciones en imperativo, sin punto final.
5. Si no hay cambios visibles para el usuario, devolvé {"entries": []}.

Cambios de git:
%s`

// BuildPrompt arma el prompt final para el idioma configurado.
func BuildPrompt(lang, payload string) string {
	template := promptTemplateEN
	if lang == "es" {
		template = promptTemplateES
	}
	return fmt.Sprintf(template, payload)
}
