package i18n

// defaultMessages son los mensajes por defecto en inglés. Cada ID tiene
// que existir acá; los locales en disco solo los traducen.
var defaultMessages = `
	[app_usage]
	other = "Generate changelog entries from your git history with AI"

	[app_description]
	other = "MateLog diffs two git references, asks Gemini for structured changelog entries and merges the rendered markdown into your changelog. 🧉"

	[help_command_usage]
	other = "Show help"

	[generate_command_usage]
	other = "Generate changelog entries for a range of commits"

	[generate_command_description]
	other = "Pick a base branch (or pass one with --base / --range), summarize the diff, and let the AI write the changelog entries"

	[generate_flag_preview]
	other = "Write a standalone preview file instead of touching the changelog"

	[generate_flag_base]
	other = "Base reference to diff against (skips the interactive selector)"

	[generate_flag_range]
	other = "Explicit git range, e.g. main..HEAD (skips base resolution)"

	[generate_flag_output]
	other = "Output file (changelog in append mode, preview file in preview mode)"

	[generate_flag_debug]
	other = "Print full failure detail and diagnostic logs"

	[generate_fetching_remote]
	other = "Fetching {{.Remote}}..."

	[generate_select_base]
	other = "Select the base branch to compare against"

	[generate_cancelled]
	other = "Cancelled. No changelog was generated."

	[generate_range_label]
	other = "Comparing {{.Range}}"

	[generate_no_commits]
	other = "No commits found in {{.Range}}. Nothing to do."

	[generate_no_changed_files]
	other = "No files changed in {{.Range}}. Nothing to do."

	[generate_no_relevant_files]
	other = "Every changed file matched an ignore pattern. Nothing to do."

	[generate_analyzing]
	one = "Analyzing {{.Count}} file..."
	other = "Analyzing {{.Count}} files..."

	[generate_calling_ai]
	other = "Asking {{.Model}} for changelog entries..."

	[generate_no_entries]
	other = "The model reported no user-facing changes. Nothing was written."

	[generate_invalid_entries_dropped]
	one = "{{.Count}} malformed entry was discarded"
	other = "{{.Count}} malformed entries were discarded"

	[generate_breaking_blocked]
	other = "Breaking changes detected. The changelog was NOT written."

	[generate_breaking_override_hint]
	other = "Review the entries above and re-run with MATELOG_ALLOW_BREAKING=1 to write them anyway."

	[generate_changelog_updated]
	other = "Changelog updated: {{.File}}"

	[generate_preview_written]
	other = "Preview written to {{.File}}"

	[generate_standalone_written]
	other = "Changelog written to {{.File}}"

	[generate_version_label]
	other = "New version: {{.Version}}"

	[generate_error_no_base]
	other = "Could not resolve a base branch. Your repository has no master/main and no reflog history.\nPass one explicitly: matelog generate --base <branch>"

	[generate_error_ai]
	other = "Error generating changelog entries: {{.Error}}"

	[selector_title]
	other = "Select the base branch"

	[selector_help]
	other = "↑/↓ move · enter select · esc clear search · q cancel"

	[selector_search_label]
	other = "Search:"

	[selector_no_matches]
	other = "No branches match '{{.Query}}'"

	[selector_label_default]
	other = "default"

	[selector_label_recent]
	other = "recent"

	[error_missing_api_key]
	other = "Gemini API key not configured.\nSet it with 'matelog config set gemini_api_key <key>' or export GEMINI_API_KEY."

	[ai_service_error_ai_client]
	other = "Error creating the AI client: {{.Error}}"

	[ai_service_error_no_ai_response]
	other = "The model returned no candidates"

	[ai_service_error_empty_response]
	other = "The model response contained no text"

	[ai_service_error_parse]
	other = "Could not parse the model response as JSON: {{.Error}}\nRaw response for debugging:\n{{.Raw}}"

	[config_command_usage]
	other = "Manage MateLog configuration"

	[config_init_usage]
	other = "Create a default configuration file"

	[config_show_usage]
	other = "Show the current configuration"

	[config_set_usage]
	other = "Set a configuration value, e.g. matelog config set ai_model gemini-2.5-flash"

	[config_initialized]
	other = "Configuration created at {{.Path}}"

	[config_saved]
	other = "Configuration saved"

	[config_current]
	other = "Current configuration"

	[config_set_unknown_key]
	other = "Unknown configuration key: {{.Key}}"

	[config_set_missing_args]
	other = "Usage: matelog config set <key> <value>"
	`
