// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Remote Catalog API - these keys govern communication with the course catalog backend.
const (
	APIBaseURL       = "api.base_url"
	APICacheTTLHours = "api.cache_ttl_hours"
)

// Telegram Bot Transport - these keys configure the chat delivery surface.
const (
	BotToken          = "bot.token"
	BotUpdateTimeout  = "bot.update_timeout"
	BotListTruncateAt = "bot.list_truncate_at"
)

// Extraction Behavior - these keys shape report generation defaults.
const (
	ExtractDefaultQuality = "extract.default_quality"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern the non-bot application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
