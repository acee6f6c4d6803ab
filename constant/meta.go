// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Coursex is the canonical application identifier used for filesystem paths and CLI branding.
	Coursex = "coursex"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// UserAgent is the default HTTP User-Agent string used for requests to the remote catalog API.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// DefaultAPIBaseURL is the catalog endpoint queried when no override is configured.
	DefaultAPIBaseURL = "https://backend.multistreaming.site/api/courses"
)

// AsciiArtLogo is rendered by the CLI help output.
const AsciiArtLogo = `

  ___ ___  _   _ _ __ ___  _____  __
 / __/ _ \| | | | '__/ __|/ _ \ \/ /
| (_| (_) | |_| | |  \__ \  __/>  <
 \___\___/ \__,_|_|  |___/\___/_/\_\
                                           `

// Build metadata, overridden at link time via -ldflags.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
