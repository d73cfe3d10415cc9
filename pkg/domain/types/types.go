package types

// Version is overwritten at build time via -ldflags
var Version = "dev"

const (
	// AppName is used for env var prefixes and metric namespaces
	AppName = "geosync"

	// URLSection is the config section holding artifact source URLs
	URLSection = "URLS"

	// DefaultProfileName is the mihomo-party data directory under the app data root
	DefaultProfileName = "mihomo-party"

	// BrowserUserAgent is sent by every download strategy
	BrowserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64)"
)
