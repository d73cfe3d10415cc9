package model

import "strings"

// ArtifactSpec describes one rule database file refreshed by geosync
type ArtifactSpec struct {
	Key      string // Logical key, e.g. GEOIP_DAT
	FileName string // File name in staging and target directories
	URLKey   string // Key of the source URL in SourceConfig
}

var artifacts = []ArtifactSpec{
	{Key: "GEOIP_DAT", FileName: "geoip.dat", URLKey: "GEOIP_URL"},
	{Key: "GEOSITE_DAT", FileName: "geosite.dat", URLKey: "GEOSITE_URL"},
	{Key: "GEOIP_METADB", FileName: "geoip.metadb", URLKey: "GEOIPDB_URL"},
	{Key: "ASN_MMDB", FileName: "ASN.mmdb", URLKey: "ASNDB_URL"},
	{Key: "COUNTRY_MMDB", FileName: "country.mmdb", URLKey: "COUNTRY_URL"},
}

// Artifacts returns a copy of the fixed artifact list in processing order
func Artifacts() []ArtifactSpec {
	out := make([]ArtifactSpec, len(artifacts))
	copy(out, artifacts)
	return out
}

// SourceConfig maps upper-cased URL keys to source URLs
type SourceConfig map[string]string

// Lookup returns the URL for key, matching case-insensitively
func (c SourceConfig) Lookup(key string) (string, bool) {
	url, ok := c[strings.ToUpper(key)]
	return url, ok
}

// DownloadTask is a single download attempt
type DownloadTask struct {
	URL         string
	Destination string
}

// TempPath returns the staging path the download is written to before promotion
func (t DownloadTask) TempPath() string {
	return t.Destination + ".tmp"
}
