package source

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/geosync/pkg/domain/model"
	"github.com/m-mizutani/geosync/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrMissingSection is returned by decode when the URLS section is absent
var ErrMissingSection = errors.New("config file is missing URLS section")

// DefaultURLs are written by CreateDefault
var DefaultURLs = map[string]string{
	"GEOIP_URL":   "https://testingcf.jsdelivr.net/gh/Loyalsoldier/v2ray-rules-dat@release/geoip.dat",
	"GEOSITE_URL": "https://testingcf.jsdelivr.net/gh/Loyalsoldier/v2ray-rules-dat@release/geosite.dat",
	"GEOIPDB_URL": "https://testingcf.jsdelivr.net/gh/MetaCubeX/meta-rules-dat@release/geoip.metadb",
	"ASNDB_URL":   "https://gh-proxy.com/https://github.com/MetaCubeX/meta-rules-dat/releases/download/latest/GeoLite2-ASN.mmdb",
	"COUNTRY_URL": "https://testingcf.jsdelivr.net/gh/MetaCubeX/meta-rules-dat@release/country.mmdb",
}

type codec interface {
	marshal(v any) ([]byte, error)
	unmarshal(data []byte, v any) error
}

type tomlCodec struct{}

func (tomlCodec) marshal(v any) ([]byte, error)      { return toml.Marshal(v) }
func (tomlCodec) unmarshal(data []byte, v any) error { return toml.Unmarshal(data, v) }

type yamlCodec struct{}

func (yamlCodec) marshal(v any) ([]byte, error)      { return yaml.Marshal(v) }
func (yamlCodec) unmarshal(data []byte, v any) error { return yaml.Unmarshal(data, v) }

// Store is a file-backed ConfigStore. The codec is chosen by file extension:
// .yaml and .yml use YAML, anything else TOML.
type Store struct {
	path  string
	codec codec
}

// New creates a Store for the config file at path
func New(path string) *Store {
	var c codec = tomlCodec{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		c = yamlCodec{}
	}

	return &Store{path: path, codec: c}
}

// Path returns the config file path
func (s *Store) Path() string {
	return s.path
}

// Load reads the config file. A missing file is created with defaults first;
// a file without the URLS section is regenerated once and read again.
func (s *Store) Load(ctx context.Context) (model.SourceConfig, error) {
	logger := ctxlog.From(ctx)

	if _, err := os.Stat(s.path); errors.Is(err, os.ErrNotExist) {
		if err := s.CreateDefault(ctx); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, goerr.Wrap(err, "failed to stat config file", goerr.V("path", s.path))
	}

	urls, err := s.read(ctx)
	if errors.Is(err, ErrMissingSection) {
		logger.Error(fmt.Sprintf("config file is missing [%s] section", types.URLSection), "path", s.path)
		if err := s.CreateDefault(ctx); err != nil {
			return nil, err
		}
		urls, err = s.read(ctx)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("config file loaded", "path", s.path, "keys", len(urls))
	return urls, nil
}

// CreateDefault writes DefaultURLs to the config file, replacing its content
func (s *Store) CreateDefault(ctx context.Context) error {
	doc := map[string]map[string]string{
		types.URLSection: DefaultURLs,
	}

	data, err := s.codec.marshal(doc)
	if err != nil {
		return goerr.Wrap(err, "failed to encode default config")
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return goerr.Wrap(err, "failed to create config directory", goerr.V("dir", dir))
		}
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return goerr.Wrap(err, "failed to write default config", goerr.V("path", s.path))
	}

	ctxlog.From(ctx).Info("created default config file", "path", s.path)
	return nil
}

func (s *Store) read(ctx context.Context) (model.SourceConfig, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", s.path))
	}

	var doc map[string]any
	if err := s.codec.unmarshal(data, &doc); err != nil {
		return nil, goerr.Wrap(err, "failed to parse config file", goerr.V("path", s.path))
	}

	section, ok := findSection(doc, types.URLSection)
	if !ok {
		return nil, ErrMissingSection
	}

	logger := ctxlog.From(ctx)
	urls := make(model.SourceConfig, len(section))

	keys := make([]string, 0, len(section))
	for k := range section {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v, ok := section[k].(string)
		if !ok {
			logger.Warn("ignoring non-string config value", "key", k)
			continue
		}
		urls[strings.ToUpper(k)] = strings.TrimSpace(v)
	}

	return urls, nil
}

// findSection returns the named table, matching the name case-insensitively
func findSection(doc map[string]any, name string) (map[string]any, bool) {
	for k, v := range doc {
		if !strings.EqualFold(k, name) {
			continue
		}
		table, ok := v.(map[string]any)
		return table, ok
	}
	return nil, false
}
