package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath = "."

	defaultAPITimeout      = 10 * time.Second
	defaultSearchRadiusKm  = 10
	defaultTaskQueueSize   = 64
	defaultDebounceWindow  = 100 * time.Millisecond
	defaultQRCodeSize      = 256
	defaultSessionDriver   = SessionDriverMemory
	defaultStubPort        = 8080
	defaultStubTokenTTL    = 24 * time.Hour
	defaultStubDSN         = "file:freshdeal-stub?mode=memory&cache=shared"
	defaultPreviousPerPage = 10
	defaultGeocoderURL     = "https://nominatim.openstreetmap.org"
	defaultGeocoderAgent   = "freshdeal-client"
)

// Session store drivers.
const (
	SessionDriverMemory = "memory"
	SessionDriverSQLite = "sqlite"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	// API configures the outbound HTTP gateway
	API *APIConfig `json:"api" yaml:"api"`

	// Search configures proximity search defaults
	Search *SearchConfig `json:"search" yaml:"search"`

	// Store configures the client state store
	Store *StoreConfig `json:"store" yaml:"store"`

	// Session configures where the bearer token is kept
	Session *SessionConfig `json:"session" yaml:"session"`

	// Debounce configures coalescing of rapid UI triggers
	Debounce *DebounceConfig `json:"debounce" yaml:"debounce"`

	// QRCode configuration for pickup codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// Stub configures the local development backend
	Stub *StubConfig `json:"stub" yaml:"stub"`

	// Geocoder configures reverse geocoding of map pins
	Geocoder *GeocoderConfig `json:"geocoder" yaml:"geocoder"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// APIConfig defines the remote backend the gateway talks to
type APIConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// SearchConfig defines proximity search defaults
type SearchConfig struct {
	// Radius in kilometers used when the user has not picked one
	DefaultRadiusKm float64 `json:"defaultRadiusKm" yaml:"defaultRadiusKm"`

	// Page size for previous orders
	PreviousOrdersPerPage int `json:"previousOrdersPerPage" yaml:"previousOrdersPerPage"`
}

// StoreConfig defines state store behavior
type StoreConfig struct {
	// Drop proximity results from fetches older than the newest dispatched one
	StaleFetchGuard bool `json:"staleFetchGuard" yaml:"staleFetchGuard"`

	// Capacity of the listener task queue
	TaskQueueSize int `json:"taskQueueSize" yaml:"taskQueueSize"`
}

// SessionConfig defines the token store backend
type SessionConfig struct {
	// Driver is "memory" or "sqlite"
	Driver string `json:"driver" yaml:"driver"`

	// DSN of the sqlite database (sqlite driver only)
	DSN string `json:"dsn" yaml:"dsn"`
}

// DebounceConfig defines the quiescence window for debounced interactions
type DebounceConfig struct {
	Window time.Duration `json:"window" yaml:"window"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// StubConfig defines the local development backend
type StubConfig struct {
	Port     int           `json:"port" yaml:"port"`
	Secret   string        `json:"secret" yaml:"secret"`
	TokenTTL time.Duration `json:"tokenTtl" yaml:"tokenTtl"`

	// DSN of the backend database, in-memory unless set
	DSN string `json:"dsn" yaml:"dsn"`

	// Seed demo accounts, restaurants and listings into an empty database
	Seed bool `json:"seed" yaml:"seed"`
}

// GeocoderConfig defines the reverse geocoding service
type GeocoderConfig struct {
	BaseURL   string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
	Language  string        `json:"language" yaml:"language"`
	UserAgent string        `json:"userAgent" yaml:"userAgent"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: API_BASEURL -> api.baseUrl (not api.baseurl)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if strings.TrimSpace(cfg.API.BaseURL) == "" {
		return nil, errors.New("api.baseUrl is required")
	}

	return cfg, nil
}

// ApplyDefaults fills every missing section with its default values.
func (cfg *Config) ApplyDefaults() {
	if cfg.API == nil {
		cfg.API = &APIConfig{}
	}
	if cfg.API.Timeout <= 0 {
		cfg.API.Timeout = defaultAPITimeout
	}
	cfg.API.BaseURL = strings.TrimRight(cfg.API.BaseURL, "/")

	if cfg.Search == nil {
		cfg.Search = &SearchConfig{}
	}
	if cfg.Search.DefaultRadiusKm <= 0 {
		cfg.Search.DefaultRadiusKm = defaultSearchRadiusKm
	}
	if cfg.Search.PreviousOrdersPerPage <= 0 {
		cfg.Search.PreviousOrdersPerPage = defaultPreviousPerPage
	}

	if cfg.Store == nil {
		cfg.Store = &StoreConfig{}
	}
	if cfg.Store.TaskQueueSize <= 0 {
		cfg.Store.TaskQueueSize = defaultTaskQueueSize
	}

	if cfg.Session == nil {
		cfg.Session = &SessionConfig{}
	}
	if cfg.Session.Driver == "" {
		cfg.Session.Driver = defaultSessionDriver
	}

	if cfg.Debounce == nil {
		cfg.Debounce = &DebounceConfig{}
	}
	if cfg.Debounce.Window <= 0 {
		cfg.Debounce.Window = defaultDebounceWindow
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{Size: defaultQRCodeSize, ErrorCorrectionLevel: "M"}
	}

	if cfg.Stub == nil {
		cfg.Stub = &StubConfig{}
	}
	if cfg.Stub.Port == 0 {
		cfg.Stub.Port = defaultStubPort
	}
	if cfg.Stub.TokenTTL <= 0 {
		cfg.Stub.TokenTTL = defaultStubTokenTTL
	}
	if cfg.Stub.DSN == "" {
		cfg.Stub.DSN = defaultStubDSN
	}

	if cfg.Geocoder == nil {
		cfg.Geocoder = &GeocoderConfig{}
	}
	if cfg.Geocoder.BaseURL == "" {
		cfg.Geocoder.BaseURL = defaultGeocoderURL
	}
	if cfg.Geocoder.Timeout <= 0 {
		cfg.Geocoder.Timeout = defaultAPITimeout
	}
	if cfg.Geocoder.UserAgent == "" {
		cfg.Geocoder.UserAgent = defaultGeocoderAgent
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
