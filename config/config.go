package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// TestRoutes configuration for testing endpoints
	TestRoutes *TestRoutesConfig `json:"testRoutes" yaml:"testRoutes"`

	// Discovery configuration for nearby editor search
	Discovery *DiscoveryConfig `json:"discovery" yaml:"discovery"`

	// Redis configuration for sessions and the query guard
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// QueryGuard configuration for distinct search center limits
	QueryGuard *QueryGuardConfig `json:"queryGuard" yaml:"queryGuard"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Geocoder configuration for reverse geocoding
	Geocoder *GeocoderConfig `json:"geocoder" yaml:"geocoder"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// TestRoutesConfig defines configuration for testing endpoints
type TestRoutesConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// DiscoveryConfig defines search bounds, the consent-skip fallback and visibility caps
type DiscoveryConfig struct {
	Radius      RadiusConfig      `json:"radius" yaml:"radius"`
	Limit       LimitConfig       `json:"limit" yaml:"limit"`
	Fallback    FallbackConfig    `json:"fallback" yaml:"fallback"`
	Granularity GranularityConfig `json:"granularity" yaml:"granularity"`
	Session     SessionConfig     `json:"session" yaml:"session"`

	// Candidate prefilter radius multiplier applied before exact haversine filtering
	PrefilterMultiplier float64 `json:"prefilterMultiplier" yaml:"prefilterMultiplier"`
}

// RadiusConfig bounds the requested search radius in kilometers
type RadiusConfig struct {
	MinKm     float64 `json:"minKm" yaml:"minKm"`
	MaxKm     float64 `json:"maxKm" yaml:"maxKm"`
	DefaultKm float64 `json:"defaultKm" yaml:"defaultKm"`
}

// LimitConfig bounds the number of returned editors
type LimitConfig struct {
	Default int `json:"default" yaml:"default"`
	Max     int `json:"max" yaml:"max"`
}

// FallbackConfig is the search center used when a seeker skips location consent
type FallbackConfig struct {
	Label string  `json:"label" yaml:"label"`
	Lat   float64 `json:"lat" yaml:"lat"`
	Lng   float64 `json:"lng" yaml:"lng"`
}

// GranularityConfig maps visibility levels to their maximum radius in kilometers.
// A value of 0 for country means unbounded within the same country.
type GranularityConfig struct {
	CityKm    float64 `json:"cityKm" yaml:"cityKm"`
	RegionKm  float64 `json:"regionKm" yaml:"regionKm"`
	CountryKm float64 `json:"countryKm" yaml:"countryKm"`
}

// SessionConfig defines discovery session storage
type SessionConfig struct {
	// Store type: "memory" or "redis"
	Store string        `json:"store" yaml:"store"`
	TTL   time.Duration `json:"ttl" yaml:"ttl"`

	// Salt display positions per session
	SaltPerSession bool `json:"saltPerSession" yaml:"saltPerSession"`
}

// RedisConfig defines the Redis connection
type RedisConfig struct {
	Enabled  bool   `json:"enabled" yaml:"enabled"`
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// QueryGuardConfig limits distinct search centers per seeker
type QueryGuardConfig struct {
	Enabled            bool          `json:"enabled" yaml:"enabled"`
	MaxDistinctCenters int           `json:"maxDistinctCenters" yaml:"maxDistinctCenters"`
	Window             time.Duration `json:"window" yaml:"window"`
	GeohashPrecision   uint          `json:"geohashPrecision" yaml:"geohashPrecision"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "noop", "local" for local HTTP, "google" for Google Pub/Sub or "nats"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// NATS server URL and subject prefix (for nats provider)
	NatsURL     string `json:"natsUrl" yaml:"natsUrl"`
	NatsSubject string `json:"natsSubject" yaml:"natsSubject"`
}

// GeocoderConfig defines the reverse geocoding client
type GeocoderConfig struct {
	// Provider type: "none" or "nominatim"
	Provider  string        `json:"provider" yaml:"provider"`
	BaseURL   string        `json:"baseUrl" yaml:"baseUrl"`
	UserAgent string        `json:"userAgent" yaml:"userAgent"`
	Language  string        `json:"language" yaml:"language"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
}

// DefaultDiscoveryConfig returns the built-in discovery settings
func DefaultDiscoveryConfig() *DiscoveryConfig {
	return &DiscoveryConfig{
		Radius: RadiusConfig{MinKm: 1, MaxKm: 100, DefaultKm: 25},
		Limit:  LimitConfig{Default: 50, Max: 200},
		Fallback: FallbackConfig{
			Label: "Mumbai",
			Lat:   19.076,
			Lng:   72.877,
		},
		Granularity: GranularityConfig{CityKm: 25, RegionKm: 100, CountryKm: 0},
		Session: SessionConfig{
			Store:          "memory",
			TTL:            30 * time.Minute,
			SaltPerSession: true,
		},
		PrefilterMultiplier: 1.05,
	}
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
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
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
	// A local .env is optional; real environments set variables directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "load .env")
	}

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	cfg.Discovery = cfg.Discovery.withDefaults()

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// withDefaults fills zero values from DefaultDiscoveryConfig. A nil receiver yields the defaults.
func (d *DiscoveryConfig) withDefaults() *DiscoveryConfig {
	def := DefaultDiscoveryConfig()
	if d == nil {
		return def
	}

	out := *d
	if out.Radius.MinKm <= 0 {
		out.Radius.MinKm = def.Radius.MinKm
	}
	if out.Radius.MaxKm <= 0 {
		out.Radius.MaxKm = def.Radius.MaxKm
	}
	if out.Radius.DefaultKm <= 0 {
		out.Radius.DefaultKm = def.Radius.DefaultKm
	}
	if out.Limit.Default <= 0 {
		out.Limit.Default = def.Limit.Default
	}
	if out.Limit.Max <= 0 {
		out.Limit.Max = def.Limit.Max
	}
	if out.Fallback.Lat == 0 && out.Fallback.Lng == 0 {
		out.Fallback = def.Fallback
	}
	if out.Granularity.CityKm <= 0 {
		out.Granularity.CityKm = def.Granularity.CityKm
	}
	if out.Granularity.RegionKm <= 0 {
		out.Granularity.RegionKm = def.Granularity.RegionKm
	}
	if out.Session.Store == "" {
		out.Session.Store = def.Session.Store
	}
	if out.Session.TTL <= 0 {
		out.Session.TTL = def.Session.TTL
	}
	if out.PrefilterMultiplier < 1 {
		out.PrefilterMultiplier = def.PrefilterMultiplier
	}

	return &out
}

// WithDefaults is the exported form of withDefaults for constructors that receive a partial config.
func (d *DiscoveryConfig) WithDefaults() *DiscoveryConfig {
	return d.withDefaults()
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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
