package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// IngestAPI is the internal server receiving device sync uploads.
	IngestAPI struct {
		Port int `json:"port" yaml:"port"`
	} `json:"ingestApi" yaml:"ingestApi"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Redis backs the local offline entry queue.
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Recorder configures the onboard GPS recorder agent client.
	Recorder *RecorderConfig `json:"recorder" yaml:"recorder"`

	// Logbook configures the merge/refresh pipeline.
	Logbook *LogbookConfig `json:"logbook" yaml:"logbook"`

	// Tracking configures the refresh scheduler cadence table.
	Tracking *TrackingConfig `json:"tracking" yaml:"tracking"`

	// PubSub configuration for voyage event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RedisConfig defines the connection to the offline queue store.
type RedisConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`

	// QueueKey is the list key holding offline-captured entries.
	QueueKey string `json:"queueKey" yaml:"queueKey"`
}

// RecorderConfig defines the GPS recorder agent endpoint.
type RecorderConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// RetryCount for idempotent recorder calls (health polls).
	RetryCount int `json:"retryCount" yaml:"retryCount"`
}

// LogbookConfig defines the merge pipeline tunables.
type LogbookConfig struct {
	// FetchLimit bounds how many persisted entries a refresh pulls.
	FetchLimit int `json:"fetchLimit" yaml:"fetchLimit"`

	// RetentionDays before an inactive voyage is archived.
	RetentionDays int `json:"retentionDays" yaml:"retentionDays"`

	// LandRatioThreshold is the land fraction at or above which a voyage is
	// classified as land activity and excluded from career totals.
	LandRatioThreshold float64 `json:"landRatioThreshold" yaml:"landRatioThreshold"`
}

// TrackingConfig defines the refresh scheduler cadence table.
type TrackingConfig struct {
	// BurstInterval is the short poll interval right after tracking starts.
	BurstInterval time.Duration `json:"burstInterval" yaml:"burstInterval"`

	// BurstWindow is how long the burst cadence lasts.
	BurstWindow time.Duration `json:"burstWindow" yaml:"burstWindow"`

	// SteadyInterval is the poll interval after the burst window.
	SteadyInterval time.Duration `json:"steadyInterval" yaml:"steadyInterval"`

	// RapidInterval replaces SteadyInterval while rapid sampling is enabled.
	RapidInterval time.Duration `json:"rapidInterval" yaml:"rapidInterval"`

	// GpsHealthInterval is the independent GPS health poll cadence.
	GpsHealthInterval time.Duration `json:"gpsHealthInterval" yaml:"gpsHealthInterval"`

	// InitTimeout bounds the warm-up refresh so the API never hangs on a
	// loading state that cannot settle.
	InitTimeout time.Duration `json:"initTimeout" yaml:"initTimeout"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// Defaults applied when the yaml omits a section.
const (
	defaultFetchLimit         = 500
	defaultRetentionDays      = 30
	defaultLandRatioThreshold = 0.6

	defaultBurstInterval     = 5 * time.Second
	defaultBurstWindow       = 30 * time.Second
	defaultSteadyInterval    = 60 * time.Second
	defaultRapidInterval     = 15 * time.Second
	defaultGpsHealthInterval = 5 * time.Second
	defaultInitTimeout       = 15 * time.Second
)

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
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Logbook == nil {
		cfg.Logbook = &LogbookConfig{}
	}
	if cfg.Logbook.FetchLimit <= 0 {
		cfg.Logbook.FetchLimit = defaultFetchLimit
	}
	if cfg.Logbook.RetentionDays <= 0 {
		cfg.Logbook.RetentionDays = defaultRetentionDays
	}
	if cfg.Logbook.LandRatioThreshold <= 0 || cfg.Logbook.LandRatioThreshold > 1 {
		cfg.Logbook.LandRatioThreshold = defaultLandRatioThreshold
	}

	if cfg.Tracking == nil {
		cfg.Tracking = &TrackingConfig{}
	}
	if cfg.Tracking.BurstInterval <= 0 {
		cfg.Tracking.BurstInterval = defaultBurstInterval
	}
	if cfg.Tracking.BurstWindow <= 0 {
		cfg.Tracking.BurstWindow = defaultBurstWindow
	}
	if cfg.Tracking.SteadyInterval <= 0 {
		cfg.Tracking.SteadyInterval = defaultSteadyInterval
	}
	if cfg.Tracking.RapidInterval <= 0 {
		cfg.Tracking.RapidInterval = defaultRapidInterval
	}
	if cfg.Tracking.GpsHealthInterval <= 0 {
		cfg.Tracking.GpsHealthInterval = defaultGpsHealthInterval
	}
	if cfg.Tracking.InitTimeout <= 0 {
		cfg.Tracking.InitTimeout = defaultInitTimeout
	}

	if cfg.Redis != nil && cfg.Redis.QueueKey == "" {
		cfg.Redis.QueueKey = "shiplog:offline_queue"
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
