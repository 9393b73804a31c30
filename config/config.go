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

	// Commerce configures the commerce backend the pipeline reads orders
	// from and writes status/assignment metadata to.
	Commerce *CommerceConfig `json:"commerce" yaml:"commerce"`

	// Poller configures the order queue snapshot poller.
	Poller *PollerConfig `json:"poller" yaml:"poller"`

	// Inventory configures the driver inventory collaborator.
	Inventory *InventoryConfig `json:"inventory" yaml:"inventory"`

	// Routing configures delivery route computation.
	Routing *RoutingConfig `json:"routing" yaml:"routing"`

	// Firebase configuration for the push notification channel.
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for dashboard event publishing.
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// CommerceConfig defines the commerce backend connection
type CommerceConfig struct {
	// GraphQL endpoint of the commerce backend
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// App token used for the Authorization header
	Token string `json:"token" yaml:"token"`

	// Request timeout for queries and mutations
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// PollerConfig defines the snapshot poller behavior
type PollerConfig struct {
	// Base tick interval; doubled while the dashboard reports itself hidden
	BaseInterval time.Duration `json:"baseInterval" yaml:"baseInterval"`

	// Upstream statuses considered "active" for the queue view
	Statuses []string `json:"statuses" yaml:"statuses"`

	// Page size for the active-orders query
	PageSize int `json:"pageSize" yaml:"pageSize"`

	// Capacity of the seen-order set; on overflow only the most recent
	// half is retained
	SeenCapacity int `json:"seenCapacity" yaml:"seenCapacity"`

	// Scopes to start polling for at boot (the dashboard can enable more
	// at runtime)
	Scopes []string `json:"scopes" yaml:"scopes"`
}

// InventoryConfig defines the driver inventory collaborator
type InventoryConfig struct {
	// HTTP endpoint of the driver inventory service; when empty, the
	// static pool below is used instead
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// Static, pre-ranked driver pool for development
	Drivers []DriverConfig `json:"drivers" yaml:"drivers"`
}

// DriverConfig seeds one driver in the static development pool
type DriverConfig struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Phone       string  `json:"phone" yaml:"phone"`
	Location    string  `json:"location" yaml:"location"`
	VehicleType string  `json:"vehicleType" yaml:"vehicleType"`
	Plate       string  `json:"plate" yaml:"plate"`
	Color       string  `json:"color" yaml:"color"`
	Rating      float64 `json:"rating" yaml:"rating"`
	Completed   int     `json:"completed" yaml:"completed"`
	Available   bool    `json:"available" yaml:"available"`

	// Minutes until the driver could reach the delivery address
	PickupMinutes int `json:"pickupMinutes" yaml:"pickupMinutes"`
}

// RoutingConfig defines route computation configuration
type RoutingConfig struct {
	// HTTP endpoint of the routing service; when empty, the haversine
	// estimator is used instead
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// Default vehicle speed in km/h for duration estimation when the
	// routing service is unavailable
	DefaultSpeedKmh float64 `json:"defaultSpeedKmh" yaml:"defaultSpeedKmh"`

	// Restaurant pickup coordinates used as the route midpoint by the
	// estimator
	RestaurantLat float64 `json:"restaurantLat" yaml:"restaurantLat"`
	RestaurantLng float64 `json:"restaurantLng" yaml:"restaurantLng"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`

	// FCM topics notifications are published to, per audience
	CustomerTopic   string `json:"customerTopic" yaml:"customerTopic"`
	RestaurantTopic string `json:"restaurantTopic" yaml:"restaurantTopic"`
}

// PubSubConfig defines Pub/Sub configuration for dashboard event publishing
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
			// Example: POLLER_BASEINTERVAL -> poller.baseInterval (not poller.baseinterval)
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

	applyDefaults(cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Poller == nil {
		cfg.Poller = &PollerConfig{}
	}
	if cfg.Poller.BaseInterval <= 0 {
		cfg.Poller.BaseInterval = 15 * time.Second
	}
	if len(cfg.Poller.Statuses) == 0 {
		cfg.Poller.Statuses = []string{"UNCONFIRMED", "UNFULFILLED"}
	}
	if cfg.Poller.PageSize <= 0 {
		cfg.Poller.PageSize = 20
	}
	if cfg.Poller.SeenCapacity <= 0 {
		cfg.Poller.SeenCapacity = 100
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
