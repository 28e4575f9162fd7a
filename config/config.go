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

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	// Beirut storefront defaults, used when neither YAML nor env provide a zone.
	DefaultZoneLatitude  = 33.8938
	DefaultZoneLongitude = 35.5018
	DefaultZoneRadiusKm  = 15.0

	defaultGeolocationTimeout = 10 * time.Second
	defaultMaxAddresses       = 10
	defaultSessionTTL         = 24 * time.Hour
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
		AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		// Access is the HS256 secret shared with the auth provider that issues user tokens.
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Delivery *DeliveryConfig `json:"delivery" yaml:"delivery"`

	Geolocation *GeolocationConfig `json:"geolocation" yaml:"geolocation"`

	Session *SessionConfig `json:"session" yaml:"session"`

	Address *AddressConfig `json:"address" yaml:"address"`

	Checkout *CheckoutConfig `json:"checkout" yaml:"checkout"`

	// QRCode configuration for order tracking QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for order event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
	// File enables a rotating log file next to stdout when set.
	File       string `json:"file" yaml:"file"`
	MaxSizeMB  int    `json:"maxSizeMb" yaml:"maxSizeMb"`
	MaxBackups int    `json:"maxBackups" yaml:"maxBackups"`
	MaxAgeDays int    `json:"maxAgeDays" yaml:"maxAgeDays"`
}

// DeliveryConfig is the fallback delivery zone used until a persisted zone record exists.
type DeliveryConfig struct {
	CenterLatitude  float64 `json:"centerLatitude" yaml:"centerLatitude"`
	CenterLongitude float64 `json:"centerLongitude" yaml:"centerLongitude"`
	RadiusKm        float64 `json:"radiusKm" yaml:"radiusKm"`
}

// GeolocationConfig selects and tunes the position source.
type GeolocationConfig struct {
	// Provider is one of "ipapi", "static" or "none".
	Provider string        `json:"provider" yaml:"provider"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
	// EnableHighAccuracy is a pointer so an omitted key keeps the high accuracy default.
	EnableHighAccuracy *bool         `json:"enableHighAccuracy" yaml:"enableHighAccuracy"`
	MaximumAge         time.Duration `json:"maximumAge" yaml:"maximumAge"`
	Endpoint           string        `json:"endpoint" yaml:"endpoint"`
	StaticLatitude     float64       `json:"staticLatitude" yaml:"staticLatitude"`
	StaticLongitude    float64       `json:"staticLongitude" yaml:"staticLongitude"`
}

// SessionConfig selects the delivery session store.
type SessionConfig struct {
	// Store is "memory" or "redis".
	Store    string        `json:"store" yaml:"store"`
	RedisURL string        `json:"redisUrl" yaml:"redisUrl"`
	TTL      time.Duration `json:"ttl" yaml:"ttl"`
}

type AddressConfig struct {
	MaxPerUser   int    `json:"maxPerUser" yaml:"maxPerUser"`
	DefaultLabel string `json:"defaultLabel" yaml:"defaultLabel"`
}

// CheckoutConfig holds order pricing rules. Amounts are in the smallest currency unit.
type CheckoutConfig struct {
	Currency              string `json:"currency" yaml:"currency"`
	MinimumOrderAmount    int64  `json:"minimumOrderAmount" yaml:"minimumOrderAmount"`
	FreeDeliveryThreshold int64  `json:"freeDeliveryThreshold" yaml:"freeDeliveryThreshold"`
	StandardDeliveryFee   int64  `json:"standardDeliveryFee" yaml:"standardDeliveryFee"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
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
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// DELIVERY_RADIUSKM -> delivery.radiusKm
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
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

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	cfg.applyDefaults()

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Delivery == nil {
		cfg.Delivery = &DeliveryConfig{}
	}
	if cfg.Delivery.RadiusKm <= 0 {
		cfg.Delivery.CenterLatitude = DefaultZoneLatitude
		cfg.Delivery.CenterLongitude = DefaultZoneLongitude
		cfg.Delivery.RadiusKm = DefaultZoneRadiusKm
	}

	if cfg.Geolocation == nil {
		cfg.Geolocation = &GeolocationConfig{Provider: "none"}
	}
	if cfg.Geolocation.EnableHighAccuracy == nil {
		highAccuracy := true
		cfg.Geolocation.EnableHighAccuracy = &highAccuracy
	}
	if cfg.Geolocation.Timeout <= 0 {
		cfg.Geolocation.Timeout = defaultGeolocationTimeout
	}
	if cfg.Geolocation.MaximumAge < 0 {
		cfg.Geolocation.MaximumAge = 0
	}

	if cfg.Session == nil {
		cfg.Session = &SessionConfig{Store: "memory"}
	}
	if cfg.Session.TTL <= 0 {
		cfg.Session.TTL = defaultSessionTTL
	}

	if cfg.Address == nil {
		cfg.Address = &AddressConfig{}
	}
	if cfg.Address.MaxPerUser <= 0 {
		cfg.Address.MaxPerUser = defaultMaxAddresses
	}
	if cfg.Address.DefaultLabel == "" {
		cfg.Address.DefaultLabel = "Home"
	}

	if cfg.Checkout == nil {
		cfg.Checkout = &CheckoutConfig{}
	}
	if cfg.Checkout.Currency == "" {
		cfg.Checkout.Currency = "LBP"
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
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
