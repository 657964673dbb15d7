package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "16KB"
	defaultRequestTimeout     = 15 * time.Second
	defaultRefreshLeeway      = 60 * time.Second
	defaultSessionBucket      = "mem://"
	defaultSessionKey         = "supabase.auth.token"

	// WebClientIDEnv is read when googleSignIn.webClientId is not set in YAML or env overrides.
	WebClientIDEnv = "GOOGLE_WEB_CLIENT_ID"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port" validate:"min=0,max=65535"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	GoogleSignIn *GoogleSignInConfig `json:"googleSignIn" yaml:"googleSignIn" validate:"required"`

	Supabase *SupabaseConfig `json:"supabase" yaml:"supabase" validate:"required"`
}

// GoogleSignInConfig configures the native Google Sign-In client.
// WebClientID is intentionally optional here: a missing value disables sign-in
// for the screen instead of failing the process.
type GoogleSignInConfig struct {
	WebClientID   string   `json:"webClientId" yaml:"webClientId"`
	IOSClientID   string   `json:"iosClientId" yaml:"iosClientId"`
	Platform      string   `json:"platform" yaml:"platform" validate:"required,oneof=android ios web"`
	Scopes        []string `json:"scopes" yaml:"scopes"`
	OfflineAccess bool     `json:"offlineAccess" yaml:"offlineAccess"`
	Issuers       []string `json:"issuers" yaml:"issuers"`
}

// SupabaseConfig configures the Supabase auth (GoTrue) client.
type SupabaseConfig struct {
	URL            string        `json:"url" yaml:"url" validate:"required,url"`
	AnonKey        string        `json:"anonKey" yaml:"anonKey" validate:"required"`
	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`

	// SessionBucket is a gocloud.dev blob URL, e.g. mem:// or file:///var/lib/authscreen.
	SessionBucket string        `json:"sessionBucket" yaml:"sessionBucket"`
	SessionKey    string        `json:"sessionKey" yaml:"sessionKey"`
	RefreshLeeway time.Duration `json:"refreshLeeway" yaml:"refreshLeeway"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
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
			// GOOGLESIGNIN_WEBCLIENTID -> googleSignIn.webClientId
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

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the static shape of the configuration.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}

	return nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.GoogleSignIn != nil {
		if strings.TrimSpace(cfg.GoogleSignIn.WebClientID) == "" {
			cfg.GoogleSignIn.WebClientID = strings.TrimSpace(os.Getenv(WebClientIDEnv))
		}
	}

	if cfg.Supabase != nil {
		if cfg.Supabase.RequestTimeout <= 0 {
			cfg.Supabase.RequestTimeout = defaultRequestTimeout
		}
		if cfg.Supabase.RefreshLeeway <= 0 {
			cfg.Supabase.RefreshLeeway = defaultRefreshLeeway
		}
		if cfg.Supabase.SessionBucket == "" {
			cfg.Supabase.SessionBucket = defaultSessionBucket
		}
		if cfg.Supabase.SessionKey == "" {
			cfg.Supabase.SessionKey = defaultSessionKey
		}
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
