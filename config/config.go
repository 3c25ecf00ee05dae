package config

import (
	"os"
	"path/filepath"
	"slices"
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
	defaultBcryptCost         = 12
	defaultAccessTokenTTL     = 8 * 24 * time.Hour
	defaultResetTokenTTL      = 48 * time.Hour
	defaultOutboundTimeout    = 10 * time.Second
	defaultOutboundRetryMax   = 2
	defaultRetryWaitMin       = 200 * time.Millisecond
	defaultRetryWaitMax       = 2 * time.Second
	defaultGitHubUserInfoURL  = "https://api.github.com/user"
	defaultFrontendCallback   = "http://localhost:5173/auth/callback"
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

	// AutoMigrate creates or updates the users table on startup.
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
		// Reset signs password reset tokens; falls back to Access when empty.
		Reset string `json:"reset" yaml:"reset"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Supabase *SupabaseConfig `json:"supabase" yaml:"supabase"`

	GitHub *GitHubConfig `json:"github" yaml:"github"`

	Email *EmailConfig `json:"email" yaml:"email"`

	Outbound *OutboundConfig `json:"outbound" yaml:"outbound"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost     int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
	ResetTokenTTL  time.Duration `json:"resetTokenTTL" yaml:"resetTokenTTL"`
}

// SupabaseConfig points at the GoTrue instance of a Supabase project.
type SupabaseConfig struct {
	URL        string `json:"url" yaml:"url"`
	ServiceKey string `json:"serviceKey" yaml:"serviceKey"`
}

// GitHubConfig defines the GitHub OAuth application and where to send users afterwards.
type GitHubConfig struct {
	ClientID            string   `json:"clientId" yaml:"clientId"`
	ClientSecret        string   `json:"clientSecret" yaml:"clientSecret"`
	RedirectURL         string   `json:"redirectUrl" yaml:"redirectUrl"`
	Scopes              []string `json:"scopes" yaml:"scopes"`
	FrontendCallbackURL string   `json:"frontendCallbackUrl" yaml:"frontendCallbackUrl"`

	// Endpoint overrides, used against GitHub Enterprise or test servers.
	AuthURL     string `json:"authUrl" yaml:"authUrl"`
	TokenURL    string `json:"tokenUrl" yaml:"tokenUrl"`
	UserInfoURL string `json:"userInfoUrl" yaml:"userInfoUrl"`
}

// EmailConfig defines outgoing email settings.
type EmailConfig struct {
	Enabled              bool   `json:"enabled" yaml:"enabled"`
	PostmarkServerToken  string `json:"postmarkServerToken" yaml:"postmarkServerToken"`
	PostmarkAccountToken string `json:"postmarkAccountToken" yaml:"postmarkAccountToken"`
	SenderEmail          string `json:"senderEmail" yaml:"senderEmail"`
	SupportEmail         string `json:"supportEmail" yaml:"supportEmail"`
	FrontendHost         string `json:"frontendHost" yaml:"frontendHost"`
	ProjectName          string `json:"projectName" yaml:"projectName"`
}

// OutboundConfig bounds calls to the identity provider and GitHub.
type OutboundConfig struct {
	Timeout      time.Duration `json:"timeout" yaml:"timeout"`
	RetryMax     int           `json:"retryMax" yaml:"retryMax"`
	RetryWaitMin time.Duration `json:"retryWaitMin" yaml:"retryWaitMin"`
	RetryWaitMax time.Duration `json:"retryWaitMax" yaml:"retryWaitMax"`
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

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = defaultBcryptCost
	}
	if cfg.Auth.AccessTokenTTL <= 0 {
		cfg.Auth.AccessTokenTTL = defaultAccessTokenTTL
	}
	if cfg.Auth.ResetTokenTTL <= 0 {
		cfg.Auth.ResetTokenTTL = defaultResetTokenTTL
	}

	if cfg.SecretKey.Reset == "" {
		cfg.SecretKey.Reset = cfg.SecretKey.Access
	}

	if cfg.Supabase == nil {
		cfg.Supabase = &SupabaseConfig{}
	}
	cfg.Supabase.URL = strings.TrimRight(cfg.Supabase.URL, "/")

	if cfg.GitHub == nil {
		cfg.GitHub = &GitHubConfig{}
	}
	if cfg.GitHub.UserInfoURL == "" {
		cfg.GitHub.UserInfoURL = defaultGitHubUserInfoURL
	}
	if cfg.GitHub.FrontendCallbackURL == "" {
		cfg.GitHub.FrontendCallbackURL = defaultFrontendCallback
	}

	if cfg.Email == nil {
		cfg.Email = &EmailConfig{}
	}

	if cfg.Outbound == nil {
		cfg.Outbound = &OutboundConfig{RetryMax: defaultOutboundRetryMax}
	}
	if cfg.Outbound.Timeout <= 0 {
		cfg.Outbound.Timeout = defaultOutboundTimeout
	}
	if cfg.Outbound.RetryMax < 0 {
		cfg.Outbound.RetryMax = 0
	}
	if cfg.Outbound.RetryWaitMin <= 0 {
		cfg.Outbound.RetryWaitMin = defaultRetryWaitMin
	}
	if cfg.Outbound.RetryWaitMax < cfg.Outbound.RetryWaitMin {
		cfg.Outbound.RetryWaitMax = defaultRetryWaitMax
	}
}

const envLocal = "local"

// placeholderSecrets are sample values that must never sign tokens outside local development.
var placeholderSecrets = []string{"change-me", "changeme", "secret", "changethis"}

func (cfg *Config) validate() error {
	if cfg.Postgres == nil {
		return errors.New("postgres config is required")
	}
	if cfg.SecretKey.Access == "" {
		return errors.New("secretKey.access is required")
	}
	if cfg.Env.Env != envLocal {
		for name, key := range map[string]string{"access": cfg.SecretKey.Access, "reset": cfg.SecretKey.Reset} {
			if slices.Contains(placeholderSecrets, strings.ToLower(key)) {
				return errors.Errorf("secretKey.%s is a placeholder; set a real secret outside env %q", name, envLocal)
			}
		}
	}
	if cfg.Supabase.URL == "" || cfg.Supabase.ServiceKey == "" {
		return errors.New("supabase.url and supabase.serviceKey are required")
	}
	if cfg.Email.Enabled && (cfg.Email.PostmarkServerToken == "" || cfg.Email.SenderEmail == "") {
		return errors.New("email.postmarkServerToken and email.senderEmail are required when email is enabled")
	}

	return nil
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
