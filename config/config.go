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
	defaultUpstreamTimeout    = 60 * time.Second
	defaultTokenURI           = "https://oauth2.googleapis.com/token"
	defaultAudioBucket        = "podcasts"
)

// DefaultGmailScopes are requested on every Gmail authorization.
//
//nolint:gochecknoglobals
var DefaultGmailScopes = []string{
	"https://www.googleapis.com/auth/gmail.readonly",
	"https://www.googleapis.com/auth/userinfo.email",
	"https://www.googleapis.com/auth/userinfo.profile",
	"openid",
}

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port int `json:"port" yaml:"port"`
		// MaxRequestBodySize accepts Echo BodyLimit format, e.g. "100KB", "1MB".
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Persistence selects where credentials, jobs and podcasts live
	Persistence *PersistenceConfig `json:"persistence" yaml:"persistence"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Supabase *SupabaseConfig `json:"supabase" yaml:"supabase"`

	SecretKey struct {
		OAuthState string `json:"oauthState" yaml:"oauthState"`
	} `json:"secretKey" yaml:"secretKey"`

	GoogleOAuth *GoogleOAuthConfig `json:"googleOAuth" yaml:"googleOAuth"`

	OpenAI *OpenAIConfig `json:"openAI" yaml:"openAI"`

	// Storage configuration for generated audio
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Credentials configuration for stored Gmail tokens
	Credentials *CredentialsConfig `json:"credentials" yaml:"credentials"`

	// PubSub configuration for podcast job dispatch
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Asynq *AsynqConfig `json:"asynq" yaml:"asynq"`

	// Firebase configuration for completion notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for podcast share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Feed *FeedConfig `json:"feed" yaml:"feed"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PersistenceConfig picks the repository implementation
type PersistenceConfig struct {
	// Driver is "supabase" (PostgREST over HTTP) or "postgres" (GORM)
	Driver string `json:"driver" yaml:"driver"`
	// AutoMigrate creates or updates the postgres tables on start
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// SupabaseConfig defines the Supabase project used for REST, storage and auth admin calls
type SupabaseConfig struct {
	URL        string        `json:"url" yaml:"url"`
	ServiceKey string        `json:"serviceKey" yaml:"serviceKey"`
	Bucket     string        `json:"bucket" yaml:"bucket"`
	Timeout    time.Duration `json:"timeout" yaml:"timeout"`
}

// GoogleOAuthConfig defines the Gmail OAuth client
type GoogleOAuthConfig struct {
	ClientID     string   `json:"clientId" yaml:"clientId"`
	ClientSecret string   `json:"clientSecret" yaml:"clientSecret"`
	RedirectURI  string   `json:"redirectUri" yaml:"redirectUri"`
	Scopes       []string `json:"scopes" yaml:"scopes"`
	TokenURI     string   `json:"tokenUri" yaml:"tokenUri"`

	// FrontendRedirectURL is where the callback sends the browser afterwards
	FrontendRedirectURL string `json:"frontendRedirectUrl" yaml:"frontendRedirectUrl"`
}

// OpenAIConfig defines the text generation and speech synthesis provider
type OpenAIConfig struct {
	APIKey    string        `json:"apiKey" yaml:"apiKey"`
	BaseURL   string        `json:"baseUrl" yaml:"baseUrl"`
	ChatModel string        `json:"chatModel" yaml:"chatModel"`
	TTSModel  string        `json:"ttsModel" yaml:"ttsModel"`
	Voice     string        `json:"voice" yaml:"voice"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
}

// StorageConfig defines where audio artifacts are uploaded
type StorageConfig struct {
	// Provider is "supabase" or "blob"
	Provider string `json:"provider" yaml:"provider"`

	// BucketURL is a gocloud.dev bucket URL (file://, mem://, gs://, s3://) for the blob provider
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// PublicBaseURL prefixes object keys to build public URLs for the blob provider
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
}

// CredentialsConfig defines at-rest protection for OAuth tokens
type CredentialsConfig struct {
	// EncryptionKey is a base64 encoded 32 byte key. Empty disables sealing.
	EncryptionKey string `json:"encryptionKey" yaml:"encryptionKey"`
}

// PubSubConfig defines how podcast jobs reach the pipeline
type PubSubConfig struct {
	// Provider type: "inline", "local", "google" or "asynq"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint of the worker (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// AsynqConfig defines the Redis backed task queue
type AsynqConfig struct {
	RedisAddr   string `json:"redisAddr" yaml:"redisAddr"`
	Queue       string `json:"queue" yaml:"queue"`
	Concurrency int    `json:"concurrency" yaml:"concurrency"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// FeedConfig defines the per-user RSS feed
type FeedConfig struct {
	BaseURL     string `json:"baseUrl" yaml:"baseUrl"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

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

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Env overrides: SUPABASE_SERVICEKEY -> supabase.serviceKey
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
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

	cfg.applyDefaults()

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Persistence == nil {
		cfg.Persistence = &PersistenceConfig{}
	}
	if cfg.Supabase == nil {
		cfg.Supabase = &SupabaseConfig{}
	}
	if cfg.Supabase.Bucket == "" {
		cfg.Supabase.Bucket = defaultAudioBucket
	}
	if cfg.Supabase.Timeout == 0 {
		cfg.Supabase.Timeout = defaultUpstreamTimeout
	}

	if cfg.GoogleOAuth == nil {
		cfg.GoogleOAuth = &GoogleOAuthConfig{}
	}
	if len(cfg.GoogleOAuth.Scopes) == 0 {
		cfg.GoogleOAuth.Scopes = DefaultGmailScopes
	}
	if cfg.GoogleOAuth.TokenURI == "" {
		cfg.GoogleOAuth.TokenURI = defaultTokenURI
	}

	if cfg.OpenAI == nil {
		cfg.OpenAI = &OpenAIConfig{}
	}
	if cfg.OpenAI.ChatModel == "" {
		cfg.OpenAI.ChatModel = "gpt-4o"
	}
	if cfg.OpenAI.TTSModel == "" {
		cfg.OpenAI.TTSModel = "tts-1-hd"
	}
	if cfg.OpenAI.Voice == "" {
		cfg.OpenAI.Voice = "nova"
	}
	if cfg.OpenAI.Timeout == 0 {
		cfg.OpenAI.Timeout = defaultUpstreamTimeout
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Credentials == nil {
		cfg.Credentials = &CredentialsConfig{}
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

// buildReplicasFromEnv builds read replicas from POSTGRES_REPLICAS_{index}_{field}.
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
