package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Job dispatch providers
const (
	PubSubProviderInline = "inline"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderAsynq  = "asynq"
	PubSubProviderNoop   = "noop"
)

// Persistence drivers
const (
	PersistenceDriverSupabase = "supabase"
	PersistenceDriverPostgres = "postgres"
)

// Artifact storage providers
const (
	StorageProviderSupabase = "supabase"
	StorageProviderBlob     = "blob"
)

// Asynq task types
const (
	TaskTypePodcastGenerate = "podcast:generate"
)

// Upstream service names used in error messages
const (
	ServiceDatabase    = "database"
	ServiceGmail       = "gmail"
	ServiceOpenAI      = "openai"
	ServiceStorage     = "storage"
	ServiceSupabase    = "supabase"
	ServiceGoogleOAuth = "google oauth"
)
