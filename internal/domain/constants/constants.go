package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Event publisher providers
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderNATS   = "nats"
)

// Geocoder providers
const (
	GeocoderProviderNone      = "none"
	GeocoderProviderNominatim = "nominatim"
)

// Session store providers
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)
