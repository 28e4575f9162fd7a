// Package constants holds configuration keywords shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvLocal      = "local"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderNone   = ""
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Position sources
const (
	GeolocationProviderIPAPI  = "ipapi"
	GeolocationProviderStatic = "static"
	GeolocationProviderNone   = "none"
)

// Session stores
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)
