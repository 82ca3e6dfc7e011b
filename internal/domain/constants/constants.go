// Package constants holds shared domain constants.
package constants

// Pub/Sub provider identifiers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Environment names.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)
