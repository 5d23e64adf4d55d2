// Package constants holds string values shared between configuration and runtime wiring.
package constants

// Environment names used in env.env.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers accepted by pubsub.provider. An empty provider disables publishing.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// BakerTopicPrefix prefixes the FCM topic a baker's devices subscribe to.
const BakerTopicPrefix = "baker-"

// Pub/Sub message attribute keys.
const (
	AttrEventType   = "event_type"
	AttrBakerUserID = "baker_user_id"
	AttrRequestID   = "request_id"
)
