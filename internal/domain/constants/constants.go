// Package constants defines shared constant values of the project.
package constants

const (
	// PubSubProviderLocal selects the local HTTP publisher for development
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects Google Cloud Pub/Sub
	PubSubProviderGoogle = "google"
)
