// Package lifecycle holds shared lifecycle constants for graceful shutdown.
package lifecycle

import "time"

// DefaultTimeout is the grace period for server and session shutdown.
const DefaultTimeout = 10 * time.Second
