// Package lifecycle holds shared startup and shutdown settings.
package lifecycle

import "time"

// DefaultTimeout bounds start and stop hooks such as database pings and HTTP shutdown.
const DefaultTimeout = 10 * time.Second
