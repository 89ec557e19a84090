// Package lifecycle holds shared constants for process start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown hooks (DB ping, server drain).
const DefaultTimeout = 10 * time.Second
