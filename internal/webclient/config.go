package webclient

import "time"

// Config holds construction options for a WebClient.
type Config struct {
	// Timeout bounds every individual request so an unresponsive device
	// cannot block the pipeline indefinitely.
	Timeout time.Duration
}

// DefaultTimeout is used when Config.Timeout is zero.
const DefaultTimeout = 15 * time.Second
