package httpapi

import (
	"time"

	"helixd/internal/hub"
)

// maxBodyBytes controls the maximum allowed request body size for JSON
// endpoints and the websocket read limit. Default is 1 MiB.
var maxBodyBytes int64 = 1 << 20

// SetMaxBodyBytes allows configuring the maximum request body size.
func SetMaxBodyBytes(n int64) {
	if n <= 0 {
		maxBodyBytes = 1 << 20
		return
	}
	maxBodyBytes = n
}

// CORS configuration (opt-in). If disabled, no CORS middleware is added.
var (
	corsEnabled        bool
	corsAllowedOrigins []string
	corsAllowedMethods []string
	corsAllowedHeaders []string
)

// SetCORSOptions configures CORS behavior for the HTTP server.
func SetCORSOptions(enabled bool, origins, methods, headers []string) {
	corsEnabled = enabled
	corsAllowedOrigins = append([]string(nil), origins...)
	corsAllowedMethods = append([]string(nil), methods...)
	corsAllowedHeaders = append([]string(nil), headers...)
}

// wsOptions tunes viewer connections created by the websocket endpoint.
var wsOptions = hub.Options{}

// SetWSOptions configures per-connection buffering and write deadlines.
func SetWSOptions(sendBuffer int, writeTimeout time.Duration) {
	wsOptions = hub.Options{SendBuffer: sendBuffer, WriteTimeout: writeTimeout}
}
