package api

import "time"

type Configuration struct {
	Env                 string
	AppName             string
	Port                string
	RequestLoggingLevel string
	DefaultTimeout      time.Duration
	AllowedOrigins      []string
	SessionSecret       string
	MaxFormSize         int64

	// writes per second and per client ip, zero disables the limiter
	WriteRateLimit float64
	WriteRateBurst int
}

const DEFAULT_MAX_FORM_SIZE = 1 << 20 // 1MB
