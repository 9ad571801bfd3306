package config

const (
	defaultServerPort = 8080

	defaultBcryptCost = 10

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitRPS   = 5.0
	defaultRateLimitBurst = 10
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
// auth.jwt_secret has no default on purpose: every deployment must set its own.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"database.driver": "sqlite",
		"database.dsn":    "autoglass.db",

		"auth.token_ttl":   "24h",
		"auth.bcrypt_cost": defaultBcryptCost,

		"alerts.enabled":                                false,
		"alerts.client.base_url":                        "http://localhost:8081",
		"alerts.client.timeout":                         "30s",
		"alerts.client.retry.max_attempts":              defaultRetryMaxAttempts,
		"alerts.client.retry.initial_interval":          "100ms",
		"alerts.client.retry.max_interval":              "10s",
		"alerts.client.retry.multiplier":                defaultRetryMultiplier,
		"alerts.client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"alerts.client.circuit_breaker.timeout":         "30s",
		"alerts.client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"alerts.client.rate_limit.requests_per_second":  defaultRateLimitRPS,
		"alerts.client.rate_limit.burst":                defaultRateLimitBurst,

		"telemetry.enabled":  false,
		"telemetry.exporter": "stdout",
		"telemetry.endpoint": "",
	}
}
