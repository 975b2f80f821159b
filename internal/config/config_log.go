package config

import (
	"net/url"
	"regexp"

	"github.com/rs/zerolog"
)

const redacted = "[REDACTED]"

var dsnPasswordPattern = regexp.MustCompile(`(?i)(password\s*=\s*)('[^']*'|\S+)`)

// MarshalZerologObject logs the configuration with the token signing key
// and the database password masked.
func (c StructuredConfig) MarshalZerologObject(e *zerolog.Event) {
	e.Object("app", c.App).
		Object("rate_limit", c.RateLimit).
		Object("locale", c.Locale).
		Object("storage", c.Storage).
		Object("server", c.Server).
		Str("config", c.JSONFilePath).
		Str("dotenv", c.DotEnvPath)
}

func (a App) MarshalZerologObject(e *zerolog.Event) {
	e.Str("token_sign_key", mask(a.TokenSignKey)).
		Str("token_issuer", a.TokenIssuer).
		Dur("token_duration", a.TokenDuration).
		Str("version", a.Version).
		Str("log_level", a.LogLevel)
}

func (r RateLimit) MarshalZerologObject(e *zerolog.Event) {
	e.Int64("capacity", r.Capacity).
		Int64("refill_tokens", r.RefillTokens).
		Dur("refill_interval", r.RefillInterval).
		Int("max_clients", r.MaxClients).
		Dur("prune_interval", r.PruneInterval)
}

func (l Locale) MarshalZerologObject(e *zerolog.Event) {
	e.Str("default", l.Default).Strs("supported", l.Supported)
}

func (s Storage) MarshalZerologObject(e *zerolog.Event) {
	e.Object("db", s.DB)
}

func (d DB) MarshalZerologObject(e *zerolog.Event) {
	e.Str("driver", d.Driver).Str("dsn", RedactDSN(d.DSN))
}

func (s Server) MarshalZerologObject(e *zerolog.Event) {
	e.Str("address", s.HTTPAddress).
		Str("grpc_address", s.GRPCAddress).
		Dur("request_timeout", s.RequestTimeout).
		Dur("shutdown_timeout", s.ShutdownTimeout)
}

// RedactDSN masks the password in both URL ("postgres://u:p@host/db") and
// keyword ("host=db password=p") connection strings.
func RedactDSN(dsn string) string {
	if u, err := url.Parse(dsn); err == nil && u.User != nil {
		return u.Redacted()
	}
	return dsnPasswordPattern.ReplaceAllString(dsn, "${1}"+redacted)
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	return redacted
}
