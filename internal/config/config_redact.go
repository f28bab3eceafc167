package config

import "net/url"

const redactedValue = "[REDACTED]"

// Redacted returns a copy of c that is safe to log: the HMAC key is masked
// and so is the password of a URL-style database DSN (as xxxxx).
func (c StructuredConfig) Redacted() StructuredConfig {
	if c.App.HashKey != "" {
		c.App.HashKey = redactedValue
	}
	c.Storage.DB.DSN = redactDSN(c.Storage.DB.DSN)
	return c
}

func redactDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.User == nil {
		return dsn
	}
	return u.Redacted()
}
