package builders

import (
	"fmt"
	"maps"
	"net"
	"net/url"
	"strconv"
	"time"
)

// Database connection defaults applied to fields that are never set.
const (
	DefaultHost           = "localhost"
	DefaultPort           = 5432
	DefaultMaxConnections = 10
	DefaultConnectTimeout = 30 * time.Second
)

// DatabaseConfig is an immutable database connection description produced
// by DatabaseConfigBuilder.
type DatabaseConfig struct {
	host           string
	port           int
	database       string
	username       string
	password       string
	maxConnections int
	connectTimeout time.Duration
	ssl            bool
	options        map[string]string
}

// Host returns the server host name.
func (c DatabaseConfig) Host() string { return c.host }

// Port returns the server port.
func (c DatabaseConfig) Port() int { return c.port }

// Database returns the database name.
func (c DatabaseConfig) Database() string { return c.database }

// Username returns the user name.
func (c DatabaseConfig) Username() string { return c.username }

// Password returns the password.
func (c DatabaseConfig) Password() string { return c.password }

// MaxConnections returns the connection pool size.
func (c DatabaseConfig) MaxConnections() int { return c.maxConnections }

// ConnectTimeout returns the dial timeout.
func (c DatabaseConfig) ConnectTimeout() time.Duration { return c.connectTimeout }

// SSL reports whether TLS is required.
func (c DatabaseConfig) SSL() bool { return c.ssl }

// Address returns host:port. IPv6 hosts are bracketed, e.g. [::1]:5432.
func (c DatabaseConfig) Address() string {
	return net.JoinHostPort(c.host, strconv.Itoa(c.port))
}

// Options returns a copy of the driver options. It is never nil.
func (c DatabaseConfig) Options() map[string]string {
	out := make(map[string]string, len(c.options))
	maps.Copy(out, c.options)
	return out
}

// Option returns a single driver option.
func (c DatabaseConfig) Option(key string) (string, bool) {
	v, ok := c.options[key]
	return v, ok
}

// DSN renders the configuration as user:pass@tcp(host:port)/db?params.
// Parameters are sorted by key.
func (c DatabaseConfig) DSN() string {
	return c.dsn(c.password)
}

// Redacted is DSN with the password replaced, for logging.
func (c DatabaseConfig) Redacted() string {
	if c.password == "" {
		return c.dsn("")
	}
	return c.dsn("********")
}

func (c DatabaseConfig) dsn(password string) string {
	var userinfo string
	switch {
	case c.username != "" && password != "":
		userinfo = c.username + ":" + password + "@"
	case c.username != "":
		userinfo = c.username + "@"
	}

	params := url.Values{}
	for k, v := range c.options {
		params.Set(k, v)
	}
	if c.ssl {
		params.Set("tls", "true")
	}
	if c.connectTimeout > 0 {
		params.Set("timeout", c.connectTimeout.String())
	}

	dsn := fmt.Sprintf("%stcp(%s)/%s", userinfo, c.Address(), c.database)
	if encoded := params.Encode(); encoded != "" {
		dsn += "?" + encoded
	}
	return dsn
}

// String implements fmt.Stringer without exposing the password.
func (c DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{%s, maxConnections=%d}", c.Redacted(), c.maxConnections)
}

// ToBuilder returns a new builder seeded with this configuration.
// Changes made through the builder do not affect c.
func (c DatabaseConfig) ToBuilder() *DatabaseConfigBuilder {
	b := NewDatabaseConfig()
	b.cfg = c
	b.cfg.options = maps.Clone(c.options)
	return b
}

// DatabaseConfigBuilder accumulates connection settings across chained calls.
// Fields that are never set keep their defaults: host DefaultHost, port
// DefaultPort, max connections DefaultMaxConnections and timeout
// DefaultConnectTimeout.
//
// Example:
//
//	cfg := NewDatabaseConfig().
//	    Host("db.internal").
//	    Database("orders").
//	    Username("app").
//	    SSL(true).
//	    Build()
type DatabaseConfigBuilder struct {
	cfg DatabaseConfig
}

// NewDatabaseConfig creates a builder holding the defaults.
func NewDatabaseConfig() *DatabaseConfigBuilder {
	return &DatabaseConfigBuilder{
		cfg: DatabaseConfig{
			host:           DefaultHost,
			port:           DefaultPort,
			maxConnections: DefaultMaxConnections,
			connectTimeout: DefaultConnectTimeout,
		},
	}
}

// Host sets the server host name.
func (b *DatabaseConfigBuilder) Host(host string) *DatabaseConfigBuilder {
	b.cfg.host = host
	return b
}

// Port sets the server port.
func (b *DatabaseConfigBuilder) Port(port int) *DatabaseConfigBuilder {
	b.cfg.port = port
	return b
}

// Database sets the database name.
func (b *DatabaseConfigBuilder) Database(name string) *DatabaseConfigBuilder {
	b.cfg.database = name
	return b
}

// Username sets the user name.
func (b *DatabaseConfigBuilder) Username(user string) *DatabaseConfigBuilder {
	b.cfg.username = user
	return b
}

// Password sets the password.
func (b *DatabaseConfigBuilder) Password(password string) *DatabaseConfigBuilder {
	b.cfg.password = password
	return b
}

// MaxConnections sets the connection pool size.
func (b *DatabaseConfigBuilder) MaxConnections(n int) *DatabaseConfigBuilder {
	b.cfg.maxConnections = n
	return b
}

// ConnectTimeout sets the dial timeout.
func (b *DatabaseConfigBuilder) ConnectTimeout(d time.Duration) *DatabaseConfigBuilder {
	b.cfg.connectTimeout = d
	return b
}

// SSL sets whether TLS is required.
func (b *DatabaseConfigBuilder) SSL(enabled bool) *DatabaseConfigBuilder {
	b.cfg.ssl = enabled
	return b
}

// Option sets one driver option.
func (b *DatabaseConfigBuilder) Option(key, value string) *DatabaseConfigBuilder {
	if b.cfg.options == nil {
		b.cfg.options = make(map[string]string)
	}
	b.cfg.options[key] = value
	return b
}

// Options merges driver options. Existing keys are overwritten.
func (b *DatabaseConfigBuilder) Options(opts map[string]string) *DatabaseConfigBuilder {
	if len(opts) == 0 {
		return b
	}
	if b.cfg.options == nil {
		b.cfg.options = make(map[string]string, len(opts))
	}
	maps.Copy(b.cfg.options, opts)
	return b
}

// Build returns a DatabaseConfig holding the builder's current values.
// The options map is copied, so the builder stays usable.
func (b *DatabaseConfigBuilder) Build() DatabaseConfig {
	cfg := b.cfg
	cfg.options = maps.Clone(b.cfg.options)
	return cfg
}
