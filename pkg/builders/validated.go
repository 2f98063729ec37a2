package builders

import (
	"time"

	pkgerrors "github.com/jdziat/fluentkit/pkg/errors"
)

// ValidatedPersonBuilder wraps PersonBuilder with validation.
// Each setter validates its input immediately. A rejected value is not
// applied and its error is kept. Build returns a BuildResult that carries
// every accumulated error.
type ValidatedPersonBuilder struct {
	builder *PersonBuilder
	Validator
}

// NewValidatedPerson creates a new validated person builder.
func NewValidatedPerson() *ValidatedPersonBuilder {
	return &ValidatedPersonBuilder{builder: NewPerson()}
}

// FirstName sets the first name with length validation.
func (b *ValidatedPersonBuilder) FirstName(name string) *ValidatedPersonBuilder {
	if b.Check(ValidateLength("firstName", name, MaxNameLength)) {
		b.builder.FirstName(name)
	}
	return b
}

// LastName sets the last name with length validation.
func (b *ValidatedPersonBuilder) LastName(name string) *ValidatedPersonBuilder {
	if b.Check(ValidateLength("lastName", name, MaxNameLength)) {
		b.builder.LastName(name)
	}
	return b
}

// Age sets the age. It must be between 0 and MaxAge.
func (b *ValidatedPersonBuilder) Age(age int) *ValidatedPersonBuilder {
	if b.Check(ValidateRange("age", age, 0, MaxAge)) {
		b.builder.Age(age)
	}
	return b
}

// Email sets the email address with format validation.
func (b *ValidatedPersonBuilder) Email(email string) *ValidatedPersonBuilder {
	if b.Check(ValidateEmail("email", email)) {
		b.builder.Email(email)
	}
	return b
}

// Phone sets the phone number.
func (b *ValidatedPersonBuilder) Phone(phone string) *ValidatedPersonBuilder {
	b.builder.Phone(phone)
	return b
}

// City sets the city.
func (b *ValidatedPersonBuilder) City(city string) *ValidatedPersonBuilder {
	b.builder.City(city)
	return b
}

// Hobbies replaces the hobby list. Empty hobbies are rejected.
func (b *ValidatedPersonBuilder) Hobbies(hobbies ...string) *ValidatedPersonBuilder {
	for _, h := range hobbies {
		if !b.Check(ValidateRequired("hobbies", h)) {
			return b
		}
	}
	b.builder.Hobbies(hobbies...)
	return b
}

// AddHobby appends one hobby. An empty hobby is rejected.
func (b *ValidatedPersonBuilder) AddHobby(hobby string) *ValidatedPersonBuilder {
	if b.Check(ValidateRequired("hobbies", hobby)) {
		b.builder.AddHobby(hobby)
	}
	return b
}

// Build validates required fields and returns the person or the combined
// validation errors. The first name is required.
func (b *ValidatedPersonBuilder) Build() BuildResult[Person] {
	errs := b.Errors()
	if err := ValidateRequired("firstName", b.builder.firstName); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return BuildResultError[Person](pkgerrors.CombineValidationErrors(errs))
	}
	return BuildResultOk(b.builder.Build())
}

// ValidatedDatabaseConfigBuilder wraps DatabaseConfigBuilder with validation.
type ValidatedDatabaseConfigBuilder struct {
	builder *DatabaseConfigBuilder
	Validator
}

// NewValidatedDatabaseConfig creates a new validated database config builder.
func NewValidatedDatabaseConfig() *ValidatedDatabaseConfigBuilder {
	return &ValidatedDatabaseConfigBuilder{builder: NewDatabaseConfig()}
}

// Host sets the host. It must not be empty.
func (b *ValidatedDatabaseConfigBuilder) Host(host string) *ValidatedDatabaseConfigBuilder {
	if b.Check(ValidateRequired("host", host)) {
		b.builder.Host(host)
	}
	return b
}

// Port sets the port. It must be between 1 and MaxPort.
func (b *ValidatedDatabaseConfigBuilder) Port(port int) *ValidatedDatabaseConfigBuilder {
	if b.Check(ValidatePort("port", port)) {
		b.builder.Port(port)
	}
	return b
}

// Database sets the database name.
func (b *ValidatedDatabaseConfigBuilder) Database(name string) *ValidatedDatabaseConfigBuilder {
	b.builder.Database(name)
	return b
}

// Username sets the user name.
func (b *ValidatedDatabaseConfigBuilder) Username(user string) *ValidatedDatabaseConfigBuilder {
	b.builder.Username(user)
	return b
}

// Password sets the password.
func (b *ValidatedDatabaseConfigBuilder) Password(password string) *ValidatedDatabaseConfigBuilder {
	b.builder.Password(password)
	return b
}

// MaxConnections sets the pool size. It must be at least 1.
func (b *ValidatedDatabaseConfigBuilder) MaxConnections(n int) *ValidatedDatabaseConfigBuilder {
	if n < 1 {
		b.AddFieldError("maxConnections", "must be at least 1")
		return b
	}
	b.builder.MaxConnections(n)
	return b
}

// ConnectTimeout sets the dial timeout. It must be positive.
func (b *ValidatedDatabaseConfigBuilder) ConnectTimeout(d time.Duration) *ValidatedDatabaseConfigBuilder {
	if b.Check(ValidatePositiveDuration("connectTimeout", d)) {
		b.builder.ConnectTimeout(d)
	}
	return b
}

// SSL sets whether TLS is required.
func (b *ValidatedDatabaseConfigBuilder) SSL(enabled bool) *ValidatedDatabaseConfigBuilder {
	b.builder.SSL(enabled)
	return b
}

// Option sets one driver option. The key must not be empty.
func (b *ValidatedDatabaseConfigBuilder) Option(key, value string) *ValidatedDatabaseConfigBuilder {
	if b.Check(ValidateRequired("options", key)) {
		b.builder.Option(key, value)
	}
	return b
}

// Build returns the configuration or the combined validation errors.
func (b *ValidatedDatabaseConfigBuilder) Build() BuildResult[DatabaseConfig] {
	if b.HasErrors() {
		return BuildResultError[DatabaseConfig](b.CombinedError())
	}
	return BuildResultOk(b.builder.Build())
}
