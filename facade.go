package fluentkit

// This file re-exports the value types and constructors of the pkg/
// packages so that callers can depend on the root package alone.

import (
	"github.com/jdziat/fluentkit/pkg/builders"
	pkgerrors "github.com/jdziat/fluentkit/pkg/errors"
	"github.com/jdziat/fluentkit/pkg/fluent"
	"github.com/jdziat/fluentkit/pkg/id"
	"github.com/jdziat/fluentkit/pkg/query"
)

// Builders and the values they produce.
type (
	// Person is an immutable person record.
	Person = builders.Person
	// PersonBuilder builds a Person.
	PersonBuilder = builders.PersonBuilder
	// DatabaseConfig is an immutable database connection configuration.
	DatabaseConfig = builders.DatabaseConfig
	// DatabaseConfigBuilder builds a DatabaseConfig with defaults.
	DatabaseConfigBuilder = builders.DatabaseConfigBuilder
	// ValidatedPersonBuilder builds a Person and reports rejected inputs.
	ValidatedPersonBuilder = builders.ValidatedPersonBuilder
	// ValidatedDatabaseConfigBuilder builds a DatabaseConfig and reports rejected inputs.
	ValidatedDatabaseConfigBuilder = builders.ValidatedDatabaseConfigBuilder
)

// Fluent mutators and the query builder.
type (
	// Calculator is a running total with chained arithmetic.
	Calculator = fluent.Calculator
	// Employee is a mutable employee record with chained setters.
	Employee = fluent.Employee
	// Query assembles query text and its bound arguments.
	Query = query.Builder
	// Sequence is a concurrency-safe counter.
	Sequence = id.Sequence
)

// Error types.
type (
	// ValidationError reports one rejected input.
	ValidationError = pkgerrors.ValidationError
	// ValidationErrors reports several rejected inputs.
	ValidationErrors = pkgerrors.ValidationErrors
	// ErrorCode categorizes errors for logging.
	ErrorCode = pkgerrors.ErrorCode
)

// Constructors.
var (
	// NewPerson starts a PersonBuilder with every field unset.
	NewPerson = builders.NewPerson
	// NewDatabaseConfig starts a DatabaseConfigBuilder with default values.
	NewDatabaseConfig = builders.NewDatabaseConfig
	// NewValidatedPerson starts a validating PersonBuilder.
	NewValidatedPerson = builders.NewValidatedPerson
	// NewValidatedDatabaseConfig starts a validating DatabaseConfigBuilder.
	NewValidatedDatabaseConfig = builders.NewValidatedDatabaseConfig
	// NewCalculator returns a Calculator holding initial.
	NewCalculator = fluent.NewCalculator
	// NewEmployee returns an Employee with the next employee ID.
	NewEmployee = fluent.NewEmployee
	// NewQuery returns an empty query builder.
	NewQuery = query.New
	// NewSequence returns a Sequence whose first Next value is start+1.
	NewSequence = id.NewSequence
	// NewUUID returns a random UUID, or a fallback ID if randomness fails.
	NewUUID = id.NewUUID
)

// Sentinel errors.
var (
	ErrUnknownDemo             = pkgerrors.ErrUnknownDemo
	ErrInvalidConfig           = pkgerrors.ErrInvalidConfig
	ErrUnsupportedConfigFormat = pkgerrors.ErrUnsupportedConfigFormat
)
