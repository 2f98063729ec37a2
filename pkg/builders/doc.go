// Package builders provides staged builders that produce immutable value objects.
//
// This package contains:
//
// # Builders
//
//   - [PersonBuilder] producing [Person]
//   - [DatabaseConfigBuilder] producing [DatabaseConfig]
//
// Each setter overwrites one field and returns the same builder, so calls
// chain. Build copies the current state into a new value object; slices and
// maps are cloned, so later setter calls never reach a value that was
// already built. Fields that were never set keep their documented default.
// The plain builders never validate and never fail.
//
// # Validation
//
//   - [ValidatedPersonBuilder] and [ValidatedDatabaseConfigBuilder] check each
//     input as it is set and report every rejected input from Build
//   - [Validator] for accumulating validation errors
//   - Validation functions: ValidateRequired, ValidateRange, ValidateEmail, etc.
//
// # Result Types
//
//   - [BuildResult] generic type for wrapping builder results with errors
//
// Example usage:
//
//	person := builders.NewPerson().
//	    FirstName("Ada").
//	    LastName("Lovelace").
//	    Age(36).
//	    Build()
//
//	cfg := builders.NewDatabaseConfig().
//	    Host("db.internal").
//	    Database("orders").
//	    MaxConnections(25).
//	    Build()
//
//	strict, err := builders.NewValidatedPerson().
//	    FirstName("Ada").
//	    Age(-1).
//	    Build().
//	    Unwrap()
package builders
