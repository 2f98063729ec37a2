// Package fluentkit collects small construction idioms for Go values and a
// console runner that walks through them.
//
// The idioms live in sub-packages:
//
//   - pkg/builders: staged builders producing immutable values
//     (Person, DatabaseConfig), plus validating variants that report
//     every rejected input through a BuildResult
//   - pkg/fluent: mutable types whose setters return their own receiver
//     (Calculator, Employee)
//   - pkg/query: an order-preserving query text builder with bound arguments
//   - pkg/id: process-wide sequences and UUIDs
//
// This package re-exports the most used types so that one import is enough:
//
//	person := fluentkit.NewPerson().
//	    FirstName("Ada").
//	    LastName("Lovelace").
//	    Age(36).
//	    Build()
//
//	q := fluentkit.NewQuery().
//	    Select("name", "email").
//	    From("users").
//	    Where("age > ?", 18).
//	    OrderBy("name")
//	rows, err := db.QueryContext(ctx, q.Build(), q.Args()...)
//
// # Logging
//
// The demo runner logs through [StructuredLogger]. Adapters are provided for
// log/slog ([NewSlogAdapter]), zap ([NewZapAdapter]) and printf-style
// loggers ([WrapPrintfLogger]); [NopLogger] discards everything. The library
// packages themselves never log.
package fluentkit
