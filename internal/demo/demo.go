// Package demo holds the built-in illustrations and the runner that invokes
// them one after another.
package demo

import (
	"context"
	"io"

	"github.com/jdziat/fluentkit"
	"github.com/jdziat/fluentkit/pkg/config"
)

// Demo is one named illustration.
type Demo struct {
	Name    string
	Summary string
	Run     func(ctx context.Context, env *Env) error
}

// Env is what a demo may use while it runs.
type Env struct {
	// Out receives the demo's console output.
	Out    io.Writer
	Logger fluentkit.StructuredLogger
	// Config is never nil inside a demo.
	Config *config.Config
	// RunID identifies the runner invocation.
	RunID string
}

// Registry returns the built-in demos in the order they run by default.
func Registry() []Demo {
	return []Demo{
		{Name: "person", Summary: "staged builder producing an immutable Person", Run: runPerson},
		{Name: "database", Summary: "builder defaults and configuration overlays", Run: runDatabase},
		{Name: "strict", Summary: "validating builders reporting every rejected input", Run: runStrict},
		{Name: "calculator", Summary: "fluent mutator chaining arithmetic", Run: runCalculator},
		{Name: "employee", Summary: "fluent setters on a mutable record", Run: runEmployee},
		{Name: "query", Summary: "order-preserving query builder executed against SQLite", Run: runQuery},
		{Name: "sequence", Summary: "process-wide ID sequences under concurrency", Run: runSequence},
	}
}

// Lookup returns the built-in demo with the given name.
func Lookup(name string) (Demo, bool) {
	return find(Registry(), name)
}

func find(demos []Demo, name string) (Demo, bool) {
	for _, d := range demos {
		if d.Name == name {
			return d, true
		}
	}
	return Demo{}, false
}
