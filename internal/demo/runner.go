package demo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/jdziat/fluentkit"
	"github.com/jdziat/fluentkit/pkg/config"
	pkgerrors "github.com/jdziat/fluentkit/pkg/errors"
	"github.com/jdziat/fluentkit/pkg/id"
)

// Status is the outcome of one demo.
type Status int

const (
	// StatusPassed means the demo returned nil.
	StatusPassed Status = iota
	// StatusFailed means the demo returned an error or panicked.
	StatusFailed
	// StatusSkipped means the context was done before the demo started.
	StatusSkipped
)

// String returns a string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusPassed:
		return "passed"
	case StatusFailed:
		return "failed"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Result records one demo invocation.
type Result struct {
	Name     string
	Status   Status
	Duration time.Duration
	Err      error
}

// Report summarizes a Run.
type Report struct {
	RunID   string
	Started time.Time
	Results []Result
}

// Count returns how many results have the given status.
func (r *Report) Count(s Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == s {
			n++
		}
	}
	return n
}

// Summary returns a one-line description such as "7 demos: 6 passed, 1 failed, 0 skipped".
func (r *Report) Summary() string {
	return fmt.Sprintf("%d demos: %d passed, %d failed, %d skipped",
		len(r.Results), r.Count(StatusPassed), r.Count(StatusFailed), r.Count(StatusSkipped))
}

// Runner invokes demos sequentially.
type Runner struct {
	demos  []Demo
	out    io.Writer
	logger fluentkit.StructuredLogger
	config *config.Config
}

// Option configures a Runner.
type Option func(*Runner)

// WithOutput sets where demos write their console output.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.out = w
	}
}

// WithLogger sets the logger for runner and demo events.
func WithLogger(l fluentkit.StructuredLogger) Option {
	return func(r *Runner) {
		r.logger = l
	}
}

// WithConfig sets the configuration passed to demos.
func WithConfig(cfg *config.Config) Option {
	return func(r *Runner) {
		r.config = cfg
	}
}

// WithDemos replaces the built-in registry.
func WithDemos(demos ...Demo) Option {
	return func(r *Runner) {
		r.demos = slices.Clone(demos)
	}
}

// NewRunner creates a Runner over the built-in registry.
// Output is discarded and nothing is logged unless configured.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		demos:  Registry(),
		out:    io.Discard,
		logger: fluentkit.NopLogger{},
		config: config.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.out == nil {
		r.out = io.Discard
	}
	if r.logger == nil {
		r.logger = fluentkit.NopLogger{}
	}
	if r.config == nil {
		r.config = config.DefaultConfig()
	}
	return r
}

// Demos returns the demos known to the runner, in run order.
func (r *Runner) Demos() []Demo {
	return slices.Clone(r.demos)
}

// Run invokes the named demos in the order given, or every demo when names
// is empty. Unknown names are rejected before anything runs. A failing demo
// does not stop the run; its error is included in the joined error returned
// alongside the report. Once ctx is done the remaining demos are skipped.
func (r *Runner) Run(ctx context.Context, names ...string) (*Report, error) {
	selected, err := r.resolve(names)
	if err != nil {
		return nil, err
	}

	report := &Report{
		RunID:   id.NewUUID(),
		Started: time.Now(),
		Results: make([]Result, 0, len(selected)),
	}
	env := &Env{
		Out:    r.out,
		Logger: r.logger,
		Config: r.config,
		RunID:  report.RunID,
	}

	r.logger.Info("demo run starting", "run_id", report.RunID, "demos", len(selected))

	var errs []error
	for i, d := range selected {
		if ctxErr := ctx.Err(); ctxErr != nil {
			for _, rest := range selected[i:] {
				report.Results = append(report.Results, Result{Name: rest.Name, Status: StatusSkipped})
			}
			r.logger.Warn("demo run interrupted", "run_id", report.RunID, "skipped", len(selected)-i, "error", ctxErr)
			errs = append(errs, ctxErr)
			break
		}

		fmt.Fprintf(r.out, "== %s: %s ==\n", d.Name, d.Summary)
		start := time.Now()
		runErr := invoke(ctx, d, env)
		res := Result{Name: d.Name, Status: StatusPassed, Duration: time.Since(start)}
		if runErr != nil {
			res.Status = StatusFailed
			res.Err = fmt.Errorf("demo %s: %w", d.Name, runErr)
			errs = append(errs, res.Err)
			r.logger.Error("demo failed",
				"demo", d.Name, "duration", res.Duration, "code", pkgerrors.CodeOf(runErr), "error", runErr)
		} else {
			r.logger.Debug("demo finished", "demo", d.Name, "duration", res.Duration)
		}
		report.Results = append(report.Results, res)
		fmt.Fprintln(r.out)
	}

	r.logger.Info("demo run finished", "run_id", report.RunID, "summary", report.Summary())
	return report, errors.Join(errs...)
}

// resolve maps names to demos, keeping the caller's order.
func (r *Runner) resolve(names []string) ([]Demo, error) {
	if len(names) == 0 {
		return slices.Clone(r.demos), nil
	}
	selected := make([]Demo, 0, len(names))
	for _, name := range names {
		d, ok := find(r.demos, name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", pkgerrors.ErrUnknownDemo, name)
		}
		selected = append(selected, d)
	}
	return selected, nil
}

// invoke runs one demo, turning a panic into an error.
func invoke(ctx context.Context, d Demo, env *Env) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
		}
	}()
	if d.Run == nil {
		return errors.New("no run function")
	}
	return d.Run(ctx, env)
}
