package demo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"
	_ "modernc.org/sqlite"

	"github.com/jdziat/fluentkit/pkg/builders"
	pkgerrors "github.com/jdziat/fluentkit/pkg/errors"
	"github.com/jdziat/fluentkit/pkg/fluent"
	"github.com/jdziat/fluentkit/pkg/id"
	"github.com/jdziat/fluentkit/pkg/query"
)

func runPerson(_ context.Context, env *Env) error {
	ada := builders.NewPerson().
		FirstName("Ada").
		LastName("Lovelace").
		Age(36).
		Email("ada@example.com").
		City("London").
		Hobbies("math", "poetry").
		Build()
	fmt.Fprintf(env.Out, "built:    %s\n", ada)

	older := ada.ToBuilder().
		Age(37).
		AddHobby("engines").
		Build()
	fmt.Fprintf(env.Out, "derived:  %s\n", older)
	fmt.Fprintf(env.Out, "original: age=%d hobbies=%v\n", ada.Age(), ada.Hobbies())

	empty := builders.NewPerson().Build()
	fmt.Fprintf(env.Out, "unset:    %s\n", empty)
	return nil
}

func runDatabase(_ context.Context, env *Env) error {
	defaults := builders.NewDatabaseConfig().Build()
	fmt.Fprintf(env.Out, "defaults:   %s\n", defaults)

	configured, err := env.Config.DatabaseConfig()
	if err != nil {
		return err
	}
	fmt.Fprintf(env.Out, "configured: %s\n", configured)

	tuned := configured.ToBuilder().
		MaxConnections(configured.MaxConnections() * 2).
		Option("application_name", "fluentkit").
		Build()
	fmt.Fprintf(env.Out, "tuned:      %s\n", tuned)
	if _, ok := configured.Option("application_name"); ok {
		return errors.New("tuning leaked into the configured value")
	}

	env.Logger.Debug("database config resolved", "address", configured.Address(), "ssl", configured.SSL())
	return nil
}

func runStrict(_ context.Context, env *Env) error {
	res := builders.NewValidatedPerson().
		FirstName("").
		Age(200).
		Email("not-an-email").
		Build()
	if res.Ok() {
		return errors.New("invalid person was accepted")
	}
	var verrs pkgerrors.ValidationErrors
	if errors.As(res.Err(), &verrs) {
		fmt.Fprintf(env.Out, "rejected person fields: %v\n", verrs.Fields())
	}
	fmt.Fprintf(env.Out, "rejected person: %v\n", res.Err())

	grace, err := builders.NewValidatedPerson().
		FirstName("Grace").
		LastName("Hopper").
		Age(85).
		Email("grace@example.com").
		Build().
		Unwrap()
	if err != nil {
		return err
	}
	fmt.Fprintf(env.Out, "accepted person: %s\n", grace)

	db := builders.NewValidatedDatabaseConfig().
		Host("").
		Port(70000).
		MaxConnections(0).
		Build()
	fallback := db.OrElse(builders.NewDatabaseConfig().Build())
	fmt.Fprintf(env.Out, "rejected database config (%d errors), using %s\n", countErrors(db.Err()), fallback.Address())
	return nil
}

// countErrors counts the errors joined into err.
func countErrors(err error) int {
	if err == nil {
		return 0
	}
	if multi, ok := err.(interface{ Unwrap() []error }); ok {
		return len(multi.Unwrap())
	}
	return 1
}

func runCalculator(_ context.Context, env *Env) error {
	c := fluent.NewCalculator(10).
		Add(5).
		Multiply(2).
		Subtract(4).
		Divide(2)
	fmt.Fprintln(env.Out, c)

	c.Reset().Power(2).Negate()
	fmt.Fprintln(env.Out, c)

	z := fluent.NewCalculator(1).Divide(0)
	fmt.Fprintln(env.Out, z)
	return nil
}

func runEmployee(_ context.Context, env *Env) error {
	e := fluent.NewEmployee().
		SetName("Grace Hopper").
		SetTitle("Engineer").
		SetDepartment("Research").
		SetSalary(100000).
		AddSkill("COBOL").
		AddSkill("compilers")
	fmt.Fprintf(env.Out, "hired:    %s\n", e)

	e.Promote("Rear Admiral", 15).SetDepartment("Navy")
	fmt.Fprintf(env.Out, "promoted: %s\n", e)
	return nil
}

func runQuery(ctx context.Context, env *Env) error {
	q := query.New().
		Select("u.name", "count(o.id) AS orders").
		From("users u").
		LeftJoin("orders o", "o.user_id = u.id").
		Where("u.age >= ?", 18).
		GroupBy("u.id", "u.name").
		Having("count(o.id) > ?", 0).
		OrderByDesc("orders").
		Limit(10)
	fmt.Fprintf(env.Out, "query: %s\n", q)
	fmt.Fprintf(env.Out, "args:  %v\n", q.Args())

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	for _, stmt := range []string{
		`CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT NOT NULL, age INTEGER NOT NULL)`,
		`CREATE TABLE orders (id INTEGER PRIMARY KEY, user_id INTEGER NOT NULL)`,
		`INSERT INTO users (id, name, age) VALUES (1, 'ada', 36), (2, 'grace', 85), (3, 'linus', 17)`,
		`INSERT INTO orders (user_id) VALUES (1), (2), (2), (3)`,
	} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	rows, err := db.QueryContext(ctx, q.Build(), q.Args()...)
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			name   string
			orders int
		)
		if err := rows.Scan(&name, &orders); err != nil {
			return err
		}
		fmt.Fprintf(env.Out, "  %-6s %d\n", name, orders)
	}
	return rows.Err()
}

const (
	sequenceWorkers   = 4
	sequencePerWorker = 3
)

func runSequence(ctx context.Context, env *Env) error {
	ids := make([][]string, sequenceWorkers)

	g, gctx := errgroup.WithContext(ctx)
	for w := range sequenceWorkers {
		g.Go(func() error {
			for range sequencePerWorker {
				if err := gctx.Err(); err != nil {
					return err
				}
				ids[w] = append(ids[w], id.OrderIDs.Format("ORD"))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	all := slices.Concat(ids...)
	slices.Sort(all)
	if n := len(slices.Compact(slices.Clone(all))); n != len(all) {
		return fmt.Errorf("duplicate order IDs: %d unique of %d", n, len(all))
	}
	fmt.Fprintf(env.Out, "%d order IDs from %d workers, all unique: %s .. %s\n",
		len(all), sequenceWorkers, all[0], all[len(all)-1])

	fmt.Fprintf(env.Out, "connections: %s %s\n", id.ConnectionIDs.Format("CONN"), id.ConnectionIDs.Format("CONN"))
	fmt.Fprintf(env.Out, "run: %s\n", env.RunID)
	return nil
}
