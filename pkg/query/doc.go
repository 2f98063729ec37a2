// Package query assembles query text from chained clause calls.
//
// Each call appends exactly one clause, in call order. The builder never
// reorders, merges or deduplicates clauses, so the text reads the way the
// chain was written:
//
//	q := query.New().
//	    Select("id", "name").
//	    From("users").
//	    Where("age > ?", 18).
//	    OrderBy("name").
//	    Limit(10)
//
//	q.Build() // "SELECT id, name FROM users WHERE age > ? ORDER BY name LIMIT 10"
//	q.Args()  // [18]
//
// Placeholders are passed through untouched; bound arguments are collected
// in call order for database/sql.
package query
