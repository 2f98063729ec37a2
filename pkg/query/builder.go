package query

import (
	"strconv"
	"strings"
)

// Builder accumulates query clauses. The zero value is an empty builder.
// A Builder should only be used from a single goroutine.
type Builder struct {
	clauses []string
	args    []any
}

// New creates an empty builder.
func New() *Builder {
	return &Builder{}
}

// Select appends "SELECT a, b". With no columns it appends "SELECT *".
func (b *Builder) Select(columns ...string) *Builder {
	if len(columns) == 0 {
		return b.add("SELECT *")
	}
	return b.add("SELECT " + strings.Join(columns, ", "))
}

// SelectDistinct appends "SELECT DISTINCT a, b".
func (b *Builder) SelectDistinct(columns ...string) *Builder {
	if len(columns) == 0 {
		return b.add("SELECT DISTINCT *")
	}
	return b.add("SELECT DISTINCT " + strings.Join(columns, ", "))
}

// From appends "FROM table".
func (b *Builder) From(table string) *Builder {
	return b.add("FROM " + table)
}

// Join appends "JOIN table ON on".
func (b *Builder) Join(table, on string) *Builder {
	return b.add("JOIN " + table + " ON " + on)
}

// LeftJoin appends "LEFT JOIN table ON on".
func (b *Builder) LeftJoin(table, on string) *Builder {
	return b.add("LEFT JOIN " + table + " ON " + on)
}

// Where appends "WHERE cond". Calling it twice appends two WHERE clauses;
// use And or Or to extend a condition.
func (b *Builder) Where(cond string, args ...any) *Builder {
	return b.add("WHERE "+cond, args...)
}

// And appends "AND cond".
func (b *Builder) And(cond string, args ...any) *Builder {
	return b.add("AND "+cond, args...)
}

// Or appends "OR cond".
func (b *Builder) Or(cond string, args ...any) *Builder {
	return b.add("OR "+cond, args...)
}

// GroupBy appends "GROUP BY a, b". With no columns nothing is appended.
func (b *Builder) GroupBy(columns ...string) *Builder {
	if len(columns) == 0 {
		return b
	}
	return b.add("GROUP BY " + strings.Join(columns, ", "))
}

// Having appends "HAVING cond".
func (b *Builder) Having(cond string, args ...any) *Builder {
	return b.add("HAVING "+cond, args...)
}

// OrderBy appends "ORDER BY a, b". With no columns nothing is appended.
func (b *Builder) OrderBy(columns ...string) *Builder {
	if len(columns) == 0 {
		return b
	}
	return b.add("ORDER BY " + strings.Join(columns, ", "))
}

// OrderByDesc appends "ORDER BY column DESC".
func (b *Builder) OrderByDesc(column string) *Builder {
	return b.add("ORDER BY " + column + " DESC")
}

// Limit appends "LIMIT n".
func (b *Builder) Limit(n int) *Builder {
	return b.add("LIMIT " + strconv.Itoa(n))
}

// Offset appends "OFFSET n".
func (b *Builder) Offset(n int) *Builder {
	return b.add("OFFSET " + strconv.Itoa(n))
}

// Raw appends text verbatim.
func (b *Builder) Raw(text string, args ...any) *Builder {
	return b.add(text, args...)
}

// Build returns the clauses joined by single spaces.
func (b *Builder) Build() string {
	return strings.Join(b.clauses, " ")
}

// String implements fmt.Stringer. It is the same as Build.
func (b *Builder) String() string {
	return b.Build()
}

// Args returns a copy of the bound arguments in call order. It is never nil.
func (b *Builder) Args() []any {
	out := make([]any, len(b.args))
	copy(out, b.args)
	return out
}

// Clauses returns a copy of the clause list.
func (b *Builder) Clauses() []string {
	out := make([]string, len(b.clauses))
	copy(out, b.clauses)
	return out
}

// Len returns the number of clauses.
func (b *Builder) Len() int {
	return len(b.clauses)
}

// Reset empties the builder so it can be reused.
func (b *Builder) Reset() *Builder {
	b.clauses = nil
	b.args = nil
	return b
}

func (b *Builder) add(clause string, args ...any) *Builder {
	b.clauses = append(b.clauses, clause)
	b.args = append(b.args, args...)
	return b
}
