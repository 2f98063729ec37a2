package fluent

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Calculator is a float64 accumulator with chainable operations.
// Every operation is recorded in the history. Division by zero follows
// IEEE-754 and yields ±Inf or NaN.
//
// Example:
//
//	result := fluent.NewCalculator(10).
//	    Add(5).
//	    Multiply(2).
//	    Subtract(4).
//	    Result() // 26
type Calculator struct {
	value   float64
	initial float64
	history []string
}

// NewCalculator creates a calculator holding initial.
func NewCalculator(initial float64) *Calculator {
	return &Calculator{value: initial, initial: initial}
}

// Add adds n.
func (c *Calculator) Add(n float64) *Calculator {
	c.value += n
	return c.record("+", n)
}

// Subtract subtracts n.
func (c *Calculator) Subtract(n float64) *Calculator {
	c.value -= n
	return c.record("-", n)
}

// Multiply multiplies by n.
func (c *Calculator) Multiply(n float64) *Calculator {
	c.value *= n
	return c.record("*", n)
}

// Divide divides by n.
func (c *Calculator) Divide(n float64) *Calculator {
	c.value /= n
	return c.record("/", n)
}

// Power raises the value to the n-th power.
func (c *Calculator) Power(n float64) *Calculator {
	c.value = math.Pow(c.value, n)
	return c.record("^", n)
}

// Negate flips the sign.
func (c *Calculator) Negate() *Calculator {
	c.value = -c.value
	c.history = append(c.history, "neg")
	return c
}

// Reset returns to the initial value and clears the history.
func (c *Calculator) Reset() *Calculator {
	c.value = c.initial
	c.history = nil
	return c
}

// Result returns the current value.
func (c *Calculator) Result() float64 {
	return c.value
}

// History returns a copy of the recorded steps, e.g. ["+ 5", "* 2"].
func (c *Calculator) History() []string {
	out := make([]string, len(c.history))
	copy(out, c.history)
	return out
}

// String renders the computation, e.g. "10 + 5 * 2 = 30".
func (c *Calculator) String() string {
	var b strings.Builder
	b.WriteString(formatNumber(c.initial))
	for _, step := range c.history {
		b.WriteByte(' ')
		b.WriteString(step)
	}
	fmt.Fprintf(&b, " = %s", formatNumber(c.value))
	return b.String()
}

func (c *Calculator) record(op string, n float64) *Calculator {
	c.history = append(c.history, op+" "+formatNumber(n))
	return c
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
