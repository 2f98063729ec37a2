// Package fluent provides mutable types whose setters return their own
// receiver, so several changes can be written as one chained expression.
//
// Unlike the builders in package builders there is no separate product:
// the object itself is the result, and it can keep changing for as long as
// the caller holds it. Chaining is plain sequential application, so
//
//	c.Add(2).Multiply(3)
//
// leaves c in the same state as
//
//	c.Add(2)
//	c.Multiply(3)
//
// None of the types are safe for concurrent mutation.
package fluent
