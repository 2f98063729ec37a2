// Package id provides process-wide ID sources.
//
// A [Sequence] is an atomic counter that hands out 1, 2, 3, ... and is safe
// for concurrent use. The package keeps one sequence per kind of thing the
// demos number (orders, connections, employees); they start at zero when
// the process starts and are never torn down.
//
// [NewUUID] returns a random UUID. If the random source fails, it falls back
// to a timestamp + counter + process ID identifier rather than failing.
//
// Example usage:
//
//	orderID := id.OrderIDs.Format("ORD") // "ORD-0001"
//	runID := id.NewUUID()
//
//	if id.IsFallbackID(runID) {
//	    log.Warn("random source unavailable")
//	}
package id
