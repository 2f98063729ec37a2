package id

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// fallbackPrefix marks IDs produced without the random source.
const fallbackPrefix = "fb-"

var (
	// newRandom is swapped in tests to simulate a failing random source.
	newRandom = uuid.NewRandom

	fallbackCounter atomic.Uint64
	fallbackCount   atomic.Int64

	// processID is cached at startup for fallback IDs.
	processID = os.Getpid()
)

// NewUUID returns a random (version 4) UUID string.
// If the random source fails it returns a fallback ID of the form
// fb-{timestamp_hex}-{counter_hex}-{pid}, which is unique within the process.
func NewUUID() string {
	u, err := newRandom()
	if err == nil {
		return u.String()
	}
	fallbackCount.Add(1)
	return fmt.Sprintf("%s%x-%08x-%d",
		fallbackPrefix,
		time.Now().UnixNano(),
		fallbackCounter.Add(1),
		processID,
	)
}

// IsFallbackID reports whether id was produced by the fallback path.
func IsFallbackID(id string) bool {
	return strings.HasPrefix(id, fallbackPrefix)
}

// IsUUID reports whether s parses as a UUID.
func IsUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// FallbackCount returns how many IDs were produced by the fallback path.
func FallbackCount() int64 {
	return fallbackCount.Load()
}
