// Package id provides centralized ID generation for the shell.
//
// All shell-minted identifiers are prefixed ULIDs: lexicographically
// sortable, unique across the process, and readable in logs
// (win_*, toast_*). App-supplied window IDs bypass this package on
// purpose; reusing an ID is how apps express "reuse this window".
package id

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

const (
	WindowPrefix = "win"
	ToastPrefix  = "toast"
)

// Generator mints prefixed ULIDs from a shared entropy source.
type Generator struct {
	entropy   io.Reader
	entropyMu sync.Mutex
}

var (
	defaultGenerator *Generator
	once             sync.Once
)

// Default returns the process-wide generator.
func Default() *Generator {
	once.Do(func() {
		defaultGenerator = NewGenerator(rand.Reader)
	})
	return defaultGenerator
}

// NewGenerator creates a generator with the given entropy source.
// Tests can pass a deterministic reader.
func NewGenerator(entropy io.Reader) *Generator {
	return &Generator{entropy: entropy}
}

// Generate creates one ULID.
func (g *Generator) Generate() ulid.ULID {
	g.entropyMu.Lock()
	defer g.entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy)
}

// GenerateWithPrefix creates a prefixed ULID string.
func (g *Generator) GenerateWithPrefix(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, g.Generate().String())
}

// NewWindowID mints an ID for a window the caller did not name.
func NewWindowID() string {
	return Default().GenerateWithPrefix(WindowPrefix)
}

// NewToastID mints an ID for a notification toast.
func NewToastID() string {
	return Default().GenerateWithPrefix(ToastPrefix)
}
