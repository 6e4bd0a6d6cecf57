// Package packetnum generates the human-facing business keys used across the
// inventory: packet numbers and transaction numbers. ULIDs keep the keys
// sortable by creation time and collision-resistant under concurrent
// generation; the unique index in the store is the final arbiter.
package packetnum

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

const (
	packetPrefix      = "PKT-"
	transactionPrefix = "TXN-"
)

// Generator produces packet and transaction numbers. Safe for concurrent use.
type Generator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// NewGenerator creates a generator with monotonic entropy
func NewGenerator() *Generator {
	return &Generator{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// PacketNo returns a fresh packet number candidate. Callers inserting under
// the unique index retry with a fresh candidate on collision.
func (g *Generator) PacketNo() string {
	return packetPrefix + g.next()
}

// TransactionNo returns a fresh transaction number candidate
func (g *Generator) TransactionNo() string {
	return transactionPrefix + g.next()
}

func (g *Generator) next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	id, err := ulid.New(ulid.Timestamp(time.Now()), g.entropy)
	if err != nil {
		// Monotonic entropy can only fail on clock overflow; fall back to a
		// purely random ULID rather than panicking mid-request.
		return ulid.Make().String()
	}
	return id.String()
}
