// Package audit provides a tamper-evident log of ledger operations. Entries
// are hash-chained: each entry's hash covers the previous entry's hash, so
// editing any recorded operation breaks every hash after it.
package audit

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"
)

// retention bounds how many entries the logger keeps in memory. The chain
// hash always covers the full history; only the retained tail is listable.
const retention = 4096

// Entry is a single audit record.
type Entry struct {
	Seq          int64  `json:"seq"`
	Timestamp    string `json:"timestamp"`
	PreviousHash string `json:"previous_hash"`
	Payload      string `json:"payload"`
	Hash         string `json:"hash"`
}

// ChainLogger records operations as a hash chain.
type ChainLogger struct {
	mu       sync.Mutex
	previous string
	seq      int64
	entries  []*Entry
}

// NewChainLogger creates a logger with a zero genesis hash.
func NewChainLogger() *ChainLogger {
	return &ChainLogger{
		previous: strings.Repeat("0", 64),
	}
}

// Append records a payload as the next entry in the chain.
func (c *ChainLogger) Append(payload string) *Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	entry := &Entry{
		Seq:          c.seq,
		Timestamp:    time.Now().UTC().Format(time.RFC3339Nano),
		PreviousHash: c.previous,
		Payload:      payload,
	}
	entry.Hash = entryHash(entry)

	c.previous = entry.Hash
	c.entries = append(c.entries, entry)
	if len(c.entries) > retention {
		c.entries = c.entries[len(c.entries)-retention:]
	}
	return entry
}

// Appendf records a formatted payload.
func (c *ChainLogger) Appendf(format string, args ...any) *Entry {
	return c.Append(fmt.Sprintf(format, args...))
}

// Entries returns a copy of the retained tail of the chain, oldest first.
func (c *ChainLogger) Entries() []*Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries := make([]*Entry, len(c.entries))
	for i, entry := range c.entries {
		cloned := *entry
		entries[i] = &cloned
	}
	return entries
}

// Len returns how many entries the chain has recorded in total.
func (c *ChainLogger) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return int(c.seq)
}

// Verify recomputes the retained tail of the chain.
func (c *ChainLogger) Verify() bool {
	return VerifyChain(c.Entries())
}

// VerifyChain checks that a contiguous slice of entries forms a valid hash
// chain. The first entry's PreviousHash is taken as given, so any retained
// tail of a longer chain verifies on its own.
func VerifyChain(entries []*Entry) bool {
	for i, entry := range entries {
		if i > 0 && entry.PreviousHash != entries[i-1].Hash {
			return false
		}
		if entryHash(entry) != entry.Hash {
			return false
		}
	}
	return true
}

func entryHash(entry *Entry) string {
	hashInput := fmt.Sprintf("%d|%s|%s|%s", entry.Seq, entry.PreviousHash, entry.Timestamp, entry.Payload)
	hash := sha256.Sum256([]byte(hashInput))
	return hex.EncodeToString(hash[:])
}
