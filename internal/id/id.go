// Package id issues ULID run identifiers.
package id

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	mu      sync.Mutex
	entropy io.Reader
)

func init() {
	var seed int64
	_ = binary.Read(cryptorand.Reader, binary.LittleEndian, &seed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Monotonic so IDs minted in the same millisecond still sort by creation.
	entropy = ulid.Monotonic(rand.New(rand.NewSource(seed)), 0)
}

// New returns a time-sortable ULID string. Run IDs sort by creation time,
// which keeps journal listings and SQLite indexes in chronological order.
func New() string {
	mu.Lock()
	defer mu.Unlock()

	u, err := ulid.New(ulid.Timestamp(time.Now().UTC()), entropy)
	if err != nil {
		// Only possible if time goes backwards or entropy fails.
		panic(err)
	}
	return u.String()
}
