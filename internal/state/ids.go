package state

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewHabitID returns a unique habit id. UUIDv4 when entropy is available,
// otherwise a timestamp-plus-random-suffix composite that still sorts
// roughly by creation time.
func NewHabitID() string {
	if id, err := uuid.NewRandom(); err == nil {
		return id.String()
	}
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("habit_%d", time.Now().UnixNano())
	}
	return fmt.Sprintf("habit_%d_%s", time.Now().UnixMilli(), hex.EncodeToString(buf))
}
