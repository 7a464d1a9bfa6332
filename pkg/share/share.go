package share

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/festperfect/festperfect/pkg/festival"
)

// shareIDLength and shareIDCharset define the opaque share token format.
const shareIDLength = 8

const shareIDCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// SharedPlan is an immutable point-in-time snapshot of a festival, addressed
// by an opaque share token. Later edits to the festival do not change the
// shared plan.
type SharedPlan struct {
	ShareID    string
	FestivalID string
	Snapshot   festival.Festival
	CreatedAt  time.Time
}

// NewShareID generates a random 8-character alphanumeric share token.
func NewShareID() (string, error) {
	buf := make([]byte, shareIDLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate share id: %w", err)
	}
	for i, b := range buf {
		buf[i] = shareIDCharset[int(b)%len(shareIDCharset)]
	}
	return string(buf), nil
}
