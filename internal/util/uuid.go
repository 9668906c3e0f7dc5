package util

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ShortUUID generates a short UUID with 22 symbols
func ShortUUID() string {
	u := uuid.New()
	return base64.RawURLEncoding.EncodeToString(u[:]) // 22 symbols
}

// UserLocationID builds the id for a user-added location: a timestamp
// plus a random suffix. Locally unique within a session; collisions are
// negligible, not impossible.
func UserLocationID() string {
	return fmt.Sprintf("user-%d-%s", time.Now().UnixMilli(), ShortUUID()[:9])
}
