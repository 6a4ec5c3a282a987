package pagination

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// ErrInvalidCursor is returned when a cursor cannot be decoded.
var ErrInvalidCursor = errors.New("invalid cursor")

// Cursor marks the last schedule of a page, ordered by creation time.
type Cursor struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// Encode encodes the cursor to a base64 string
func (c *Cursor) Encode() string {
	data, _ := json.Marshal(c)
	return base64.URLEncoding.EncodeToString(data)
}

// DecodeCursor decodes a base64 cursor string. An empty string yields a nil cursor.
func DecodeCursor(encoded string) (*Cursor, error) {
	if encoded == "" {
		return nil, nil
	}

	data, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrInvalidCursor
	}

	var cursor Cursor
	if err := json.Unmarshal(data, &cursor); err != nil || cursor.ID == "" {
		return nil, ErrInvalidCursor
	}

	return &cursor, nil
}

// NormalizeLimit ensures limit is within bounds
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
