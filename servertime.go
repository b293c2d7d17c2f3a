package main

import (
	"time"
)

type ServerTimeRetriever interface {
	Retrieve() (millis int64, err error)
}

// ServerTimeClient reads the wall clock. A nil now falls back to time.Now.
type ServerTimeClient struct {
	now func() time.Time
}

// Retrieve returns whole milliseconds since the Unix epoch, truncated toward
// negative infinity.
func (client *ServerTimeClient) Retrieve() (millis int64, err error) {
	now := client.now
	if now == nil {
		now = time.Now
	}
	return now().UnixMilli(), nil
}
