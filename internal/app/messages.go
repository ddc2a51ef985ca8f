package app

import "time"

// TickMsg triggers a frame update while the needle is moving.
type TickMsg time.Time
