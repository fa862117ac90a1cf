package session

import "time"

// clockTickMsg is sent every second to refresh the elapsed-time display.
type clockTickMsg time.Time
