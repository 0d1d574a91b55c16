package waitlist

import "time"

// Signup is one waitlist entry.
type Signup struct {
	ID        string
	Email     string
	Source    string
	CreatedAt time.Time
}
