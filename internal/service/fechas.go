package service

import "time"

// fechaISO renders API timestamps in UTC so the trailing Z is truthful
// regardless of the server's local zone.
func fechaISO(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
