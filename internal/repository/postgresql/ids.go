package postgresql

import "github.com/google/uuid"

// newID generates identifiers application-side so inserts can RETURNING the
// full row in one round trip.
func newID() string {
	return uuid.NewString()
}
