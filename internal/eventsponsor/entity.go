// AngelaMos | 2026
// entity.go

package eventsponsor

import (
	"time"
)

// Link joins one event to one sponsor. The (EventID, SponsorID) pair is
// unique.
type Link struct {
	ID        string    `db:"id"`
	EventID   string    `db:"event_id"`
	SponsorID string    `db:"sponsor_id"`
	CreatedAt time.Time `db:"created_at"`
}

const ManagePath = "/manage/event-sponsors"
