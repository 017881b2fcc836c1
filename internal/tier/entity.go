// AngelaMos | 2026
// entity.go

package tier

import (
	"time"
)

// Tier is a sponsorship level. Lower Level means higher priority.
type Tier struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Level       int       `db:"level"`
	Description *string   `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

const ListPath = "/manage/tiers"
