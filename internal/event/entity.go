// AngelaMos | 2026
// entity.go

package event

import (
	"time"
)

type Event struct {
	ID        string    `db:"id"`
	Title     string    `db:"title"`
	Date      time.Time `db:"date"`
	Details   *string   `db:"details"`
	CreatedAt time.Time `db:"created_at"`
}

const ListPath = "/events"

func DetailPath(id string) string {
	return "/event/" + id
}
