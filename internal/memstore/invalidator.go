// AngelaMos | 2026
// invalidator.go

package memstore

import (
	"context"
	"sync"

	"github.com/carterperez-dev/templates/sponsor-backend/internal/views"
)

type Invalidation struct {
	Topic  views.Topic
	Params views.Params
}

// Invalidations records every invalidation it receives, in order.
type Invalidations struct {
	mu   sync.Mutex
	seen []Invalidation
}

func (i *Invalidations) Invalidate(_ context.Context, topic views.Topic, params views.Params) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.seen = append(i.seen, Invalidation{Topic: topic, Params: params})
}

func (i *Invalidations) All() []Invalidation {
	i.mu.Lock()
	defer i.mu.Unlock()
	return append([]Invalidation(nil), i.seen...)
}

func (i *Invalidations) Count(topic views.Topic) int {
	i.mu.Lock()
	defer i.mu.Unlock()

	n := 0
	for _, inv := range i.seen {
		if inv.Topic == topic {
			n++
		}
	}
	return n
}
