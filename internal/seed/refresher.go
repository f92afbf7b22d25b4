package seed

import (
	"context"
	"log"
	"time"

	"github.com/VallenDraa/mock-development-api/internal/store"
)

// Refresher периодически пересобирает содержимое стора. Рессид — обычный
// Write без какого-либо приоритета: запросы, успевшие прочитать старый
// снапшот, дорабатывают на нём, а созданные между рессидами сущности
// пропадают — это поведение тестовой фикстуры.
type Refresher struct {
	log      *log.Logger
	store    *store.Store
	counts   Counts
	interval time.Duration
}

func NewRefresher(logger *log.Logger, s *store.Store, c Counts, interval time.Duration) *Refresher {
	return &Refresher{log: logger, store: s, counts: c, interval: interval}
}

func (r *Refresher) Run(ctx context.Context) {
	t := time.NewTicker(r.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			r.log.Println("stopped")
			return
		case <-t.C:
			Apply(r.store, r.counts)
			snap := r.store.Read()
			r.log.Printf("store reseeded: users=%d posts=%d comments=%d",
				len(snap.Users), len(snap.Posts), len(snap.Comments))
		}
	}
}
