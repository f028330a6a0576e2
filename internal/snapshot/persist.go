package snapshot

import (
	"context"
	"errors"
	"log"
	"time"

	"tailor-backend/internal/metrics"
	"tailor-backend/internal/models"
	"tailor-backend/internal/state"
)

// Load reads, parses and upgrades the persisted snapshot and rebuilds
// the initial application state. A missing or unreadable blob falls back
// to the built-in default dataset; authentication comes from the
// remember-me flag.
func Load(ctx context.Context, store Store) models.AppState {
	snap := DefaultSnapshot()

	data, err := store.LoadState(ctx)
	switch {
	case errors.Is(err, ErrNotFound):
		log.Printf("[Snapshot] No stored state in %s, seeding defaults", store.Name())
	case err != nil:
		log.Printf("[Snapshot] Read failed: %v, seeding defaults", err)
	default:
		decoded, derr := Decode(data)
		if derr != nil {
			log.Printf("[Snapshot] %v, seeding defaults", derr)
		} else {
			snap = decoded
		}
	}

	remember, err := store.LoadRemember(ctx)
	if err != nil {
		log.Printf("[Snapshot] Remember flag read failed: %v", err)
		remember = false
	}

	return snap.AppState(models.ThemeLight, remember)
}

// Saver returns a store observer that persists every new state as a
// fire-and-forget side effect. Failures are logged and terminal for
// that one write; the next dispatch writes again.
func Saver(store Store) state.Observer {
	return func(st models.AppState) {
		data, err := Encode(Capture(st))
		if err != nil {
			log.Printf("[Snapshot] %v", err)
			return
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			metrics.SnapshotWrites.Inc()
			if err := store.SaveState(ctx, data); err != nil {
				log.Printf("[Snapshot] Write failed: %v", err)
			}
		}()
	}
}
