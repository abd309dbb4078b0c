package typewriter

import (
	"context"
	"time"
)

// Runner reveals text outside a bubbletea program, on a plain ticker.
type Runner struct {
	Interval time.Duration
}

// Run calls frame with the empty prefix, then once per interval with one more
// rune, finishing with the full text. It returns ctx.Err() if cancelled first.
// The ticker is stopped on every exit path.
func (r Runner) Run(ctx context.Context, text string, frame func(prefix string)) error {
	interval := r.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	runes := []rune(text)
	frame("")
	if len(runes) == 0 {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for shown := 1; shown <= len(runes); shown++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			frame(string(runes[:shown]))
		}
	}
	return nil
}
