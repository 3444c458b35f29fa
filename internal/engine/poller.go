package engine

import (
	"context"
	"log"
	"time"
)

// poll runs fn immediately and then on every tick until ctx is cancelled.
// A failed cycle is logged and skipped; the last committed snapshot stands
// until the next tick succeeds.
func (e *Engine) poll(ctx context.Context, name string, interval time.Duration, fn func(context.Context) error) {
	defer e.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := fn(ctx); err != nil && ctx.Err() == nil {
			log.Printf("engine: %s poll: %v", name, err)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (e *Engine) pollAgenda(ctx context.Context) error {
	agendas, err := e.client.FetchAgendas(ctx)
	if err != nil {
		return err
	}
	active, err := e.client.FetchActiveAgenda(ctx)
	if err != nil {
		return err
	}

	// Newest-first list: the head is the live agenda.
	if len(agendas) == 0 {
		e.applyAgenda(nil, active.ActiveItem, active.NextItem)
		return nil
	}
	e.applyAgenda(agendas[0].Items, active.ActiveItem, active.NextItem)
	return nil
}

func (e *Engine) pollVVIP(ctx context.Context) error {
	vvip, err := e.client.FetchPlayingVVIP(ctx)
	if err != nil {
		return err
	}
	e.applyVVIP(vvip)
	return nil
}
