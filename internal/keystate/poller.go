package keystate

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"
)

// DefaultPollInterval is the pause between two poll cycles. It balances
// input latency against CPU usage.
const DefaultPollInterval = 5 * time.Millisecond

// addQueueSize bounds the number of sources waiting to join the poller.
const addQueueSize = 64

// Poller drains a set of sources into a Table at a fixed cadence.
//
// The source set belongs to the goroutine calling Cycle (normally Run).
// Other goroutines hand new sources over with Add; they join at the start
// of the next cycle.
type Poller struct {
	table    *Table
	interval time.Duration
	logger   *slog.Logger

	sources []Source
	added   chan Source
	batch   []Event
	faults  map[Source]string

	count  atomic.Int64
	cycles atomic.Uint64
}

// NewPoller creates a poller over the given sources. A nil logger discards
// output; a non-positive interval uses DefaultPollInterval.
func NewPoller(table *Table, sources []Source, interval time.Duration, logger *slog.Logger) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	p := &Poller{
		table:    table,
		interval: interval,
		logger:   logger,
		sources:  append([]Source(nil), sources...),
		added:    make(chan Source, addQueueSize),
		faults:   make(map[Source]string),
	}
	p.count.Store(int64(len(p.sources)))
	return p
}

// Interval returns the pause between cycles.
func (p *Poller) Interval() time.Duration {
	return p.interval
}

// Add queues src to join the poller. It returns false, and closes src, when
// the queue is full.
func (p *Poller) Add(src Source) bool {
	select {
	case p.added <- src:
		return true
	default:
		p.logger.Warn("input source queue full, dropping source", "source", src.Name())
		_ = src.Close()
		return false
	}
}

// SourceCount returns the number of sources polled by the last cycle.
func (p *Poller) SourceCount() int {
	return int(p.count.Load())
}

// Cycles returns the number of completed cycles.
func (p *Poller) Cycles() uint64 {
	return p.cycles.Load()
}

// Cycle drains every source in order and applies the combined batch to the
// table. I/O happens before the table lock is taken, and the batch becomes
// visible to readers all at once when the cycle ends.
func (p *Poller) Cycle() {
	p.acceptAdded()

	batch := p.batch[:0]
	kept := p.sources[:0]
	for _, src := range p.sources {
		var err error
		batch, err = Drain(src, batch)
		switch {
		case err == nil:
			p.recovered(src)
		case errors.Is(err, ErrSourceGone):
			p.logger.Info("input source removed", "source", src.Name())
			delete(p.faults, src)
			_ = src.Close()
			continue
		default:
			p.fault(src, err)
		}
		kept = append(kept, src)
	}
	for i := len(kept); i < len(p.sources); i++ {
		p.sources[i] = nil
	}
	p.sources = kept

	p.table.ApplyAll(batch)
	p.batch = batch

	p.count.Store(int64(len(p.sources)))
	p.cycles.Add(1)
}

// fault logs a read error at Warn the first time it is seen for src and
// at Debug while it repeats.
func (p *Poller) fault(src Source, err error) {
	msg := err.Error()
	if p.faults[src] == msg {
		p.logger.Debug("input source read failed", "source", src.Name(), "error", err)
		return
	}
	p.faults[src] = msg
	p.logger.Warn("input source read failed", "source", src.Name(), "error", err)
}

func (p *Poller) recovered(src Source) {
	if _, ok := p.faults[src]; !ok {
		return
	}
	delete(p.faults, src)
	p.logger.Info("input source readable again", "source", src.Name())
}

func (p *Poller) acceptAdded() {
	for {
		select {
		case src := <-p.added:
			p.logger.Debug("input source added", "source", src.Name())
			p.sources = append(p.sources, src)
		default:
			return
		}
	}
}

// Run polls until ctx is cancelled. The wait between cycles is the only
// blocking point.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		p.Cycle()
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Close closes every source, including ones still queued. Call it only
// after Run has returned.
func (p *Poller) Close() error {
	p.acceptAdded()

	var errs []error
	for _, src := range p.sources {
		if err := src.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	p.sources = nil
	clear(p.faults)
	p.count.Store(0)
	return errors.Join(errs...)
}
