package source

import (
	"context"
	"fmt"
	"time"

	"github.com/Garsondee/Soccer-Tactics/internal/roster"
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Result is the outcome of one roster load. Records is always usable: on
// failure it is empty and Err says why.
type Result struct {
	LoadID      uuid.UUID
	Source      string
	Records     []roster.Entity
	Fingerprint uint64 // xxhash of the raw text; zero when the fetch failed
	Duration    time.Duration
	Err         error
}

// Empty reports whether the load produced no players.
func (r Result) Empty() bool { return len(r.Records) == 0 }

// Short is the first block of the load id, for status lines.
func (r Result) Short() string {
	return r.LoadID.String()[:8]
}

// Load fetches and parses synchronously.
func Load(ctx context.Context, src Source, log *zap.Logger) Result {
	if log == nil {
		log = zap.NewNop()
	}
	res := Result{LoadID: uuid.New(), Source: src.String()}
	start := time.Now()
	log = log.With(zap.String("load_id", res.LoadID.String()), zap.String("source", res.Source))

	raw, err := src.Fetch(ctx)
	res.Duration = time.Since(start)
	if err != nil {
		res.Err = fmt.Errorf("fetching roster: %w", err)
		log.Warn("roster load failed", zap.Error(err), zap.Duration("took", res.Duration))
		return res
	}

	res.Fingerprint = xxhash.Sum64String(raw)
	res.Records = roster.Parse(raw)
	if len(res.Records) == 0 {
		res.Err = ErrEmptySource
		log.Warn("roster source empty", zap.Int("bytes", len(raw)))
		return res
	}
	log.Info("roster loaded",
		zap.Int("players", len(res.Records)),
		zap.String("fingerprint", fmt.Sprintf("%016x", res.Fingerprint)),
		zap.Duration("took", res.Duration))
	return res
}

// Loader runs Load in the background and hands the result back to the
// goroutine that polls it. Start, Poll and Pending must all be called from
// that same goroutine.
type Loader struct {
	src     Source
	log     *zap.Logger
	results chan Result
	cancel  context.CancelFunc
	pending bool
}

// NewLoader creates a loader for src.
func NewLoader(src Source, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{
		src:     src,
		log:     log,
		results: make(chan Result, 1),
	}
}

// Start begins a fetch. It returns false if one is already running.
func (l *Loader) Start(ctx context.Context) bool {
	if l.pending {
		return false
	}
	ctx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.pending = true
	go func() {
		defer cancel()
		l.results <- Load(ctx, l.src, l.log)
	}()
	return true
}

// Poll returns the finished result without blocking.
func (l *Loader) Poll() (Result, bool) {
	select {
	case r := <-l.results:
		l.pending = false
		return r, true
	default:
		return Result{}, false
	}
}

// Pending reports whether a fetch is in flight.
func (l *Loader) Pending() bool { return l.pending }

// Source returns the configured source.
func (l *Loader) Source() Source { return l.src }

// Close cancels an in-flight fetch.
func (l *Loader) Close() {
	if l.cancel != nil {
		l.cancel()
	}
}
