package amm

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ectoswap/ectoswap-go/fixed_point"
)

// QuoterState is the orchestrator's lifecycle position.
type QuoterState int32

const (
	StateIdle QuoterState = iota
	StateQuoting
	StateQuoted
	StateFailed
)

func (s QuoterState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateQuoting:
		return "quoting"
	case StateQuoted:
		return "quoted"
	default:
		return "failed"
	}
}

// QuoterConfig is passed in at construction; the quoter keeps no package
// level state so multiple networks can run side by side in one process.
type QuoterConfig struct {
	// Debounce delays the reserve fetch after each input change so rapid
	// typing does not flood the read path.
	Debounce time.Duration
	// DefaultSlippageBps applies when a request carries no tolerance.
	DefaultSlippageBps uint64
}

// DefaultQuoterConfig mirrors the front end's settings.
func DefaultQuoterConfig() QuoterConfig {
	return QuoterConfig{
		Debounce:           300 * time.Millisecond,
		DefaultSlippageBps: 50,
	}
}

// QuoteRequest is one user intent: swap AmountIn (a typed decimal string) of
// the input coin of Pool in the given direction.
type QuoteRequest struct {
	Pool        Pool
	Direction   Direction
	AmountIn    string
	SlippageBps uint64
}

// Quoter drives the idle -> quoting -> quoted/failed cycle. Each Request
// supersedes any request still in flight: a generation counter is taken up
// front and a resolved quote is only published while its generation is still
// the latest, so the visible quote always belongs to the newest input.
type Quoter struct {
	cfg    QuoterConfig
	reader ReserveReader
	log    *logrus.Entry

	generation atomic.Uint64

	mu      sync.Mutex
	state   QuoterState
	current *SwapQuote
	timer   *time.Timer
	onQuote func(*SwapQuote)
}

// NewQuoter wires a quoter to a reserve reader.
func NewQuoter(reader ReserveReader, cfg QuoterConfig, log *logrus.Logger) *Quoter {
	if log == nil {
		log = logrus.New()
	}
	return &Quoter{
		cfg:    cfg,
		reader: reader,
		log:    log.WithField("component", "quoter"),
		state:  StateIdle,
	}
}

// OnQuote registers the callback invoked with every published quote,
// successful or failed. Superseded results never reach it.
func (q *Quoter) OnQuote(fn func(*SwapQuote)) {
	q.mu.Lock()
	q.onQuote = fn
	q.mu.Unlock()
}

// State returns the current lifecycle position.
func (q *Quoter) State() QuoterState {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.state
}

// Current returns the last published quote, nil while idle or quoting.
func (q *Quoter) Current() *SwapQuote {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.current
}

// Request schedules a quote for req after the debounce window. It returns
// immediately; the result arrives through OnQuote. Calling again before the
// window elapses restarts it and supersedes the earlier request.
func (q *Quoter) Request(ctx context.Context, req QuoteRequest) {
	gen := q.generation.Add(1)

	q.mu.Lock()
	q.state = StateQuoting
	if q.timer != nil {
		q.timer.Stop()
	}
	q.timer = time.AfterFunc(q.cfg.Debounce, func() {
		q.quote(ctx, req, gen)
	})
	q.mu.Unlock()
}

// QuoteNow bypasses the debounce window; used on explicit refresh.
func (q *Quoter) QuoteNow(ctx context.Context, req QuoteRequest) {
	gen := q.generation.Add(1)

	q.mu.Lock()
	q.state = StateQuoting
	if q.timer != nil {
		q.timer.Stop()
		q.timer = nil
	}
	q.mu.Unlock()

	q.quote(ctx, req, gen)
}

func (q *Quoter) quote(ctx context.Context, req QuoteRequest, gen uint64) {
	slippage := req.SlippageBps
	if slippage == 0 {
		slippage = q.cfg.DefaultSlippageBps
	}

	amountIn, err := q.parseInput(req)
	if err != nil {
		q.publish(gen, failedQuote(err))
		return
	}

	if req.Pool.ObjectID == "" {
		q.publish(gen, failedQuote(ErrPairNotFound))
		return
	}

	reserves, err := q.reader.GetReserves(ctx, req.Pool.ObjectID)
	if err != nil {
		q.log.WithError(err).WithField("pool", req.Pool.ObjectID).Warn("reserve read failed")
		q.publish(gen, failedQuote(fmt.Errorf("%w: %v", ErrReadFailed, err)))
		return
	}

	quote, err := ComputeSwapQuote(reserves, req.Direction, amountIn, slippage)
	if err != nil {
		q.publish(gen, failedQuote(err))
		return
	}

	q.publish(gen, quote)
}

func (q *Quoter) parseInput(req QuoteRequest) (*big.Int, error) {
	decimals := req.Pool.DecimalsA
	if req.Direction == DirectionBToA {
		decimals = req.Pool.DecimalsB
	}

	amountIn, err := fixed_point.Parse(req.AmountIn, decimals)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, req.AmountIn)
	}
	if amountIn.Sign() == 0 {
		return nil, ErrInvalidAmount
	}
	return amountIn, nil
}

// publish installs the quote unless a newer request has started since gen was
// taken. Last-requested-wins: a superseded result is dropped, never applied.
func (q *Quoter) publish(gen uint64, quote *SwapQuote) {
	q.mu.Lock()
	if q.generation.Load() != gen {
		q.mu.Unlock()
		q.log.WithField("generation", gen).Debug("dropping superseded quote")
		return
	}

	q.current = quote
	if quote.Valid {
		q.state = StateQuoted
	} else {
		q.state = StateFailed
	}
	cb := q.onQuote
	q.mu.Unlock()

	if cb != nil {
		cb(quote)
	}
}

func failedQuote(reason error) *SwapQuote {
	return &SwapQuote{
		Source: QuoteSourceLive,
		Valid:  false,
		Reason: reason,
	}
}
