package tictactoe

import (
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultComputerDelay is the pause before the computer plays.
const DefaultComputerDelay = 500 * time.Millisecond

// Round is the complete state of the game in play.
type Round struct {
	Board      Board
	Turn       Mark
	Result     Result
	Mode       Mode
	Difficulty Difficulty
	Human      Mark  // human's mark in ModeHumanVsComputer
	Moves      []int // cell indices in play order
}

// Computer returns the computer's mark.
func (r Round) Computer() Mark {
	return r.Human.Opponent()
}

// computerToMove reports whether the next move belongs to the computer.
func (r Round) computerToMove() bool {
	return !r.Result.Terminal() && r.Mode == ModeHumanVsComputer && r.Turn == r.Computer()
}

// RoundSummary describes a finished round.
type RoundSummary struct {
	Mode       Mode
	Difficulty Difficulty
	Human      Mark
	Outcome    Outcome
	Board      Board
	Moves      int
}

// RoundObserver is notified after every finished round.
// Implementations must not call back into the Controller.
type RoundObserver interface {
	RoundFinished(summary RoundSummary)
}

// Options configures a Controller.
type Options struct {
	Mode       Mode
	Difficulty Difficulty
	Human      Mark // defaults to X

	// Delay before the computer's move. Negative values mean no delay.
	Delay     time.Duration
	Scheduler Scheduler // defaults to TimerScheduler

	// Rand drives the random strategies. If nil one is seeded from Seed,
	// or from the clock when Seed is 0.
	Rand *rand.Rand
	Seed int64

	Logger   *log.Logger
	Observer RoundObserver

	// OnChange is called, outside the controller lock, after every state
	// change including asynchronous computer moves.
	OnChange func()
}

// Controller owns the round state and serializes every mutation of it.
// All exported methods are safe for concurrent use.
type Controller struct {
	mu     sync.Mutex
	round  Round
	scores *ScoreTracker

	// nextHuman is the human's mark for the next round. It differs from
	// round.Human only while a finished round is still on screen.
	nextHuman Mark

	delay      time.Duration
	scheduler  Scheduler
	pending    Task
	generation uint64

	rng      *rand.Rand
	logger   *log.Logger
	observer RoundObserver
	onChange func()
	finished []RoundSummary // summaries waiting to be delivered after unlock
}

// NewController creates a controller and starts the first round.
func NewController(opts Options) *Controller {
	if opts.Human != X && opts.Human != O {
		opts.Human = X
	}
	if opts.Delay < 0 {
		opts.Delay = 0
	}
	if opts.Scheduler == nil {
		opts.Scheduler = TimerScheduler{}
	}
	if opts.Rand == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		opts.Rand = rand.New(rand.NewSource(seed))
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	c := &Controller{
		round: Round{
			Mode:       opts.Mode,
			Difficulty: opts.Difficulty,
			Human:      opts.Human,
		},
		scores:    NewScoreTracker(),
		nextHuman: opts.Human,
		delay:     opts.Delay,
		scheduler: opts.Scheduler,
		rng:       opts.Rand,
		logger:    opts.Logger,
		observer:  opts.Observer,
		onChange:  opts.OnChange,
	}

	c.mu.Lock()
	c.reset()
	c.release(false)
	return c
}

// OnCellActivated plays the current player's mark at index. Input that is
// not legal right now is ignored: finished rounds, occupied or out of range
// cells, and clicks while the computer is to move.
func (c *Controller) OnCellActivated(index int) {
	c.mu.Lock()
	if c.round.computerToMove() {
		c.logger.Debug("input ignored, computer to move", "index", index)
		c.release(false)
		return
	}
	c.release(c.applyMove(index))
}

// OnModeChanged switches the game mode and starts a new round.
func (c *Controller) OnModeChanged(mode Mode) {
	c.mu.Lock()
	if mode == c.round.Mode {
		c.release(false)
		return
	}
	c.round.Mode = mode
	c.reset()
	c.release(true)
}

// OnDifficultyChanged switches the computer tier. A round in progress is
// restarted; a finished round stays on screen until the next reset.
func (c *Controller) OnDifficultyChanged(tier Difficulty) {
	c.mu.Lock()
	if tier == c.round.Difficulty {
		c.release(false)
		return
	}
	c.round.Difficulty = tier
	c.reconfigure()
	c.release(true)
}

// OnSymbolChanged sets the human's mark for computer games. Like a
// difficulty change it restarts only a round still in progress; a finished
// round keeps the mark it was played with until the next reset.
func (c *Controller) OnSymbolChanged(mark Mark) {
	c.mu.Lock()
	if (mark != X && mark != O) || mark == c.nextHuman {
		c.release(false)
		return
	}
	c.nextHuman = mark
	c.reconfigure()
	c.release(true)
}

// OnResetRequested starts a new round. Scores are kept.
func (c *Controller) OnResetRequested() {
	c.mu.Lock()
	c.reset()
	c.release(true)
}

// OnScoreResetRequested zeroes the scoreboard without touching the round.
func (c *Controller) OnScoreResetRequested() {
	c.mu.Lock()
	c.scores.Reset()
	c.release(true)
}

// Close cancels any pending computer move. The controller must not be used
// afterwards.
func (c *Controller) Close() {
	c.mu.Lock()
	c.cancelPending()
	c.release(false)
}

// reconfigure applies a setting change: pending moves are dropped and a
// round in progress restarts.
func (c *Controller) reconfigure() {
	c.cancelPending()
	if !c.round.Result.Terminal() {
		c.reset()
	}
}

// reset starts a new round. When the human plays O against the computer,
// the computer's opening X is placed before returning.
func (c *Controller) reset() {
	c.cancelPending()
	c.round.Human = c.nextHuman
	c.round.Board = EmptyBoard()
	c.round.Turn = X
	c.round.Result = Result{Status: StatusInProgress}
	c.round.Moves = nil

	if c.round.computerToMove() {
		c.playComputer()
	}
}

// applyMove places the current player's mark. It returns false, changing
// nothing, when the move is not legal.
func (c *Controller) applyMove(index int) bool {
	if c.round.Result.Terminal() {
		return false
	}
	next, err := c.round.Board.Place(index, c.round.Turn)
	if err != nil {
		c.logger.Debug("move ignored", "index", index, "err", err)
		return false
	}

	c.round.Board = next
	c.round.Moves = append(c.round.Moves, index)
	c.round.Result = Evaluate(next)

	if outcome, ok := OutcomeOf(c.round.Result); ok {
		c.scores.Record(outcome)
		c.finished = append(c.finished, RoundSummary{
			Mode:       c.round.Mode,
			Difficulty: c.round.Difficulty,
			Human:      c.round.Human,
			Outcome:    outcome,
			Board:      c.round.Board,
			Moves:      len(c.round.Moves),
		})
		c.logger.Debug("round finished", "outcome", outcome, "moves", len(c.round.Moves))
		return true
	}

	c.round.Turn = c.round.Turn.Opponent()
	c.scheduleComputerMove()
	return true
}

// scheduleComputerMove queues the computer's reply if it is the
// computer's turn and nothing is queued yet.
func (c *Controller) scheduleComputerMove() {
	if !c.round.computerToMove() || c.pending != nil {
		return
	}
	c.generation++
	gen := c.generation
	c.pending = c.scheduler.Schedule(c.delay, func() {
		c.runScheduled(gen)
	})
}

// runScheduled is the body of a scheduled computer move. A task whose
// generation no longer matches was cancelled and must not touch the round.
func (c *Controller) runScheduled(gen uint64) {
	c.mu.Lock()
	if c.pending == nil || gen != c.generation {
		c.logger.Debug("stale computer move dropped", "generation", gen)
		c.release(false)
		return
	}
	c.pending = nil
	c.release(c.playComputer())
}

// playComputer selects and applies the computer's move immediately.
func (c *Controller) playComputer() bool {
	if !c.round.computerToMove() {
		return false
	}
	index, err := SelectMove(c.round.Board, c.round.Computer(), c.round.Human, c.round.Difficulty, c.rng)
	if err != nil {
		c.logger.Error("computer cannot move", "difficulty", c.round.Difficulty, "err", err)
		return false
	}
	c.logger.Debug("computer move", "difficulty", c.round.Difficulty, "mark", c.round.Computer(), "index", index)
	return c.applyMove(index)
}

func (c *Controller) cancelPending() {
	if c.pending != nil {
		c.pending.Cancel()
		c.pending = nil
	}
	c.generation++
}

// release unlocks the controller, then delivers finished-round summaries
// and the change notification. Must be called with c.mu held.
func (c *Controller) release(changed bool) {
	finished := c.finished
	c.finished = nil
	c.mu.Unlock()

	if c.observer != nil {
		for _, s := range finished {
			c.observer.RoundFinished(s)
		}
	}
	if changed && c.onChange != nil {
		c.onChange()
	}
}
