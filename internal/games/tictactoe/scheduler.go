package tictactoe

import "time"

// Task is a handle to a scheduled callback.
type Task interface {
	// Cancel stops the callback if it has not started yet.
	// Safe to call more than once.
	Cancel()
}

// Scheduler runs a callback after a delay. The Controller uses it for the
// computer's move so tests can substitute a manual clock. fn must not be
// invoked synchronously from inside Schedule.
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) Task
}

// TimerScheduler schedules callbacks with time.AfterFunc.
type TimerScheduler struct{}

// Schedule implements Scheduler.
func (TimerScheduler) Schedule(delay time.Duration, fn func()) Task {
	return timerTask{timer: time.AfterFunc(delay, fn)}
}

type timerTask struct {
	timer *time.Timer
}

func (t timerTask) Cancel() {
	t.timer.Stop()
}
