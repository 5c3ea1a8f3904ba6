// Package tui provides the Bubble Tea front end for tic-tac-toe, locally
// and over SSH.
package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// ChangeMsg is sent when the controller state changed, including changes
// made by a delayed computer move.
type ChangeMsg struct{}

// changeNotifier coalesces controller change callbacks into a channel the
// Bubble Tea loop can wait on.
type changeNotifier struct {
	ch   chan struct{}
	done chan struct{}
	once sync.Once
}

func newChangeNotifier() *changeNotifier {
	return &changeNotifier{
		ch:   make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

// notify never blocks; a pending notification already covers this change.
func (n *changeNotifier) notify() {
	select {
	case n.ch <- struct{}{}:
	default:
	}
}

// stop releases any command still waiting for a change.
func (n *changeNotifier) stop() {
	n.once.Do(func() { close(n.done) })
}

// waitCmd returns a command that delivers the next ChangeMsg.
func (n *changeNotifier) waitCmd() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-n.ch:
			return ChangeMsg{}
		case <-n.done:
			return nil
		}
	}
}
