package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe"
	"github.com/vovakirdan/tui-tictactoe/internal/storage"
)

func newTestServer(t *testing.T) (*storage.Store, http.Handler) {
	t.Helper()
	store, err := storage.Open()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, NewServer(store, nil)
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func record(t *testing.T, store *storage.Store, outcome tictactoe.Outcome) {
	t.Helper()
	_, err := store.RecordRound("test", tictactoe.RoundSummary{
		Mode:       tictactoe.ModeHumanVsComputer,
		Difficulty: tictactoe.Medium,
		Human:      tictactoe.O,
		Outcome:    outcome,
		Moves:      6,
	})
	require.NoError(t, err)
}

func TestHealthz(t *testing.T) {
	_, h := newTestServer(t)
	rr := get(h, "/healthz")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestStats(t *testing.T) {
	store, h := newTestServer(t)
	record(t, store, tictactoe.OutcomeX)
	record(t, store, tictactoe.OutcomeTie)
	record(t, store, tictactoe.OutcomeTie)

	rr := get(h, "/stats")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"rounds":3,"x_wins":1,"o_wins":0,"ties":2}`, rr.Body.String())
}

func TestRounds(t *testing.T) {
	store, h := newTestServer(t)
	for i := 0; i < 5; i++ {
		record(t, store, tictactoe.OutcomeO)
	}

	rr := get(h, "/rounds?limit=2")
	require.Equal(t, http.StatusOK, rr.Code)

	var rounds []storage.RoundEntry
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &rounds))
	require.Len(t, rounds, 2)
	assert.Equal(t, "O", rounds[0].Outcome)
	assert.Equal(t, "O", rounds[0].Human)
	assert.Equal(t, "medium", rounds[0].Difficulty)
	assert.NotEmpty(t, rounds[0].ID)

	rr = get(h, "/rounds")
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &rounds))
	assert.Len(t, rounds, 5)
}

func TestRoundsEmptyIsArray(t *testing.T) {
	_, h := newTestServer(t)
	rr := get(h, "/rounds")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestRoundsRejectsBadLimit(t *testing.T) {
	_, h := newTestServer(t)
	for _, q := range []string{"abc", "0", "-3"} {
		rr := get(h, "/rounds?limit="+q)
		assert.Equal(t, http.StatusBadRequest, rr.Code, "limit=%s", q)
	}
}

type brokenJournal struct{}

func (brokenJournal) Totals() (storage.Totals, error) {
	return storage.Totals{}, errors.New("closed")
}

func (brokenJournal) RecentRounds(int) ([]storage.RoundEntry, error) {
	return nil, errors.New("closed")
}

func TestJournalErrors(t *testing.T) {
	h := NewServer(brokenJournal{}, nil)
	for _, path := range []string{"/stats", "/rounds"} {
		rr := get(h, path)
		assert.Equal(t, http.StatusInternalServerError, rr.Code, path)
	}
}

func TestUnknownRoute(t *testing.T) {
	_, h := newTestServer(t)
	assert.Equal(t, http.StatusNotFound, get(h, "/nope").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, func() int {
		req := httptest.NewRequest(http.MethodPost, "/stats", nil)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr.Code
	}())
}
