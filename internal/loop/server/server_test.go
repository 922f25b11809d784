package server

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"pgregory.net/rapid"
)

func newTestServer() *Server {
	return NewServer(log.New(io.Discard))
}

func TestRegisterAndUnregister(t *testing.T) {
	s := newTestServer()

	a := s.RegisterClient("alice")
	b := s.RegisterClient("bob")
	if a.ID == b.ID {
		t.Fatal("two clients share an ID")
	}
	if got := s.GetSnapshot().Players; got != 2 {
		t.Fatalf("Players = %d, want 2", got)
	}

	s.UnregisterClient(a.ID)
	if got := s.GetSnapshot().Players; got != 1 {
		t.Fatalf("Players = %d, want 1", got)
	}
	if _, ok := <-a.EventsCh; ok {
		t.Error("events channel still open after unregister")
	}

	// Second unregister is a no-op.
	s.UnregisterClient(a.ID)
	if got := s.GetSnapshot().Players; got != 1 {
		t.Errorf("Players = %d after double unregister, want 1", got)
	}
}

func TestReportScore_Ranks(t *testing.T) {
	s := newTestServer()
	a := s.RegisterClient("alice")
	b := s.RegisterClient("bob")
	c := s.RegisterClient("carol")

	if rank := s.ReportScore(a.ID, 100); rank != 1 {
		t.Errorf("alice rank = %d, want 1", rank)
	}
	if rank := s.ReportScore(b.ID, 300); rank != 1 {
		t.Errorf("bob rank = %d, want 1", rank)
	}
	// Ties go to the earlier session.
	if rank := s.ReportScore(c.ID, 100); rank != 3 {
		t.Errorf("carol rank = %d, want 3", rank)
	}

	want := []string{"bob", "alice", "carol"}
	board := s.GetSnapshot().TopScores
	if len(board) != len(want) {
		t.Fatalf("board has %d entries, want %d", len(board), len(want))
	}
	for i, name := range want {
		if board[i].Username != name {
			t.Errorf("board[%d] = %s, want %s", i, board[i].Username, name)
		}
	}
}

func TestReportScore_OncePerClient(t *testing.T) {
	s := newTestServer()
	a := s.RegisterClient("alice")

	s.ReportScore(a.ID, 10)
	if rank := s.ReportScore(a.ID, 999); rank != 0 {
		t.Errorf("second report ranked %d", rank)
	}
	if board := s.GetSnapshot().TopScores; len(board) != 1 || board[0].Score != 10 {
		t.Errorf("board = %+v, want a single score of 10", board)
	}
}

func TestReportScore_UnknownClient(t *testing.T) {
	s := newTestServer()
	a := s.RegisterClient("alice")
	s.UnregisterClient(a.ID)

	if rank := s.ReportScore(a.ID, 50); rank != 0 {
		t.Errorf("rank = %d for unregistered client", rank)
	}
}

func TestReportScore_NotifiesOthers(t *testing.T) {
	s := newTestServer()
	a := s.RegisterClient("alice")
	b := s.RegisterClient("bob")

	s.ReportScore(a.ID, 5)

	select {
	case ev := <-b.EventsCh:
		if ev.Type != EventBoardChanged {
			t.Errorf("event = %v, want EventBoardChanged", ev.Type)
		}
	default:
		t.Error("no board event delivered")
	}
}

func TestSnapshotIsImmutable(t *testing.T) {
	s := newTestServer()
	a := s.RegisterClient("alice")
	s.ReportScore(a.ID, 5)

	snap := s.GetSnapshot()
	b := s.RegisterClient("bob")
	s.ReportScore(b.ID, 50)

	if snap.Players != 1 || len(snap.TopScores) != 1 {
		t.Errorf("old snapshot changed: %+v", snap)
	}
}

func TestShutdown_NotifiesAndWaits(t *testing.T) {
	s := newTestServer()
	h := s.RegisterClient("alice")

	go func() {
		ev := <-h.EventsCh
		if ev.Type == EventServerShutdown {
			s.UnregisterClient(h.ID)
		}
	}()

	start := time.Now()
	s.Shutdown(5 * time.Second)
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("Shutdown took %v with no clients left", elapsed)
	}
	if got := s.GetSnapshot().Players; got != 0 {
		t.Errorf("Players = %d after shutdown", got)
	}
}

func TestShutdown_Timeout(t *testing.T) {
	s := newTestServer()
	s.RegisterClient("stuck")

	start := time.Now()
	s.Shutdown(50 * time.Millisecond)
	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Errorf("Shutdown returned after %v, before the timeout", elapsed)
	}
}

func TestInsertScore_SortedAndBounded(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		limit := rapid.IntRange(1, 8).Draw(t, "limit")
		scores := rapid.SliceOf(rapid.IntRange(0, 50)).Draw(t, "scores")

		var board []TopScoreEntry
		for i, score := range scores {
			var rank int
			board, rank = insertScore(board, TopScoreEntry{Score: score, seq: i}, limit)
			if rank < 0 || rank > limit {
				t.Fatalf("rank %d out of [0, %d]", rank, limit)
			}
			if rank > 0 && board[rank-1].seq != i {
				t.Fatalf("rank %d does not point at the inserted entry", rank)
			}
		}

		if len(board) > limit {
			t.Fatalf("board has %d entries, limit %d", len(board), limit)
		}
		for i := 1; i < len(board); i++ {
			if compareEntries(board[i-1], board[i]) > 0 {
				t.Fatalf("board out of order at %d: %+v", i, board)
			}
		}
	})
}
