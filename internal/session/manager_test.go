package session

import (
	"fmt"
	"sync"
	"testing"

	"multi-tenant-bot-relay/internal/model"
)

func TestHistory_LazyAndIsolated(t *testing.T) {
	m := NewManager()

	if got := m.History("t1", "u1"); len(got) != 0 {
		t.Fatalf("fresh pair should have empty history, got %d turns", len(got))
	}

	m.Append("t1", "u1", model.Turn{Role: model.RoleUser, Content: "hello"})
	if got := m.History("t1", "u2"); len(got) != 0 {
		t.Error("history leaked across callers")
	}
	if got := m.History("t2", "u1"); len(got) != 0 {
		t.Error("history leaked across tenants")
	}
}

func TestHistory_ReturnsCopy(t *testing.T) {
	m := NewManager()
	m.Append("t", "u", model.Turn{Role: model.RoleUser, Content: "original"})

	h := m.History("t", "u")
	h[0].Content = "mutated"

	if m.History("t", "u")[0].Content != "original" {
		t.Error("History exposed internal slice")
	}
}

func TestAppend_CapIsFIFO(t *testing.T) {
	m := NewManager()

	// N successful exchanges leave min(2N, 20) turns behind.
	for n := 1; n <= 15; n++ {
		m.Append("t", "u",
			model.Turn{Role: model.RoleUser, Content: fmt.Sprintf("q%d", n)},
			model.Turn{Role: model.RoleAssistant, Content: fmt.Sprintf("a%d", n)},
		)

		want := 2 * n
		if want > model.MaxSessionTurns {
			want = model.MaxSessionTurns
		}
		if got := len(m.History("t", "u")); got != want {
			t.Fatalf("after %d exchanges: %d turns, want %d", n, got, want)
		}
	}

	// 15 exchanges at cap 20: the oldest 10 turns (q1..a5) are gone.
	h := m.History("t", "u")
	if h[0].Content != "q6" {
		t.Errorf("front of history = %q, want q6 (oldest first, FIFO eviction)", h[0].Content)
	}
	if h[len(h)-1].Content != "a15" {
		t.Errorf("back of history = %q, want a15", h[len(h)-1].Content)
	}
}

func TestReset(t *testing.T) {
	m := NewManager()
	for i := 0; i < 30; i++ {
		m.Append("t", "u", model.Turn{Role: model.RoleUser, Content: "x"})
	}

	m.Reset("t", "u")
	if got := len(m.History("t", "u")); got != 0 {
		t.Fatalf("history after reset has %d turns, want 0", got)
	}

	// A reset session is equivalent to a fresh one.
	m.Append("t", "u", model.Turn{Role: model.RoleUser, Content: "again"})
	if got := len(m.History("t", "u")); got != 1 {
		t.Fatalf("history after reset+append has %d turns, want 1", got)
	}
}

func TestLastReply(t *testing.T) {
	m := NewManager()

	if _, ok := m.LastReply("t", "u"); ok {
		t.Error("fresh pair should have no last reply")
	}

	m.SetLastReply("t", "u", "first")
	m.SetLastReply("t", "u", "second")

	text, ok := m.LastReply("t", "u")
	if !ok || text != "second" {
		t.Errorf("LastReply = %q, %v; want second (overwritten, not appended)", text, ok)
	}
}

func TestLock_SerializesSameKey(t *testing.T) {
	m := NewManager()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := m.Lock("t", "u")
			defer unlock()
			// Read-modify-write under the key lock must not lose appends.
			n := len(m.History("t", "u"))
			m.Append("t", "u", model.Turn{Role: model.RoleUser, Content: fmt.Sprintf("%d", n)})
		}()
	}
	wg.Wait()

	// Cap still applies, but nothing before the cap may be lost.
	if got := len(m.History("t", "u")); got != model.MaxSessionTurns {
		t.Errorf("history length %d, want %d", got, model.MaxSessionTurns)
	}
}
