package insight

import (
	"sync"
	"testing"

	"lynq/internal/core"
)

func TestBeginLoadSuppressesDuplicates(t *testing.T) {
	s := NewStore()

	if !s.BeginLoad(core.DomainBudget) {
		t.Fatalf("first BeginLoad should win")
	}
	if s.BeginLoad(core.DomainBudget) {
		t.Fatalf("second BeginLoad should be suppressed while loading")
	}
	// Other domains are independent.
	if !s.BeginLoad(core.DomainSavings) {
		t.Fatalf("loading budget must not block savings")
	}

	s.Complete(core.DomainBudget, "done")
	if !s.BeginLoad(core.DomainBudget) {
		t.Fatalf("refresh after completion should be allowed")
	}
}

func TestFailPreservesText(t *testing.T) {
	s := NewStore()
	s.Complete(core.DomainSavings, "previous insight")

	s.BeginLoad(core.DomainSavings)
	s.Fail(core.DomainSavings, "rate limited")

	got := s.Snapshot(core.DomainSavings)
	if got.Text != "previous insight" {
		t.Fatalf("text = %q, want previous insight preserved", got.Text)
	}
	if got.Err != "rate limited" || got.Loading {
		t.Fatalf("session = %+v", got)
	}
}

func TestBeginLoadClearsError(t *testing.T) {
	s := NewStore()
	s.BeginLoad(core.DomainInsights)
	s.Fail(core.DomainInsights, "boom")

	s.BeginLoad(core.DomainInsights)
	got := s.Snapshot(core.DomainInsights)
	if got.Err != "" || !got.Loading {
		t.Fatalf("session = %+v, want loading with cleared error", got)
	}
}

func TestSubscribeSeesTransitions(t *testing.T) {
	s := NewStore()
	ch, cancel := s.Subscribe(core.DomainCashFlow)
	defer cancel()

	s.BeginLoad(core.DomainCashFlow)
	<-ch
	if got := s.Snapshot(core.DomainCashFlow); !got.Loading {
		t.Fatalf("expected loading after first signal, got %+v", got)
	}

	s.Complete(core.DomainCashFlow, "X")
	<-ch
	if got := s.Snapshot(core.DomainCashFlow); got.Text != "X" || got.Loading {
		t.Fatalf("expected ready after second signal, got %+v", got)
	}
}

func TestUnsubscribeStopsSignals(t *testing.T) {
	s := NewStore()
	ch, cancel := s.Subscribe(core.DomainBudget)
	cancel()

	s.BeginLoad(core.DomainBudget)
	select {
	case <-ch:
		t.Fatalf("unexpected signal after unsubscribe")
	default:
	}
}

func TestConcurrentBeginLoadSingleWinner(t *testing.T) {
	s := NewStore()

	const n = 16
	var wg sync.WaitGroup
	wins := make(chan struct{}, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if s.BeginLoad(core.DomainBudget) {
				wins <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(wins)

	count := 0
	for range wins {
		count++
	}
	if count != 1 {
		t.Fatalf("expected exactly one winner, got %d", count)
	}
}
