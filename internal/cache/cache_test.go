package cache

import (
	"errors"
	"testing"
	"time"
)

func TestGetMiss(t *testing.T) {
	s := New[int](0)
	if _, ok := s.Get("absent"); ok {
		t.Error("expected miss for absent key")
	}
}

func TestPutGet(t *testing.T) {
	s := New[string](0)
	s.Put("k", "v")
	got, ok := s.Get("k")
	if !ok || got != "v" {
		t.Errorf("Get = (%q, %v), want (%q, true)", got, ok, "v")
	}
}

func TestGetOrComputeMemoizes(t *testing.T) {
	s := New[int](0)
	calls := 0
	compute := func() (int, error) {
		calls++
		return 42, nil
	}
	for i := 0; i < 3; i++ {
		v, err := s.GetOrCompute("k", compute)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v != 42 {
			t.Fatalf("GetOrCompute = %d, want 42", v)
		}
	}
	if calls != 1 {
		t.Errorf("compute called %d times, want 1", calls)
	}
}

func TestGetOrComputeErrorNotCached(t *testing.T) {
	s := New[int](0)
	calls := 0
	boom := errors.New("boom")
	compute := func() (int, error) {
		calls++
		if calls == 1 {
			return 0, boom
		}
		return 7, nil
	}

	if _, err := s.GetOrCompute("k", compute); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	v, err := s.GetOrCompute("k", compute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 7 {
		t.Errorf("value after retry = %d, want 7", v)
	}
	if calls != 2 {
		t.Errorf("compute called %d times, want 2", calls)
	}
}

func TestTTLExpiry(t *testing.T) {
	s := New[int](10 * time.Millisecond)
	s.Put("k", 1)
	time.Sleep(20 * time.Millisecond)
	if _, ok := s.Get("k"); ok {
		t.Error("expected expired entry to miss")
	}
}

func TestCleanup(t *testing.T) {
	s := New[int](10 * time.Millisecond)
	s.Put("a", 1)
	s.Put("b", 2)
	time.Sleep(20 * time.Millisecond)
	s.Cleanup()
	if n := s.Len(); n != 0 {
		t.Errorf("after cleanup: %d entries, want 0", n)
	}
}
