package mdedit

import (
	"runtime"
	"sync"
	"testing"
)

func TestResolvePoolSize(t *testing.T) {
	t.Parallel()

	gomaxprocs := runtime.GOMAXPROCS(0)

	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{
			name:    "explicit takes priority",
			workers: 4,
			want:    4,
		},
		{
			name:    "explicit=1 for sequential",
			workers: 1,
			want:    1,
		},
		{
			name:    "explicit can exceed max",
			workers: MaxPoolSize + 4,
			want:    MaxPoolSize + 4,
		},
		{
			name:    "zero uses auto calculation",
			workers: 0,
			want:    min(max(gomaxprocs/cpuDivisor, MinPoolSize), MaxPoolSize),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ResolvePoolSize(tt.workers)
			if got != tt.want {
				t.Errorf("ResolvePoolSize(%d) = %d, want %d", tt.workers, got, tt.want)
			}
		})
	}
}

func TestServicePoolSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		n    int
		want int
	}{
		{name: "requested capacity", n: 3, want: 3},
		{name: "zero is clamped to one", n: 0, want: 1},
		{name: "negative is clamped to one", n: -5, want: 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := NewServicePool(tt.n, withPDFConverter(&mockPDFConverter{}))
			defer p.Close()

			if got := p.Size(); got != tt.want {
				t.Errorf("Size() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestServicePoolAcquireRelease(t *testing.T) {
	t.Parallel()

	p := NewServicePool(2, withPDFConverter(&mockPDFConverter{}))
	defer p.Close()

	first, err := p.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error = %v, want nil", err)
	}
	if first == nil {
		t.Fatal("Acquire() returned nil service")
	}

	second, err := p.Acquire()
	if err != nil {
		t.Fatalf("second Acquire() error = %v, want nil", err)
	}
	if second == first {
		t.Error("second Acquire() returned the same service while first is held")
	}

	p.Release(first)

	third, err := p.Acquire()
	if err != nil {
		t.Fatalf("third Acquire() error = %v, want nil", err)
	}
	if third != first {
		t.Errorf("Acquire() after Release() = %p, want recycled %p", third, first)
	}
}

func TestServicePoolAcquireError(t *testing.T) {
	t.Parallel()

	// An unknown style name makes NewService fail, so the pool must roll
	// back its created count and allow a later attempt.
	p := NewServicePool(1, WithStyle("no-such-style"), withPDFConverter(&mockPDFConverter{}))
	defer p.Close()

	if _, err := p.Acquire(); err == nil {
		t.Fatal("Acquire() error = nil, want service construction failure")
	}
	if _, err := p.Acquire(); err == nil {
		t.Fatal("second Acquire() error = nil, want service construction failure")
	}
}

func TestServicePoolConcurrentUse(t *testing.T) {
	t.Parallel()

	p := NewServicePool(2, withPDFConverter(&mockPDFConverter{}))
	defer p.Close()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			svc, err := p.Acquire()
			if err != nil {
				t.Errorf("Acquire() error = %v, want nil", err)
				return
			}
			p.Release(svc)
		}()
	}
	wg.Wait()
}

func TestServicePoolCloseIdempotent(t *testing.T) {
	t.Parallel()

	p := NewServicePool(1, withPDFConverter(&mockPDFConverter{}))
	if _, err := p.Acquire(); err != nil {
		t.Fatalf("Acquire() error = %v, want nil", err)
	}

	if err := p.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("second Close() error = %v, want nil", err)
	}
}
