package specsheet

import (
	"runtime"
	"testing"
)

func TestResolvePoolSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{name: "explicit value wins", workers: 3, want: 3},
		{name: "explicit above cap still wins", workers: 12, want: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ResolvePoolSize(tt.workers); got != tt.want {
				t.Errorf("ResolvePoolSize(%d) = %d, want %d", tt.workers, got, tt.want)
			}
		})
	}

	t.Run("auto stays within bounds", func(t *testing.T) {
		t.Parallel()

		got := ResolvePoolSize(0)
		if got < MinPoolSize || got > MaxPoolSize {
			t.Errorf("ResolvePoolSize(0) = %d, want within [%d, %d]", got, MinPoolSize, MaxPoolSize)
		}
		want := runtime.GOMAXPROCS(0) / cpuDivisor
		if want < MinPoolSize {
			want = MinPoolSize
		}
		if want > MaxPoolSize {
			want = MaxPoolSize
		}
		if got != want {
			t.Errorf("ResolvePoolSize(0) = %d, want %d for GOMAXPROCS %d", got, want, runtime.GOMAXPROCS(0))
		}
	})
}

func TestNewPool(t *testing.T) {
	t.Parallel()

	t.Run("clamps to minimum size", func(t *testing.T) {
		t.Parallel()

		p := NewPool(0, newFakeSpecStore(), newMemStore(), withSurface(&fakeSurface{}))
		defer p.Close()

		if p.Size() != 1 {
			t.Errorf("Size() = %d, want 1", p.Size())
		}
	})

	t.Run("keeps requested size", func(t *testing.T) {
		t.Parallel()

		p := NewPool(4, newFakeSpecStore(), newMemStore(), withSurface(&fakeSurface{}))
		defer p.Close()

		if p.Size() != 4 {
			t.Errorf("Size() = %d, want 4", p.Size())
		}
	})
}

func TestPoolAcquireRelease(t *testing.T) {
	t.Parallel()

	p := NewPool(2, newFakeSpecStore(), newMemStore(), withSurface(&fakeSurface{}))
	defer p.Close()

	a := p.Acquire()
	b := p.Acquire()
	if a == nil || b == nil {
		t.Fatal("Acquire returned nil")
	}
	if a == b {
		t.Error("pool of two must hand out distinct services")
	}

	p.Release(a)
	if c := p.Acquire(); c != a {
		t.Error("released service not reused")
	}
}

func TestPoolLazyCreation(t *testing.T) {
	t.Parallel()

	p := NewPool(4, newFakeSpecStore(), newMemStore(), withSurface(&fakeSurface{}))
	defer p.Close()

	if got := len(p.services); got != 0 {
		t.Errorf("services created at construction = %d, want 0", got)
	}

	svc := p.Acquire()
	if got := len(p.services); got != 1 {
		t.Errorf("services after one acquire = %d, want 1", got)
	}
	p.Release(svc)
}

func TestPoolClose(t *testing.T) {
	t.Parallel()

	surface := &fakeSurface{}
	p := NewPool(1, newFakeSpecStore(), newMemStore(), withSurface(surface))

	svc := p.Acquire()
	p.Release(svc)

	if err := p.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !surface.closed {
		t.Error("pooled service's surface not closed")
	}
	if err := p.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	// Release after close must not panic or block.
	p.Release(svc)
}
