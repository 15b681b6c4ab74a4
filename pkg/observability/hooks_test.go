package observability

import (
	"context"
	"sync"
	"testing"
	"time"
)

type countingCacheHooks struct {
	NoopCacheHooks
	mu   sync.Mutex
	hits map[string]int
}

func (h *countingCacheHooks) OnCacheHit(_ context.Context, format string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.hits == nil {
		h.hits = map[string]int{}
	}
	h.hits[format]++
}

type testPipelineHooks struct{ NoopPipelineHooks }
type testHTTPHooks struct{ NoopHTTPHooks }

func TestDefaultsAreNoop(t *testing.T) {
	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Errorf("Pipeline() = %T", Pipeline())
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Errorf("Cache() = %T", Cache())
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Errorf("HTTP() = %T", HTTP())
	}

	ctx := context.Background()
	Pipeline().OnLayoutComplete(ctx, "donut", time.Millisecond, nil)
	Cache().OnCacheSet(ctx, "png", 2048)
	HTTP().OnResponse(ctx, "POST", "/render/{format}", "id", 200, time.Millisecond)
}

func TestRegisterAndReset(t *testing.T) {
	t.Cleanup(Reset)

	p, c, h := &testPipelineHooks{}, &countingCacheHooks{}, &testHTTPHooks{}
	SetPipelineHooks(p)
	SetCacheHooks(c)
	SetHTTPHooks(h)

	if Pipeline() != p || Cache() != c || HTTP() != h {
		t.Fatal("registered hooks not returned")
	}

	Cache().OnCacheHit(context.Background(), "svg")
	if c.hits["svg"] != 1 {
		t.Errorf("hits = %v", c.hits)
	}

	Reset()
	if Pipeline() == p || Cache() == c || HTTP() == h {
		t.Error("Reset kept registered hooks")
	}
}

func TestSetNilIsIgnored(t *testing.T) {
	t.Cleanup(Reset)

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)
	SetPipelineHooks(nil)
	SetCacheHooks(nil)

	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) replaced the registered hooks")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("SetCacheHooks(nil) replaced the no-op hooks")
	}
}

func TestConcurrentAccess(t *testing.T) {
	t.Cleanup(Reset)

	hooks := &countingCacheHooks{}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetCacheHooks(hooks)
		}()
		go func() {
			defer wg.Done()
			Cache().OnCacheMiss(context.Background(), "json")
		}()
	}
	wg.Wait()
}
