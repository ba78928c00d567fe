package namespace

import (
	"sync"
	"testing"
)

func TestRegistry_NoPatterns(t *testing.T) {
	r := NewRegistry()
	if r.IsActive("anything") {
		t.Error("empty registry reported a namespace active")
	}
}

func TestRegistry_EnableSubtree(t *testing.T) {
	r := NewRegistry()
	r.Enable("a:*")

	for _, ns := range []string{"a", "a:b", "a:b:c"} {
		if !r.IsActive(ns) {
			t.Errorf("%q inactive, want active under a:*", ns)
		}
	}
	for _, ns := range []string{"ab", "b", "b:a"} {
		if r.IsActive(ns) {
			t.Errorf("%q active, want inactive under a:*", ns)
		}
	}
}

func TestRegistry_DisableWinsTies(t *testing.T) {
	r := NewRegistry()
	r.Enable("svc:*")
	r.Disable("svc:debugmod")

	if r.IsActive("svc:debugmod") {
		t.Error("svc:debugmod active despite explicit disable")
	}
	if !r.IsActive("svc:other") {
		t.Error("svc:other inactive, disable should not affect it")
	}

	// Equal specificity, opposite polarity: disable wins no matter
	// the registration order.
	r2 := NewRegistry()
	r2.Disable("svc:x")
	r2.Enable("svc:x")
	if r2.IsActive("svc:x") {
		t.Error("enable overrode an equally specific disable")
	}
}

func TestRegistry_MostSpecificWins(t *testing.T) {
	r := NewRegistry()
	r.Disable("*")
	r.Enable("svc:*")

	if !r.IsActive("svc:db") {
		t.Error("specific enable lost to universal disable")
	}
	if r.IsActive("other:db") {
		t.Error("namespace outside svc:* is active")
	}

	// A deeper disable carves a hole in the enabled subtree.
	r.Disable("svc:db:raw")
	if r.IsActive("svc:db:raw") {
		t.Error("svc:db:raw active despite more specific disable")
	}
	if !r.IsActive("svc:db") {
		t.Error("svc:db lost activity after unrelated disable")
	}
}

func TestRegistry_EnableIdempotent(t *testing.T) {
	r := NewRegistry()
	r.Enable("x")
	r.Enable("x")
	if r.Len() != 1 {
		t.Errorf("duplicate enable grew the registry to %d patterns", r.Len())
	}
	if !r.IsActive("x") {
		t.Error("x inactive after enable")
	}
}

func TestRegistry_IgnoresMalformed(t *testing.T) {
	r := NewRegistry()
	r.Enable("")
	r.Enable("-")
	r.Disable("")
	if r.Len() != 0 {
		t.Errorf("malformed patterns registered, len = %d", r.Len())
	}
}

func TestRegistry_EnableRoutesDisable(t *testing.T) {
	// Enable doubles as the router for mixed pattern lists.
	r := NewRegistry()
	r.Enable("svc:*")
	r.Enable("-svc:noisy")
	if r.IsActive("svc:noisy") {
		t.Error("-svc:noisy still active after Enable routing")
	}
	if !r.IsActive("svc:quiet") {
		t.Error("svc:quiet inactive")
	}
}

func TestRegistry_Reset(t *testing.T) {
	r := NewRegistry()
	r.Enable("*")
	if !r.IsActive("x") {
		t.Fatal("x inactive before reset")
	}
	r.Reset()
	if r.IsActive("x") {
		t.Error("x still active after reset")
	}
	if r.Len() != 0 {
		t.Errorf("registry not empty after reset, len = %d", r.Len())
	}
}

func TestDefault_Singleton(t *testing.T) {
	if Default() != Default() {
		t.Error("Default returned different registries")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry()
	r.Enable("base:*")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				r.IsActive("base:worker")
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Enable("other:*")
				r.Disable("other:noisy")
			}
		}()
	}
	wg.Wait()

	if !r.IsActive("base:worker") {
		t.Error("base:worker inactive after concurrent churn")
	}
	if r.IsActive("other:noisy") {
		t.Error("other:noisy active after concurrent churn")
	}
}

func BenchmarkRegistry_IsActive(b *testing.B) {
	r := NewRegistry()
	r.Enable("app:*")
	r.Disable("app:cache")
	r.Enable("svc:db")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.IsActive("app:web:request")
	}
}
