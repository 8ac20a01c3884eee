package cache

import (
	"testing"
	"time"
)

func TestTTL_GetSet(t *testing.T) {
	c := NewTTL[string, int]()

	if _, ok := c.Get("missing"); ok {
		t.Fatal("expected miss for unknown key")
	}

	c.Set("a", 1, time.Minute)
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Fatalf("expected hit with 1, got %v %v", v, ok)
	}

	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Fatal("expected miss after delete")
	}
}

func TestTTL_Expiry(t *testing.T) {
	c := NewTTL[string, string]()
	current := time.Unix(1000, 0)
	c.now = func() time.Time { return current }

	c.Set("token", "abc", 30*time.Second)
	if v, ok := c.Get("token"); !ok || v != "abc" {
		t.Fatalf("expected hit before expiry, got %v %v", v, ok)
	}

	current = current.Add(31 * time.Second)
	if _, ok := c.Get("token"); ok {
		t.Fatal("expected miss after expiry")
	}
}

func TestTTL_NonPositiveTTL(t *testing.T) {
	c := NewTTL[string, int]()
	c.Set("a", 1, time.Minute)
	c.Set("a", 2, 0)
	if _, ok := c.Get("a"); ok {
		t.Fatal("expected zero ttl to evict the entry")
	}
}
