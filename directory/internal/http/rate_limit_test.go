package httpx

import (
	"testing"
	"time"
)

func TestMemoryRateLimiterEnforcesLimit(t *testing.T) {
	rl := NewMemoryRateLimiter()
	defer rl.Close()

	for i := 0; i < 3; i++ {
		decision := rl.Allow("ip:10.0.0.1", 3, time.Minute)
		if !decision.allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
		if decision.count != i+1 {
			t.Fatalf("request %d: expected count %d, got %d", i+1, i+1, decision.count)
		}
	}

	decision := rl.Allow("ip:10.0.0.1", 3, time.Minute)
	if decision.allowed {
		t.Fatal("fourth request should be rejected")
	}
	if decision.count != 3 {
		t.Fatalf("expected count to stay at 3, got %d", decision.count)
	}
}

func TestMemoryRateLimiterIsolatesKeys(t *testing.T) {
	rl := NewMemoryRateLimiter()
	defer rl.Close()

	rl.Allow("ip:10.0.0.1", 1, time.Minute)
	if decision := rl.Allow("ip:10.0.0.1", 1, time.Minute); decision.allowed {
		t.Fatal("second request for same key should be rejected")
	}
	if decision := rl.Allow("ip:10.0.0.2", 1, time.Minute); !decision.allowed {
		t.Fatal("different key should have its own window")
	}
}

func TestMemoryRateLimiterResetsAfterWindow(t *testing.T) {
	rl := NewMemoryRateLimiter()
	defer rl.Close()

	rl.Allow("ip:10.0.0.1", 1, 10*time.Millisecond)
	if decision := rl.Allow("ip:10.0.0.1", 1, 10*time.Millisecond); decision.allowed {
		t.Fatal("expected rejection inside window")
	}

	time.Sleep(20 * time.Millisecond)
	if decision := rl.Allow("ip:10.0.0.1", 1, 10*time.Millisecond); !decision.allowed {
		t.Fatal("expected fresh window after expiry")
	}
}

func TestMemoryRateLimiterZeroLimitAllowsEverything(t *testing.T) {
	rl := NewMemoryRateLimiter()
	defer rl.Close()

	for i := 0; i < 10; i++ {
		if decision := rl.Allow("ip:10.0.0.1", 0, time.Minute); !decision.allowed {
			t.Fatal("zero limit should disable limiting")
		}
	}
}

func TestRateMetricKeyStripsIdentifier(t *testing.T) {
	cases := map[string]string{
		"ip:10.0.0.1": "ip",
		"":            "unknown",
		"plain":       "plain",
	}
	for key, want := range cases {
		if got := rateMetricKey(key); got != want {
			t.Fatalf("rateMetricKey(%q) = %q, want %q", key, got, want)
		}
	}
}
