package server

import (
	"testing"
	"time"
)

func TestRateLimiterAllowsUpToLimit(t *testing.T) {
	rl := newRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Fatalf("request over limit should be denied")
	}
	if !rl.Allow("10.0.0.2") {
		t.Fatalf("other keys are limited independently")
	}
}

func TestRateLimiterRejectsEmptyKey(t *testing.T) {
	rl := newRateLimiter(3, time.Minute)
	if rl.Allow("") {
		t.Fatalf("empty key should be denied")
	}
}

func TestRateLimiterWindowReset(t *testing.T) {
	rl := newRateLimiter(1, time.Millisecond)
	if !rl.Allow("k") {
		t.Fatalf("first request should pass")
	}
	if rl.Allow("k") {
		t.Fatalf("second request should be denied")
	}
	time.Sleep(5 * time.Millisecond)
	if !rl.Allow("k") {
		t.Fatalf("request after window reset should pass")
	}
}
