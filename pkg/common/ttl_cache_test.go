package common

import (
	"testing"
	"time"
)

// Tests for success.

// TestPutForSuccess tests for success.
func TestPutForSuccess(t *testing.T) {
	cache, done := NewCache[float64](10, time.Duration(100))
	defer close(done)
	cache.Put("foo", 1.0)
}

// TestGetForSuccess tests for success.
func TestGetForSuccess(t *testing.T) {
	cache, done := NewCache[float64](10, time.Duration(100))
	defer close(done)
	cache.Put("foo", 1.0)
	cache.Get("foo")
}

// Tests for failure.

// N/A.

// Tests for sanity.

// TestPutForSanity tests for sanity.
func TestPutForSanity(t *testing.T) {
	cache, done := NewCache[float64](10, time.Duration(50))
	defer close(done)
	cache.Put("foo", 14.0)
	value, ok := cache.Get("foo")
	if !ok || value != 14.0 {
		t.Errorf("foo should still be in the cache with value 14.")
	}
	if !cache.IsIn("foo") {
		t.Errorf("foo should still be in the cache.")
	}
	time.Sleep(time.Duration(75) * time.Millisecond)
	if cache.IsIn("foo") {
		t.Errorf("foo should not be in the cache.")
	}
}
