package httputil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCache_GetSet(t *testing.T) {
	c, err := NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		key  string
		data []byte
	}{
		{"svg body", "https://example.com/render?case=RUR", []byte("<svg></svg>")},
		{"key with spaces", "case Aa plan view", []byte("payload")},
		{"empty payload", "empty", []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := c.Set(tt.key, tt.data); err != nil {
				t.Fatalf("Set() failed: %v", err)
			}

			got, ok, err := c.Get(tt.key)
			if err != nil {
				t.Fatalf("Get() failed: %v", err)
			}
			if !ok {
				t.Fatal("Get() returned false for existing key")
			}
			if string(got) != string(tt.data) {
				t.Errorf("Get() = %q, want %q", got, tt.data)
			}
		})
	}
}

func TestCache_Miss(t *testing.T) {
	c, err := NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	data, ok, err := c.Get("missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("Get() returned true for missing key")
	}
	if data != nil {
		t.Errorf("Get() = %q for missing key", data)
	}
}

func TestCache_Expiry(t *testing.T) {
	dir := t.TempDir()
	c, err := NewCache(dir, time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Set("key", []byte("old")); err != nil {
		t.Fatal(err)
	}

	// Age the entry past its TTL by backdating the file.
	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) != 1 {
		t.Fatalf("cache dir: %v entries, err %v", len(entries), err)
	}
	old := time.Now().Add(-2 * time.Minute)
	if err := os.Chtimes(filepath.Join(dir, entries[0].Name()), old, old); err != nil {
		t.Fatal(err)
	}

	_, ok, err := c.Get("key")
	if ok {
		t.Error("Get() returned true for expired entry")
	}
	if !errors.Is(err, ErrExpired) {
		t.Errorf("Get() error = %v, want ErrExpired", err)
	}

	// Set refreshes the entry.
	if err := c.Set("key", []byte("new")); err != nil {
		t.Fatal(err)
	}
	got, ok, err := c.Get("key")
	if err != nil || !ok {
		t.Fatalf("Get() after refresh: ok=%v err=%v", ok, err)
	}
	if string(got) != "new" {
		t.Errorf("Get() = %q, want %q", got, "new")
	}
}

func TestCache_ZeroTTLNeverExpires(t *testing.T) {
	dir := t.TempDir()
	c, err := NewCache(dir, 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Set("key", []byte("data")); err != nil {
		t.Fatal(err)
	}

	entries, _ := os.ReadDir(dir)
	old := time.Now().Add(-24 * 365 * time.Hour)
	if err := os.Chtimes(filepath.Join(dir, entries[0].Name()), old, old); err != nil {
		t.Fatal(err)
	}

	_, ok, err := c.Get("key")
	if err != nil || !ok {
		t.Errorf("Get() with zero TTL: ok=%v err=%v", ok, err)
	}
}

func TestCache_Namespace(t *testing.T) {
	c, err := NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	svg := c.Namespace("svg:")
	if err := svg.Set("key", []byte("namespaced")); err != nil {
		t.Fatal(err)
	}

	// The parent sees the entry only under the prefixed key.
	if _, ok, _ := c.Get("key"); ok {
		t.Error("unprefixed key resolves to the namespaced entry")
	}
	got, ok, err := c.Get("svg:key")
	if err != nil || !ok {
		t.Fatalf("Get(svg:key): ok=%v err=%v", ok, err)
	}
	if string(got) != "namespaced" {
		t.Errorf("Get() = %q", got)
	}

	// Chained namespaces compose.
	inner := svg.Namespace("v2:")
	if err := inner.Set("key", []byte("deep")); err != nil {
		t.Fatal(err)
	}
	if got, ok, _ := c.Get("svg:v2:key"); !ok || string(got) != "deep" {
		t.Errorf("chained namespace entry = %q, ok=%v", got, ok)
	}
}

func TestNewCacheCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cache")
	c, err := NewCache(dir, 0)
	if err != nil {
		t.Fatalf("NewCache() failed: %v", err)
	}
	if c.Dir() != dir {
		t.Errorf("Dir() = %q, want %q", c.Dir(), dir)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("cache directory not created: %v", err)
	}
}
