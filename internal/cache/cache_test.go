package cache

import (
	"sync"
	"testing"

	"codeberg.org/snonux/shabdsetu/internal/language"
)

func TestGetPut(t *testing.T) {
	c := New()
	key := Key("hello", language.English, language.Marathi)

	if _, ok := c.Get(key); ok {
		t.Error("Expected miss on empty cache")
	}

	c.Put(key, Entry{Text: "नमस्कार", Method: "dictionary"})

	entry, ok := c.Get(key)
	if !ok {
		t.Fatal("Expected hit after Put")
	}
	if entry.Text != "नमस्कार" {
		t.Errorf("Expected text नमस्कार, got %q", entry.Text)
	}
	if entry.Method != "dictionary" {
		t.Errorf("Expected method dictionary, got %q", entry.Method)
	}
}

func TestKeyIncludesDirection(t *testing.T) {
	enMr := Key("hello", language.English, language.Marathi)
	mrEn := Key("hello", language.Marathi, language.English)
	if enMr == mrEn {
		t.Error("Keys for opposite directions must differ")
	}
}

func TestClear(t *testing.T) {
	c := New()
	c.Put(Key("hello", language.English, language.Marathi), Entry{Text: "नमस्कार"})
	c.Put(Key("water", language.English, language.Marathi), Entry{Text: "पाणी"})

	if removed := c.Clear(); removed != 2 {
		t.Errorf("Expected 2 removed entries, got %d", removed)
	}
	if c.Len() != 0 {
		t.Errorf("Expected empty cache after Clear, got %d entries", c.Len())
	}
}

func TestKeysLimit(t *testing.T) {
	c := New()
	c.Put("a", Entry{})
	c.Put("b", Entry{})
	c.Put("c", Entry{})

	if got := len(c.Keys(2)); got != 2 {
		t.Errorf("Expected 2 keys, got %d", got)
	}
	if got := len(c.Keys(10)); got != 3 {
		t.Errorf("Expected 3 keys, got %d", got)
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := New()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c.Put(Key("hello", language.English, language.Marathi), Entry{Text: "नमस्कार"})
		}()
		go func() {
			defer wg.Done()
			c.Get(Key("hello", language.English, language.Marathi))
			c.Len()
		}()
	}
	wg.Wait()

	if c.Len() != 1 {
		t.Errorf("Expected 1 entry, got %d", c.Len())
	}
}
