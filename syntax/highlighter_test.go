package syntax

import (
	"errors"
	"reflect"
	"sync"
	"testing"
)

func TestNewCompilesConfig(t *testing.T) {
	h, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if h.Generation() != 1 {
		t.Errorf("Expected generation 1 after New, got %v", h.Generation())
	}

	spans := h.Classify([]byte("fn main() {}\n"))
	if len(spans) == 0 {
		t.Error("Expected spans from a fresh highlighter")
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Constants = nil

	h, err := New(cfg)
	if h != nil {
		t.Error("Expected no highlighter for a bad config")
	}
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("Expected a *ConfigError, got %v", err)
	}
}

func TestConfigureFailureKeepsPreviousTables(t *testing.T) {
	h, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	src := []byte("fn add(a int, b int) int { return a+b }")
	before := h.Classify(src)
	gen := h.Generation()

	bad := DefaultConfig()
	bad.ExtraPatterns = []PatternSpec{{Regexp: `(`, Group: 0, Category: "keyword"}}
	var perr *PatternError
	if err := h.Configure(bad); !errors.As(err, &perr) {
		t.Fatalf("Expected a *PatternError, got %v", err)
	}

	if h.Generation() != gen {
		t.Errorf("Expected the generation to stay at %v, got %v", gen, h.Generation())
	}
	after := h.Classify(src)
	if !reflect.DeepEqual(before, after) {
		t.Error("Expected the previous tables to keep answering after a failed Configure")
	}
}

func TestConfigureSwapsTables(t *testing.T) {
	h, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	cfg := DefaultConfig()
	cfg.Constants = []string{"maybe"}
	if err := h.Configure(cfg); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}
	if h.Generation() != 2 {
		t.Errorf("Expected generation 2, got %v", h.Generation())
	}

	spans := h.Classify([]byte("maybe"))
	if len(spans) != 1 || spans[0].Category != CategoryKeyword {
		t.Errorf("Expected the new constant to classify as a keyword, got %v", spans)
	}
}

func TestConcurrentClassification(t *testing.T) {
	h, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	src := []byte("fn worker(id int) {\n\tfor i := 0; i < 10; i++ {\n\t\tprintln(i) // busy\n\t}\n}\n")
	want := h.Classify(src)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if got := h.Classify(src); !reflect.DeepEqual(got, want) {
					t.Errorf("Concurrent pass diverged: %v", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}
