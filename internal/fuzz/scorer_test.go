package fuzz

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestNewRejectsInvalidTuning(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Tuning)
	}{
		{"zero unbase scale", func(tn *Tuning) { tn.UnbaseScale = 0 }},
		{"partial scale above one", func(tn *Tuning) { tn.PartialScale = 1.5 }},
		{"negative comparable ratio", func(tn *Tuning) { tn.ComparableLengthRatio = -0.1 }},
		{"far ratio above comparable", func(tn *Tuning) { tn.FarLengthRatio = 0.9 }},
		{"unknown strategy", func(tn *Tuning) { tn.PartialStrategy = PartialStrategy(9) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tuning := DefaultTuning()
			tt.mutate(&tuning)
			if _, err := New(tuning, nil); !errors.Is(err, ErrInvalidTuning) {
				t.Fatalf("expected ErrInvalidTuning, got %v", err)
			}
		})
	}
}

func TestDefaultTuningValid(t *testing.T) {
	if err := DefaultTuning().Validate(); err != nil {
		t.Fatalf("default tuning invalid: %v", err)
	}
	s, err := New(DefaultTuning(), nil)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if s.Tuning() != DefaultTuning() {
		t.Fatalf("unexpected tuning: %+v", s.Tuning())
	}
}

func TestPartialBlocksStrategy(t *testing.T) {
	tuning := DefaultTuning()
	tuning.PartialStrategy = PartialBlocks
	s, err := New(tuning, nil)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	got, err := s.Score(Partial, "test", "this is a test!", 0)
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}
	if got != 100 {
		t.Fatalf("blocks partial ratio on containment = %d, want 100", got)
	}

	got, err = s.Score(Partial, "kitten", "a sitting duck", 0)
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}
	if got <= 0 || got > 100 {
		t.Fatalf("blocks partial ratio = %d, want within (0,100]", got)
	}
}

func TestPartialRatioEmptyShort(t *testing.T) {
	s, _ := New(DefaultTuning(), nil)
	if got := s.partialRatio("abc", ""); got != 100 {
		t.Fatalf("partialRatio with empty shorter string = %d, want 100", got)
	}
}

func TestPartialWindowMultibyte(t *testing.T) {
	if got := partialWindow("\u00e9t\u00e9", "un bel \u00e9t\u00e9 chaud"); got != 100 {
		t.Fatalf("partialWindow(multibyte) = %d, want 100", got)
	}
}

func TestRuneOffsets(t *testing.T) {
	got := runeOffsets("a\u00e9b")
	want := []int{0, 1, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("runeOffsets = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("runeOffsets = %v, want %v", got, want)
		}
	}
}

func TestWeightedLogsDecision(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s, err := New(DefaultTuning(), logger)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if _, err := s.Score(Weighted, "new york mets", "new york mets vs atlanta braves", 0); err != nil {
		t.Fatalf("Score returned error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "weighted ratio decision") {
		t.Fatalf("expected decision log, got %q", out)
	}
	if !strings.Contains(out, `"decision_reason":"length_mismatch"`) {
		t.Fatalf("expected length_mismatch reason, got %q", out)
	}
}

func TestWeightedQuietAboveDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	s, _ := New(DefaultTuning(), logger)
	if _, err := s.Score(Weighted, "abc", "abd", 0); err != nil {
		t.Fatalf("Score returned error: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output at info level, got %q", buf.String())
	}
}

func TestScoreAll(t *testing.T) {
	s, _ := New(DefaultTuning(), nil)
	results, err := s.ScoreAll("order test", "test order", 0)
	if err != nil {
		t.Fatalf("ScoreAll returned error: %v", err)
	}
	if len(results) != len(Algorithms()) {
		t.Fatalf("expected %d results, got %d", len(Algorithms()), len(results))
	}
	for i, alg := range Algorithms() {
		if results[i].Algorithm != alg {
			t.Fatalf("result[%d] algorithm = %s, want %s", i, results[i].Algorithm, alg)
		}
		want, _ := s.Score(alg, "order test", "test order", 0)
		if results[i].Score != want {
			t.Fatalf("result[%d] score = %d, want %d", i, results[i].Score, want)
		}
	}

	if _, err := s.ScoreAll("", "x", 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestResultJSON(t *testing.T) {
	data, err := json.Marshal(Result{Algorithm: TokenSetPartial, Score: 85})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"algorithm":"token-set-partial","score":85}` {
		t.Fatalf("unexpected json: %s", data)
	}
}

func TestScorerConcurrentUse(t *testing.T) {
	s, _ := New(DefaultTuning(), nil)
	want, _ := s.Score(Weighted, "new york mets", "new york mets vs atlanta braves", 0)

	var wg sync.WaitGroup
	errs := make(chan string, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := s.Score(Weighted, "new york mets", "new york mets vs atlanta braves", 0)
			if err != nil || got != want {
				errs <- "mismatch"
			}
		}()
	}
	wg.Wait()
	close(errs)
	if len(errs) > 0 {
		t.Fatalf("concurrent scoring diverged: %d failures", len(errs))
	}
}
