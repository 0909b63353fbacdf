package spam

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestKeywordScore_EmptyContent(t *testing.T) {
	if got := KeywordScore(Content{}); got != 0 {
		t.Fatalf("empty content scored %v, want 0", got)
	}
}

func TestKeywordScore_SingleField(t *testing.T) {
	cases := []struct {
		name string
		text string
		want float64
	}{
		{"clean", "Sunny two bedroom flat with balcony", 0},
		{"high tier", "payment by wire transfer", 0.30},
		{"medium tier", "urgent sale, call today", 0.15},
		{"low tier", "best price in the area", 0.05},
		{"stacked", "wire transfer only, urgent, best price", 0.50},
		{"case insensitive", "WIRE TRANSFER", 0.30},
	}
	for _, tc := range cases {
		got := KeywordScore(Content{Description: tc.text})
		if !almostEqual(got, tc.want) {
			t.Fatalf("%s: KeywordScore = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestKeywordScore_AveragesOverPresentFields(t *testing.T) {
	// One clean field, one with a medium-tier keyword: mean of 0 and 0.15.
	got := KeywordScore(Content{Title: "Nice flat", Description: "urgent sale"})
	if !almostEqual(got, 0.075) {
		t.Fatalf("KeywordScore = %v, want 0.075", got)
	}
}

func TestKeywordScore_PerFieldCap(t *testing.T) {
	// Four high-tier matches would sum to 1.2; the field caps at 1.0.
	text := "wire transfer western union moneygram cash only"
	got := KeywordScore(Content{Description: text})
	if !almostEqual(got, 1.0) {
		t.Fatalf("KeywordScore = %v, want 1.0", got)
	}
}

func TestPatternScore_Clean(t *testing.T) {
	got := PatternScore(Content{
		Title:       "Cozy apartment near the park",
		Description: "Two bedrooms, renovated kitchen, quiet street.",
	})
	if got != 0 {
		t.Fatalf("clean content scored %v, want 0", got)
	}
}

func TestPatternScore_Detectors(t *testing.T) {
	cases := []struct {
		name string
		text string
		want float64
	}{
		{"exclamation run", "Amazing deal!!!", 0.20},
		{"embedded phone", "call 555-123-4567 for details", 0.15},
		{"embedded email", "reach me at owner@example.com", 0.15},
		{"url shortener", "photos at bit.ly/flat123", 0.30},
		{"nonascii run", "лучшая цена", 0.10},
	}
	for _, tc := range cases {
		got := PatternScore(Content{Description: tc.text})
		if !almostEqual(got, tc.want) {
			t.Fatalf("%s: PatternScore = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestPatternScore_SuspiciousURL(t *testing.T) {
	got := PatternScore(Content{Description: "see photos here http://203.0.113.7/flat"})
	// suspicious URL penalty plus the long-digit-free detectors that do
	// not match leaves 0.40 exactly.
	if !almostEqual(got, 0.40) {
		t.Fatalf("PatternScore = %v, want 0.40", got)
	}
}

func TestPatternScore_RepeatedWord(t *testing.T) {
	got := PatternScore(Content{Description: "cheap cheap cheap cheap flat"})
	if !almostEqual(got, repeatedWordPenalty) {
		t.Fatalf("PatternScore = %v, want %v", got, repeatedWordPenalty)
	}
}

func TestPatternScore_CapsHeavy(t *testing.T) {
	// All words ALL-CAPS: caps ratio penalty plus the uppercase-run rule.
	got := PatternScore(Content{Title: "AMAZING APARTMENT CHEAP"})
	if !almostEqual(got, 0.15+capsWordRatioPenalty) {
		t.Fatalf("PatternScore = %v, want %v", got, 0.15+capsWordRatioPenalty)
	}
}

func TestPatternScore_ClampedToOne(t *testing.T) {
	text := "WIRE NOW!!! CALL 555-123-4567!!! visit bit.ly/x NOW!!! owner@spam.com " +
		"cheap cheap cheap cheap BIGGEST DISCOUNT 12345678901"
	got := PatternScore(Content{Description: text})
	if got != 1.0 {
		t.Fatalf("PatternScore = %v, want clamp at 1.0", got)
	}
}

func TestHasSuspiciousURL(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"https://example.com/listing", false},
		{"http://tinyurl.com/abc", true},
		{"check www.bit.ly/abc now", true},
		{"http://192.168.1.1/login", true},
		{"no links at all", false},
	}
	for _, tc := range cases {
		if got := hasSuspiciousURL(tc.text); got != tc.want {
			t.Fatalf("hasSuspiciousURL(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}
