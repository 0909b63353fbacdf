package spam

import (
	"strings"
	"testing"
)

func TestAggregate_WeightsSumToOne(t *testing.T) {
	sum := WeightKeyword + WeightPattern + WeightUser + WeightFrequency
	if !almostEqual(sum, 1.0) {
		t.Fatalf("category weights sum to %v, want 1.0", sum)
	}
}

func TestAggregate_ZeroScores(t *testing.T) {
	r := Aggregate(Scores{})
	if r.IsSpam {
		t.Fatal("zero scores classified as spam")
	}
	if r.OverallScore != 0 || r.Confidence != 0 {
		t.Fatalf("zero scores produced overall %v confidence %d", r.OverallScore, r.Confidence)
	}
	if r.RiskLevel != RiskMinimal {
		t.Fatalf("risk level = %s, want MINIMAL", r.RiskLevel)
	}
	if len(r.Reasons) != 0 {
		t.Fatalf("unexpected reasons: %v", r.Reasons)
	}
}

func TestAggregate_MaxScores(t *testing.T) {
	r := Aggregate(Scores{Keyword: 1, Pattern: 1, User: 1, Frequency: 1})
	if !r.IsSpam {
		t.Fatal("max scores not classified as spam")
	}
	if !almostEqual(r.OverallScore, 1.0) {
		t.Fatalf("overall = %v, want 1.0", r.OverallScore)
	}
	if r.Confidence != 100 {
		t.Fatalf("confidence = %d, want 100", r.Confidence)
	}
	if r.RiskLevel != RiskHigh {
		t.Fatalf("risk level = %s, want HIGH", r.RiskLevel)
	}
	if len(r.Reasons) != 4 {
		t.Fatalf("want one reason per category, got %v", r.Reasons)
	}
}

func TestAggregate_WeightedCombination(t *testing.T) {
	// 0.30*0.5 + 0.25*0.4 + 0.25*0 + 0.20*0 = 0.25
	r := Aggregate(Scores{Keyword: 0.5, Pattern: 0.4})
	if !almostEqual(r.OverallScore, 0.25) {
		t.Fatalf("overall = %v, want 0.25", r.OverallScore)
	}
	if r.Confidence != 25 {
		t.Fatalf("confidence = %d, want 25", r.Confidence)
	}
	if r.IsSpam {
		t.Fatal("0.25 classified as spam")
	}
}

func TestAggregate_SpamThreshold(t *testing.T) {
	// Keyword, pattern and user maxed: 0.30 + 0.25 + 0.25 = 0.80, spam.
	spam := Aggregate(Scores{Keyword: 1, Pattern: 1, User: 1})
	if !spam.IsSpam {
		t.Fatalf("overall %v not classified as spam", spam.OverallScore)
	}
	// Keyword and pattern alone top out at 0.55, below the threshold.
	clean := Aggregate(Scores{Keyword: 1, Pattern: 1})
	if clean.IsSpam {
		t.Fatalf("overall %v classified as spam", clean.OverallScore)
	}
}

func TestRiskLevelTiers(t *testing.T) {
	cases := []struct {
		overall float64
		want    RiskLevel
	}{
		{0.0, RiskMinimal},
		{0.29, RiskMinimal},
		{0.3, RiskLow},
		{0.59, RiskLow},
		{0.6, RiskMedium},
		{0.79, RiskMedium},
		{0.8, RiskHigh},
		{1.0, RiskHigh},
	}
	for _, tc := range cases {
		if got := riskLevel(tc.overall); got != tc.want {
			t.Fatalf("riskLevel(%v) = %s, want %s", tc.overall, got, tc.want)
		}
	}
}

func TestAggregate_ReasonsOnlyForStrongSignals(t *testing.T) {
	r := Aggregate(Scores{Keyword: 0.9, Pattern: 0.1, User: 0.31, Frequency: 0.3})
	if len(r.Reasons) != 2 {
		t.Fatalf("want 2 reasons, got %v", r.Reasons)
	}
	if !strings.Contains(r.Reasons[0], "keyword") {
		t.Fatalf("first reason should name keywords: %q", r.Reasons[0])
	}
	if !strings.Contains(r.Reasons[1], "account") {
		t.Fatalf("second reason should name the account profile: %q", r.Reasons[1])
	}
}

func TestAggregate_Monotonic(t *testing.T) {
	low := Aggregate(Scores{Keyword: 0.2, Pattern: 0.2, User: 0.2, Frequency: 0.2})
	high := Aggregate(Scores{Keyword: 0.6, Pattern: 0.6, User: 0.6, Frequency: 0.6})
	if high.OverallScore <= low.OverallScore {
		t.Fatalf("raising every sub-score lowered the overall: %v vs %v", high.OverallScore, low.OverallScore)
	}
}
