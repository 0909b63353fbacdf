package spam

import "testing"

func TestRecommendedAction(t *testing.T) {
	cases := []struct {
		name    string
		score   float64
		history UserHistory
		want    Action
	}{
		{"clean", 0.10, UserHistory{}, ActionAutoApprove},
		{"below review floor", 0.59, UserHistory{}, ActionAutoApprove},
		{"review floor", 0.60, UserHistory{}, ActionManualReview},
		{"mid review band", 0.75, UserHistory{}, ActionManualReview},
		{"shadowban floor", 0.80, UserHistory{}, ActionShadowban},
		{"shadowban band repeat offender", 0.80, UserHistory{RepeatOffender: true}, ActionAccountSuspend},
		{"just below auto reject", 0.89, UserHistory{RepeatOffender: true}, ActionAccountSuspend},
		{"auto reject", 0.90, UserHistory{}, ActionAutoReject},
		{"auto reject ignores history", 0.95, UserHistory{RepeatOffender: true}, ActionAutoReject},
		{"max", 1.0, UserHistory{}, ActionAutoReject},
	}
	for _, tc := range cases {
		if got := RecommendedAction(tc.score, tc.history); got != tc.want {
			t.Fatalf("%s: RecommendedAction(%v, %+v) = %s, want %s", tc.name, tc.score, tc.history, got, tc.want)
		}
	}
}

func TestRecommendedAction_RepeatOffenderBelowShadowbanBand(t *testing.T) {
	// History only matters inside the shadowban band.
	if got := RecommendedAction(0.70, UserHistory{RepeatOffender: true}); got != ActionManualReview {
		t.Fatalf("RecommendedAction = %s, want manual_review", got)
	}
}
