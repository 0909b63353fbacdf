package spam

import (
	"fmt"
	"math"
)

// RiskLevel is the discrete risk tier of an overall score.
type RiskLevel string

const (
	RiskMinimal RiskLevel = "MINIMAL"
	RiskLow     RiskLevel = "LOW"
	RiskMedium  RiskLevel = "MEDIUM"
	RiskHigh    RiskLevel = "HIGH"
)

// Scores holds the four sub-scores, each in [0,1].
type Scores struct {
	Keyword   float64 `json:"keyword_score"`
	Pattern   float64 `json:"pattern_score"`
	User      float64 `json:"user_score"`
	Frequency float64 `json:"frequency_score"`
}

// Result is the immutable verdict of one detection run.
type Result struct {
	IsSpam       bool      `json:"is_spam"`
	Confidence   int       `json:"confidence"`
	OverallScore float64   `json:"overall_score"`
	RiskLevel    RiskLevel `json:"risk_level"`
	Scores       Scores    `json:"scores"`
	Reasons      []string  `json:"reasons"`
}

// reasonFloor is the sub-score above which a human-readable reason line
// is emitted.
const reasonFloor = 0.30

// Aggregate combines the sub-scores into an overall verdict using the
// fixed category weights.
func Aggregate(s Scores) Result {
	overall := clamp01(WeightKeyword*s.Keyword +
		WeightPattern*s.Pattern +
		WeightUser*s.User +
		WeightFrequency*s.Frequency)

	var reasons []string
	if s.Keyword > reasonFloor {
		reasons = append(reasons, fmt.Sprintf("high-risk keywords detected (score %.2f)", s.Keyword))
	}
	if s.Pattern > reasonFloor {
		reasons = append(reasons, fmt.Sprintf("suspicious text patterns detected (score %.2f)", s.Pattern))
	}
	if s.User > reasonFloor {
		reasons = append(reasons, fmt.Sprintf("risky account profile (score %.2f)", s.User))
	}
	if s.Frequency > reasonFloor {
		reasons = append(reasons, fmt.Sprintf("unusual posting frequency (score %.2f)", s.Frequency))
	}

	return Result{
		IsSpam:       overall >= SpamThreshold,
		Confidence:   int(math.Round(overall * 100)),
		OverallScore: overall,
		RiskLevel:    riskLevel(overall),
		Scores:       s,
		Reasons:      reasons,
	}
}

func riskLevel(overall float64) RiskLevel {
	switch {
	case overall >= highRiskFloor:
		return RiskHigh
	case overall >= mediumRiskFloor:
		return RiskMedium
	case overall >= lowRiskFloor:
		return RiskLow
	default:
		return RiskMinimal
	}
}
