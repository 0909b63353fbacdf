package spam

import "regexp"

// Scoring weights for the four signal categories. They must sum to 1.0.
const (
	WeightKeyword   = 0.30
	WeightPattern   = 0.25
	WeightUser      = 0.25
	WeightFrequency = 0.20
)

// SpamThreshold is the overall score at or above which content is
// classified as spam.
const SpamThreshold = 0.70

// Action policy thresholds, evaluated top-down.
const (
	AutoRejectThreshold   = 0.90
	ShadowbanThreshold    = 0.80
	ManualReviewThreshold = 0.60
)

// Risk tier boundaries on the overall score.
const (
	highRiskFloor   = 0.8
	mediumRiskFloor = 0.6
	lowRiskFloor    = 0.3
)

// KeywordTier groups keywords that carry the same per-match penalty.
type KeywordTier struct {
	Penalty  float64
	Keywords []string
}

// KeywordTiers is the rental-marketplace keyword risk table. Matching is
// case-insensitive substring.
var KeywordTiers = []KeywordTier{
	{
		Penalty: 0.30,
		Keywords: []string{
			"wire transfer", "western union", "moneygram", "cash only",
			"guaranteed winner", "free money", "advance fee", "act now",
			"100% guaranteed", "risk free", "no credit check",
			"send deposit now", "bitcoin only", "crypto payment",
			"winner selected", "claim your prize",
		},
	},
	{
		Penalty: 0.15,
		Keywords: []string{
			"urgent", "limited time", "click here", "whatsapp me",
			"telegram me", "pay upfront", "off-market", "too good",
			"instant approval", "first come first served",
			"owner abroad", "keys by mail",
		},
	},
	{
		Penalty: 0.05,
		Keywords: []string{
			"best price", "cheapest", "unbeatable", "exclusive deal",
			"negotiable", "must go", "special offer",
		},
	},
}

// PatternRule is a weighted regex detector. Each rule contributes its
// weight once if it matches anywhere in the content blob.
type PatternRule struct {
	Name   string
	Weight float64
	Regexp *regexp.Regexp
}

// PatternRules is the fixed ordered detector table applied to the
// concatenated text of all string fields.
var PatternRules = []PatternRule{
	{"excessive_exclamation", 0.20, regexp.MustCompile(`!{3,}`)},
	{"embedded_phone", 0.15, regexp.MustCompile(`\d{3}[-.\s]?\d{3}[-.\s]?\d{4}|\(\d{3}\)\s*\d{3}[-.\s]?\d{4}|\+\d{1,3}[-.\s]?\d{6,12}`)},
	{"embedded_email", 0.15, regexp.MustCompile(`(?i)\b[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}\b`)},
	{"long_digit_run", 0.10, regexp.MustCompile(`\d{10,}`)},
	{"currency_spam", 0.10, regexp.MustCompile(`(?i)[$€£]{2,}|[$€£]\s?\d+[km]\b|\d+\s?(million|billion)\s?(dollars|euros|usd)`)},
	{"url_shortener", 0.30, regexp.MustCompile(`(?i)\b(bit\.ly|tinyurl\.com|goo\.gl|t\.co|ow\.ly|is\.gd|buff\.ly|rebrand\.ly|cutt\.ly|shorturl\.at)/\S*`)},
	{"uppercase_run", 0.15, regexp.MustCompile(`[A-Z]{5,}`)},
	{"nonascii_run", 0.10, regexp.MustCompile(`[^\x00-\x7F]{3,}`)},
}

// Additional pattern penalties that need more than a single regex match.
const (
	capsWordRatioPenalty  = 0.20 // >30% of words ALL-CAPS (length >2)
	punctuationRunPenalty = 0.15 // !/? runs of length >=2, more than twice
	repeatedWordPenalty   = 0.25 // a word longer than 3 chars repeats >3 times
	suspiciousURLPenalty  = 0.40 // shortener domain or raw IPv4 URL
)

var (
	urlRe        = regexp.MustCompile(`(?i)\bhttps?://\S+|\bwww\.\S+`)
	ipv4HostRe   = regexp.MustCompile(`^\d{1,3}(\.\d{1,3}){3}$`)
	punctRunRe   = regexp.MustCompile(`[!?]{2,}`)
	capsWordRe   = regexp.MustCompile(`^[A-Z]{3,}$`)
	shortenerRe  = regexp.MustCompile(`(?i)^(www\.)?(bit\.ly|tinyurl\.com|goo\.gl|t\.co|ow\.ly|is\.gd|buff\.ly|rebrand\.ly|cutt\.ly|shorturl\.at)$`)
	nonLetterRe  = regexp.MustCompile(`[^a-zA-Z]`)
	wordSplitRe  = regexp.MustCompile(`\s+`)
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
