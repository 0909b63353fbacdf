package spam

import "strings"

// KeywordScore accumulates a per-field penalty for every keyword-table
// match, caps each field at 1.0, and returns the mean over fields that
// were present. Returns 0 when no scannable field is present.
func KeywordScore(content Content) float64 {
	fields := content.Fields()
	if len(fields) == 0 {
		return 0
	}

	var total float64
	for _, text := range fields {
		lower := strings.ToLower(text)
		var penalty float64
		for _, tier := range KeywordTiers {
			for _, kw := range tier.Keywords {
				if strings.Contains(lower, kw) {
					penalty += tier.Penalty
				}
			}
		}
		if penalty > 1 {
			penalty = 1
		}
		total += penalty
	}
	return clamp01(total / float64(len(fields)))
}

// PatternScore applies the weighted detector table plus the structural
// checks (caps ratio, punctuation runs, word repetition, suspicious
// URLs) to the concatenated content text. Clamped to [0,1].
func PatternScore(content Content) float64 {
	blob := content.Blob()
	if blob == "" {
		return 0
	}

	var score float64
	for _, rule := range PatternRules {
		if rule.Regexp.MatchString(blob) {
			score += rule.Weight
		}
	}

	words := wordSplitRe.Split(strings.TrimSpace(blob), -1)
	if capsWordRatio(words) > 0.30 {
		score += capsWordRatioPenalty
	}
	if len(punctRunRe.FindAllString(blob, -1)) > 2 {
		score += punctuationRunPenalty
	}
	if hasRepeatedWord(words) {
		score += repeatedWordPenalty
	}
	if hasSuspiciousURL(blob) {
		score += suspiciousURLPenalty
	}

	return clamp01(score)
}

func capsWordRatio(words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	var caps int
	for _, w := range words {
		letters := nonLetterRe.ReplaceAllString(w, "")
		if capsWordRe.MatchString(letters) {
			caps++
		}
	}
	return float64(caps) / float64(len(words))
}

func hasRepeatedWord(words []string) bool {
	counts := make(map[string]int, len(words))
	for _, w := range words {
		w = strings.ToLower(nonLetterRe.ReplaceAllString(w, ""))
		if len(w) <= 3 {
			continue
		}
		counts[w]++
		if counts[w] > 3 {
			return true
		}
	}
	return false
}

func hasSuspiciousURL(blob string) bool {
	for _, raw := range urlRe.FindAllString(blob, -1) {
		host := urlHost(raw)
		if shortenerRe.MatchString(host) || ipv4HostRe.MatchString(host) {
			return true
		}
	}
	return false
}

func urlHost(raw string) string {
	s := strings.ToLower(raw)
	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimPrefix(s, "https://")
	if i := strings.IndexAny(s, "/?#"); i >= 0 {
		s = s[:i]
	}
	if i := strings.IndexByte(s, ':'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimRight(s, ".,!?)")
}
