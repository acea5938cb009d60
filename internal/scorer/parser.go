package scorer

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/recruitflow/pipeline/internal/core"
)

var (
	// Matches: SCORE: 4, Score - 4, score=4
	taggedScoreRegex = regexp.MustCompile(`(?i)\bSCORE\b\s*[:=\-]?\s*([0-5])\b`)
	// Fallback: "4/5" or "4 out of 5"
	ratioScoreRegex = regexp.MustCompile(`\b([0-5])\s*(?:/|out of)\s*5\b`)
	verdictRegex    = regexp.MustCompile(`(?i)\b(PASS|FAIL|REVIEW)\b`)
)

// parseScore extracts a score from the raw model output. It is total: any
// input, including one with no recognizable score token, yields a defined
// result. The raw text is always kept as the analysis so a failed parse
// loses nothing.
func parseScore(scale core.ScoreScale, raw string) *core.ScoreResult {
	text := stripMarkdownFence(raw)
	res := &core.ScoreResult{Analysis: strings.TrimSpace(text)}

	switch scale {
	case core.ScalePassFail:
		if m := verdictRegex.FindStringSubmatch(text); m != nil {
			res.Score = strings.ToUpper(m[1])
		} else {
			res.Score = "REVIEW"
		}
	case core.ScaleZeroToFive:
		m := taggedScoreRegex.FindStringSubmatch(text)
		if m == nil {
			m = ratioScoreRegex.FindStringSubmatch(text)
		}
		if m != nil {
			n, _ := strconv.Atoi(m[1])
			res.Numeric = n
		}
		res.Score = strconv.Itoa(res.Numeric)
	}
	return res
}

// stripMarkdownFence removes ``` wrapping that some models add around their
// output.
func stripMarkdownFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return s
	}
	idx := strings.Index(trimmed, "\n")
	if idx < 0 {
		return s
	}
	inner := trimmed[idx+1:]
	if lastFence := strings.LastIndex(inner, "```"); lastFence >= 0 {
		inner = inner[:lastFence]
	}
	return strings.TrimSpace(inner)
}
