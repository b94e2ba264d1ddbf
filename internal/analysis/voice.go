package analysis

import (
	"regexp"
	"strings"
)

// Filler phrases detected with word-boundary matching; multi-word phrases are
// matched against the raw lowered text, not the token stream.
var fillerPhrases = []string{
	"um", "uh", "er", "ah", "like", "you know", "so", "well",
	"actually", "basically", "literally", "obviously", "right",
	"okay", "alright", "i mean", "sort of", "kind of", "you see",
	"let me think", "how do i put this", "what i mean is",
}

var fillerPatterns = buildFillerPatterns()

func buildFillerPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(fillerPhrases))
	for _, phrase := range fillerPhrases {
		patterns[phrase] = regexp.MustCompile(`\b` + regexp.QuoteMeta(phrase) + `\b`)
	}
	return patterns
}

var strongConfidence = map[string]struct{}{
	"definitely": {}, "absolutely": {}, "certainly": {}, "clearly": {},
	"exactly": {}, "precisely": {}, "specifically": {}, "undoubtedly": {},
	"obviously": {},
}

var weakConfidence = map[string]struct{}{
	"maybe": {}, "perhaps": {}, "probably": {}, "possibly": {},
}

var clearIndicators = map[string]struct{}{
	"first": {}, "second": {}, "third": {}, "next": {}, "then": {},
	"finally": {}, "specifically": {},
}

var unclearIndicators = map[string]struct{}{
	"stuff": {}, "things": {}, "whatever": {}, "something": {},
	"somehow": {}, "somewhere": {}, "whatnot": {}, "etcetera": {},
}

const (
	averageSpeakingWPM = 180
	slowPaceWPM        = 120
	fastPaceWPM        = 200

	confidenceLevelThreshold = 0.02
	clarityLevelThreshold    = 0.01
)

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

// FillerAnalysis reports filler-word usage in a transcript chunk.
type FillerAnalysis struct {
	Total         int            `json:"total"`
	Breakdown     map[string]int `json:"breakdown"`
	UniqueFillers int            `json:"unique_fillers"`
}

// PauseAnalysis estimates pause patterns from punctuation.
type PauseAnalysis struct {
	TotalPauses           int            `json:"total_pauses"`
	PausesPer100Words     float64        `json:"pause_frequency_per_100_words"`
	Breakdown             map[string]int `json:"pause_breakdown"`
	AverageSentenceLength float64        `json:"average_sentence_length"`
	SentenceCount         int            `json:"sentences_count"`
}

// IndicatorScore is a normalized indicator count with its level bucket.
type IndicatorScore struct {
	Score            float64 `json:"score"`
	Level            Level   `json:"level"`
	StrongIndicators int     `json:"strong_indicators"`
	WeakIndicators   int     `json:"weak_indicators"`
}

// PaceAnalysis reports words per minute, estimated when no duration is known.
type PaceAnalysis struct {
	WordsPerMinute    float64 `json:"words_per_minute"`
	WordCount         int     `json:"word_count"`
	DurationSeconds   float64 `json:"duration_seconds,omitempty"`
	EstimatedDuration bool    `json:"estimated_duration"`
	PaceCategory      string  `json:"pace_category"`
}

// VoiceQuality is the aggregate voice score.
type VoiceQuality struct {
	Score  float64 `json:"score"`
	Rating string  `json:"rating"`
}

// VoiceResult holds the full voice analysis for one transcript chunk.
type VoiceResult struct {
	Pace       PaceAnalysis   `json:"speaking_pace"`
	Fillers    FillerAnalysis `json:"filler_words"`
	Pauses     PauseAnalysis  `json:"pause_analysis"`
	Confidence IndicatorScore `json:"confidence"`
	Clarity    IndicatorScore `json:"clarity"`
	Overall    VoiceQuality   `json:"overall_voice_quality"`
}

// AnalyzeVoice derives voice metrics from transcript text. durationSeconds may
// be zero, in which case pace is estimated from an average speaking speed.
func AnalyzeVoice(text string, durationSeconds float64) VoiceResult {
	pace := analyzePace(text, durationSeconds)
	fillers := detectFillers(text)
	pauses := analyzePauses(text)
	confidence, clarity := analyzeConfidenceClarity(text)

	paceScore := 0.7
	if pace.PaceCategory == "normal" {
		paceScore = 1.0
	}
	fillerScore := 1.0
	if pace.WordCount > 0 {
		fillerScore = 1.0 - float64(fillers.Total)/float64(pace.WordCount)*5
		if fillerScore < 0 {
			fillerScore = 0
		}
	}
	// Indicator scores live in roughly [-1,1]; shift into [0,1] for averaging.
	confScore := (confidence.Score + 1) / 2
	clarityScore := (clarity.Score + 1) / 2

	overall := (paceScore + fillerScore + confScore + clarityScore) / 4
	rating := "needs_improvement"
	switch {
	case overall > 0.8:
		rating = "excellent"
	case overall > 0.6:
		rating = "good"
	}

	return VoiceResult{
		Pace:       pace,
		Fillers:    fillers,
		Pauses:     pauses,
		Confidence: confidence,
		Clarity:    clarity,
		Overall: VoiceQuality{
			Score:  round3(overall),
			Rating: rating,
		},
	}
}

func detectFillers(text string) FillerAnalysis {
	lowered := strings.ToLower(text)
	breakdown := make(map[string]int)
	total := 0

	for phrase, pattern := range fillerPatterns {
		matches := len(pattern.FindAllStringIndex(lowered, -1))
		if matches > 0 {
			breakdown[phrase] = matches
			total += matches
		}
	}

	return FillerAnalysis{
		Total:         total,
		Breakdown:     breakdown,
		UniqueFillers: len(breakdown),
	}
}

func analyzePauses(text string) PauseAnalysis {
	breakdown := map[string]int{
		"commas":     strings.Count(text, ","),
		"periods":    strings.Count(text, "."),
		"semicolons": strings.Count(text, ";"),
		"dashes":     strings.Count(text, "--") + strings.Count(text, "—"),
		"ellipses":   strings.Count(text, "..."),
	}

	total := 0
	for _, n := range breakdown {
		total += n
	}

	sentences := len(sentenceSplit.Split(text, -1))
	words := len(strings.Fields(text))

	frequency := 0.0
	if words > 0 {
		frequency = float64(total) / float64(words) * 100
	}
	avgSentenceLen := float64(words)
	if sentences > 0 {
		avgSentenceLen = float64(words) / float64(sentences)
	}

	return PauseAnalysis{
		TotalPauses:           total,
		PausesPer100Words:     round2(frequency),
		Breakdown:             breakdown,
		AverageSentenceLength: round2(avgSentenceLen),
		SentenceCount:         sentences,
	}
}

func analyzeConfidenceClarity(text string) (confidence, clarity IndicatorScore) {
	words := strings.Fields(strings.ToLower(text))

	var strong, weak, clear, unclear int
	for _, w := range words {
		if _, ok := strongConfidence[w]; ok {
			strong++
		}
		if _, ok := weakConfidence[w]; ok {
			weak++
		}
		if _, ok := clearIndicators[w]; ok {
			clear++
		}
		if _, ok := unclearIndicators[w]; ok {
			unclear++
		}
	}

	n := len(words)
	var confScore, clarityScore float64
	if n > 0 {
		confScore = float64(strong-weak) / float64(n)
		clarityScore = float64(clear-unclear) / float64(n)
	}

	confidence = IndicatorScore{
		Score:            round4(confScore),
		Level:            bucketLevel(confScore, confidenceLevelThreshold),
		StrongIndicators: strong,
		WeakIndicators:   weak,
	}
	clarity = IndicatorScore{
		Score:            round4(clarityScore),
		Level:            bucketLevel(clarityScore, clarityLevelThreshold),
		StrongIndicators: clear,
		WeakIndicators:   unclear,
	}
	return confidence, clarity
}

func analyzePace(text string, durationSeconds float64) PaceAnalysis {
	wordCount := len(strings.Fields(text))

	var wpm float64
	estimated := durationSeconds <= 0
	if !estimated {
		wpm = float64(wordCount) / durationSeconds * 60
	} else if wordCount > 0 {
		wpm = averageSpeakingWPM
	}

	category := "normal"
	switch {
	case wpm < slowPaceWPM:
		category = "slow"
	case wpm > fastPaceWPM:
		category = "fast"
	}

	return PaceAnalysis{
		WordsPerMinute:    round1(wpm),
		WordCount:         wordCount,
		DurationSeconds:   durationSeconds,
		EstimatedDuration: estimated,
		PaceCategory:      category,
	}
}

func bucketLevel(score, threshold float64) Level {
	switch {
	case score > threshold:
		return LevelHigh
	case score < -threshold:
		return LevelLow
	default:
		return LevelMedium
	}
}
