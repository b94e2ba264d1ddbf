package analysis

// The lexicons are hand-authored and immutable. Weights are small signed
// integers: the sum over matched tokens, normalized by token count, gives the
// raw score before categorization.

// positiveWords maps sentiment-positive tokens to their weight.
var positiveWords = map[string]int{
	"excellent":    3,
	"outstanding":  3,
	"amazing":      3,
	"fantastic":    3,
	"exceptional":  3,
	"thrilled":     3,
	"great":        2,
	"impressive":   2,
	"strong":       2,
	"successful":   2,
	"accomplished": 2,
	"achieved":     2,
	"effective":    2,
	"passionate":   2,
	"innovative":   2,
	"proud":        2,
	"excited":      2,
	"leadership":   2,
	"improved":     2,
	"good":         1,
	"solid":        1,
	"capable":      1,
	"positive":     1,
	"motivated":    1,
	"creative":     1,
	"enjoyed":      1,
	"delivered":    1,
	"learned":      1,
	"growth":       1,
	"skilled":      1,
}

// negativeWords maps sentiment-negative tokens to their (negative) weight.
var negativeWords = map[string]int{
	"terrible":   -3,
	"awful":      -3,
	"horrible":   -3,
	"worst":      -3,
	"failed":     -2,
	"failure":    -2,
	"poor":       -2,
	"struggled":  -2,
	"mistake":    -2,
	"mistakes":   -2,
	"hate":       -2,
	"hated":      -2,
	"unprepared": -2,
	"fired":      -2,
	"bad":        -1,
	"weak":       -1,
	"difficult":  -1,
	"problem":    -1,
	"problems":   -1,
	"wrong":      -1,
	"stressful":  -1,
	"nervous":    -1,
	"quit":       -1,
	"conflict":   -1,
	"blame":      -1,
	"boring":     -1,
}

// confidenceWords maps hedging and assertive tokens to a confidence weight.
// Zero-weight entries are recognized but neutral.
var confidenceWords = map[string]int{
	"definitely":  2,
	"absolutely":  2,
	"certainly":   2,
	"confident":   2,
	"convinced":   2,
	"clearly":     1,
	"exactly":     1,
	"precisely":   1,
	"sure":        1,
	"determined":  1,
	"decisive":    1,
	"assertive":   1,
	"somewhat":    0,
	"fairly":      0,
	"maybe":       -1,
	"perhaps":     -1,
	"possibly":    -1,
	"might":       -1,
	"probably":    -1,
	"doubt":       -1,
	"tentative":   -1,
	"vague":       -1,
	"unclear":     -1,
	"unsure":      -2,
	"uncertain":   -2,
	"confused":    -2,
	"hesitant":    -2,
}

// stopWords combines a common English stop-word list with interview filler
// vocabulary. Tokens of length <= 2 are dropped before this set is consulted,
// so two-letter entries are omitted.
var stopWords = map[string]struct{}{
	// common English
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {},
	"was": {}, "were": {}, "been": {}, "being": {}, "have": {}, "has": {},
	"had": {}, "this": {}, "that": {}, "these": {}, "those": {}, "with": {},
	"from": {}, "they": {}, "them": {}, "their": {}, "there": {}, "here": {},
	"what": {}, "when": {}, "where": {}, "which": {}, "while": {}, "who": {},
	"whom": {}, "why": {}, "how": {}, "all": {}, "any": {}, "both": {},
	"each": {}, "few": {}, "more": {}, "most": {}, "other": {}, "some": {},
	"such": {}, "only": {}, "own": {}, "same": {}, "than": {}, "too": {},
	"very": {}, "will": {}, "just": {}, "can": {}, "could": {}, "should": {},
	"would": {}, "about": {}, "into": {}, "over": {}, "under": {}, "again": {},
	"then": {}, "once": {}, "she": {}, "him": {}, "his": {}, "her": {},
	"hers": {}, "its": {}, "ours": {}, "your": {}, "yours": {}, "did": {},
	"does": {}, "doing": {}, "because": {}, "until": {}, "during": {},
	"before": {}, "after": {}, "above": {}, "below": {}, "between": {},
	"out": {}, "off": {}, "down": {}, "you": {},
	// interview fillers
	"like": {}, "know": {}, "well": {}, "actually": {}, "basically": {},
	"literally": {}, "obviously": {}, "right": {}, "okay": {}, "alright": {},
	"mean": {}, "sort": {}, "kind": {}, "think": {}, "guess": {},
}
