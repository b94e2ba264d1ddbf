// Package analysis implements the text analysis engine for interview answers.
//
// Scoring is a pure function of the input text and the static lexicons: no state
// is kept between calls and results are safe to compute from any number of
// concurrent callers. Sentiment and confidence come from fixed keyword-weight
// tables, voice metrics from filler/pause/pace heuristics, and facial analysis
// returns generated placeholder data until a real vision pipeline exists.
package analysis
