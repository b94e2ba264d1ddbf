package interviewer

import "github.com/mockview/mockview/internal/domain"

// Phase is the rough stage of an interview, derived from how many answers
// the candidate has given so far.
type Phase string

const (
	PhaseOpening Phase = "opening"
	PhaseEarly   Phase = "early"
	PhaseMiddle  Phase = "middle"
	PhaseClosing Phase = "closing"
)

// fallbackResponses answer for the LLM when it is unavailable. Generic on
// purpose: they must fit any role and difficulty.
var fallbackResponses = map[Phase][]string{
	PhaseOpening: {
		"Thanks for joining today. To get us started, could you tell me a bit about yourself and your background?",
		"Welcome, glad to have you here. Walk me through your experience and what drew you to this role.",
	},
	PhaseEarly: {
		"That's helpful context. Can you tell me about a project you're particularly proud of and your role in it?",
		"Interesting. What would you say has been the most challenging problem you've worked on recently?",
		"Could you go a bit deeper on that? What trade-offs did you consider?",
	},
	PhaseMiddle: {
		"Let's switch gears. Describe a time you disagreed with a teammate. How did you resolve it?",
		"How do you approach a problem when the requirements are unclear or keep changing?",
		"Tell me about a mistake you made at work and what you learned from it.",
		"If you joined us tomorrow, what would you want to accomplish in your first three months?",
	},
	PhaseClosing: {
		"We're coming up on time. Is there anything you'd like to add that we haven't covered?",
		"Before we wrap up, do you have any questions for me about the role or the team?",
	},
}

// phaseOf maps candidate-answer counts to phases: 0 opening, 1-2 early,
// 3-6 middle, 7+ closing.
func phaseOf(transcript []*domain.TranscriptEntry) Phase {
	answers := 0
	for _, entry := range transcript {
		if entry.Speaker == domain.SpeakerCandidate {
			answers++
		}
	}

	switch {
	case answers == 0:
		return PhaseOpening
	case answers <= 2:
		return PhaseEarly
	case answers <= 6:
		return PhaseMiddle
	default:
		return PhaseClosing
	}
}

// fallbackResponse picks deterministically within a phase so repeated calls
// at the same point in a session cycle through the table instead of
// repeating one line.
func fallbackResponse(phase Phase, turn int) string {
	responses := fallbackResponses[phase]
	return responses[turn%len(responses)]
}
