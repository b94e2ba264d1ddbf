package analysis

import "math/rand"

// Facial analysis returns generated placeholder data. The random source is
// injectable so tests can pin the output.

var expressions = []string{
	"neutral", "happy", "confident", "focused", "thoughtful",
	"concerned", "surprised", "confused", "nervous", "engaged",
}

var engagementLevels = []string{"low", "medium", "high"}

var eyeContactPatterns = []string{"poor", "intermittent", "good", "excellent"}

// Expression is a detected facial expression with a confidence estimate.
type Expression struct {
	Expression string  `json:"expression"`
	Confidence float64 `json:"confidence"`
}

// PostureIndicators describes body positioning.
type PostureIndicators struct {
	Upright        bool   `json:"upright"`
	LeaningForward bool   `json:"leaning_forward"`
	Slouching      bool   `json:"slouching"`
	HeadTilt       string `json:"head_tilt"`
}

// FacialResult holds one facial analysis snapshot.
type FacialResult struct {
	Primary         Expression        `json:"primary_expression"`
	Secondary       []Expression      `json:"secondary_expressions"`
	EngagementLevel string            `json:"engagement_level"`
	EngagementScore float64           `json:"engagement_score"`
	EyeContact      string            `json:"eye_contact"`
	EyeContactScore float64           `json:"eye_contact_score"`
	Posture         PostureIndicators `json:"posture"`
	Professionalism float64           `json:"professionalism_score"`
	Rating          string            `json:"professionalism_rating"`
	AnalysisType    string            `json:"analysis_type"`
	ImageProcessed  bool              `json:"image_processed"`
}

// FacialAnalyzer generates facial analysis snapshots from a random source.
type FacialAnalyzer struct {
	rng *rand.Rand
}

// NewFacialAnalyzer creates an analyzer backed by the given random source.
func NewFacialAnalyzer(rng *rand.Rand) *FacialAnalyzer {
	return &FacialAnalyzer{rng: rng}
}

// Analyze produces a snapshot. hasImage records whether image data accompanied
// the request; the image itself is not inspected.
func (a *FacialAnalyzer) Analyze(hasImage bool) FacialResult {
	primary := expressions[a.rng.Intn(len(expressions))]
	confidence := round3(a.randFloat(0.7, 0.95))

	var secondary []Expression
	if a.rng.Float64() > 0.6 {
		other := primary
		for other == primary {
			other = expressions[a.rng.Intn(len(expressions))]
		}
		secondary = append(secondary, Expression{
			Expression: other,
			Confidence: round3(a.randFloat(0.3, 0.6)),
		})
	}

	engagement := engagementLevels[a.rng.Intn(len(engagementLevels))]
	engagementScore := map[string][2]float64{
		"low":    {0.2, 0.4},
		"medium": {0.4, 0.7},
		"high":   {0.7, 0.9},
	}[engagement]

	eyeContact := eyeContactPatterns[a.rng.Intn(len(eyeContactPatterns))]
	eyeContactScore := map[string][2]float64{
		"poor":         {0.1, 0.3},
		"intermittent": {0.3, 0.5},
		"good":         {0.5, 0.8},
		"excellent":    {0.8, 1.0},
	}[eyeContact]

	posture := PostureIndicators{
		Upright:        a.rng.Float64() > 0.3,
		LeaningForward: a.rng.Float64() > 0.7,
		Slouching:      a.rng.Float64() > 0.8,
		HeadTilt:       []string{"none", "slight_left", "slight_right", "forward"}[a.rng.Intn(4)],
	}

	factors := []float64{0.7, 0.6, 0.8, 0.5}
	if posture.Upright {
		factors[0] = 1.0
	}
	if eyeContact == "good" || eyeContact == "excellent" {
		factors[1] = 1.0
	}
	if primary == "confident" || primary == "focused" || primary == "engaged" {
		factors[2] = 1.0
	}
	if !posture.Slouching {
		factors[3] = 1.0
	}
	professionalism := (factors[0] + factors[1] + factors[2] + factors[3]) / 4

	rating := "needs_improvement"
	switch {
	case professionalism > 0.8:
		rating = "excellent"
	case professionalism > 0.6:
		rating = "good"
	}

	return FacialResult{
		Primary:         Expression{Expression: primary, Confidence: confidence},
		Secondary:       secondary,
		EngagementLevel: engagement,
		EngagementScore: round3(a.randFloat(engagementScore[0], engagementScore[1])),
		EyeContact:      eyeContact,
		EyeContactScore: round3(a.randFloat(eyeContactScore[0], eyeContactScore[1])),
		Posture:         posture,
		Professionalism: round3(professionalism),
		Rating:          rating,
		AnalysisType:    "mockup",
		ImageProcessed:  hasImage,
	}
}

func (a *FacialAnalyzer) randFloat(lo, hi float64) float64 {
	return lo + a.rng.Float64()*(hi-lo)
}
