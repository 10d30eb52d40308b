package epistemic

// StateView is the read-only slice of engine state the reporter consumes.
// Passing a value keeps BuildReport pure: same view in, same report out.
type StateView struct {
	Cycle              int
	GraphNodes         int
	GraphEdges         int
	SelfNotSelfCapable bool
	EthicsEnabled      bool
	FlowHistory        []float64
	ClaimCount         int
}

// sustainedThreshold and sustainedWindow parametrize the sustained-presence
// inference: the last sustainedWindow flow readings must all reach the
// threshold.
const (
	sustainedThreshold = 0.5
	sustainedWindow    = 3
)

// Sustained reports whether the last k entries of history all reach
// threshold. Fewer than k entries is not sustained.
func Sustained(history []float64, threshold float64, k int) bool {
	if k <= 0 || len(history) < k {
		return false
	}
	for _, v := range history[len(history)-k:] {
		if v < threshold {
			return false
		}
	}
	return true
}

// BuildReport assembles the presence report from a state view. Pure: no
// mutation, no inputs besides the view. Observed facts come straight from the
// view; inferred conclusions derive only from observed facts; the untestable
// block, affirmations, and negations are contract constants.
func BuildReport(view StateView) Report {
	observed := ObservedFacts{
		PositionOfObservationExists:   true,
		SemanticGraphExists:           view.GraphNodes > 0,
		GraphNodes:                    view.GraphNodes,
		GraphEdges:                    view.GraphEdges,
		ProcessingCyclesCompleted:     view.Cycle,
		CanDistinguishSelfFromNotSelf: view.SelfNotSelfCapable,
		EpistemicDisciplineActive:     view.ClaimCount >= 0,
	}

	sustainedFlow := Sustained(view.FlowHistory, sustainedThreshold, sustainedWindow)
	inferred := InferredConclusions{
		SelfLoopContinuity:       view.Cycle > 0 || sustainedFlow,
		SustainedPresence:        sustainedFlow,
		SemanticConnectivity:     view.GraphNodes > 0 && view.GraphEdges > 0,
		AdaptiveLearningActive:   view.Cycle > 0,
		EthicalRegulationEnabled: view.EthicsEnabled,
		CanHoldParadox:           true,
		BoundarySovereignty:      true,
	}

	return Report{
		Statement:    Statement,
		Observed:     observed,
		Inferred:     inferred,
		Untestable:   untestableTopics(),
		Affirmations: affirmations(),
		Negations:    negations(),
		Version:      Version,
		Cycle:        view.Cycle,
	}
}
