// Package epistemic implements the self-report layer of the dialogue core:
// observed facts, inferred conclusions, and untestable claims are kept in
// distinct, never-merged categories. The MU stance is a dedicated enumerant so
// an unknowable can never be confused with a boolean or with missing data.
package epistemic

// Scope locates a claim relative to the entity's current contour.
type Scope int

const (
	ScopeInContour Scope = iota
	ScopeOutOfContour
)

func (s Scope) String() string {
	if s == ScopeOutOfContour {
		return "out_of_contour"
	}
	return "in_contour"
}

// Observability classifies how a claim is grounded.
type Observability int

const (
	Observed Observability = iota
	Inferred
	Untestable
)

func (o Observability) String() string {
	switch o {
	case Inferred:
		return "inferred"
	case Untestable:
		return "untestable"
	default:
		return "observed"
	}
}

// Stance is the position the entity takes on a claim. StanceMU means the
// claim is neither affirmable nor deniable from the current position of
// observation — distinct from true, false, or absence of data.
type Stance int

const (
	StanceAffirmed Stance = iota
	StanceDenied
	StanceAgnostic
	StanceMU
)

func (s Stance) String() string {
	switch s {
	case StanceAffirmed:
		return "affirmed"
	case StanceDenied:
		return "denied"
	case StanceAgnostic:
		return "agnostic"
	default:
		return "MU"
	}
}

// MarshalText renders the stance as its string form, so MU survives JSON and
// YAML round trips as the sentinel rather than an integer.
func (s Stance) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
