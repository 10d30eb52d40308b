package engine

import (
	"fmt"
	"sync"

	"nechto/internal/epistemic"
	"nechto/internal/logging"
	"nechto/internal/template"
	"nechto/internal/topic"

	"github.com/google/uuid"
)

// Entity is one long-lived dialogue responder instance: state plus the three
// pure stages. Multiple independent entities can coexist; nothing here is
// process-global.
type Entity struct {
	id        string
	state     *State
	templates *template.Store

	// classifier is swappable at runtime (rules-file reload); the pointer is
	// guarded separately so a reload never blocks dispatches in flight.
	clmu       sync.RWMutex
	classifier *topic.Classifier
}

// Option customizes entity construction.
type Option func(*Entity)

// WithRules replaces the built-in classification table.
func WithRules(rules []topic.Rule) Option {
	return func(e *Entity) {
		e.classifier = topic.NewWithRules(rules)
	}
}

// WithState attaches an existing state record instead of a fresh one.
func WithState(s *State) Option {
	return func(e *Entity) {
		e.state = s
	}
}

// New constructs an entity and runs the startup self-check: template
// completeness and epistemic report cardinalities. A failure here is a
// configuration defect; no call path after a successful New can fail.
func New(opts ...Option) (*Entity, error) {
	store, err := template.New()
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	e := &Entity{
		id:         uuid.NewString(),
		state:      NewState(),
		templates:  store,
		classifier: topic.New(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if err := epistemic.BuildReport(e.state.View()).Verify(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	if err := epistemic.BuildIdentity(e.state.View()).Verify(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	logging.Get(logging.CategoryBoot).Infow("entity constructed",
		"entity_id", e.id,
		"version", epistemic.Version,
	)
	return e, nil
}

// ID returns the instance correlation ID.
func (e *Entity) ID() string { return e.id }

// State exposes the mutable record for the external graph subsystem and
// tests.
func (e *Entity) State() *State { return e.state }

// ReplaceRules swaps the classification table in place. Used by the
// rules-file watcher; dispatches started before the swap finish on the old
// table.
func (e *Entity) ReplaceRules(rules []topic.Rule) {
	e.clmu.Lock()
	e.classifier = topic.NewWithRules(rules)
	e.clmu.Unlock()
	logging.Get(logging.CategoryConfig).Infow("classification rules replaced", "rules", len(rules))
}

func (e *Entity) currentClassifier() *topic.Classifier {
	e.clmu.RLock()
	defer e.clmu.RUnlock()
	return e.classifier
}

// IAm returns the epistemic self-report. Pure with respect to state: no
// mutation, and two calls with no intervening mutation return identical
// reports.
func (e *Entity) IAm() epistemic.Report {
	r := epistemic.BuildReport(e.state.View())
	logging.Get(logging.CategoryReport).Debugw("presence report", "cycle", r.Cycle)
	return r
}

// WhoAmI returns the operational identity report.
func (e *Entity) WhoAmI() epistemic.Identity {
	id := epistemic.BuildIdentity(e.state.View())
	logging.Get(logging.CategoryReport).Debugw("identity report", "cycle", id.Cycle)
	return id
}

// Snapshot returns the serializable engine overview.
func (e *Entity) Snapshot() Snapshot {
	view := e.state.View()
	return Snapshot{
		Version:    epistemic.Version,
		GraphNodes: view.GraphNodes,
		GraphEdges: view.GraphEdges,
		Cycle:      view.Cycle,
		Claims:     view.ClaimCount,
	}
}
