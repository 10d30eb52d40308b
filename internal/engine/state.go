// Package engine owns the entity: its minimal mutable state and the dialogue
// dispatch pipeline over the pure language/topic/template stages.
package engine

import (
	"fmt"
	"sync"

	"nechto/internal/epistemic"
)

// Bounds for the in-session histories. Old entries fall off; the reporter
// only ever looks at the tail.
const (
	maxFlowHistory = 64
	maxClaims      = 256
)

// State is the one mutable record of an entity. The dispatcher increments
// cycle; the external graph subsystem feeds the node/edge counters and flow
// readings. Everything is guarded by one mutex since cycle increment is the
// sole cross-call write point that concurrent callers share.
type State struct {
	mu                 sync.RWMutex
	cycle              int
	graphNodes         int
	graphEdges         int
	selfNotSelfCapable bool
	ethicsEnabled      bool
	flowHistory        []float64
	claims             []epistemic.Claim
}

// NewState returns the zero-cycle state an entity starts from. Self/not-self
// distinction and ethical regulation are capabilities of the contract, on
// from construction.
func NewState() *State {
	return &State{
		selfNotSelfCapable: true,
		ethicsEnabled:      true,
	}
}

// Cycle returns the number of dialogue turns processed so far.
func (s *State) Cycle() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cycle
}

// GraphCounters returns the current node and edge counts.
func (s *State) GraphCounters() (nodes, edges int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.graphNodes, s.graphEdges
}

// SetGraphCounters is the write point for the external graph subsystem.
// Counters are treated as non-negative; negative inputs clamp to zero.
func (s *State) SetGraphCounters(nodes, edges int) {
	if nodes < 0 {
		nodes = 0
	}
	if edges < 0 {
		edges = 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.graphNodes = nodes
	s.graphEdges = edges
}

// RecordFlow appends one flow reading to the bounded history.
func (s *State) RecordFlow(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flowHistory = append(s.flowHistory, v)
	if len(s.flowHistory) > maxFlowHistory {
		s.flowHistory = s.flowHistory[len(s.flowHistory)-maxFlowHistory:]
	}
}

// RegisterClaim validates and records an epistemic claim. The log is bounded;
// the reporter reads only its length.
func (s *State) RegisterClaim(c epistemic.Claim) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.claims = append(s.claims, c)
	if len(s.claims) > maxClaims {
		s.claims = s.claims[len(s.claims)-maxClaims:]
	}
	return nil
}

// advanceCycle increments the turn counter and returns the new value. This is
// the read-increment-write the concurrency contract protects.
func (s *State) advanceCycle() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cycle++
	return s.cycle
}

// View captures a consistent read-only snapshot for the epistemic reporter.
func (s *State) View() epistemic.StateView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return epistemic.StateView{
		Cycle:              s.cycle,
		GraphNodes:         s.graphNodes,
		GraphEdges:         s.graphEdges,
		SelfNotSelfCapable: s.selfNotSelfCapable,
		EthicsEnabled:      s.ethicsEnabled,
		FlowHistory:        append([]float64(nil), s.flowHistory...),
		ClaimCount:         len(s.claims),
	}
}

// Snapshot is the serializable engine overview the CLI prints.
type Snapshot struct {
	Version    string `json:"version"`
	GraphNodes int    `json:"graph_nodes"`
	GraphEdges int    `json:"graph_edges"`
	Cycle      int    `json:"cycle"`
	Claims     int    `json:"epistemic_claims"`
}
