package engine

import (
	"encoding/json"
	"testing"

	"nechto/internal/epistemic"
	"nechto/internal/language"

	"github.com/google/go-cmp/cmp"
)

func TestIAm_IdempotentWithoutMutation(t *testing.T) {
	e := newEntity(t)
	e.TalkSimply("Кто ты?", language.HintAuto)

	a := e.IAm()
	b := e.IAm()
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("successive IAm() reports differ (-a +b):\n%s", diff)
	}

	// Byte-identical on the wire too.
	ja, err := json.Marshal(a)
	if err != nil {
		t.Fatal(err)
	}
	jb, err := json.Marshal(b)
	if err != nil {
		t.Fatal(err)
	}
	if string(ja) != string(jb) {
		t.Fatal("serialized reports are not byte-identical")
	}
}

func TestIAm_PureNoMutation(t *testing.T) {
	e := newEntity(t)
	e.TalkSimply("hi", language.HintAuto)

	before := e.State().Cycle()
	e.IAm()
	e.WhoAmI()
	e.Snapshot()
	if got := e.State().Cycle(); got != before {
		t.Fatalf("reports mutated cycle: %d -> %d", before, got)
	}
}

func TestIAm_ReflectsDispatchedCycles(t *testing.T) {
	e := newEntity(t)
	if got := e.IAm().Cycle; got != 0 {
		t.Fatalf("fresh entity cycle = %d", got)
	}
	e.TalkSimply("a", language.HintAuto)
	e.TalkSimply("b", language.HintAuto)
	r := e.IAm()
	if r.Cycle != 2 || r.Observed.ProcessingCyclesCompleted != 2 {
		t.Fatalf("cycle = %d / observed %d, want 2", r.Cycle, r.Observed.ProcessingCyclesCompleted)
	}
	if !r.Inferred.SelfLoopContinuity {
		t.Fatal("two completed cycles must infer continuity")
	}
}

func TestEntity_IndependentInstances(t *testing.T) {
	a := newEntity(t)
	b := newEntity(t)
	if a.ID() == b.ID() {
		t.Fatal("entities share an ID")
	}
	a.TalkSimply("x", language.HintAuto)
	if b.State().Cycle() != 0 {
		t.Fatal("state leaked between entities")
	}
}

func TestState_SetGraphCountersClampsNegatives(t *testing.T) {
	s := NewState()
	s.SetGraphCounters(-3, -1)
	n, m := s.GraphCounters()
	if n != 0 || m != 0 {
		t.Fatalf("counters = (%d, %d), want (0, 0)", n, m)
	}
}

func TestState_RegisterClaim(t *testing.T) {
	s := NewState()
	err := s.RegisterClaim(epistemic.Claim{
		Subject:       "consciousness",
		Observability: epistemic.Untestable,
		Stance:        epistemic.StanceMU,
	})
	if err != nil {
		t.Fatalf("valid claim rejected: %v", err)
	}
	err = s.RegisterClaim(epistemic.Claim{
		Subject:       "consciousness",
		Observability: epistemic.Untestable,
		Stance:        epistemic.StanceAffirmed,
	})
	if err == nil {
		t.Fatal("resolved untestable claim accepted")
	}
	if s.View().ClaimCount != 1 {
		t.Fatalf("claim count = %d, want 1", s.View().ClaimCount)
	}
}

func TestState_FlowHistoryBounded(t *testing.T) {
	s := NewState()
	for i := 0; i < maxFlowHistory*2; i++ {
		s.RecordFlow(0.7)
	}
	if got := len(s.View().FlowHistory); got != maxFlowHistory {
		t.Fatalf("history length = %d, want %d", got, maxFlowHistory)
	}
}

func TestState_ViewIsACopy(t *testing.T) {
	s := NewState()
	s.RecordFlow(0.9)
	view := s.View()
	view.FlowHistory[0] = 0.0
	if s.View().FlowHistory[0] != 0.9 {
		t.Fatal("View exposes internal history slice")
	}
}

func TestSnapshot(t *testing.T) {
	e := newEntity(t)
	e.State().SetGraphCounters(4, 7)
	e.TalkSimply("hello", language.HintAuto)

	snap := e.Snapshot()
	want := Snapshot{Version: epistemic.Version, GraphNodes: 4, GraphEdges: 7, Cycle: 1}
	if diff := cmp.Diff(want, snap); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestWhoAmI_FoundationTracksPresence(t *testing.T) {
	e := newEntity(t)
	e.TalkSimply("x", language.HintAuto)
	id := e.WhoAmI()
	if id.Foundation.Cycle != 1 || id.Foundation.Statement != epistemic.Statement {
		t.Fatalf("foundation = %+v", id.Foundation)
	}
	if err := id.Verify(); err != nil {
		t.Fatalf("identity Verify() = %v", err)
	}
}

func TestWithState_SharedRecord(t *testing.T) {
	s := NewState()
	e, err := New(WithState(s))
	if err != nil {
		t.Fatal(err)
	}
	e.TalkSimply("x", language.HintAuto)
	if s.Cycle() != 1 {
		t.Fatal("WithState did not attach the provided record")
	}
}
