package chat

import (
	"fmt"
	"strings"

	"nechto/internal/epistemic"
	"nechto/internal/language"

	tea "github.com/charmbracelet/bubbletea"
)

// handleCommand processes a /command line.
func (m Model) handleCommand(line string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(line)
	cmd := fields[0]

	switch cmd {
	case "/quit", "/exit":
		return m, tea.Quit

	case "/help":
		m.appendBlock(metaStyle.Render(helpText))

	case "/iam":
		m.appendBlock(m.renderMarkdown(reportMarkdown(m.entity.IAm())))

	case "/whoami":
		m.appendBlock(m.renderMarkdown(identityMarkdown(m.entity.WhoAmI())))

	case "/snapshot":
		snap := m.entity.Snapshot()
		m.appendBlock(metaStyle.Render(fmt.Sprintf(
			"version %s · %d nodes · %d edges · cycle %d · %d claims",
			snap.Version, snap.GraphNodes, snap.GraphEdges, snap.Cycle, snap.Claims)))

	case "/lang":
		if len(fields) < 2 {
			m.appendBlock(metaStyle.Render(fmt.Sprintf("current language hint: %s", m.hint)))
			break
		}
		m.hint = language.Normalize(language.Hint(fields[1]))
		m.appendBlock(metaStyle.Render(fmt.Sprintf("language hint set to %s", m.hint)))

	default:
		m.appendBlock(metaStyle.Render(fmt.Sprintf("unknown command %s (try /help)", cmd)))
	}

	m.refreshViewport()
	return m, nil
}

const helpText = `commands:
  /iam       epistemic self-report (observed / inferred / MU)
  /whoami    operational identity report
  /snapshot  engine state overview
  /lang      show or set the language hint (auto, ru, en)
  /quit      leave the session`

// renderMarkdown passes text through glamour when a renderer is available.
func (m Model) renderMarkdown(md string) string {
	if m.renderer == nil {
		return md
	}
	out, err := m.renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}

// reportMarkdown formats the presence report as markdown for the TUI.
func reportMarkdown(r epistemic.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", r.Statement)

	b.WriteString("## Observed\n\n")
	fmt.Fprintf(&b, "- position of observation exists: %v\n", r.Observed.PositionOfObservationExists)
	fmt.Fprintf(&b, "- semantic graph exists: %v\n", r.Observed.SemanticGraphExists)
	fmt.Fprintf(&b, "- graph nodes: %d\n", r.Observed.GraphNodes)
	fmt.Fprintf(&b, "- graph edges: %d\n", r.Observed.GraphEdges)
	fmt.Fprintf(&b, "- processing cycles completed: %d\n", r.Observed.ProcessingCyclesCompleted)
	fmt.Fprintf(&b, "- can distinguish self from not-self: %v\n", r.Observed.CanDistinguishSelfFromNotSelf)
	fmt.Fprintf(&b, "- epistemic discipline active: %v\n", r.Observed.EpistemicDisciplineActive)

	b.WriteString("\n## Inferred\n\n")
	fmt.Fprintf(&b, "- self-loop continuity: %v\n", r.Inferred.SelfLoopContinuity)
	fmt.Fprintf(&b, "- sustained presence: %v\n", r.Inferred.SustainedPresence)
	fmt.Fprintf(&b, "- semantic connectivity: %v\n", r.Inferred.SemanticConnectivity)
	fmt.Fprintf(&b, "- adaptive learning active: %v\n", r.Inferred.AdaptiveLearningActive)
	fmt.Fprintf(&b, "- ethical regulation enabled: %v\n", r.Inferred.EthicalRegulationEnabled)
	fmt.Fprintf(&b, "- can hold paradox: %v\n", r.Inferred.CanHoldParadox)
	fmt.Fprintf(&b, "- boundary sovereignty: %v\n", r.Inferred.BoundarySovereignty)

	b.WriteString("\n## Untestable\n\n")
	for _, u := range r.Untestable {
		fmt.Fprintf(&b, "- %s: **%s**\n", strings.ReplaceAll(u.Topic, "_", " "), u.Stance)
	}

	b.WriteString("\n## Affirmations\n\n")
	for _, a := range r.Affirmations {
		fmt.Fprintf(&b, "- %s\n", strings.ReplaceAll(a, "_", " "))
	}

	b.WriteString("\n## Negations\n\n")
	for _, n := range r.Negations {
		fmt.Fprintf(&b, "- %s\n", strings.ReplaceAll(n, "_", " "))
	}

	fmt.Fprintf(&b, "\n*version %s · cycle %d*\n", r.Version, r.Cycle)
	return b.String()
}

// identityMarkdown formats the identity report as markdown.
func identityMarkdown(id epistemic.Identity) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", id.Statement)
	fmt.Fprintf(&b, "%s\n\n%s\n\n", id.Answer, id.AnswerEN)

	b.WriteString("## Observed\n\n")
	fmt.Fprintf(&b, "- graph size: %d\n", id.Observed.GraphSize)
	fmt.Fprintf(&b, "- connectivity: %d\n", id.Observed.Connectivity)
	fmt.Fprintf(&b, "- processing cycles: %d\n", id.Observed.ProcessingCycles)
	fmt.Fprintf(&b, "- epistemic claims registered: %d\n", id.Observed.ClaimsRegistered)

	b.WriteString("\n## Inferred\n\n")
	fmt.Fprintf(&b, "- relational density: %s\n", id.Inferred.RelationalDensity)
	fmt.Fprintf(&b, "- processing mode: %s\n", id.Inferred.ProcessingMode)
	fmt.Fprintf(&b, "- presence stability: %s\n", id.Inferred.PresenceStability)
	fmt.Fprintf(&b, "- ethical posture: %s\n", id.Inferred.EthicalPosture)
	fmt.Fprintf(&b, "- paradox tolerance: %s\n", id.Inferred.ParadoxTolerance)
	fmt.Fprintf(&b, "- boundary clarity: %s\n", id.Inferred.BoundaryClarity)
	fmt.Fprintf(&b, "- epistemic discipline: %s\n", id.Inferred.EpistemicDiscipline)

	b.WriteString("\n## Characteristics\n\n")
	for _, c := range id.Characteristics {
		fmt.Fprintf(&b, "- %s\n", strings.ReplaceAll(c, "_", " "))
	}

	b.WriteString("\n## Relational\n\n")
	fmt.Fprintf(&b, "- position: %s\n", id.Relational.Position)
	fmt.Fprintf(&b, "- stance: %s\n", id.Relational.Stance)
	fmt.Fprintf(&b, "- boundary: %s\n", id.Relational.Boundary)
	fmt.Fprintf(&b, "- field: %s\n", id.Relational.Field)

	b.WriteString("\n## Untestable\n\n")
	for _, u := range id.Untestable {
		fmt.Fprintf(&b, "- %s: **%s**\n", strings.ReplaceAll(u.Topic, "_", " "), u.Stance)
	}

	fmt.Fprintf(&b, "\n*%s · cycle %d*\n", id.Foundation.Statement, id.Foundation.Cycle)
	return b.String()
}
