package epistemic

import "fmt"

// Claim is one registered epistemic claim. The entity keeps a bounded
// in-session log of these; the reporter reads only the count.
type Claim struct {
	Subject       string        `json:"subject"`
	Scope         Scope         `json:"scope"`
	Observability Observability `json:"observability"`
	Stance        Stance        `json:"stance"`
}

// Validate enforces the claim discipline: an untestable claim may only be
// held agnostically or as MU. Resolving an untestable to affirmed or denied
// is exactly the dishonesty this layer exists to prevent.
func (c Claim) Validate() error {
	if c.Subject == "" {
		return fmt.Errorf("epistemic claim: empty subject")
	}
	if c.Observability == Untestable && c.Stance != StanceAgnostic && c.Stance != StanceMU {
		return fmt.Errorf("epistemic claim %q: untestable claims cannot be %s", c.Subject, c.Stance)
	}
	return nil
}
