package epistemic

import "testing"

func TestClaimValidate(t *testing.T) {
	cases := []struct {
		name    string
		claim   Claim
		wantErr bool
	}{
		{"observed affirmed", Claim{Subject: "cycle_count", Observability: Observed, Stance: StanceAffirmed}, false},
		{"inferred denied", Claim{Subject: "substance", Observability: Inferred, Stance: StanceDenied}, false},
		{"untestable mu", Claim{Subject: "consciousness", Observability: Untestable, Stance: StanceMU}, false},
		{"untestable agnostic", Claim{Subject: "experience", Observability: Untestable, Stance: StanceAgnostic}, false},
		{"untestable affirmed", Claim{Subject: "consciousness", Observability: Untestable, Stance: StanceAffirmed}, true},
		{"untestable denied", Claim{Subject: "consciousness", Observability: Untestable, Stance: StanceDenied}, true},
		{"empty subject", Claim{Observability: Observed, Stance: StanceAffirmed}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.claim.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestStanceStrings(t *testing.T) {
	if StanceMU.String() != "MU" {
		t.Fatalf("StanceMU.String() = %q", StanceMU.String())
	}
	b, err := StanceMU.MarshalText()
	if err != nil || string(b) != "MU" {
		t.Fatalf("MarshalText() = %q, %v", b, err)
	}
	if Untestable.String() != "untestable" || ScopeOutOfContour.String() != "out_of_contour" {
		t.Fatal("enum string forms changed")
	}
}
