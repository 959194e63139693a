package chromimic

import "testing"

func allImpersonates() []Impersonate {
	out := make([]Impersonate, 0, len(impersonateTable))
	for _, m := range impersonateTable {
		out = append(out, m.id)
	}
	return out
}

func TestParseStringRoundTrip(t *testing.T) {
	for _, id := range allImpersonates() {
		s := id.String()
		got, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if got != id {
			t.Errorf("Parse(String(%v)) = %v, want %v", id, got, id)
		}
	}
}

func TestParseCanonicalForm(t *testing.T) {
	for _, m := range impersonateTable {
		got, err := Parse(m.parse)
		if err != nil {
			t.Fatalf("Parse(%q): %v", m.parse, err)
		}
		if got != m.id {
			t.Errorf("Parse(%q) = %v, want %v", m.parse, got, m.id)
		}
	}
}

func TestParseUnknown(t *testing.T) {
	_, err := Parse("internet_explorer_6")
	if err == nil {
		t.Fatal("expected an error for an unknown identifier")
	}
	var target *InvalidImpersonateError
	if !asInvalidImpersonateError(err, &target) {
		t.Fatalf("expected *InvalidImpersonateError, got %T", err)
	}
}

func asInvalidImpersonateError(err error, target **InvalidImpersonateError) bool {
	e, ok := err.(*InvalidImpersonateError)
	if ok {
		*target = e
	}
	return ok
}

func TestProfileFamilyAssignment(t *testing.T) {
	cases := map[Impersonate]ClientProfile{
		Chrome126:       ProfileChrome,
		Edge122:         ProfileEdge,
		Safari17_4_1:    ProfileSafari,
		SafariIos16_5:   ProfileSafari,
		OkHttp4_10:      ProfileOkHttp,
	}
	for id, want := range cases {
		if got := id.Profile(); got != want {
			t.Errorf("%v.Profile() = %v, want %v", id, got, want)
		}
	}
}

func TestEveryEnumeratorHasDistinctDisplay(t *testing.T) {
	seen := make(map[string]Impersonate)
	for _, m := range impersonateTable {
		if prev, ok := seen[m.display]; ok {
			t.Fatalf("display tag %q used by both %v and %v", m.display, prev, m.id)
		}
		seen[m.display] = m.id
	}
}
