package stubserver

import (
	"reflect"
	"testing"
)

// --- paginate ---

func TestPaginate_Slicing(t *testing.T) {
	ids := []int64{1, 2, 3, 4, 5}

	cases := []struct {
		name     string
		page     int
		pageSize int
		want     []int64
	}{
		{"first page", 1, 2, []int64{1, 2}},
		{"middle page", 2, 2, []int64{3, 4}},
		{"short last page", 3, 2, []int64{5}},
		{"past the end", 4, 2, nil},
		{"page floors at one", 0, 2, []int64{1, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := paginate(ids, tc.page, tc.pageSize)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("paginate = %v, want %v", got, tc.want)
			}
		})
	}
}

// --- seed ---

func TestSeed_WiresSkillsByName(t *testing.T) {
	fixtures, err := LoadFixtures("")
	if err != nil {
		t.Fatalf("LoadFixtures: %v", err)
	}

	s := newStore()
	if err := s.seed(fixtures); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if len(s.skillAreas) != 3 {
		t.Errorf("len(skillAreas) = %d, want 3", len(s.skillAreas))
	}
	if len(s.skills) != 7 {
		t.Errorf("len(skills) = %d, want 7", len(s.skills))
	}
	if len(s.developers) != 2 {
		t.Errorf("len(developers) = %d, want 2", len(s.developers))
	}

	// Amina carries React, Django and Docker by name.
	var amina *developerRecord
	for _, d := range s.developers {
		if d.Name == "Amina Diallo" {
			amina = d
		}
	}
	if amina == nil {
		t.Fatal("Amina not seeded")
	}
	if len(amina.SkillIDs) != 3 {
		t.Errorf("len(SkillIDs) = %d, want 3", len(amina.SkillIDs))
	}
	for _, id := range amina.SkillIDs {
		if _, ok := s.skills[id]; !ok {
			t.Errorf("skill id %d not in store", id)
		}
	}
}

func TestCheckAdmin_BcryptComparison(t *testing.T) {
	s := newStore()
	if err := s.setAdmin("admin@devdash.local", "secret"); err != nil {
		t.Fatalf("setAdmin: %v", err)
	}

	if !s.checkAdmin("admin@devdash.local", "secret") {
		t.Error("valid credentials rejected")
	}
	if s.checkAdmin("admin@devdash.local", "wrong") {
		t.Error("wrong password accepted")
	}
	if s.checkAdmin("other@devdash.local", "secret") {
		t.Error("wrong email accepted")
	}
}

// --- tokenIssuer ---

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := newTokenIssuer("test-secret")

	token, err := issuer.Generate("admin@devdash.local")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !issuer.Verify(token) {
		t.Error("freshly issued token failed verification")
	}
	if issuer.Verify("garbage") {
		t.Error("garbage token verified")
	}
	if newTokenIssuer("other-secret").Verify(token) {
		t.Error("token verified under a different secret")
	}
}
