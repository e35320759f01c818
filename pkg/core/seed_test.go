package core

import "testing"

func TestSeedGoalsShape(t *testing.T) {
	goals := SeedGoals()

	if len(goals) != 87 {
		t.Fatalf("SeedGoals() = %d goals, want 87", len(goals))
	}

	recurring, once := 0, 0
	perCategory := map[Category]int{}
	seen := map[string]bool{}
	for _, g := range goals {
		if seen[g.ID] {
			t.Errorf("duplicate seeded id %s", g.ID)
		}
		seen[g.ID] = true

		if g.Month < 1 || g.Month > 12 {
			t.Errorf("goal %s has month %d", g.ID, g.Month)
		}
		if g.Completed {
			t.Errorf("goal %s seeded as completed", g.ID)
		}

		switch g.Type {
		case GoalRecurring:
			recurring++
		case GoalOnce:
			once++
		default:
			t.Errorf("goal %s has type %q", g.ID, g.Type)
		}
		perCategory[g.Category]++
	}

	if recurring != 84 {
		t.Errorf("recurring = %d, want 84", recurring)
	}
	if once != 3 {
		t.Errorf("once = %d, want 3", once)
	}

	wantPerCategory := map[Category]int{
		CategoryFinance:      36,
		CategorySante:        15,
		CategorySport:        12,
		CategoryConnaissance: 24,
	}
	for cat, want := range wantPerCategory {
		if perCategory[cat] != want {
			t.Errorf("%s = %d goals, want %d", cat, perCategory[cat], want)
		}
	}
}

func TestSeedGoalsAnchors(t *testing.T) {
	goals := SeedGoals()
	byID := map[string]Goal{}
	for _, g := range goals {
		byID[g.ID] = g
	}

	per := byID["fin-per-3"]
	if per.Title != "Versement PER" || per.Amount == nil || *per.Amount != 945 {
		t.Errorf("fin-per-3 = %+v", per)
	}

	etf := byID["fin-etf-7"]
	if etf.Amount == nil || *etf.Amount != 0 {
		t.Errorf("fin-etf-7 amount = %v, want 0", etf.Amount)
	}

	dent := byID["hlt-dent"]
	if dent.Month != 6 || dent.Type != GoalOnce {
		t.Errorf("hlt-dent = %+v", dent)
	}
	if byID["hlt-opht"].Month != 10 {
		t.Errorf("hlt-opht month = %d, want 10", byID["hlt-opht"].Month)
	}
	if byID["hlt-gen"].Month != 1 {
		t.Errorf("hlt-gen month = %d, want 1", byID["hlt-gen"].Month)
	}

	// No seeded goal is a user goal.
	for id := range byID {
		if byID[id].Seeded() == false {
			t.Errorf("seeded goal %s reports as user goal", id)
		}
	}
}
