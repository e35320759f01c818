package core

import "fmt"

// seedAmount is a helper for the seeded financial goals.
func seedAmount(v float64) *float64 { return &v }

// SeedGoals builds the fixed annual schedule: 7 recurring goals instantiated
// for each of the 12 months, plus 3 one-off health appointments pinned to
// specific months. 84 + 3 = 87 goals in total.
//
// Ids are deterministic (category slug + month) so the seeder is idempotent by
// construction: re-running it against a seeded store would collide instead of
// duplicating. The service only invokes it when the Goal collection is empty.
func SeedGoals() []Goal {
	goals := make([]Goal, 0, 87)

	for month := 1; month <= 12; month++ {
		goals = append(goals,
			Goal{ID: fmt.Sprintf("fin-per-%d", month), Category: CategoryFinance, Title: "Versement PER", Month: month, Type: GoalRecurring, Amount: seedAmount(945)},
			Goal{ID: fmt.Sprintf("fin-etf-%d", month), Category: CategoryFinance, Title: "Achats ETF", Month: month, Type: GoalRecurring, Amount: seedAmount(0)},
			Goal{ID: fmt.Sprintf("fin-ver-%d", month), Category: CategoryFinance, Title: "Vérification des comptes", Month: month, Type: GoalRecurring},
			Goal{ID: fmt.Sprintf("hlt-fast-%d", month), Category: CategorySante, Title: "Journée de jeûne", Month: month, Type: GoalRecurring},
			Goal{ID: fmt.Sprintf("spr-campus-%d", month), Category: CategorySport, Title: "Suivi Campus Coach", Month: month, Type: GoalRecurring},
			Goal{ID: fmt.Sprintf("knw-study-%d", month), Category: CategoryConnaissance, Title: "Formation / Étude", Month: month, Type: GoalRecurring},
			Goal{ID: fmt.Sprintf("knw-content-%d", month), Category: CategoryConnaissance, Title: "Veille technologique", Month: month, Type: GoalRecurring},
		)
	}

	goals = append(goals,
		Goal{ID: "hlt-dent", Category: CategorySante, Title: "Rendez-vous Dentiste", Month: 6, Type: GoalOnce},
		Goal{ID: "hlt-opht", Category: CategorySante, Title: "Rendez-vous Ophtalmo", Month: 10, Type: GoalOnce},
		Goal{ID: "hlt-gen", Category: CategorySante, Title: "Rendez-vous Généraliste", Month: 1, Type: GoalOnce},
	)

	return goals
}
