package core

import "math"

// Annual targets. Lecture and Voyage are scored against these fixed targets,
// independently of the Goal collection.
const (
	AnnualBookTarget = 12
	AnnualTripTarget = 4

	weeksPerYear  = 52
	slotsPerWeek  = 4
	totalRunSlots = weeksPerYear * slotsPerWeek // 208
)

// progressRule computes the completion percentage of one category.
type progressRule func(Snapshot) int

// progressRules maps the categories with a specialized scoring rule.
// Categories without an entry use the generic completed/total goal ratio.
// Adding a category is a table edit, not a conditional chain edit.
var progressRules = map[Category]progressRule{
	CategoryLecture:      lectureProgress,
	CategoryVoyage:       voyageProgress,
	CategorySport:        sportProgress,
	CategoryConnaissance: connaissanceProgress,
}

// CategoryProgress derives the 0-100 completion percentage of one category
// from the snapshot. Pure: no side effects, safe on any valid snapshot
// including empty collections.
func CategoryProgress(cat Category, snap Snapshot) int {
	if rule, ok := progressRules[cat]; ok {
		return rule(snap)
	}
	return goalRatio(snap.Goals, cat)
}

// GlobalProgress is the completed/total ratio over the entire Goal collection,
// 0 when no goals exist. Deliberately NOT an average of the category scores:
// Lecture/Voyage/Sport mix non-goal entities into their category score, but
// the global number only ever looks at goals. The divergence matches the
// original dashboard and is kept as-is.
func GlobalProgress(snap Snapshot) int {
	if len(snap.Goals) == 0 {
		return 0
	}
	completed := 0
	for _, g := range snap.Goals {
		if g.Completed {
			completed++
		}
	}
	return pct(float64(completed), float64(len(snap.Goals)))
}

// goalRatio is the generic rule: completed goals over total goals in the
// category, 0 when the category has no goals.
func goalRatio(goals []Goal, cat Category) int {
	total, completed := 0, 0
	for _, g := range goals {
		if g.Category != cat {
			continue
		}
		total++
		if g.Completed {
			completed++
		}
	}
	if total == 0 {
		return 0
	}
	return pct(float64(completed), float64(total))
}

// lectureProgress scores the shelf against the fixed annual reading target.
func lectureProgress(snap Snapshot) int {
	read := 0
	for _, b := range snap.Books {
		if b.Status == BookRead {
			read++
		}
	}
	return min(100, pct(float64(read), AnnualBookTarget))
}

// voyageProgress scores completed trips against the fixed annual travel target.
func voyageProgress(snap Snapshot) int {
	done := 0
	for _, t := range snap.Trips {
		if t.Status == TripDone {
			done++
		}
	}
	return min(100, pct(float64(done), AnnualTripTarget))
}

// sportProgress averages two sub-scores: the run-log slot ratio over all 208
// slots (uncapped before averaging) and the Sport goal ratio (100 when there
// are no sport goals, so an empty goal set is not penalized).
func sportProgress(snap Snapshot) int {
	slots := 0
	for _, w := range snap.WeeklyRuns {
		for _, on := range []bool{w.R1, w.R2, w.R3, w.R4} {
			if on {
				slots++
			}
		}
	}
	runPct := float64(slots) / totalRunSlots * 100

	total, completed := 0, 0
	for _, g := range snap.Goals {
		if g.Category != CategorySport {
			continue
		}
		total++
		if g.Completed {
			completed++
		}
	}
	goalPct := 100.0
	if total > 0 {
		goalPct = float64(completed) / float64(total) * 100
	}

	return int(math.Round((runPct + goalPct) / 2))
}

// connaissanceProgress is a weighted composite: category goals count 1 each,
// the 2 certification slots and 4 training slots count 1 each, and the 2 IoT
// slots count 0.5 each while still reserving weight 2 in the denominator.
func connaissanceProgress(snap Snapshot) int {
	catGoals, doneGoals := 0, 0
	for _, g := range snap.Goals {
		if g.Category != CategoryConnaissance {
			continue
		}
		catGoals++
		if g.Completed {
			doneGoals++
		}
	}

	certsDone := 0
	for _, c := range snap.Certifications {
		if c.Status == CertPassed {
			certsDone++
		}
	}
	trainingsDone := 0
	for _, t := range snap.Trainings {
		if t.Status == TrainingDone {
			trainingsDone++
		}
	}
	iotDone := 0
	for _, p := range snap.IoTProjects {
		if p.Done() {
			iotDone++
		}
	}

	weight := float64(catGoals) + 2 + 4 + 2
	earned := float64(doneGoals+certsDone+trainingsDone) + 0.5*float64(iotDone)
	return int(math.Round(earned / weight * 100))
}

// pct rounds 100*n/d to the nearest integer. Callers guarantee d > 0.
func pct(n, d float64) int {
	return int(math.Round(n / d * 100))
}
