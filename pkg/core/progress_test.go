package core

import "testing"

func booksRead(n int) []Book {
	books := make([]Book, n)
	for i := range books {
		books[i] = Book{ID: "b", Status: BookRead}
	}
	return books
}

func tripsDone(n int) []Trip {
	trips := make([]Trip, n)
	for i := range trips {
		trips[i] = Trip{ID: "t", Status: TripDone}
	}
	return trips
}

func goalsFor(cat Category, completed, total int) []Goal {
	goals := make([]Goal, total)
	for i := range goals {
		goals[i] = Goal{ID: "g", Category: cat, Month: 1, Completed: i < completed}
	}
	return goals
}

func TestGlobalProgress(t *testing.T) {
	tests := []struct {
		name  string
		goals []Goal
		want  int
	}{
		{"no goals", nil, 0},
		{"none completed", goalsFor(CategoryFinance, 0, 10), 0},
		{"half completed", goalsFor(CategoryFinance, 5, 10), 50},
		{"all completed", goalsFor(CategoryFinance, 10, 10), 100},
		{"rounds to nearest", goalsFor(CategoryFinance, 1, 3), 33},
		{"rounds half up", goalsFor(CategoryFinance, 2, 3), 67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := DefaultSnapshot()
			snap.Goals = tt.goals
			if got := GlobalProgress(snap); got != tt.want {
				t.Errorf("GlobalProgress() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGenericCategoryRatio(t *testing.T) {
	snap := DefaultSnapshot()
	snap.Goals = append(goalsFor(CategoryFinance, 2, 4), goalsFor(CategoryRappels, 1, 1)...)

	if got := CategoryProgress(CategoryFinance, snap); got != 50 {
		t.Errorf("Finance = %d, want 50", got)
	}
	if got := CategoryProgress(CategoryRappels, snap); got != 100 {
		t.Errorf("Rappels = %d, want 100", got)
	}
	// A category with no goals scores 0, not an error.
	if got := CategoryProgress(CategorySante, snap); got != 0 {
		t.Errorf("Santé = %d, want 0", got)
	}
}

func TestLectureProgress(t *testing.T) {
	tests := []struct {
		name string
		read int
		want int
	}{
		{"empty shelf", 0, 0},
		{"one of twelve", 1, 8},
		{"half the target", 6, 50},
		{"on target", 12, 100},
		{"beyond target is capped", 15, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := DefaultSnapshot()
			snap.Books = booksRead(tt.read)
			// Unread books never count.
			snap.Books = append(snap.Books, Book{ID: "x", Status: BookReading}, Book{ID: "y", Status: BookToRead})
			if got := CategoryProgress(CategoryLecture, snap); got != tt.want {
				t.Errorf("Lecture = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestVoyageProgress(t *testing.T) {
	snap := DefaultSnapshot()
	snap.Trips = append(tripsDone(2), Trip{ID: "p", Status: TripOrganized}, Trip{ID: "q", Status: TripCanceled})

	if got := CategoryProgress(CategoryVoyage, snap); got != 50 {
		t.Errorf("Voyage = %d, want 50", got)
	}

	snap.Trips = tripsDone(6)
	if got := CategoryProgress(CategoryVoyage, snap); got != 100 {
		t.Errorf("Voyage beyond target = %d, want 100", got)
	}
}

func TestSportProgress(t *testing.T) {
	t.Run("empty log and no goals averages to 50", func(t *testing.T) {
		// Run ratio 0, goal ratio defaults to 100 when no sport goals exist.
		snap := DefaultSnapshot()
		if got := CategoryProgress(CategorySport, snap); got != 50 {
			t.Errorf("Sport = %d, want 50", got)
		}
	})

	t.Run("full log and no goals is 100", func(t *testing.T) {
		snap := DefaultSnapshot()
		for i := range snap.WeeklyRuns {
			snap.WeeklyRuns[i] = WeeklyRun{Week: i + 1, R1: true, R2: true, R3: true, R4: true}
		}
		if got := CategoryProgress(CategorySport, snap); got != 100 {
			t.Errorf("Sport = %d, want 100", got)
		}
	})

	t.Run("averages run slots with goal ratio", func(t *testing.T) {
		// 52 of 208 slots = 25%, 1 of 2 goals = 50%, average = 37.5 -> 38.
		snap := DefaultSnapshot()
		for i := range snap.WeeklyRuns {
			snap.WeeklyRuns[i].R1 = true
		}
		snap.Goals = goalsFor(CategorySport, 1, 2)
		if got := CategoryProgress(CategorySport, snap); got != 38 {
			t.Errorf("Sport = %d, want 38", got)
		}
	})
}

func TestConnaissanceProgress(t *testing.T) {
	t.Run("default slots score zero", func(t *testing.T) {
		snap := DefaultSnapshot()
		if got := CategoryProgress(CategoryConnaissance, snap); got != 0 {
			t.Errorf("Connaissance = %d, want 0", got)
		}
	})

	t.Run("all fixed slots done", func(t *testing.T) {
		// No category goals: weight = 0+2+4+2 = 8.
		// Earned = 2 certs + 4 trainings + 0.5*2 iot = 7 -> 87.5 -> 88.
		snap := DefaultSnapshot()
		for i := range snap.Certifications {
			snap.Certifications[i].Status = CertPassed
		}
		for i := range snap.Trainings {
			snap.Trainings[i].Status = TrainingDone
		}
		for i := range snap.IoTProjects {
			snap.IoTProjects[i].Title = "Station météo"
			snap.IoTProjects[i].EndDate = "2026-06-01"
		}
		if got := CategoryProgress(CategoryConnaissance, snap); got != 88 {
			t.Errorf("Connaissance = %d, want 88", got)
		}
	})

	t.Run("category goals widen the denominator", func(t *testing.T) {
		// 4 goals, 2 done, nothing else: weight = 4+8 = 12, earned = 2 -> 17.
		snap := DefaultSnapshot()
		snap.Goals = goalsFor(CategoryConnaissance, 2, 4)
		if got := CategoryProgress(CategoryConnaissance, snap); got != 17 {
			t.Errorf("Connaissance = %d, want 17", got)
		}
	})

	t.Run("unfinished iot projects earn nothing", func(t *testing.T) {
		snap := DefaultSnapshot()
		snap.IoTProjects[0].Title = "Station météo" // no end date
		if got := CategoryProgress(CategoryConnaissance, snap); got != 0 {
			t.Errorf("Connaissance = %d, want 0", got)
		}
	})
}

func TestProgressBounds(t *testing.T) {
	// Every category stays within 0-100 on a fully loaded snapshot.
	snap := DefaultSnapshot()
	snap.Goals = SeedGoals()
	for i := range snap.Goals {
		snap.Goals[i].Completed = true
	}
	snap.Books = booksRead(20)
	snap.Trips = tripsDone(8)
	for i := range snap.WeeklyRuns {
		snap.WeeklyRuns[i] = WeeklyRun{Week: i + 1, R1: true, R2: true, R3: true, R4: true}
	}

	for _, cat := range Categories() {
		got := CategoryProgress(cat, snap)
		if got < 0 || got > 100 {
			t.Errorf("%s = %d, out of bounds", cat, got)
		}
	}
	if got := GlobalProgress(snap); got != 100 {
		t.Errorf("GlobalProgress = %d, want 100", got)
	}
}
