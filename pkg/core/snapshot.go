package core

// Store keys, one per collection. The persisted document under each key is the
// JSON encoding of the matching Snapshot field.
const (
	KeyGoals          = "goals"
	KeyBooks          = "books"
	KeyTrips          = "trips"
	KeyCertifications = "certifications"
	KeyTrainings      = "trainings"
	KeyIoTProjects    = "iotProjects"
	KeyWeeklyRuns     = "weeklyRuns"
	KeyGymSessions    = "gymSessions"
	KeyDarebeeURL     = "darebeeUrl"
	KeyActiveWatches  = "activeWatches"
)

// Keys returns all collection keys.
func Keys() []string {
	return []string{
		KeyGoals, KeyBooks, KeyTrips, KeyCertifications, KeyTrainings,
		KeyIoTProjects, KeyWeeklyRuns, KeyGymSessions, KeyDarebeeURL,
		KeyActiveWatches,
	}
}

// Snapshot holds every persisted collection. It is the unit the aggregator and
// the reward evaluator work on, and also the export/import document shape.
type Snapshot struct {
	Goals          []Goal          `json:"goals"`
	Books          []Book          `json:"books"`
	Trips          []Trip          `json:"trips"`
	Certifications []Certification `json:"certifications"`
	Trainings      []Training      `json:"trainings"`
	IoTProjects    []IoTProject    `json:"iotProjects"`
	WeeklyRuns     []WeeklyRun     `json:"weeklyRuns"`
	GymSessions    []GymSession    `json:"gymSessions"`
	DarebeeURL     string          `json:"darebeeUrl"`
	ActiveWatches  []ActiveWatch   `json:"activeWatches"`
}

// DefaultSnapshot returns the named defaults every collection falls back to
// when its key is absent from the store.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Goals:          []Goal{},
		Books:          []Book{},
		Trips:          []Trip{},
		Certifications: DefaultCertifications(),
		Trainings:      DefaultTrainings(),
		IoTProjects:    DefaultIoTProjects(),
		WeeklyRuns:     DefaultWeeklyRuns(),
		GymSessions:    []GymSession{},
		ActiveWatches:  []ActiveWatch{},
	}
}

// DefaultCertifications returns the 2 fixed certification slots, empty.
func DefaultCertifications() []Certification {
	return []Certification{
		{ID: "cert-1", Status: CertToDo},
		{ID: "cert-2", Status: CertToDo},
	}
}

// DefaultTrainings returns the 4 fixed training slots, empty.
func DefaultTrainings() []Training {
	return []Training{
		{ID: "train-1", Status: TrainingToDo},
		{ID: "train-2", Status: TrainingToDo},
		{ID: "train-3", Status: TrainingToDo},
		{ID: "train-4", Status: TrainingToDo},
	}
}

// DefaultIoTProjects returns the 2 fixed project slots, empty.
func DefaultIoTProjects() []IoTProject {
	return []IoTProject{
		{ID: "iot-1"},
		{ID: "iot-2"},
	}
}

// DefaultWeeklyRuns returns the 52 empty weekly rows.
func DefaultWeeklyRuns() []WeeklyRun {
	runs := make([]WeeklyRun, 52)
	for i := range runs {
		runs[i] = WeeklyRun{Week: i + 1}
	}
	return runs
}
