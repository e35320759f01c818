package core

// CertificationStatus tracks a certification attempt.
type CertificationStatus string

const (
	CertToDo          CertificationStatus = "À réaliser"
	CertInProgress    CertificationStatus = "En cours"
	CertExamScheduled CertificationStatus = "Examen planifié"
	CertPassed        CertificationStatus = "Réussie"
	CertFailed        CertificationStatus = "Échouée"
)

// Certification is one of the 2 fixed certification slots of the year.
// Slots are edited in place, never added or removed.
type Certification struct {
	ID       string              `json:"id"`
	Title    string              `json:"title"`
	Deadline string              `json:"deadline"`
	Comment  string              `json:"comment"`
	Status   CertificationStatus `json:"status"`
}

// TrainingStatus tracks an online training.
type TrainingStatus string

const (
	TrainingToDo       TrainingStatus = "À faire"
	TrainingInProgress TrainingStatus = "En cours"
	TrainingDone       TrainingStatus = "Terminé"
)

// Training is one of the 4 fixed training slots of the year.
type Training struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	PlatformURL string         `json:"platformUrl"`
	StartDate   string         `json:"startDate"`
	EndDate     string         `json:"endDate"`
	Comment     string         `json:"comment"`
	Status      TrainingStatus `json:"status"`
}

// IoTProject is one of the 2 fixed tinkering slots of the year.
// Completion is derived, not stored: see Done.
type IoTProject struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	LinkURL     string `json:"linkUrl"`
}

// Done reports whether the project counts as finished: a named project with an
// end date. Keeping this computed avoids a stored flag drifting out of sync.
func (p IoTProject) Done() bool {
	return p.Title != "" && p.EndDate != ""
}

// WatchType classifies a piece of consumed content.
type WatchType string

const (
	WatchVideo      WatchType = "Vidéo"
	WatchPodcast    WatchType = "Podcast"
	WatchNewsletter WatchType = "Newsletter"
)

// ActiveWatch is a logged piece of consumed content (tech watch).
type ActiveWatch struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Type  WatchType `json:"type"`
	Date  string    `json:"date"`
}
