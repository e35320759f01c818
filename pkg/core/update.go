package core

// Partial-update payloads for the fixed-slot collections and trips.
// Nil fields are left untouched; the slot itself is never created or removed.

// CertificationUpdate edits one certification slot in place.
type CertificationUpdate struct {
	Title    *string              `json:"title"`
	Deadline *string              `json:"deadline"`
	Comment  *string              `json:"comment"`
	Status   *CertificationStatus `json:"status"`
}

// TrainingUpdate edits one training slot in place.
type TrainingUpdate struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	PlatformURL *string         `json:"platformUrl"`
	StartDate   *string         `json:"startDate"`
	EndDate     *string         `json:"endDate"`
	Comment     *string         `json:"comment"`
	Status      *TrainingStatus `json:"status"`
}

// IoTProjectUpdate edits one project slot in place.
type IoTProjectUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
	LinkURL     *string `json:"linkUrl"`
}

// TripUpdate edits a trip by id.
type TripUpdate struct {
	Country     *string       `json:"country"`
	CountryCode *string       `json:"countryCode"`
	FlagURL     *string       `json:"flagUrl"`
	BgImageURL  *string       `json:"bgImageUrl"`
	Status      *TravelStatus `json:"status"`
	Motive      *TravelMotive `json:"motive"`
	Duration    *int          `json:"duration"`
	StartDate   *string       `json:"startDate"`
	Comment     *string       `json:"comment"`
	Lat         *float64      `json:"lat"`
	Lng         *float64      `json:"lng"`
}
