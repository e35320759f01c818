package core

// TravelStatus tracks a trip from idea to completion.
type TravelStatus string

const (
	TripToOrganize TravelStatus = "À organiser"
	TripOrganized  TravelStatus = "Organisé"
	TripDone       TravelStatus = "Effectué"
	TripCanceled   TravelStatus = "Annulé"
	TripPostponed  TravelStatus = "Reporté"
)

// TravelMotive is the declared reason for a trip.
type TravelMotive string

const (
	MotiveVacation TravelMotive = "Vacances"
	MotiveSport    TravelMotive = "Sport"
	MotiveOther    TravelMotive = "Autre"
)

// Trip is a planned or completed journey. Visual fields (flag, background,
// coordinates) come from an oracle country lookup and are purely cosmetic.
type Trip struct {
	ID          string       `json:"id"`
	Country     string       `json:"country"`
	CountryCode string       `json:"countryCode"`
	FlagURL     string       `json:"flagUrl"`
	BgImageURL  string       `json:"bgImageUrl"`
	Status      TravelStatus `json:"status"`
	Motive      TravelMotive `json:"motive"`
	Duration    int          `json:"duration"` // days
	StartDate   string       `json:"startDate"`
	Comment     string       `json:"comment"`
	Lat         *float64     `json:"lat,omitempty"`
	Lng         *float64     `json:"lng,omitempty"`
}
