package core

// RunSlot identifies one of the 4 run slots of a week.
// r1/r2 are the mandatory runs, r3/r4 the facultative ones.
type RunSlot string

const (
	RunSlot1 RunSlot = "r1"
	RunSlot2 RunSlot = "r2"
	RunSlot3 RunSlot = "r3"
	RunSlot4 RunSlot = "r4"
)

// Valid reports whether s names a known slot.
func (s RunSlot) Valid() bool {
	switch s {
	case RunSlot1, RunSlot2, RunSlot3, RunSlot4:
		return true
	}
	return false
}

// WeeklyRun is the run log of one calendar week. The collection always holds
// exactly 52 rows; rows are slot-toggled, never added or removed.
type WeeklyRun struct {
	Week int  `json:"week"` // 1-52
	R1   bool `json:"r1"`
	R2   bool `json:"r2"`
	R3   bool `json:"r3"`
	R4   bool `json:"r4"`
}

// Slot returns the value of the given slot.
func (w WeeklyRun) Slot(s RunSlot) bool {
	switch s {
	case RunSlot1:
		return w.R1
	case RunSlot2:
		return w.R2
	case RunSlot3:
		return w.R3
	case RunSlot4:
		return w.R4
	}
	return false
}

// ToggleSlot returns a copy of the week with the given slot flipped.
func (w WeeklyRun) ToggleSlot(s RunSlot) WeeklyRun {
	switch s {
	case RunSlot1:
		w.R1 = !w.R1
	case RunSlot2:
		w.R2 = !w.R2
	case RunSlot3:
		w.R3 = !w.R3
	case RunSlot4:
		w.R4 = !w.R4
	}
	return w
}

// GymSessionType distinguishes a class from free training.
type GymSessionType string

const (
	GymClass GymSessionType = "Cours"
	GymFree  GymSessionType = "Libre"
)

// GymSession is a logged gym visit.
type GymSession struct {
	ID    string         `json:"id"`
	Type  GymSessionType `json:"type"`
	Title string         `json:"title"`
	Date  string         `json:"date"`
}
