package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"
)

// Service is the state container of the dashboard. It owns the in-memory
// snapshot, pushes every change through the persistence adapter, and keeps the
// reward states in sync with the aggregated progress.
//
// Every mutation computes a full next value for the affected collection before
// committing it, so no error can leave a collection half-written. Mutations
// affect exactly one collection; there is no cross-collection transaction.
type Service struct {
	mu       sync.RWMutex
	store    Store
	logger   *slog.Logger
	autoSeed bool
	onChange func(key string, value any)

	snap    Snapshot
	catalog []Reward
	rewards []Reward
}

// NewService creates a Service bound to a store. Call Load before use.
func NewService(store Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:    store,
		logger:   logger,
		autoSeed: true,
		catalog:  DefaultRewards(),
		snap:     DefaultSnapshot(),
	}
}

// SetOnChange registers a hook invoked after each persisted collection change.
func (s *Service) SetOnChange(fn func(key string, value any)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// SetAutoSeed controls whether Load seeds the annual schedule into an empty
// Goal collection. Enabled by default.
func (s *Service) SetAutoSeed(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.autoSeed = enabled
}

// Load reads every collection from the store, applying the named default for
// each absent key, and seeds the annual goal schedule if the Goal collection
// is empty. It never fails: an unavailable store simply yields the defaults.
func (s *Service) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := DefaultSnapshot()
	s.loadInto(ctx, KeyGoals, &snap.Goals)
	s.loadInto(ctx, KeyBooks, &snap.Books)
	s.loadInto(ctx, KeyTrips, &snap.Trips)
	s.loadInto(ctx, KeyCertifications, &snap.Certifications)
	s.loadInto(ctx, KeyTrainings, &snap.Trainings)
	s.loadInto(ctx, KeyIoTProjects, &snap.IoTProjects)
	s.loadInto(ctx, KeyWeeklyRuns, &snap.WeeklyRuns)
	s.loadInto(ctx, KeyGymSessions, &snap.GymSessions)
	s.loadInto(ctx, KeyDarebeeURL, &snap.DarebeeURL)
	s.loadInto(ctx, KeyActiveWatches, &snap.ActiveWatches)

	if len(snap.Goals) == 0 && s.autoSeed {
		snap.Goals = SeedGoals()
		s.persist(ctx, KeyGoals, snap.Goals)
	}

	s.snap = snap
	s.refreshRewards()
}

func (s *Service) loadInto(ctx context.Context, key string, v any) {
	if _, err := s.store.Load(ctx, key, v); err != nil {
		s.logger.Warn("load failed, using default", "key", key, "error", err)
	}
}

// persist writes one collection. Failures are logged, never propagated: the
// in-memory state stays authoritative for the session either way.
func (s *Service) persist(ctx context.Context, key string, value any) {
	if err := s.store.Save(ctx, key, value); err != nil {
		s.logger.Warn("persist failed", "key", key, "error", err)
	}
	if s.onChange != nil {
		s.onChange(key, value)
	}
}

func (s *Service) refreshRewards() {
	s.rewards = EvaluateRewards(s.catalog, s.snap)
}

var (
	idMu   sync.Mutex
	lastID int64
)

// newID derives an id from the wall clock, bumped forward when two inserts
// land in the same millisecond.
func newID() string {
	idMu.Lock()
	defer idMu.Unlock()

	id := time.Now().UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}
	lastID = id
	return strconv.FormatInt(id, 10)
}

func today() string {
	return time.Now().Format("2006-01-02")
}

// --- Goals ---

// AddGoal creates a user goal. The id and completion flag are assigned here.
// Returns false (no-op) on an empty title, an unknown category, or a month
// outside 1-12.
func (s *Service) AddGoal(ctx context.Context, goal Goal) (Goal, bool) {
	if goal.Title == "" || !goal.Category.Valid() || goal.Month < 1 || goal.Month > 12 {
		return Goal{}, false
	}
	if goal.Type == "" {
		goal.Type = GoalOnce
	}
	goal.ID = UserGoalPrefix + newID()
	goal.Completed = false

	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveGoals(ctx, append([]Goal{goal}, s.snap.Goals...))
	return goal, true
}

// ToggleGoal flips the completion flag of the goal with the given id.
func (s *Service) ToggleGoal(ctx context.Context, id string) bool {
	return s.updateGoal(ctx, id, func(g *Goal) { g.Completed = !g.Completed })
}

// RemoveGoal deletes a goal by id.
func (s *Service) RemoveGoal(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]Goal, 0, len(s.snap.Goals))
	found := false
	for _, g := range s.snap.Goals {
		if g.ID == id {
			found = true
			continue
		}
		next = append(next, g)
	}
	if !found {
		return false
	}
	s.saveGoals(ctx, next)
	return true
}

// UpdateGoalAmount sets the amount of a financial goal.
func (s *Service) UpdateGoalAmount(ctx context.Context, id string, amount float64) bool {
	return s.updateGoal(ctx, id, func(g *Goal) { g.Amount = &amount })
}

// UpdateGoalTitle renames a goal.
func (s *Service) UpdateGoalTitle(ctx context.Context, id, title string) bool {
	return s.updateGoal(ctx, id, func(g *Goal) { g.Title = title })
}

// UpdateGoalComment sets the free-form note of a goal.
func (s *Service) UpdateGoalComment(ctx context.Context, id, comment string) bool {
	return s.updateGoal(ctx, id, func(g *Goal) { g.Comment = comment })
}

// UpdateGoalDate pins a goal to a full calendar date (YYYY-MM-DD).
func (s *Service) UpdateGoalDate(ctx context.Context, id, date string) bool {
	return s.updateGoal(ctx, id, func(g *Goal) { g.Date = date })
}

// UpdateGoalDay pins a goal to a day of its month.
func (s *Service) UpdateGoalDay(ctx context.Context, id string, day int) bool {
	if day < 1 || day > 31 {
		return false
	}
	return s.updateGoal(ctx, id, func(g *Goal) { g.Day = day })
}

func (s *Service) updateGoal(ctx context.Context, id string, apply func(*Goal)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]Goal, len(s.snap.Goals))
	copy(next, s.snap.Goals)
	for i := range next {
		if next[i].ID == id {
			apply(&next[i])
			s.saveGoals(ctx, next)
			return true
		}
	}
	return false
}

func (s *Service) saveGoals(ctx context.Context, goals []Goal) {
	s.snap.Goals = goals
	s.persist(ctx, KeyGoals, goals)
	s.refreshRewards()
}

// --- Books ---

// AddBook shelves a book. Returns false on an empty title.
func (s *Service) AddBook(ctx context.Context, book Book) (Book, bool) {
	if book.Title == "" {
		return Book{}, false
	}
	book.ID = newID()
	if book.Status == "" {
		book.Status = BookToRead
	}
	if book.AddedAt == "" {
		book.AddedAt = today()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveBooks(ctx, append([]Book{book}, s.snap.Books...))
	return book, true
}

// SetBookStatus moves a book through the reading pipeline.
func (s *Service) SetBookStatus(ctx context.Context, id string, status BookStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]Book, len(s.snap.Books))
	copy(next, s.snap.Books)
	for i := range next {
		if next[i].ID == id {
			next[i].Status = status
			s.saveBooks(ctx, next)
			return true
		}
	}
	return false
}

// RemoveBook deletes a book by id.
func (s *Service) RemoveBook(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]Book, 0, len(s.snap.Books))
	found := false
	for _, b := range s.snap.Books {
		if b.ID == id {
			found = true
			continue
		}
		next = append(next, b)
	}
	if !found {
		return false
	}
	s.saveBooks(ctx, next)
	return true
}

func (s *Service) saveBooks(ctx context.Context, books []Book) {
	s.snap.Books = books
	s.persist(ctx, KeyBooks, books)
	s.refreshRewards()
}

// --- Trips ---

// AddTrip records a journey. Returns false on an empty country.
func (s *Service) AddTrip(ctx context.Context, trip Trip) (Trip, bool) {
	if trip.Country == "" {
		return Trip{}, false
	}
	trip.ID = newID()
	if trip.Status == "" {
		trip.Status = TripToOrganize
	}
	if trip.Motive == "" {
		trip.Motive = MotiveVacation
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveTrips(ctx, append([]Trip{trip}, s.snap.Trips...))
	return trip, true
}

// UpdateTrip applies a partial update to a trip by id.
func (s *Service) UpdateTrip(ctx context.Context, id string, upd TripUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]Trip, len(s.snap.Trips))
	copy(next, s.snap.Trips)
	for i := range next {
		if next[i].ID != id {
			continue
		}
		t := &next[i]
		if upd.Country != nil {
			t.Country = *upd.Country
		}
		if upd.CountryCode != nil {
			t.CountryCode = *upd.CountryCode
		}
		if upd.FlagURL != nil {
			t.FlagURL = *upd.FlagURL
		}
		if upd.BgImageURL != nil {
			t.BgImageURL = *upd.BgImageURL
		}
		if upd.Status != nil {
			t.Status = *upd.Status
		}
		if upd.Motive != nil {
			t.Motive = *upd.Motive
		}
		if upd.Duration != nil {
			t.Duration = *upd.Duration
		}
		if upd.StartDate != nil {
			t.StartDate = *upd.StartDate
		}
		if upd.Comment != nil {
			t.Comment = *upd.Comment
		}
		if upd.Lat != nil {
			t.Lat = upd.Lat
		}
		if upd.Lng != nil {
			t.Lng = upd.Lng
		}
		s.saveTrips(ctx, next)
		return true
	}
	return false
}

// RemoveTrip deletes a trip by id.
func (s *Service) RemoveTrip(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]Trip, 0, len(s.snap.Trips))
	found := false
	for _, t := range s.snap.Trips {
		if t.ID == id {
			found = true
			continue
		}
		next = append(next, t)
	}
	if !found {
		return false
	}
	s.saveTrips(ctx, next)
	return true
}

func (s *Service) saveTrips(ctx context.Context, trips []Trip) {
	s.snap.Trips = trips
	s.persist(ctx, KeyTrips, trips)
	s.refreshRewards()
}

// --- Knowledge ---

// UpdateCertification edits one of the fixed certification slots.
func (s *Service) UpdateCertification(ctx context.Context, id string, upd CertificationUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]Certification, len(s.snap.Certifications))
	copy(next, s.snap.Certifications)
	for i := range next {
		if next[i].ID != id {
			continue
		}
		c := &next[i]
		if upd.Title != nil {
			c.Title = *upd.Title
		}
		if upd.Deadline != nil {
			c.Deadline = *upd.Deadline
		}
		if upd.Comment != nil {
			c.Comment = *upd.Comment
		}
		if upd.Status != nil {
			c.Status = *upd.Status
		}
		s.snap.Certifications = next
		s.persist(ctx, KeyCertifications, next)
		s.refreshRewards()
		return true
	}
	return false
}

// UpdateTraining edits one of the fixed training slots.
func (s *Service) UpdateTraining(ctx context.Context, id string, upd TrainingUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]Training, len(s.snap.Trainings))
	copy(next, s.snap.Trainings)
	for i := range next {
		if next[i].ID != id {
			continue
		}
		t := &next[i]
		if upd.Title != nil {
			t.Title = *upd.Title
		}
		if upd.Description != nil {
			t.Description = *upd.Description
		}
		if upd.PlatformURL != nil {
			t.PlatformURL = *upd.PlatformURL
		}
		if upd.StartDate != nil {
			t.StartDate = *upd.StartDate
		}
		if upd.EndDate != nil {
			t.EndDate = *upd.EndDate
		}
		if upd.Comment != nil {
			t.Comment = *upd.Comment
		}
		if upd.Status != nil {
			t.Status = *upd.Status
		}
		s.snap.Trainings = next
		s.persist(ctx, KeyTrainings, next)
		s.refreshRewards()
		return true
	}
	return false
}

// UpdateIoTProject edits one of the fixed project slots.
func (s *Service) UpdateIoTProject(ctx context.Context, id string, upd IoTProjectUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]IoTProject, len(s.snap.IoTProjects))
	copy(next, s.snap.IoTProjects)
	for i := range next {
		if next[i].ID != id {
			continue
		}
		p := &next[i]
		if upd.Title != nil {
			p.Title = *upd.Title
		}
		if upd.Description != nil {
			p.Description = *upd.Description
		}
		if upd.StartDate != nil {
			p.StartDate = *upd.StartDate
		}
		if upd.EndDate != nil {
			p.EndDate = *upd.EndDate
		}
		if upd.LinkURL != nil {
			p.LinkURL = *upd.LinkURL
		}
		s.snap.IoTProjects = next
		s.persist(ctx, KeyIoTProjects, next)
		s.refreshRewards()
		return true
	}
	return false
}

// AddActiveWatch logs a piece of consumed content. Returns false on an empty
// title.
func (s *Service) AddActiveWatch(ctx context.Context, w ActiveWatch) (ActiveWatch, bool) {
	if w.Title == "" {
		return ActiveWatch{}, false
	}
	w.ID = newID()
	if w.Type == "" {
		w.Type = WatchVideo
	}
	if w.Date == "" {
		w.Date = today()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	next := append([]ActiveWatch{w}, s.snap.ActiveWatches...)
	s.snap.ActiveWatches = next
	s.persist(ctx, KeyActiveWatches, next)
	return w, true
}

// RemoveActiveWatch deletes a logged content entry by id.
func (s *Service) RemoveActiveWatch(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]ActiveWatch, 0, len(s.snap.ActiveWatches))
	found := false
	for _, w := range s.snap.ActiveWatches {
		if w.ID == id {
			found = true
			continue
		}
		next = append(next, w)
	}
	if !found {
		return false
	}
	s.snap.ActiveWatches = next
	s.persist(ctx, KeyActiveWatches, next)
	return true
}

// --- Sport ---

// ToggleRun flips one run slot of one week.
func (s *Service) ToggleRun(ctx context.Context, week int, slot RunSlot) bool {
	if !slot.Valid() {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]WeeklyRun, len(s.snap.WeeklyRuns))
	copy(next, s.snap.WeeklyRuns)
	for i := range next {
		if next[i].Week == week {
			next[i] = next[i].ToggleSlot(slot)
			s.snap.WeeklyRuns = next
			s.persist(ctx, KeyWeeklyRuns, next)
			s.refreshRewards()
			return true
		}
	}
	return false
}

// AddGymSession logs a gym visit. Returns false on an empty title.
func (s *Service) AddGymSession(ctx context.Context, sess GymSession) (GymSession, bool) {
	if sess.Title == "" {
		return GymSession{}, false
	}
	sess.ID = newID()
	if sess.Type == "" {
		sess.Type = GymFree
	}
	if sess.Date == "" {
		sess.Date = today()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	next := append([]GymSession{sess}, s.snap.GymSessions...)
	s.snap.GymSessions = next
	s.persist(ctx, KeyGymSessions, next)
	return sess, true
}

// RemoveGymSession deletes a gym session by id.
func (s *Service) RemoveGymSession(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]GymSession, 0, len(s.snap.GymSessions))
	found := false
	for _, g := range s.snap.GymSessions {
		if g.ID == id {
			found = true
			continue
		}
		next = append(next, g)
	}
	if !found {
		return false
	}
	s.snap.GymSessions = next
	s.persist(ctx, KeyGymSessions, next)
	return true
}

// SetDarebeeURL stores the tracked workout program URL.
func (s *Service) SetDarebeeURL(ctx context.Context, url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.DarebeeURL = url
	s.persist(ctx, KeyDarebeeURL, url)
}

// --- Derived state ---

// Snapshot returns the current state. The slices are shared; treat the result
// as read-only.
func (s *Service) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Goals returns the goals of one category, in insertion order.
func (s *Service) Goals(cat Category) []Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Goal
	for _, g := range s.snap.Goals {
		if g.Category == cat {
			out = append(out, g)
		}
	}
	return out
}

// CategoryProgress returns the current completion percentage of one category.
func (s *Service) CategoryProgress(cat Category) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return CategoryProgress(cat, s.snap)
}

// GlobalProgress returns the current global completion percentage.
func (s *Service) GlobalProgress() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return GlobalProgress(s.snap)
}

// Rewards returns the catalog with current unlock states.
func (s *Service) Rewards() []Reward {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Reward, len(s.rewards))
	copy(out, s.rewards)
	return out
}

// UnlockedCount returns the number of currently unlocked rewards.
func (s *Service) UnlockedCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, r := range s.rewards {
		if r.Unlocked {
			n++
		}
	}
	return n
}

// --- Archives ---

// Export serializes the full snapshot as one indented JSON document.
func (s *Service) Export(ctx context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return json.MarshalIndent(s.snap, "", "  ")
}

// importDoc mirrors Snapshot with optional fields so a partial archive only
// touches the collections it names.
type importDoc struct {
	Goals          *[]Goal          `json:"goals"`
	Books          *[]Book          `json:"books"`
	Trips          *[]Trip          `json:"trips"`
	Certifications *[]Certification `json:"certifications"`
	Trainings      *[]Training      `json:"trainings"`
	IoTProjects    *[]IoTProject    `json:"iotProjects"`
	WeeklyRuns     *[]WeeklyRun     `json:"weeklyRuns"`
	GymSessions    *[]GymSession    `json:"gymSessions"`
	DarebeeURL     *string          `json:"darebeeUrl"`
	ActiveWatches  *[]ActiveWatch   `json:"activeWatches"`
}

// Import restores collections from an exported archive. Present keys replace
// the collection wholesale, absent keys are left untouched. The whole document
// is decoded before anything is committed: malformed input returns
// ErrCorruptImport and changes nothing.
func (s *Service) Import(ctx context.Context, data []byte) error {
	var doc importDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptImport, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if doc.Goals != nil {
		s.snap.Goals = *doc.Goals
		s.persist(ctx, KeyGoals, s.snap.Goals)
	}
	if doc.Books != nil {
		s.snap.Books = *doc.Books
		s.persist(ctx, KeyBooks, s.snap.Books)
	}
	if doc.Trips != nil {
		s.snap.Trips = *doc.Trips
		s.persist(ctx, KeyTrips, s.snap.Trips)
	}
	if doc.Certifications != nil {
		s.snap.Certifications = *doc.Certifications
		s.persist(ctx, KeyCertifications, s.snap.Certifications)
	}
	if doc.Trainings != nil {
		s.snap.Trainings = *doc.Trainings
		s.persist(ctx, KeyTrainings, s.snap.Trainings)
	}
	if doc.IoTProjects != nil {
		s.snap.IoTProjects = *doc.IoTProjects
		s.persist(ctx, KeyIoTProjects, s.snap.IoTProjects)
	}
	if doc.WeeklyRuns != nil {
		s.snap.WeeklyRuns = *doc.WeeklyRuns
		s.persist(ctx, KeyWeeklyRuns, s.snap.WeeklyRuns)
	}
	if doc.GymSessions != nil {
		s.snap.GymSessions = *doc.GymSessions
		s.persist(ctx, KeyGymSessions, s.snap.GymSessions)
	}
	if doc.DarebeeURL != nil {
		s.snap.DarebeeURL = *doc.DarebeeURL
		s.persist(ctx, KeyDarebeeURL, s.snap.DarebeeURL)
	}
	if doc.ActiveWatches != nil {
		s.snap.ActiveWatches = *doc.ActiveWatches
		s.persist(ctx, KeyActiveWatches, s.snap.ActiveWatches)
	}

	s.refreshRewards()
	return nil
}

// Reset wipes every persisted collection and restores the defaults, including
// a fresh goal seed.
func (s *Service) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range Keys() {
		if err := s.store.Delete(ctx, key); err != nil {
			return fmt.Errorf("failed to clear %s: %w", key, err)
		}
	}

	snap := DefaultSnapshot()
	if s.autoSeed {
		snap.Goals = SeedGoals()
		s.persist(ctx, KeyGoals, snap.Goals)
	}
	s.snap = snap
	s.refreshRewards()
	return nil
}

// Watch observes external changes in the store if supported.
func (s *Service) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	w, ok := s.store.(Watchable)
	if !ok {
		return nil, errors.New("store does not support watching")
	}
	return w.Watch(ctx, pattern)
}
