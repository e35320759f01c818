package core

// Reward is a cosmetic badge gated on a progress threshold. The catalog is
// static and never persisted; Unlocked is recomputed from the snapshot every
// time the underlying entities change.
type Reward struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Threshold   int      `json:"threshold"` // completion percentage 0-100
	Unlocked    bool     `json:"unlocked"`
	Icon        string   `json:"icon"`
	Category    Category `json:"category,omitempty"` // empty means global
}

// EvaluateRewards returns a copy of the catalog with Unlocked recomputed
// against the snapshot. Global badges compare the global progress, category
// badges the category progress. unlocked = progress >= threshold, with no
// hysteresis: a badge re-locks when progress regresses.
func EvaluateRewards(catalog []Reward, snap Snapshot) []Reward {
	global := GlobalProgress(snap)

	out := make([]Reward, len(catalog))
	for i, r := range catalog {
		progress := global
		if r.Category != "" {
			progress = CategoryProgress(r.Category, snap)
		}
		r.Unlocked = progress >= r.Threshold
		out[i] = r
	}
	return out
}

// DefaultRewards returns the static badge catalog of the dashboard.
func DefaultRewards() []Reward {
	return []Reward{
		// Global
		{ID: "g1", Title: "Scribe Royal", Description: "Atteindre 25% des objectifs annuels", Threshold: 25, Icon: "📜"},
		{ID: "g2", Title: "Grand Prêtre", Description: "Atteindre 50% des objectifs annuels", Threshold: 50, Icon: "⚖️"},
		{ID: "g3", Title: "Pharaon de l'Horizon", Description: "Atteindre 75% des objectifs annuels", Threshold: 75, Icon: "👑"},
		{ID: "g4", Title: "Divinité de l'Akhet", Description: "Réussir tous les objectifs 2026", Threshold: 100, Icon: "🌅"},

		// Finance
		{ID: "f1", Category: CategoryFinance, Title: "Porteur d'Offrandes", Description: "33% des objectifs financiers", Threshold: 33, Icon: "🏺"},
		{ID: "f2", Category: CategoryFinance, Title: "Scribe du Trésor", Description: "66% des objectifs financiers", Threshold: 66, Icon: "💎"},
		{ID: "f3", Category: CategoryFinance, Title: "Grand Argentier", Description: "100% des objectifs financiers", Threshold: 100, Icon: "💰"},

		// Santé
		{ID: "h1", Category: CategorySante, Title: "Herboriste du Palais", Description: "33% des objectifs santé", Threshold: 33, Icon: "🌿"},
		{ID: "h2", Category: CategorySante, Title: "Prêtre de Sekhmet", Description: "66% des objectifs santé", Threshold: 66, Icon: "🦁"},
		{ID: "h3", Category: CategorySante, Title: "Élu d'Imhotep", Description: "100% des objectifs santé", Threshold: 100, Icon: "⚕️"},

		// Sport
		{ID: "s1", Category: CategorySport, Title: "Archer Royal", Description: "33% des objectifs sportifs", Threshold: 33, Icon: "🏹"},
		{ID: "s2", Category: CategorySport, Title: "Guerrier de Koush", Description: "66% des objectifs sportifs", Threshold: 66, Icon: "🛡️"},
		{ID: "s3", Category: CategorySport, Title: "Hercule de l'Oasis", Description: "100% des objectifs sportifs", Threshold: 100, Icon: "🦁"},

		// Lecture (scored against the 12-book target)
		{ID: "l1", Category: CategoryLecture, Title: "Apprenti Scribe", Description: "4 livres lus", Threshold: 33, Icon: "📝"},
		{ID: "l2", Category: CategoryLecture, Title: "Liseur de Papyrus", Description: "8 livres lus", Threshold: 66, Icon: "📚"},
		{ID: "l3", Category: CategoryLecture, Title: "Thot l'Érudit", Description: "12 livres lus", Threshold: 100, Icon: "🦉"},

		// Voyage (scored against the 4-trip target)
		{ID: "v1", Category: CategoryVoyage, Title: "Nomade du Nil", Description: "1 voyage effectué", Threshold: 25, Icon: "🛶"},
		{ID: "v2", Category: CategoryVoyage, Title: "Explorateur de Pount", Description: "2 voyages effectués", Threshold: 50, Icon: "🚢"},
		{ID: "v3", Category: CategoryVoyage, Title: "Maître des Terres", Description: "4 voyages effectués", Threshold: 100, Icon: "🌍"},
	}
}
