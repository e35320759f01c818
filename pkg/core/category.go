package core

// Category is one of the 7 fixed life-domains used to partition goals and rewards.
// Values are the French labels of the original dashboard and are part of the
// persisted schema.
type Category string

const (
	CategoryFinance      Category = "Finance"
	CategoryLecture      Category = "Lecture"
	CategoryVoyage       Category = "Voyage"
	CategoryConnaissance Category = "Connaissance"
	CategorySport        Category = "Sport"
	CategorySante        Category = "Santé"
	CategoryRappels      Category = "Rappels"
)

// Categories returns the fixed set, in display order.
func Categories() []Category {
	return []Category{
		CategoryFinance,
		CategoryLecture,
		CategoryVoyage,
		CategoryConnaissance,
		CategorySport,
		CategorySante,
		CategoryRappels,
	}
}

// Valid reports whether c is one of the 7 known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryFinance, CategoryLecture, CategoryVoyage, CategoryConnaissance,
		CategorySport, CategorySante, CategoryRappels:
		return true
	}
	return false
}
