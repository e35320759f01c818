package core

// BookStatus tracks a book through the reading pipeline.
type BookStatus string

const (
	BookToRead  BookStatus = "À lire"
	BookReading BookStatus = "En cours"
	BookRead    BookStatus = "Lu"
)

// Book is an entry on the annual reading shelf.
// Metadata usually comes from an oracle lookup (ISBN or free-text search)
// confirmed by the user.
type Book struct {
	ID       string     `json:"id"`
	ISBN     string     `json:"isbn"`
	Title    string     `json:"title"`
	Author   string     `json:"author"`
	CoverURL string     `json:"coverUrl"`
	Status   BookStatus `json:"status"`
	AddedAt  string     `json:"addedAt"`
}
