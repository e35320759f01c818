package akhet_test

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/fberthelot/akhet"
	"github.com/fberthelot/akhet/pkg/core"
)

// Example_basic demonstrates how to open a vault, add a book, and read the
// reading progress back.
func Example_basic() {
	// Create a temporary directory for the example
	tmpDir, err := os.MkdirTemp("", "akhet-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	// Initialize the dashboard over the temporary vault. An empty vault is
	// seeded with the yearly goal catalog.
	svc, err := akhet.New(tmpDir)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	// 1. Track some reading
	for i := 0; i < 6; i++ {
		book, _ := svc.AddBook(ctx, core.Book{
			Title:  fmt.Sprintf("Livre %d", i+1),
			Author: "Auteur",
		})
		svc.SetBookStatus(ctx, book.ID, core.BookRead)
	}

	// 2. Reading progress: 6 of the 12 yearly books
	fmt.Printf("Lecture: %d%%\n", svc.CategoryProgress(core.CategoryLecture))
	// Output:
	// Lecture: 50%
}
