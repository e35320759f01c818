package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/fberthelot/akhet"
	"github.com/fberthelot/akhet/pkg/core"
	"github.com/fberthelot/akhet/pkg/oracle"
)

var (
	bookAuthor string
	bookISBN   string
	bookSearch string
	bookJSON   bool
)

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Manage the reading list",
}

var bookListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the reading list",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()

		books := service.Snapshot().Books
		if bookJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(books); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		for _, b := range books {
			fmt.Printf("%-14s %-10s %s - %s\n", b.ID, b.Status, b.Title, b.Author)
		}
	},
}

var bookAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a book, by title, --isbn or --search",
	Long: `Add a book to the reading list. With --isbn or --search the book
details (title, author, cover) are resolved through the oracle; otherwise the
title argument is used as-is.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		service := openService()

		book := core.Book{Author: bookAuthor}
		if len(args) > 0 {
			book.Title = args[0]
		}

		if bookISBN != "" || bookSearch != "" {
			provider, err := akhet.NewOracle(ctx, slog.Default())
			if err != nil {
				fatal("Failed to reach the oracle", err)
			}

			var result oracle.BookResult
			if bookISBN != "" {
				result, err = provider.BookByISBN(ctx, bookISBN)
			} else {
				result, err = provider.BookByQuery(ctx, bookSearch)
			}
			if errors.Is(err, oracle.ErrNotFound) {
				fmt.Fprintln(os.Stderr, "Book not found")
				os.Exit(1)
			}
			if err != nil {
				fatal("Book lookup failed", err)
			}

			book.Title = result.Title
			book.Author = result.Author
			book.CoverURL = result.CoverURL
			book.ISBN = result.ISBN
		}

		created, ok := service.AddBook(ctx, book)
		if !ok {
			fmt.Fprintln(os.Stderr, "A title is required")
			os.Exit(1)
		}
		fmt.Printf("Book '%s' shelved (%s).\n", created.Title, created.ID)
	},
}

var bookStatusCmd = &cobra.Command{
	Use:   "status [id] [status]",
	Short: "Move a book through the pipeline (À lire, En cours, Lu)",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()

		if !service.SetBookStatus(context.Background(), args[0], core.BookStatus(args[1])) {
			fmt.Fprintf(os.Stderr, "No book with id %s\n", args[0])
			os.Exit(1)
		}
		fmt.Printf("Book %s is now '%s'.\n", args[0], args[1])
	},
}

var bookRemoveCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove a book from the list",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()

		if !service.RemoveBook(context.Background(), args[0]) {
			fmt.Fprintf(os.Stderr, "No book with id %s\n", args[0])
			os.Exit(1)
		}
		fmt.Printf("Book %s removed.\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(bookCmd)
	bookCmd.AddCommand(bookListCmd)
	bookCmd.AddCommand(bookAddCmd)
	bookCmd.AddCommand(bookStatusCmd)
	bookCmd.AddCommand(bookRemoveCmd)

	bookListCmd.Flags().BoolVar(&bookJSON, "json", false, "Output in JSON format")

	bookAddCmd.Flags().StringVarP(&bookAuthor, "author", "a", "", "Book author")
	bookAddCmd.Flags().StringVar(&bookISBN, "isbn", "", "Resolve the book from its ISBN")
	bookAddCmd.Flags().StringVar(&bookSearch, "search", "", "Resolve the book from a free-text search")
}
