// Package oracle provides the AI-assisted helpers of the dashboard: coaching
// advice over the yearly data, book lookup by ISBN or free text, ISBN
// extraction from cover photos, and country visuals for trip pins.
package oracle

import (
	"context"
	"errors"
)

// ErrNotFound is returned when the model could not identify the requested
// book or resource with certainty.
var ErrNotFound = errors.New("oracle: not found")

// BookResult is the structured answer of a book lookup.
type BookResult struct {
	Title    string `json:"title"`
	Author   string `json:"author"`
	CoverURL string `json:"coverUrl"`
	ISBN     string `json:"isbn"`
	Found    bool   `json:"found"`
}

// CountryVisuals carries the map decoration for a trip destination.
type CountryVisuals struct {
	Code     string  `json:"code"`
	ImageURL string  `json:"imageUrl"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
}

// Provider is the AI backend of the dashboard.
type Provider interface {
	// Advice analyses the exported yearly data and returns coaching text.
	Advice(ctx context.Context, data any) (string, error)

	// BookByISBN resolves a book from its ISBN. Returns ErrNotFound when the
	// model is not certain of the match.
	BookByISBN(ctx context.Context, isbn string) (BookResult, error)

	// BookByQuery resolves the best-matching book for a free-text search.
	BookByQuery(ctx context.Context, query string) (BookResult, error)

	// ISBNFromImage reads an ISBN-13 from a cover or back-cover photo.
	// Returns ErrNotFound when no ISBN is legible.
	ISBNFromImage(ctx context.Context, image []byte, mimeType string) (string, error)

	// Visuals returns the country code, an iconic image and the central
	// coordinates for a destination country.
	Visuals(ctx context.Context, country string) (CountryVisuals, error)
}
