// Package akhet is the Composition Root for the Akhet dashboard.
//
// It connects the core business logic (Domain Layer) with the infrastructure
// adapters (Persistence Layer) using the Hexagonal Architecture pattern.
//
// Philosophy:
//
// Akhet is a single-user annual goal dashboard that treats a directory of
// JSON documents as its database. Every collection (goals, books, trips,
// runs, ...) lives in one namespaced document inside a local "vault"; the
// core is storage-agnostic, allowing for future adapters.
//
// Features:
//
//   - **Hexagonal Architecture**: Core domain is isolated from persistence details.
//   - **Atomic Writes**: Documents are replaced via temp-file + rename, never truncated.
//   - **Seeded Catalog**: An empty vault is populated with the full yearly goal plan.
//   - **Progress & Rewards**: Per-category and global progress feed a badge catalog.
//   - **Reactive**: The vault can be watched for external document changes.
//   - **Typed Retrieval**: Generic binding (`NewCollection[T]`) for type-safe access.
//
// Usage:
//
//	// Initialize service with functional options
//	svc, err := akhet.New("~/.akhet",
//		akhet.WithLogger(logger),
//	)
//
//	// Toggle a goal and read progress
//	svc.ToggleGoal(ctx, "fin-per-3")
//	fmt.Println(svc.GlobalProgress())
package akhet
