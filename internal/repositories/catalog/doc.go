// Package catalog provides the in-memory store of donation items and receiver
// requests.
//
// # Ordering
//
// Both collections are kept newest first. The store assigns the id (UUIDv7)
// and the creation timestamp under the same lock as the insert, so the order
// is always insertion order and concurrent creates are all retained.
//
// # Lifecycle
//
// Records are never deleted. The only mutation after creation is the item
// status transition available -> claimed (ClaimItem).
//
// Typical Usage
//
//	repo := catalog.NewMemoryRepository(catalog.WithSeed())
//	item, _ := repo.CreateItem(ctx, draft)
//	list, _ := repo.Items(ctx)
//	hits, _ := repo.SearchItems(ctx, "bread")
package catalog
