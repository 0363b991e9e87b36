package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/vital/internal/common"
	"github.com/dmitrijs2005/vital/internal/models"
)

var (
	ErrNotFound       = fmt.Errorf("item %w", common.ErrNotFound)
	ErrAlreadyClaimed = errors.New("item already claimed")
)

// Repository describes the operations dashboards perform on the catalog.
type Repository interface {
	// CreateItem stores a new available item built from the draft.
	CreateItem(ctx context.Context, draft models.ItemDraft) (models.FoodItem, error)

	// CreateRequest stores a new pending request.
	CreateRequest(ctx context.Context, draft models.RequestDraft) (models.FoodRequest, error)

	// Items returns all items, newest first.
	Items(ctx context.Context) ([]models.FoodItem, error)

	// Requests returns all requests, newest first.
	Requests(ctx context.Context) ([]models.FoodRequest, error)

	// ItemByID returns the item with the given id or ErrNotFound.
	ItemByID(ctx context.Context, id string) (models.FoodItem, error)

	// SearchItems returns items whose title, location or description contain
	// term, ignoring case. An empty term matches everything.
	SearchItems(ctx context.Context, term string) ([]models.FoodItem, error)

	// ClaimItem moves an available item to claimed.
	ClaimItem(ctx context.Context, id string) (models.FoodItem, error)
}
