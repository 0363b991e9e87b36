package catalog

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/vital/internal/models"
	"github.com/google/uuid"
)

// MemoryRepository implements Repository over two slices guarded by a mutex.
type MemoryRepository struct {
	mu       sync.RWMutex
	items    []models.FoodItem
	requests []models.FoodRequest
	now      func() time.Time
	newID    func() (string, error)
}

type Option func(*MemoryRepository)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(r *MemoryRepository) { r.now = now }
}

// WithIDs overrides the id source.
func WithIDs(newID func() (string, error)) Option {
	return func(r *MemoryRepository) { r.newID = newID }
}

// WithSeed pre-populates the store with the two sample listings.
func WithSeed() Option {
	return func(r *MemoryRepository) {
		r.items = append(r.items, seedItems(r.now())...)
	}
}

func NewMemoryRepository(opts ...Option) *MemoryRepository {
	r := &MemoryRepository{
		now:   time.Now,
		newID: newUUIDv7,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func newUUIDv7() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func (r *MemoryRepository) CreateItem(ctx context.Context, draft models.ItemDraft) (models.FoodItem, error) {
	if err := ctx.Err(); err != nil {
		return models.FoodItem{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id, err := r.newID()
	if err != nil {
		return models.FoodItem{}, fmt.Errorf("generate item id: %w", err)
	}

	item := models.FoodItem{
		ID:          id,
		DonorName:   draft.DonorName,
		Contact:     draft.Contact,
		Image:       draft.Image,
		Title:       draft.Title,
		Description: draft.Description,
		Quantity:    draft.Quantity,
		Location:    draft.Location,
		Coords:      draft.Coords,
		Status:      models.ItemAvailable,
		CreatedAt:   r.now().UnixMilli(),
	}.Clone()
	r.items = slices.Insert(r.items, 0, item)
	return item.Clone(), nil
}

func (r *MemoryRepository) CreateRequest(ctx context.Context, draft models.RequestDraft) (models.FoodRequest, error) {
	if err := ctx.Err(); err != nil {
		return models.FoodRequest{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id, err := r.newID()
	if err != nil {
		return models.FoodRequest{}, fmt.Errorf("generate request id: %w", err)
	}

	req := models.FoodRequest{
		ID:            id,
		ReceiverName:  draft.ReceiverName,
		Contact:       draft.Contact,
		ItemRequested: draft.ItemRequested,
		Quantity:      draft.Quantity,
		Status:        models.RequestPending,
		CreatedAt:     r.now().UnixMilli(),
	}
	r.requests = slices.Insert(r.requests, 0, req)
	return req, nil
}

func (r *MemoryRepository) Items(ctx context.Context) ([]models.FoodItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneItems(r.items), nil
}

func (r *MemoryRepository) Requests(ctx context.Context) ([]models.FoodRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.requests), nil
}

func (r *MemoryRepository) ItemByID(ctx context.Context, id string) (models.FoodItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.FoodItem{}, ErrNotFound
	}
	return r.items[i].Clone(), nil
}

func (r *MemoryRepository) SearchItems(ctx context.Context, term string) ([]models.FoodItem, error) {
	needle := strings.ToLower(term)

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.FoodItem, 0, len(r.items))
	for _, it := range r.items {
		if strings.Contains(strings.ToLower(it.Title), needle) ||
			strings.Contains(strings.ToLower(it.Location), needle) ||
			strings.Contains(strings.ToLower(it.Description), needle) {
			out = append(out, it.Clone())
		}
	}
	return out, nil
}

func (r *MemoryRepository) ClaimItem(ctx context.Context, id string) (models.FoodItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.FoodItem{}, ErrNotFound
	}
	if r.items[i].Status != models.ItemAvailable {
		return models.FoodItem{}, ErrAlreadyClaimed
	}
	r.items[i].Status = models.ItemClaimed
	return r.items[i].Clone(), nil
}

// cloneItems deep-copies items.
func cloneItems(items []models.FoodItem) []models.FoodItem {
	out := make([]models.FoodItem, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}

// indexOf must be called with the lock held.
func (r *MemoryRepository) indexOf(id string) int {
	return slices.IndexFunc(r.items, func(it models.FoodItem) bool { return it.ID == id })
}
