package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/vital/internal/common"
	"github.com/dmitrijs2005/vital/internal/logging"
	"github.com/dmitrijs2005/vital/internal/models"
	"github.com/dmitrijs2005/vital/internal/repositories/catalog"
)

var ErrIncompleteDraft = fmt.Errorf("listing %w", common.ErrIncomplete)

// Analyzer describes a food photo. It never fails.
type Analyzer interface {
	Analyze(ctx context.Context, image string) models.FoodAnalysis
}

// DonorService defines the donor dashboard.
//
//   - AttachImage: set the draft image and fill title, description and
//     quantity from analysis.
//   - Post: publish a complete draft under the session name and return the
//     draft with the listing fields cleared.
//   - Items: the current catalog, newest first.
type DonorService interface {
	AttachImage(ctx context.Context, draft models.ItemDraft, image string) (models.ItemDraft, models.FoodAnalysis)
	Post(ctx context.Context, user models.User, draft models.ItemDraft) (models.FoodItem, models.ItemDraft, error)
	Items(ctx context.Context) ([]models.FoodItem, error)
}

type donorService struct {
	repo     catalog.Repository
	analyzer Analyzer
	log      logging.Logger
}

func NewDonorService(repo catalog.Repository, analyzer Analyzer, log logging.Logger) DonorService {
	if log == nil {
		log = logging.Nop()
	}
	return &donorService{repo: repo, analyzer: analyzer, log: log}
}

func (s *donorService) AttachImage(ctx context.Context, draft models.ItemDraft, image string) (models.ItemDraft, models.FoodAnalysis) {
	draft.Image = image
	a := s.analyzer.Analyze(ctx, image)
	a.MergeInto(&draft)
	s.log.Debug(ctx, "image analyzed", "title", a.Title, "category", a.Category)
	return draft, a
}

func (s *donorService) Post(ctx context.Context, user models.User, draft models.ItemDraft) (models.FoodItem, models.ItemDraft, error) {
	if user.Name != "" {
		draft.DonorName = user.Name
	}
	if !draft.Complete() {
		return models.FoodItem{}, draft, ErrIncompleteDraft
	}

	item, err := s.repo.CreateItem(ctx, draft)
	if err != nil {
		return models.FoodItem{}, draft, fmt.Errorf("create item: %w", err)
	}

	s.log.Info(ctx, "item posted", "id", item.ID, "donor", item.DonorName)
	return item, draft.Cleared(), nil
}

func (s *donorService) Items(ctx context.Context) ([]models.FoodItem, error) {
	return s.repo.Items(ctx)
}
