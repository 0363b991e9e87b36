package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/vital/internal/common"
	"github.com/dmitrijs2005/vital/internal/logging"
	"github.com/dmitrijs2005/vital/internal/models"
	"github.com/dmitrijs2005/vital/internal/repositories/catalog"
)

const (
	RequestBroadcastMessage = "Your request has been broadcasted to nearby donors!"
	DefaultRequestContact   = "555-0000"

	mapsSearchURL = "https://www.google.com/maps/search/?api=1&query="
)

var ErrIncompleteRequest = fmt.Errorf("request %w", common.ErrIncomplete)

// ReceiverService defines the receiver dashboard. Applying for an item only
// notifies; it does not change the item's status.
type ReceiverService interface {
	Items(ctx context.Context) ([]models.FoodItem, error)
	Item(ctx context.Context, id string) (models.FoodItem, error)
	Search(ctx context.Context, term string) ([]models.FoodItem, error)
	Request(ctx context.Context, user models.User, item, quantity, contact string) (models.FoodRequest, error)
	Requests(ctx context.Context) ([]models.FoodRequest, error)
	Apply(ctx context.Context, id string) (models.FoodItem, error)
	MapURL(item models.FoodItem) string
}

type receiverService struct {
	repo    catalog.Repository
	alerter Alerter
	log     logging.Logger
}

func NewReceiverService(repo catalog.Repository, alerter Alerter, log logging.Logger) ReceiverService {
	if log == nil {
		log = logging.Nop()
	}
	return &receiverService{repo: repo, alerter: alerter, log: log}
}

func (s *receiverService) Items(ctx context.Context) ([]models.FoodItem, error) {
	return s.repo.Items(ctx)
}

func (s *receiverService) Item(ctx context.Context, id string) (models.FoodItem, error) {
	return s.repo.ItemByID(ctx, id)
}

func (s *receiverService) Search(ctx context.Context, term string) ([]models.FoodItem, error) {
	return s.repo.SearchItems(ctx, term)
}

func (s *receiverService) Request(ctx context.Context, user models.User, item, quantity, contact string) (models.FoodRequest, error) {
	if item == "" || quantity == "" {
		return models.FoodRequest{}, ErrIncompleteRequest
	}
	if contact == "" {
		contact = DefaultRequestContact
	}

	req, err := s.repo.CreateRequest(ctx, models.RequestDraft{
		ReceiverName:  user.Name,
		Contact:       contact,
		ItemRequested: item,
		Quantity:      quantity,
	})
	if err != nil {
		return models.FoodRequest{}, fmt.Errorf("create request: %w", err)
	}

	s.log.Info(ctx, "request broadcast", "id", req.ID, "receiver", req.ReceiverName)
	s.alerter.Alert(ctx, RequestBroadcastMessage)
	return req, nil
}

func (s *receiverService) Requests(ctx context.Context) ([]models.FoodRequest, error) {
	return s.repo.Requests(ctx)
}

func (s *receiverService) Apply(ctx context.Context, id string) (models.FoodItem, error) {
	item, err := s.repo.ItemByID(ctx, id)
	if err != nil {
		return models.FoodItem{}, err
	}

	s.alerter.Alert(ctx, fmt.Sprintf("Applied for %s. The donor (%s) has been notified.", item.Title, item.Contact))
	return item, nil
}

func (s *receiverService) MapURL(item models.FoodItem) string {
	return mapsSearchURL + strings.ReplaceAll(url.QueryEscape(item.Location), "+", "%20")
}
