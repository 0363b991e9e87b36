package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/vital/internal/analysis"
	"github.com/dmitrijs2005/vital/internal/common"
	"github.com/dmitrijs2005/vital/internal/models"
	"github.com/dmitrijs2005/vital/internal/repositories/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAnalyzer struct {
	res   models.FoodAnalysis
	calls []string
}

func (s *stubAnalyzer) Analyze(_ context.Context, image string) models.FoodAnalysis {
	s.calls = append(s.calls, image)
	return s.res
}

func TestAttachImage_MergesAnalysis(t *testing.T) {
	an := &stubAnalyzer{res: models.FoodAnalysis{
		Title: "Bagels", Description: "Everything bagels.", QuantityEstimate: "2 dozen", Category: "Bakery",
	}}
	svc := NewDonorService(catalog.NewMemoryRepository(), an, nil)

	in := models.ItemDraft{DonorName: "Acme", Contact: "555", Location: "Main St", Title: "typed"}
	out, a := svc.AttachImage(context.Background(), in, "data:image/png;base64,AA==")

	assert.Equal(t, []string{"data:image/png;base64,AA=="}, an.calls)
	assert.Equal(t, "Bakery", a.Category)
	assert.Equal(t, models.ItemDraft{
		DonorName: "Acme", Contact: "555", Location: "Main St",
		Title: "Bagels", Description: "Everything bagels.", Quantity: "2 dozen",
		Image: "data:image/png;base64,AA==",
	}, out)
}

func TestAttachImage_FallbackStillMerges(t *testing.T) {
	failing := analysis.ModelFunc(func(context.Context, analysis.Request) (string, error) {
		return "", errors.New("quota exceeded")
	})
	svc := NewDonorService(catalog.NewMemoryRepository(), analysis.NewClient(failing, 0, nil), nil)

	out, a := svc.AttachImage(context.Background(), models.ItemDraft{}, "data:image/png;base64,AA==")
	assert.Equal(t, analysis.Fallback, a)
	assert.Equal(t, "Unknown Item", out.Title)
	assert.Equal(t, "Unknown", out.Quantity)
}

func TestPost(t *testing.T) {
	repo := catalog.NewMemoryRepository()
	svc := NewDonorService(repo, &stubAnalyzer{}, nil)
	ctx := context.Background()
	user := models.User{Name: "Acme Kitchen", Role: models.RoleDonor}

	draft := models.ItemDraft{
		DonorName: "typed name", Contact: "555-1111", Location: "1 Main St",
		Title: "Soup", Description: "Hot", Quantity: "4 bowls", Image: "data:image/png;base64,AA==",
	}
	item, next, err := svc.Post(ctx, user, draft)
	require.NoError(t, err)

	assert.Equal(t, "Acme Kitchen", item.DonorName)
	assert.Equal(t, models.ItemAvailable, item.Status)
	assert.Equal(t, models.ItemDraft{DonorName: "Acme Kitchen", Contact: "555-1111", Location: "1 Main St"}, next)

	items, err := svc.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, item, items[0])
}

func TestPost_Incomplete(t *testing.T) {
	repo := catalog.NewMemoryRepository()
	svc := NewDonorService(repo, &stubAnalyzer{}, nil)

	draft := models.ItemDraft{Contact: "555", Location: "x", Title: "Soup", Description: "Hot", Quantity: "1"}
	_, back, err := svc.Post(context.Background(), models.User{Name: "Acme"}, draft)

	require.ErrorIs(t, err, ErrIncompleteDraft)
	require.ErrorIs(t, err, common.ErrIncomplete)
	assert.Equal(t, "Soup", back.Title, "draft is kept on failure")

	items, _ := repo.Items(context.Background())
	assert.Empty(t, items)
}
