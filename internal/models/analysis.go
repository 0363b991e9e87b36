package models

// FoodAnalysis is the structured description returned by image analysis.
type FoodAnalysis struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	QuantityEstimate string `json:"quantityEstimation"`
	Category         string `json:"category"`
}

// MergeInto copies title, description and quantity into the draft. Category
// is informational only.
func (a FoodAnalysis) MergeInto(d *ItemDraft) {
	d.Title = a.Title
	d.Description = a.Description
	d.Quantity = a.QuantityEstimate
}
