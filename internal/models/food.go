package models

// ItemStatus is the lifecycle state of a FoodItem.
type ItemStatus string

const (
	ItemAvailable ItemStatus = "available"
	ItemClaimed   ItemStatus = "claimed"
)

// RequestStatus is the lifecycle state of a FoodRequest.
type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestFulfilled RequestStatus = "fulfilled"
)

// Coords is an optional geographic position.
type Coords struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// FoodItem is a donation listed by a donor. ID and CreatedAt never change once
// assigned; CreatedAt is in Unix milliseconds.
type FoodItem struct {
	ID          string     `json:"id"`
	DonorName   string     `json:"donorName"`
	Contact     string     `json:"contact"`
	Image       string     `json:"image"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Quantity    string     `json:"quantity"`
	Location    string     `json:"location"`
	Coords      *Coords    `json:"coords,omitempty"`
	Status      ItemStatus `json:"status"`
	CreatedAt   int64      `json:"timestamp"`
}

// Clone returns a copy that shares no memory with it.
func (it FoodItem) Clone() FoodItem {
	if it.Coords != nil {
		c := *it.Coords
		it.Coords = &c
	}
	return it
}

// FoodRequest is a receiver's broadcast for food. It does not reference any
// FoodItem.
type FoodRequest struct {
	ID            string        `json:"id"`
	ReceiverName  string        `json:"receiverName"`
	Contact       string        `json:"contact"`
	ItemRequested string        `json:"itemRequested"`
	Quantity      string        `json:"quantity"`
	Status        RequestStatus `json:"status"`
	CreatedAt     int64         `json:"timestamp"`
}

// ItemDraft is the donor's in-progress listing.
type ItemDraft struct {
	DonorName   string
	Contact     string
	Location    string
	Coords      *Coords
	Title       string
	Description string
	Quantity    string
	Image       string
}

// Complete reports whether every field required to post is filled in.
func (d ItemDraft) Complete() bool {
	for _, v := range []string{d.Image, d.Title, d.Description, d.Quantity, d.DonorName, d.Contact, d.Location} {
		if v == "" {
			return false
		}
	}
	return true
}

// Cleared keeps the donor identity fields and drops the listing contents.
func (d ItemDraft) Cleared() ItemDraft {
	return ItemDraft{
		DonorName: d.DonorName,
		Contact:   d.Contact,
		Location:  d.Location,
		Coords:    d.Coords,
	}
}

// RequestDraft is the receiver's request form.
type RequestDraft struct {
	ReceiverName  string
	Contact       string
	ItemRequested string
	Quantity      string
}
