package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/vital/internal/analysis"
	"github.com/dmitrijs2005/vital/internal/models"
)

var errNoSession = errors.New("not signed in")

// Post walks the donor through the listing form. A photo is analyzed first
// so its suggestions become the defaults for title, description and quantity.
func (a *App) Post(ctx context.Context) error {
	user, ok := a.router.Session()
	if !ok {
		return errNoSession
	}

	d := a.draft
	if d.DonorName == "" {
		d.DonorName = user.Name
	}

	var err error
	if d.DonorName, err = GetTextWithDefault(a.reader, "Donor name", d.DonorName, a.out); err != nil {
		return err
	}
	if d.Contact, err = GetTextWithDefault(a.reader, "Contact", d.Contact, a.out); err != nil {
		return err
	}
	if d.Location, err = GetTextWithDefault(a.reader, "Pickup location", d.Location, a.out); err != nil {
		return err
	}

	path, err := getSimpleText(a.reader, "Photo path (Enter to keep the current photo)", a.out)
	if err != nil {
		return err
	}
	if path != "" {
		image, err := analysis.EncodeImageFile(path)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Analyzing photo...")
		var res models.FoodAnalysis
		d, res = a.donor.AttachImage(ctx, d, image)
		fmt.Fprintf(a.out, "Looks like %s (%s), about %s.\n", res.Title, res.Category, res.QuantityEstimate)
	}

	if d.Title, err = GetTextWithDefault(a.reader, "Title", d.Title, a.out); err != nil {
		return err
	}
	if d.Description, err = GetTextWithDefault(a.reader, "Description", d.Description, a.out); err != nil {
		return err
	}
	if d.Quantity, err = GetTextWithDefault(a.reader, "Quantity", d.Quantity, a.out); err != nil {
		return err
	}

	item, next, err := a.donor.Post(ctx, user, d)
	a.draft = next
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Posted %q [%s].\n", item.Title, item.ID)
	return nil
}

func (a *App) List(ctx context.Context) error {
	user, ok := a.router.Session()
	if !ok {
		return errNoSession
	}

	var (
		items []models.FoodItem
		err   error
	)
	if user.Role == models.RoleReceiver {
		items, err = a.receiver.Items(ctx)
	} else {
		items, err = a.donor.Items(ctx)
	}
	if err != nil {
		return err
	}
	printItems(a.out, items)
	return nil
}

func (a *App) Search(ctx context.Context, term string) error {
	items, err := a.receiver.Search(ctx, term)
	if err != nil {
		return err
	}
	printItems(a.out, items)
	return nil
}

func (a *App) Request(ctx context.Context) error {
	user, ok := a.router.Session()
	if !ok {
		return errNoSession
	}

	item, err := getSimpleText(a.reader, "What do you need?", a.out)
	if err != nil {
		return err
	}
	quantity, err := getSimpleText(a.reader, "Quantity", a.out)
	if err != nil {
		return err
	}
	contact, err := getSimpleText(a.reader, "Contact (optional)", a.out)
	if err != nil {
		return err
	}

	_, err = a.receiver.Request(ctx, user, item, quantity, contact)
	return err
}

func (a *App) Apply(ctx context.Context, id string) error {
	id, err := a.itemID(id)
	if err != nil {
		return err
	}
	_, err = a.receiver.Apply(ctx, id)
	return err
}

func (a *App) Map(ctx context.Context, id string) error {
	id, err := a.itemID(id)
	if err != nil {
		return err
	}
	item, err := a.receiver.Item(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, a.receiver.MapURL(item))
	return nil
}

func (a *App) itemID(id string) (string, error) {
	if id != "" {
		return id, nil
	}
	return getSimpleText(a.reader, "Item id", a.out)
}

func printItems(w io.Writer, items []models.FoodItem) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No food items found.")
		return
	}
	for _, it := range items {
		fmt.Fprintf(w, "[%s] %s - %s (%s)\n", it.ID, it.Title, it.Quantity, it.Status)
		fmt.Fprintf(w, "    %s\n", it.Description)
		fmt.Fprintf(w, "    %s | %s, %s | %s\n",
			it.Location, it.DonorName, it.Contact,
			time.UnixMilli(it.CreatedAt).Format("2006-01-02 15:04"))
	}
}
