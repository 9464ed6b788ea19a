package search

import (
	"fmt"

	"github.com/findora-hu/findora/app/feed"
)

// Document is the flattened product record pushed to the search index. IDs
// are prefixed with the partner slug so re-pushing a partner's catalog
// overwrites its previous documents instead of duplicating them.
type Document struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	Image        string `json:"img,omitempty"`
	URL          string `json:"url"`
	Price        *int   `json:"price"`
	OldPrice     *int   `json:"old_price,omitempty"`
	Discount     *int   `json:"discount,omitempty"`
	Partner      string `json:"partner"`
	PartnerName  string `json:"partner_name"`
	Category     string `json:"category"`
	Brand        string `json:"brand,omitempty"`
	CategoryPath string `json:"category_path,omitempty"`
}

// FromItem maps a catalog item to its search document. partnerName is the
// partner's display name from its configuration file.
func FromItem(it feed.Item, partnerName string) Document {
	return Document{
		ID:           fmt.Sprintf("%s-%s", it.Partner, it.ID),
		Title:        it.Title,
		Description:  it.Description,
		Image:        it.Image,
		URL:          it.URL,
		Price:        it.Price,
		OldPrice:     it.OldPrice,
		Discount:     it.Discount,
		Partner:      it.Partner,
		PartnerName:  partnerName,
		Category:     it.Category,
		Brand:        it.Brand,
		CategoryPath: it.CategoryPath,
	}
}
