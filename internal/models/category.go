package models

import "strings"

// Category groups suggested packing items under a display name. The taxonomy
// is fixed reference data used only to assist item creation; once an item is
// created its category and name are stored as plain strings with no link back
// to the taxonomy.
type Category struct {
	ID    string
	Name  string
	Items []SubItem
}

// SubItem is a suggested packing item within a category.
type SubItem struct {
	ID   string
	Name string
}

var Categories = []Category{
	{
		ID:   "1",
		Name: "Clothes",
		Items: []SubItem{
			{ID: "1-1", Name: "T-Shirts"},
			{ID: "1-2", Name: "Pants"},
			{ID: "1-3", Name: "Underwear"},
			{ID: "1-4", Name: "Socks"},
			{ID: "1-5", Name: "Jackets"},
			{ID: "1-6", Name: "Swimwear"},
		},
	},
	{
		ID:   "2",
		Name: "Documents",
		Items: []SubItem{
			{ID: "2-1", Name: "Passport"},
			{ID: "2-2", Name: "Visa"},
			{ID: "2-3", Name: "ID Card"},
			{ID: "2-4", Name: "Travel Insurance"},
			{ID: "2-5", Name: "Booking Confirmations"},
		},
	},
	{
		ID:   "3",
		Name: "Electronics",
		Items: []SubItem{
			{ID: "3-1", Name: "Phone"},
			{ID: "3-2", Name: "Charger"},
			{ID: "3-3", Name: "Power Bank"},
			{ID: "3-4", Name: "Camera"},
			{ID: "3-5", Name: "Laptop"},
			{ID: "3-6", Name: "Adapters"},
		},
	},
	{
		ID:   "4",
		Name: "Toiletries",
		Items: []SubItem{
			{ID: "4-1", Name: "Toothbrush"},
			{ID: "4-2", Name: "Toothpaste"},
			{ID: "4-3", Name: "Shampoo"},
			{ID: "4-4", Name: "Soap"},
			{ID: "4-5", Name: "Deodorant"},
		},
	},
}

// FindCategory looks up a category by display name, ignoring case.
func FindCategory(name string) (Category, bool) {
	for _, c := range Categories {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return Category{}, false
}
