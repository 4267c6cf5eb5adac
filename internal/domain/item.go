package domain

// Item is a catalog definition. The engine treats it as read-only.
type Item struct {
	Code  int    `json:"item_code" db:"item_code"`
	Name  string `json:"name" db:"name"`
	Price int    `json:"price" db:"price"`
	Stats Stats  `json:"stats" db:"stats"`
}

// ItemSummary is the catalog listing shape (no stats)
type ItemSummary struct {
	Code  int    `json:"item_code"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// Summary drops the stat block
func (i *Item) Summary() ItemSummary {
	return ItemSummary{Code: i.Code, Name: i.Name, Price: i.Price}
}
