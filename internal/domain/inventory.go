package domain

// InventoryLine is a stack of one item code held by a character, not equipped.
// Count is always >= 1; a line that reaches zero is deleted.
type InventoryLine struct {
	CharacterID int64  `json:"character_id"`
	ItemCode    int    `json:"item_code"`
	Name        string `json:"name"`
	Count       int    `json:"count"`
}

// EquippedItem is a single worn instance of an item code.
// Stats holds the delta that was applied to the character when it was equipped.
type EquippedItem struct {
	ID          int64  `json:"equip_id"`
	CharacterID int64  `json:"character_id"`
	ItemCode    int    `json:"item_code"`
	Name        string `json:"name"`
	Stats       Stats  `json:"-"`
}

// LineItem is one {itemCode, count} entry of a buy or sell request
type LineItem struct {
	ItemCode int `json:"item_code"`
	Count    int `json:"count"`
}
