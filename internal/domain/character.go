package domain

import "time"

// Character is a player-owned persona holding currency and stats
type Character struct {
	ID        int64     `json:"character_id"`
	AccountID int64     `json:"account_id"`
	Name      string    `json:"name"`
	Money     int       `json:"money"`
	Stats     Stats     `json:"stats"`
	CreatedAt time.Time `json:"created_at"`
}

// IsOwnedBy reports whether the character belongs to the given account
func (c *Character) IsOwnedBy(accountID int64) bool {
	return c.AccountID == accountID
}

// CharacterView is what a caller is allowed to see of a character.
// Money is only populated for the owner.
type CharacterView struct {
	ID    int64  `json:"character_id"`
	Name  string `json:"name"`
	Stats Stats  `json:"stats"`
	Money *int   `json:"money,omitempty"`
}

// ViewFor builds the view of c visible to callerAccountID
func (c *Character) ViewFor(callerAccountID int64) CharacterView {
	view := CharacterView{
		ID:    c.ID,
		Name:  c.Name,
		Stats: c.Stats.Clone(),
	}
	if c.IsOwnedBy(callerAccountID) {
		money := c.Money
		view.Money = &money
	}
	return view
}
