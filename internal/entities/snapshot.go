package entities

import "time"

// Snapshot meta keys
const (
	MetaContract = "contract"
	MetaBlock    = "block"
	MetaCached   = "cached"
)

// CharacterSnapshot is a display character captured for one owner at a
// point in time
type CharacterSnapshot struct {
	ID        string     `json:"id"`
	Owner     string     `json:"owner"`
	Character *Character `json:"character"`
	Meta      Properties `json:"meta,omitempty"`
	FetchedAt time.Time  `json:"fetchedAt"`
}
