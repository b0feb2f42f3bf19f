package domain

import "strconv"

// ItemHash is the opaque key of an entry in the content database
type ItemHash uint32

func (h ItemHash) String() string {
	return strconv.FormatUint(uint64(h), 10)
}

// Category is the coarse grouping shown for an offered item
type Category string

const (
	CategoryWeapon Category = "weapon"
	CategoryArmor  Category = "armor"
)

// Item type codes used by the content database
const (
	ItemTypeArmor  = 2
	ItemTypeWeapon = 3
)

// ItemDefinition is the raw content-database record for one item.
// Pointer fields distinguish an absent field from an empty one.
type ItemDefinition struct {
	Hash                       ItemHash           `json:"hash"`
	DisplayProperties          *DisplayProperties `json:"displayProperties"`
	FlavorText                 *string            `json:"flavorText"`
	Screenshot                 *string            `json:"screenshot"`
	ItemTypeAndTierDisplayName *string            `json:"itemTypeAndTierDisplayName"`
	ItemType                   *int               `json:"itemType"`
}

// DisplayProperties holds the user-facing strings of a definition
type DisplayProperties struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

// Item is a display-ready offered item, built once per run
type Item struct {
	Hash             ItemHash `json:"hash"`
	Name             string   `json:"name"`
	FlavorText       string   `json:"flavor_text"`
	IconURL          string   `json:"icon_url"`
	TypeAndTierLabel string   `json:"type_and_tier"`
	ScreenshotURL    string   `json:"screenshot_url"`
	Category         Category `json:"category"`
}

// ItemResult is the outcome of resolving and formatting a single identifier.
// Exactly one of Definition/Item or Err is meaningful.
type ItemResult struct {
	Hash       ItemHash
	Definition *ItemDefinition
	Item       *Item
	Err        error
}

// Failed reports whether the identifier could not be turned into an Item
func (r ItemResult) Failed() bool {
	return r.Err != nil
}
