package item

// Where display flavor text is read from. The two shipped variants of the
// formatter disagreed, so the choice is configuration.
type FlavorSource string

const (
	FlavorFromFlavorText  FlavorSource = "flavorText"
	FlavorFromDescription FlavorSource = "description"
)

// DefaultIconBaseURL prefixes relative icon and screenshot paths
const DefaultIconBaseURL = "https://www.bungie.net"

// LogMsgUnclassifiedItemType flags item types folded into armor
const LogMsgUnclassifiedItemType = "Item type is neither weapon nor armor, classifying as armor"
