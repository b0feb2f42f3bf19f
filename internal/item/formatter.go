package item

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/XurBot_Go/internal/domain"
	"github.com/osse101/XurBot_Go/internal/logger"
)

// Formatter maps raw definitions into display-ready items
type Formatter struct {
	iconBaseURL  string
	flavorSource FlavorSource
}

// NewFormatter creates a formatter. Empty arguments fall back to defaults.
func NewFormatter(iconBaseURL string, flavorSource FlavorSource) *Formatter {
	if iconBaseURL == "" {
		iconBaseURL = DefaultIconBaseURL
	}
	if flavorSource == "" {
		flavorSource = FlavorFromFlavorText
	}
	return &Formatter{
		iconBaseURL:  strings.TrimRight(iconBaseURL, "/"),
		flavorSource: flavorSource,
	}
}

// Format builds an Item from def. A missing field yields domain.ErrMissingField.
func (f *Formatter) Format(ctx context.Context, def domain.ItemDefinition) (domain.Item, error) {
	props := def.DisplayProperties
	if props == nil {
		return domain.Item{}, missing(def.Hash, "displayProperties")
	}
	if props.Name == nil {
		return domain.Item{}, missing(def.Hash, "displayProperties.name")
	}
	if props.Icon == nil {
		return domain.Item{}, missing(def.Hash, "displayProperties.icon")
	}
	if def.ItemTypeAndTierDisplayName == nil {
		return domain.Item{}, missing(def.Hash, "itemTypeAndTierDisplayName")
	}
	if def.Screenshot == nil {
		return domain.Item{}, missing(def.Hash, "screenshot")
	}
	if def.ItemType == nil {
		return domain.Item{}, missing(def.Hash, "itemType")
	}

	flavor, err := f.flavor(def)
	if err != nil {
		return domain.Item{}, err
	}

	return domain.Item{
		Hash:             def.Hash,
		Name:             *props.Name,
		FlavorText:       flavor,
		IconURL:          f.assetURL(*props.Icon),
		TypeAndTierLabel: *def.ItemTypeAndTierDisplayName,
		ScreenshotURL:    f.assetURL(*def.Screenshot),
		Category:         Classify(ctx, def.Hash, *def.ItemType),
	}, nil
}

func (f *Formatter) flavor(def domain.ItemDefinition) (string, error) {
	switch f.flavorSource {
	case FlavorFromDescription:
		if def.DisplayProperties.Description == nil {
			return "", missing(def.Hash, "displayProperties.description")
		}
		return *def.DisplayProperties.Description, nil
	default:
		if def.FlavorText == nil {
			return "", missing(def.Hash, "flavorText")
		}
		return *def.FlavorText, nil
	}
}

// assetURL joins the icon host and a relative path with exactly one slash
func (f *Formatter) assetURL(path string) string {
	return f.iconBaseURL + "/" + strings.TrimLeft(path, "/")
}

// Classify folds an item type code into a category.
// Only weapons are distinguished; anything else becomes armor.
func Classify(ctx context.Context, hash domain.ItemHash, itemType int) domain.Category {
	switch itemType {
	case domain.ItemTypeWeapon:
		return domain.CategoryWeapon
	case domain.ItemTypeArmor:
		return domain.CategoryArmor
	default:
		logger.FromContext(ctx).Warn(LogMsgUnclassifiedItemType, "hash", hash, "item_type", itemType)
		return domain.CategoryArmor
	}
}

func missing(hash domain.ItemHash, field string) error {
	return fmt.Errorf("%w: %s in definition %s", domain.ErrMissingField, field, hash)
}
