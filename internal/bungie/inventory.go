package bungie

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/osse101/XurBot_Go/internal/domain"
	"github.com/osse101/XurBot_Go/internal/logger"
)

type vendorsResponse struct {
	Sales *struct {
		Data map[string]vendorSales `json:"data"`
	} `json:"sales"`
}

type vendorSales struct {
	SaleItems json.RawMessage `json:"saleItems"`
}

type saleItem struct {
	ItemHash *domain.ItemHash `json:"itemHash"`
}

// VendorSales returns the hashes the vendor currently offers, in the order the
// platform lists them, without denylisted or repeated hashes.
func (c *Client) VendorSales(ctx context.Context) ([]domain.ItemHash, error) {
	raw, err := c.get(ctx, EndpointVendorSales, c.cfg.VendorURL)
	if err != nil {
		return nil, err
	}

	all, err := parseSaleHashes(raw, c.cfg.VendorHash)
	if err != nil {
		return nil, err
	}

	hashes := c.filter(ctx, all)
	logger.FromContext(ctx).Info(LogMsgSalesResolved, "offered", len(all), "kept", len(hashes))
	return hashes, nil
}

func parseSaleHashes(raw json.RawMessage, vendorHash uint32) ([]domain.ItemHash, error) {
	var resp vendorsResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode vendor sales: %w", err)
	}
	if resp.Sales == nil || resp.Sales.Data == nil {
		return nil, fmt.Errorf("%w: vendor sales.data", domain.ErrMissingField)
	}

	key := strconv.FormatUint(uint64(vendorHash), 10)
	vendor, ok := resp.Sales.Data[key]
	if !ok {
		return nil, fmt.Errorf("%w: vendor %s in sales.data", domain.ErrMissingField, key)
	}
	if len(vendor.SaleItems) == 0 || string(vendor.SaleItems) == "null" {
		return nil, fmt.Errorf("%w: vendor %s saleItems", domain.ErrMissingField, key)
	}

	var hashes []domain.ItemHash
	err := walkObject(vendor.SaleItems, func(slot string, value json.RawMessage) error {
		var item saleItem
		if err := json.Unmarshal(value, &item); err != nil {
			return fmt.Errorf("failed to decode sale slot %s: %w", slot, err)
		}
		if item.ItemHash == nil {
			return fmt.Errorf("%w: itemHash in sale slot %s", domain.ErrMissingField, slot)
		}
		hashes = append(hashes, *item.ItemHash)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return hashes, nil
}

// filter drops denylisted hashes and keeps the first occurrence of each hash
func (c *Client) filter(ctx context.Context, hashes []domain.ItemHash) []domain.ItemHash {
	log := logger.FromContext(ctx)
	seen := make(map[domain.ItemHash]struct{}, len(hashes))
	kept := make([]domain.ItemHash, 0, len(hashes))

	for _, h := range hashes {
		if _, banned := c.denylist[h]; banned {
			log.Debug(LogMsgDenylistedHash, "hash", h)
			continue
		}
		if _, dup := seen[h]; dup {
			log.Debug(LogMsgDuplicateHash, "hash", h)
			continue
		}
		seen[h] = struct{}{}
		kept = append(kept, h)
	}
	return kept
}

// walkObject visits the members of a JSON object in document order.
// encoding/json maps discard key order, so the object is tokenised instead.
func walkObject(raw json.RawMessage, fn func(key string, value json.RawMessage) error) error {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to read saleItems: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("%w: saleItems is not an object", domain.ErrMissingField)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to read saleItems key: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected saleItems token %v", tok)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("failed to read sale slot %s: %w", key, err)
		}
		if err := fn(key, value); err != nil {
			return err
		}
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("failed to close saleItems: %w", err)
	}
	return nil
}
