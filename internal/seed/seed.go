// Package seed loads the initial shop catalog from a JSON file.
package seed

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/SergeyBogomolovv/boba-order-service/internal/entities"
)

type shopRecord struct {
	ID int `json:"id" validate:"required,gt=0"`
	entities.ShopInput
	CreatedAt     *time.Time `json:"createdAt"`
	LastUpdatedAt *time.Time `json:"lastUpdatedAt"`
}

// LoadShops reads a JSON array of shops. An empty path yields an empty
// catalog. Missing timestamps default to now.
func LoadShops(path string, now time.Time) ([]entities.Shop, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseShops(data, now)
}

func ParseShops(data []byte, now time.Time) ([]entities.Shop, error) {
	var records []shopRecord
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("decode seed shops: %w", err)
	}

	validate := entities.NewValidator()
	shops := make([]entities.Shop, 0, len(records))
	for i, rec := range records {
		if err := validate.Struct(rec); err != nil {
			return nil, fmt.Errorf("seed shop #%d: %w: %w", i, entities.ErrInvalidInput, err)
		}

		shop := entities.Shop{
			ID:             rec.ID,
			Name:           rec.Name,
			Position:       rec.ShopPosition(),
			WhatsappNumber: rec.WhatsappNumber.Value,
			Menu:           rec.MenuItems(),
			CreatedAt:      now,
			LastUpdatedAt:  now,
		}
		if rec.CreatedAt != nil {
			shop.CreatedAt = *rec.CreatedAt
			shop.LastUpdatedAt = *rec.CreatedAt
		}
		if rec.LastUpdatedAt != nil {
			shop.LastUpdatedAt = *rec.LastUpdatedAt
		}
		shops = append(shops, shop)
	}
	return shops, nil
}
