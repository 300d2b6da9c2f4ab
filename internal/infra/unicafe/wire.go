package unicafe

import (
	"fmt"

	"github.com/yanqian/unicafe/internal/domain/menu"
)

type envelope[T any] struct {
	Status *string `json:"status"`
	Data   *T      `json:"data"`
}

type restaurantWire struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name"`
}

type menuWire struct {
	DateText *string     `json:"date_text"`
	Data     *[]foodWire `json:"data"`
}

type foodWire struct {
	Name  *string    `json:"name"`
	Price *priceWire `json:"price"`
}

// Name decodes through menu.PriceClass.UnmarshalText, so unknown tiers fail
// inside json.Unmarshal.
type priceWire struct {
	Name *menu.PriceClass `json:"name"`
}

func toRestaurants(raw []restaurantWire) ([]menu.Restaurant, error) {
	out := make([]menu.Restaurant, 0, len(raw))
	for i, r := range raw {
		if r.ID == nil {
			return nil, fmt.Errorf("restaurant %d: %w", i, missingField("id"))
		}
		if r.Name == nil {
			return nil, fmt.Errorf("restaurant %d: %w", i, missingField("name"))
		}
		out = append(out, menu.Restaurant{ID: *r.ID, Name: *r.Name})
	}
	return out, nil
}

func toMenus(raw []menuWire, today menu.Date) ([]menu.Menu, error) {
	out := make([]menu.Menu, 0, len(raw))
	for i, m := range raw {
		if m.DateText == nil {
			return nil, fmt.Errorf("menu %d: %w", i, missingField("date_text"))
		}
		if m.Data == nil {
			return nil, fmt.Errorf("menu %d: %w", i, missingField("data"))
		}
		date, err := menu.ParseDate(*m.DateText, today)
		if err != nil {
			return nil, fmt.Errorf("menu %d date %q: %w", i, *m.DateText, err)
		}
		foods, err := toFoods(*m.Data)
		if err != nil {
			return nil, fmt.Errorf("menu %d: %w", i, err)
		}
		out = append(out, menu.Menu{Date: date, Foods: foods})
	}
	return out, nil
}

func toFoods(raw []foodWire) ([]menu.Food, error) {
	out := make([]menu.Food, 0, len(raw))
	for i, f := range raw {
		if f.Name == nil {
			return nil, fmt.Errorf("food %d: %w", i, missingField("name"))
		}
		if f.Price == nil {
			return nil, fmt.Errorf("food %d: %w", i, missingField("price"))
		}
		if f.Price.Name == nil {
			return nil, fmt.Errorf("food %d price: %w", i, missingField("name"))
		}
		out = append(out, menu.Food{Name: *f.Name, Price: menu.Price{Name: *f.Price.Name}})
	}
	return out, nil
}
