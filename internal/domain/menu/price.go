package menu

import (
	"errors"
	"fmt"
)

// PriceClass is the closed set of price tiers used by the menu API.
type PriceClass string

const (
	PriceBistro      PriceClass = "Bistro"
	PriceMaukkaasti  PriceClass = "Maukkaasti"
	PriceEdullisesti PriceClass = "Edullisesti"
	PriceKeitto      PriceClass = "Keitto"
	PriceKevyesti    PriceClass = "Kevyesti"
	PriceMakeasti    PriceClass = "Makeasti"
)

var ErrUnknownPrice = errors.New("unknown price")

var priceClasses = map[string]PriceClass{
	string(PriceBistro):      PriceBistro,
	string(PriceMaukkaasti):  PriceMaukkaasti,
	string(PriceEdullisesti): PriceEdullisesti,
	string(PriceKeitto):      PriceKeitto,
	string(PriceKevyesti):    PriceKevyesti,
	string(PriceMakeasti):    PriceMakeasti,
}

// ParsePriceClass matches s exactly, case included, against the known tiers.
func ParsePriceClass(s string) (PriceClass, error) {
	if pc, ok := priceClasses[s]; ok {
		return pc, nil
	}
	return "", fmt.Errorf("%w %s", ErrUnknownPrice, s)
}

// Symbol maps the tier onto euro signs. Tiers without an explicit mapping get one.
func (p PriceClass) Symbol() string {
	switch p {
	case PriceBistro:
		return "€€€€"
	case PriceMaukkaasti:
		return "€€€"
	case PriceEdullisesti:
		return "€€"
	default:
		return "€"
	}
}

func (p PriceClass) String() string {
	return string(p)
}

// UnmarshalText lets encoding/json decode tiers through ParsePriceClass.
func (p *PriceClass) UnmarshalText(text []byte) error {
	pc, err := ParsePriceClass(string(text))
	if err != nil {
		return err
	}
	*p = pc
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (p PriceClass) MarshalText() ([]byte, error) {
	if _, err := ParsePriceClass(string(p)); err != nil {
		return nil, err
	}
	return []byte(p), nil
}
