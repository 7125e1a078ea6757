package entities

import (
	"slices"
	"time"
)

// Position is a [latitude, longitude] pair.
type Position [2]float64

func (p Position) Lat() float64 { return p[0] }
func (p Position) Lng() float64 { return p[1] }

type MenuItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Shop struct {
	ID             int        `json:"id"`
	Name           string     `json:"name"`
	Position       Position   `json:"position"`
	WhatsappNumber *string    `json:"whatsappNumber"`
	Menu           []MenuItem `json:"menu"`
	CreatedAt      time.Time  `json:"createdAt"`
	LastUpdatedAt  time.Time  `json:"lastUpdatedAt"`
}

func (s Shop) Clone() Shop {
	c := s
	c.Menu = slices.Clone(s.Menu)
	if c.Menu == nil {
		c.Menu = []MenuItem{}
	}
	if s.WhatsappNumber != nil {
		number := *s.WhatsappNumber
		c.WhatsappNumber = &number
	}
	return c
}

// ShopInput is the client supplied part of a shop, shared by create and replace.
type ShopInput struct {
	Name           string           `json:"name" validate:"required"`
	Position       []*float64       `json:"position" validate:"required,len=2,dive,required,notnan"`
	Menu           []MenuItemInput  `json:"menu" validate:"omitempty,dive"`
	WhatsappNumber Optional[string] `json:"whatsappNumber"`
}

type MenuItemInput struct {
	ID    string   `json:"id" validate:"required"`
	Name  string   `json:"name" validate:"required"`
	Price *float64 `json:"price" validate:"required,notnan"`
}

func (in ShopInput) MenuItems() []MenuItem {
	menu := make([]MenuItem, 0, len(in.Menu))
	for _, it := range in.Menu {
		menu = append(menu, MenuItem{ID: it.ID, Name: it.Name, Price: *it.Price})
	}
	return menu
}

func (in ShopInput) ShopPosition() Position {
	return Position{*in.Position[0], *in.Position[1]}
}
