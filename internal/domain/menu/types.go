package menu

// Restaurant is one entry of the restaurant listing.
type Restaurant struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Price wraps the price tier of a single food item.
type Price struct {
	Name PriceClass `json:"name"`
}

// Food is a dish on a menu.
type Food struct {
	Name  string `json:"name"`
	Price Price  `json:"price"`
}

// Menu lists the foods served on one date. A menu without foods means the
// restaurant published nothing for that day.
type Menu struct {
	Date  Date   `json:"date"`
	Foods []Food `json:"foods"`
}

// IsEmpty reports whether the menu has no foods.
func (m Menu) IsEmpty() bool {
	return len(m.Foods) == 0
}

// Request captures what the caller wants to look up.
type Request struct {
	Restaurant string
	Today      bool
}

// Result is the outcome of a successful lookup. With TodayOnly set, Menus
// holds exactly one non-empty menu dated today.
type Result struct {
	Restaurant Restaurant
	Menus      []Menu
	TodayOnly  bool
}
