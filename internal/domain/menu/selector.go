package menu

// ResolveID returns the id of the first restaurant named exactly name.
func ResolveID(restaurants []Restaurant, name string) (int64, bool) {
	for _, r := range restaurants {
		if r.Name == name {
			return r.ID, true
		}
	}
	return 0, false
}

// TodaysMenu returns the first menu dated today that lists at least one food.
func TodaysMenu(menus []Menu, today Date) (Menu, bool) {
	for _, m := range menus {
		if m.Date == today && !m.IsEmpty() {
			return m, true
		}
	}
	return Menu{}, false
}

// Names lists restaurant names in API order.
func Names(restaurants []Restaurant) []string {
	names := make([]string, 0, len(restaurants))
	for _, r := range restaurants {
		names = append(names, r.Name)
	}
	return names
}
