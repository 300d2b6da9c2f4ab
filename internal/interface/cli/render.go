package cli

import (
	"fmt"
	"io"

	"github.com/yanqian/unicafe/internal/domain/menu"
)

// Render writes a lookup result as terminal lines. Today-only results list
// the foods without a date header; full results print a header per menu
// followed by one tab-indented line per food.
func Render(w io.Writer, res menu.Result) error {
	if res.TodayOnly {
		for _, m := range res.Menus {
			for _, f := range m.Foods {
				if _, err := fmt.Fprintf(w, "%s\t%s\n", f.Price.Name.Symbol(), f.Name); err != nil {
					return err
				}
			}
		}
		return nil
	}

	for _, m := range res.Menus {
		if _, err := fmt.Fprintln(w, m.Date.String()); err != nil {
			return err
		}
		for _, f := range m.Foods {
			if _, err := fmt.Fprintf(w, "\t%s\t%s\n", f.Price.Name.Symbol(), f.Name); err != nil {
				return err
			}
		}
	}
	return nil
}

// RenderRestaurants writes one restaurant name per line.
func RenderRestaurants(w io.Writer, restaurants []menu.Restaurant) error {
	for _, r := range restaurants {
		if _, err := fmt.Fprintln(w, r.Name); err != nil {
			return err
		}
	}
	return nil
}
