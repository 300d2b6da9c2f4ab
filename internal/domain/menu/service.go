package menu

import (
	"context"
	"log/slog"
	"time"

	"github.com/yanqian/unicafe/pkg/util"
)

// Client is the menu API as seen by the domain.
type Client interface {
	Restaurants(ctx context.Context) ([]Restaurant, error)
	Menus(ctx context.Context, restaurantID int64) ([]Menu, error)
}

// Service exposes restaurant and menu lookups.
type Service interface {
	Lookup(ctx context.Context, req Request) (Result, error)
	Restaurants(ctx context.Context) ([]Restaurant, error)
}

type service struct {
	client Client
	logger *slog.Logger
	now    func() time.Time
}

// NewService wires up the menu domain.
func NewService(client Client, logger *slog.Logger) Service {
	return NewServiceWithClock(client, logger, util.NowUTC)
}

// NewServiceWithClock is NewService with a fixed source of "now".
func NewServiceWithClock(client Client, logger *slog.Logger, now func() time.Time) Service {
	return &service{
		client: client,
		logger: logger.With("component", "menu.service"),
		now:    util.Clock(now),
	}
}

// Lookup resolves req.Restaurant and fetches its menus. The menus endpoint is
// only called once the name has resolved to an id.
func (s *service) Lookup(ctx context.Context, req Request) (Result, error) {
	restaurants, err := s.client.Restaurants(ctx)
	if err != nil {
		return Result{}, asAPIError(err)
	}

	id, ok := ResolveID(restaurants, req.Restaurant)
	if !ok {
		return Result{}, NoSuchRestaurantError(req.Restaurant, Names(restaurants))
	}
	s.logger.Debug("restaurant resolved", "restaurant", req.Restaurant, "id", id)

	menus, err := s.client.Menus(ctx, id)
	if err != nil {
		return Result{}, asAPIError(err)
	}

	res := Result{
		Restaurant: Restaurant{ID: id, Name: req.Restaurant},
		Menus:      menus,
	}
	if !req.Today {
		return res, nil
	}

	today := DateOf(s.now())
	m, ok := TodaysMenu(menus, today)
	if !ok {
		s.logger.Debug("no menu for today", "restaurant", req.Restaurant, "date", today.String(), "menus", len(menus))
		return Result{}, NoFoodTodayError()
	}
	res.Menus = []Menu{m}
	res.TodayOnly = true
	return res, nil
}

// Restaurants returns the full listing in API order.
func (s *service) Restaurants(ctx context.Context) ([]Restaurant, error) {
	restaurants, err := s.client.Restaurants(ctx)
	if err != nil {
		return nil, asAPIError(err)
	}
	return restaurants, nil
}

// asAPIError keeps *Error values and files anything else (context
// cancellation from a custom Client, for example) under KindTransport.
func asAPIError(err error) error {
	if KindOf(err) != "" {
		return err
	}
	return TransportError(err)
}
