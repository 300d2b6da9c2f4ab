package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/unicafe/internal/domain/menu"
	"github.com/yanqian/unicafe/pkg/metrics"
)

// UsageReporter exposes upstream API call counters.
type UsageReporter interface {
	Usage() metrics.UsageSnapshot
}

// Handler wires the HTTP transport to the menu service.
type Handler struct {
	svc    menu.Service
	usage  UsageReporter
	logger *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(svc menu.Service, usage UsageReporter, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		usage:  usage,
		logger: logger.With("component", "http.handler"),
	}
}

type menusQuery struct {
	Today bool `form:"today"`
}

type menusResponse struct {
	Restaurant menu.Restaurant `json:"restaurant"`
	TodayOnly  bool            `json:"todayOnly"`
	Menus      []menuView      `json:"menus"`
}

type menuView struct {
	Date  menu.Date  `json:"date"`
	Label string     `json:"label"`
	Foods []foodView `json:"foods"`
}

type foodView struct {
	Name   string          `json:"name"`
	Price  menu.PriceClass `json:"price"`
	Symbol string          `json:"symbol"`
}

// Health reports liveness along with upstream call counters.
func (h *Handler) Health(c *gin.Context) {
	body := gin.H{"status": "ok"}
	if h.usage != nil {
		body["upstream"] = h.usage.Usage()
	}
	c.JSON(http.StatusOK, body)
}

// ListRestaurants returns the restaurant listing in API order.
func (h *Handler) ListRestaurants(c *gin.Context) {
	restaurants, err := h.svc.Restaurants(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurants": restaurants})
}

// Menus returns the menus of the restaurant named in the path.
func (h *Handler) Menus(c *gin.Context) {
	var q menusQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", err.Error(), err))
		return
	}

	res, err := h.svc.Lookup(c.Request.Context(), menu.Request{Restaurant: c.Param("name"), Today: q.Today})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, toMenusResponse(res))
}

func toMenusResponse(res menu.Result) menusResponse {
	menus := make([]menuView, 0, len(res.Menus))
	for _, m := range res.Menus {
		foods := make([]foodView, 0, len(m.Foods))
		for _, f := range m.Foods {
			foods = append(foods, foodView{Name: f.Name, Price: f.Price.Name, Symbol: f.Price.Name.Symbol()})
		}
		menus = append(menus, menuView{Date: m.Date, Label: m.Date.String(), Foods: foods})
	}
	return menusResponse{
		Restaurant: res.Restaurant,
		TodayOnly:  res.TodayOnly,
		Menus:      menus,
	}
}
