package restauranthandler

import (
	"context"

	"fooddash/discovery-api/internal/domain/restaurant"
	"fooddash/discovery-api/internal/interfaces/httpserver/responses"
	"fooddash/discovery-api/internal/utils/platformerrors"
)

// RestaurantHandler bridges the HTTP routes onto the restaurant search service.
type RestaurantHandler struct {
	service *restaurant.Service
}

func NewRestaurantHandler(service *restaurant.Service) *RestaurantHandler {
	return &RestaurantHandler{service: service}
}

func (h *RestaurantHandler) Search(ctx context.Context, query restaurant.Query) (*responses.SearchResponse, error) {
	result, err := h.service.Search(ctx, query)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to search restaurants")
	}
	return responses.BuildSearchResponse(result), nil
}

func (h *RestaurantHandler) GetDetails(ctx context.Context, id string) (*responses.DetailResponse, error) {
	detail, err := h.service.GetDetails(ctx, id)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to get restaurant details")
	}
	return responses.BuildDetailResponse(detail), nil
}

func (h *RestaurantHandler) GetMenu(ctx context.Context, id string) (*responses.MenuResponse, error) {
	menu, err := h.service.GetMenu(ctx, id)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to get restaurant menu")
	}
	return responses.BuildMenuResponse(menu), nil
}
