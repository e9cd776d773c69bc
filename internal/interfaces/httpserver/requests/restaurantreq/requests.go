package restaurantreq

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"fooddash/discovery-api/internal/domain/restaurant"
	"fooddash/discovery-api/internal/utils/platformerrors"
)

// SearchParams are the raw query-string filter parameters. Range
// constraints live on the binding tags; cross-field rules are checked
// after binding.
type SearchParams struct {
	Latitude  *float64 `form:"lat" binding:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `form:"lng" binding:"omitempty,gte=-180,lte=180"`
	Radius    *int     `form:"radius" binding:"omitempty,gt=0"`
	Keyword   string   `form:"keyword"`
	Limit     *int     `form:"limit" binding:"omitempty,gt=0"`
	MinPrice  *int     `form:"minPrice" binding:"omitempty,gte=1,lte=4"`
	MaxPrice  *int     `form:"maxPrice" binding:"omitempty,gte=1,lte=4"`
	MinRating *float64 `form:"rating" binding:"omitempty,gte=0,lte=5"`
	Cuisines  []string `form:"cuisine"`
	OpenNow   *bool    `form:"openNow"`
	SortBy    string   `form:"sortBy"`
}

var validSortKeys = map[string]restaurant.SortBy{
	"":                                    "",
	string(restaurant.SortByDistance):     restaurant.SortByDistance,
	string(restaurant.SortByRating):       restaurant.SortByRating,
	string(restaurant.SortByDeliveryTime): restaurant.SortByDeliveryTime,
	string(restaurant.SortByPriceAsc):     restaurant.SortByPriceAsc,
	string(restaurant.SortByPriceDesc):    restaurant.SortByPriceDesc,
}

// GetSearchQueryFromRequest binds and validates the search query string
// into a domain query.
func GetSearchQueryFromRequest(reqCtx *gin.Context) (*restaurant.Query, error) {
	ctx := reqCtx.Request.Context()

	var params SearchParams
	if err := reqCtx.ShouldBindQuery(&params); err != nil {
		message := "invalid query parameters"
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
			message = fmt.Sprintf("invalid query parameter %s", strings.ToLower(validationErrs[0].Field()))
		}
		return nil, platformerrors.NewError(ctx, platformerrors.LayerHandler, platformerrors.ErrorTypeValidation,
			message, err, "3c1d47f8-92ab-4e06-bd58-71c4f9e0a263")
	}

	if (params.Latitude == nil) != (params.Longitude == nil) {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerHandler, platformerrors.ErrorTypeValidation,
			"lat and lng must be provided together", nil, "8e5a02d9-4f67-41bc-a3d1-0c96e28b754f")
	}

	query := &restaurant.Query{
		Latitude:  params.Latitude,
		Longitude: params.Longitude,
		Keyword:   strings.TrimSpace(params.Keyword),
		OpenNow:   params.OpenNow != nil && *params.OpenNow,
	}
	if params.Radius != nil {
		query.RadiusMeters = *params.Radius
	}
	if params.Limit != nil {
		query.Limit = *params.Limit
	}
	if params.MinPrice != nil {
		query.MinPrice = *params.MinPrice
	}
	if params.MaxPrice != nil {
		query.MaxPrice = *params.MaxPrice
	}
	if query.MinPrice > 0 && query.MaxPrice > 0 && query.MinPrice > query.MaxPrice {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerHandler, platformerrors.ErrorTypeValidation,
			"minPrice must not exceed maxPrice", nil, "e8a3f5d0-27c1-4b96-8e4d-b0f61a925c73")
	}
	if params.MinRating != nil {
		query.MinRating = *params.MinRating
	}

	for _, cuisine := range params.Cuisines {
		if trimmed := strings.TrimSpace(cuisine); trimmed != "" {
			query.Cuisines = append(query.Cuisines, trimmed)
		}
	}

	sortBy, ok := validSortKeys[params.SortBy]
	if !ok {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerHandler, platformerrors.ErrorTypeValidation,
			"invalid sortBy value", nil, "7b04c6e2-f8d1-45a9-9c37-28e5d0a1f694")
	}
	query.SortBy = sortBy

	return query, nil
}

// GetRestaurantIDFromRequest extracts and validates the restaurant id path parameter.
func GetRestaurantIDFromRequest(reqCtx *gin.Context) (string, error) {
	id := strings.TrimSpace(reqCtx.Param("id"))
	if id == "" {
		return "", platformerrors.NewError(reqCtx.Request.Context(), platformerrors.LayerHandler, platformerrors.ErrorTypeValidation,
			"restaurant id is required", nil, "c95d10b8-3e62-47af-8d01-f47a2c6e9b35")
	}
	return id, nil
}
