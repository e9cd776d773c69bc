package restaurants

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fooddash/discovery-api/internal/interfaces/httpserver/handlers/restauranthandler"
	"fooddash/discovery-api/internal/interfaces/httpserver/requests/restaurantreq"
	"fooddash/discovery-api/internal/interfaces/httpserver/responses"
)

type RestaurantsRoute struct {
	restaurantHandler *restauranthandler.RestaurantHandler
}

func NewRestaurantsRoute(restaurantHandler *restauranthandler.RestaurantHandler) *RestaurantsRoute {
	return &RestaurantsRoute{restaurantHandler: restaurantHandler}
}

func (route *RestaurantsRoute) RegisterRouter(router *gin.RouterGroup) {
	restaurantsRoute := router.Group("restaurants")
	restaurantsRoute.GET("", route.SearchRestaurants)
	restaurantsRoute.GET("/:id", route.GetRestaurant)
	restaurantsRoute.GET("/:id/menu", route.GetRestaurantMenu)
}

// SearchRestaurants returns nearby restaurants matching the query filters.
// A provider outage degrades to the sample set with fallback=true instead
// of an error status.
func (route *RestaurantsRoute) SearchRestaurants(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	query, err := restaurantreq.GetSearchQueryFromRequest(reqCtx)
	if err != nil {
		responses.HandleError(reqCtx, err, "invalid search query")
		return
	}

	resp, err := route.restaurantHandler.Search(ctx, *query)
	if err != nil {
		responses.HandleError(reqCtx, err, "failed to search restaurants")
		return
	}

	reqCtx.JSON(http.StatusOK, resp)
}

// GetRestaurant returns one restaurant with reviews, hours and a menu.
func (route *RestaurantsRoute) GetRestaurant(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	id, err := restaurantreq.GetRestaurantIDFromRequest(reqCtx)
	if err != nil {
		responses.HandleError(reqCtx, err, "invalid restaurant id")
		return
	}

	resp, err := route.restaurantHandler.GetDetails(ctx, id)
	if err != nil {
		responses.HandleError(reqCtx, err, "failed to get restaurant details")
		return
	}

	reqCtx.JSON(http.StatusOK, resp)
}

// GetRestaurantMenu returns the menu for one restaurant.
func (route *RestaurantsRoute) GetRestaurantMenu(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	id, err := restaurantreq.GetRestaurantIDFromRequest(reqCtx)
	if err != nil {
		responses.HandleError(reqCtx, err, "invalid restaurant id")
		return
	}

	resp, err := route.restaurantHandler.GetMenu(ctx, id)
	if err != nil {
		responses.HandleError(reqCtx, err, "failed to get restaurant menu")
		return
	}

	reqCtx.JSON(http.StatusOK, resp)
}
