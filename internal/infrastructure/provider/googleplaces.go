package provider

import (
	"context"
	"fmt"
	"strconv"

	"fooddash/discovery-api/internal/utils/platformerrors"

	"resty.dev/v3"
)

// Google Places Nearby Search caps radius at 50000m and returns at most
// 20 results per page; paging tokens are not followed.
const (
	googleMaxRadiusMeters = 50000
	googleMaxLimit        = 20
)

const googleDetailFields = "place_id,name,rating,user_ratings_total,formatted_address,formatted_phone_number,website,geometry,photos,price_level,types,opening_hours"

type GoogleLatLng struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

type GoogleGeometry struct {
	Location *GoogleLatLng `json:"location"`
}

type GooglePhoto struct {
	PhotoReference string `json:"photo_reference"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
}

type GoogleOpeningHours struct {
	OpenNow     *bool    `json:"open_now"`
	WeekdayText []string `json:"weekday_text"`
}

// GooglePlace is the raw place payload shared by nearby search and place
// details. Nearby search fills Vicinity, details fills FormattedAddress.
type GooglePlace struct {
	PlaceID          string              `json:"place_id"`
	Name             string              `json:"name"`
	Vicinity         string              `json:"vicinity"`
	FormattedAddress string              `json:"formatted_address"`
	FormattedPhone   string              `json:"formatted_phone_number"`
	Website          string              `json:"website"`
	Rating           float64             `json:"rating"`
	UserRatingsTotal int                 `json:"user_ratings_total"`
	PriceLevel       *int                `json:"price_level"`
	Types            []string            `json:"types"`
	Geometry         *GoogleGeometry     `json:"geometry"`
	Photos           []GooglePhoto       `json:"photos"`
	OpeningHours     *GoogleOpeningHours `json:"opening_hours"`
}

type googleSearchResponse struct {
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message"`
	Results      []GooglePlace `json:"results"`
}

type googleDetailsResponse struct {
	Status       string       `json:"status"`
	ErrorMessage string       `json:"error_message"`
	Result       *GooglePlace `json:"result"`
}

// GoogleClient talks to the Google Places REST API, authenticating with an
// API key query parameter on every call.
type GoogleClient struct {
	client *resty.Client
	apiKey string
}

func NewGoogleClient(client *resty.Client, baseURL, apiKey string) *GoogleClient {
	client.SetBaseURL(baseURL)
	return &GoogleClient{client: client, apiKey: apiKey}
}

func (c *GoogleClient) Kind() Kind {
	return KindGooglePlaces
}

func (c *GoogleClient) Search(ctx context.Context, params SearchParams) ([]RawResult, error) {
	radius := clampRadius(params.RadiusMeters, defaultRadiusMeters, googleMaxRadiusMeters)
	limit := clampLimit(params.Limit, defaultLimit, googleMaxLimit)

	req := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"location": fmt.Sprintf("%s,%s",
				strconv.FormatFloat(params.Latitude, 'f', -1, 64),
				strconv.FormatFloat(params.Longitude, 'f', -1, 64)),
			"radius": strconv.Itoa(radius),
			"type":   "restaurant",
			"key":    c.apiKey,
		})
	if params.Keyword != "" {
		req.SetQueryParam("keyword", params.Keyword)
	}

	var respBody googleSearchResponse
	resp, err := req.SetResult(&respBody).Get("/place/nearbysearch/json")
	if err != nil {
		return nil, transportError(ctx, err, "google nearby search failed")
	}
	if resp.IsError() {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal,
			fmt.Sprintf("google nearby search returned status %d", resp.StatusCode()), nil, "2f8c6b1d-9e40-4a73-8c5d-b7e2a9f41c06")
	}
	if respBody.Status != "OK" && respBody.Status != "ZERO_RESULTS" {
		return nil, platformerrors.NewErrorWithContext(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal,
			fmt.Sprintf("google nearby search status %s", respBody.Status), nil, "b5d09a37-1c82-4e6f-a4b9-3d7f8e2c5a61",
			map[string]any{"error_message": respBody.ErrorMessage})
	}

	if len(respBody.Results) > limit {
		respBody.Results = respBody.Results[:limit]
	}

	results := make([]RawResult, 0, len(respBody.Results))
	for i := range respBody.Results {
		results = append(results, RawResult{Kind: KindGooglePlaces, Google: &respBody.Results[i]})
	}
	return results, nil
}

func (c *GoogleClient) GetDetails(ctx context.Context, id string) (*RawDetail, error) {
	var respBody googleDetailsResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"place_id": id,
			"fields":   googleDetailFields,
			"key":      c.apiKey,
		}).
		SetResult(&respBody).
		Get("/place/details/json")
	if err != nil {
		return nil, transportError(ctx, err, "google place details failed")
	}
	if resp.IsError() {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal,
			fmt.Sprintf("google place details returned status %d", resp.StatusCode()), nil, "e4a1d7f2-6b93-48c0-9f5e-8a2c4b6d0e39")
	}
	if respBody.Status == "NOT_FOUND" || respBody.Status == "ZERO_RESULTS" || (respBody.Status == "OK" && respBody.Result == nil) {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeNotFound,
			fmt.Sprintf("google place %s not found", id), nil, "a9c3e5b7-2d18-4f60-b4a6-7e0d9f3c1b85")
	}
	if respBody.Status != "OK" {
		return nil, platformerrors.NewErrorWithContext(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal,
			fmt.Sprintf("google place details status %s", respBody.Status), nil, "6d2f8a40-5c91-4b37-ae82-1f4b7c9e3d50",
			map[string]any{"error_message": respBody.ErrorMessage})
	}

	return &RawDetail{Kind: KindGooglePlaces, Google: respBody.Result}, nil
}
