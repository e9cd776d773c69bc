package provider

import (
	"context"
	"fmt"
	"strconv"

	"fooddash/discovery-api/internal/utils/platformerrors"

	"resty.dev/v3"
)

// Yelp Businesses Search caps radius at 40000m and limit at 50.
const (
	yelpMaxRadiusMeters = 40000
	yelpMaxLimit        = 50
)

// YelpCategory is one business category as returned by Yelp.
type YelpCategory struct {
	Alias string `json:"alias"`
	Title string `json:"title"`
}

// YelpCoordinates uses pointers so "coordinate missing" is distinguishable
// from zero.
type YelpCoordinates struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type YelpLocation struct {
	Address1 string `json:"address1"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zip_code"`
}

type YelpOpenWindow struct {
	Day         int    `json:"day"`
	Start       string `json:"start"`
	End         string `json:"end"`
	IsOvernight bool   `json:"is_overnight"`
}

type YelpHours struct {
	HoursType string           `json:"hours_type"`
	IsOpenNow bool             `json:"is_open_now"`
	Open      []YelpOpenWindow `json:"open"`
}

// YelpBusiness is the raw business payload shared by the search and detail
// endpoints. Every field except id and name is treated as optional to
// tolerate upstream schema drift.
type YelpBusiness struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Price        string           `json:"price"`
	Rating       float64          `json:"rating"`
	ReviewCount  int              `json:"review_count"`
	Phone        string           `json:"phone"`
	DisplayPhone string           `json:"display_phone"`
	URL          string           `json:"url"`
	ImageURL     string           `json:"image_url"`
	Categories   []YelpCategory   `json:"categories"`
	Coordinates  *YelpCoordinates `json:"coordinates"`
	Location     YelpLocation     `json:"location"`
	Photos       []string         `json:"photos"`
	Hours        []YelpHours      `json:"hours"`
}

type YelpReviewUser struct {
	Name string `json:"name"`
}

type YelpReview struct {
	ID          string         `json:"id"`
	Rating      float64        `json:"rating"`
	Text        string         `json:"text"`
	TimeCreated string         `json:"time_created"`
	User        YelpReviewUser `json:"user"`
}

type yelpSearchResponse struct {
	Businesses []YelpBusiness `json:"businesses"`
	Total      int            `json:"total"`
}

type yelpReviewsResponse struct {
	Reviews []YelpReview `json:"reviews"`
}

// YelpClient talks to the Yelp Fusion REST API using bearer-token auth.
type YelpClient struct {
	client *resty.Client
}

// NewYelpClient wires the API key as an Authorization header on every request.
func NewYelpClient(client *resty.Client, baseURL, apiKey string) *YelpClient {
	client.SetBaseURL(baseURL)
	client.SetHeader("Authorization", fmt.Sprintf("Bearer %s", apiKey))
	return &YelpClient{client: client}
}

func (c *YelpClient) Kind() Kind {
	return KindYelp
}

func (c *YelpClient) Search(ctx context.Context, params SearchParams) ([]RawResult, error) {
	radius := clampRadius(params.RadiusMeters, defaultRadiusMeters, yelpMaxRadiusMeters)
	limit := clampLimit(params.Limit, defaultLimit, yelpMaxLimit)

	term := params.Keyword
	if term == "" {
		term = "restaurants"
	}

	var respBody yelpSearchResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"latitude":   strconv.FormatFloat(params.Latitude, 'f', -1, 64),
			"longitude":  strconv.FormatFloat(params.Longitude, 'f', -1, 64),
			"radius":     strconv.Itoa(radius),
			"term":       term,
			"limit":      strconv.Itoa(limit),
			"categories": "restaurants,food",
			"sort_by":    "distance",
		}).
		SetResult(&respBody).
		Get("/businesses/search")
	if err != nil {
		return nil, transportError(ctx, err, "yelp business search failed")
	}
	if resp.IsError() {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal,
			fmt.Sprintf("yelp business search returned status %d", resp.StatusCode()), nil, "c0a7e4f8-6d5b-4a6e-9d2f-8c1b3a5e7f90")
	}

	results := make([]RawResult, 0, len(respBody.Businesses))
	for i := range respBody.Businesses {
		results = append(results, RawResult{Kind: KindYelp, Yelp: &respBody.Businesses[i]})
	}
	return results, nil
}

func (c *YelpClient) GetDetails(ctx context.Context, id string) (*RawDetail, error) {
	var business YelpBusiness
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&business).
		Get("/businesses/" + id)
	if err != nil {
		return nil, transportError(ctx, err, "yelp business details failed")
	}
	if resp.StatusCode() == 404 {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeNotFound,
			fmt.Sprintf("yelp business %s not found", id), nil, "4b2d9c31-0f8a-4f27-b6cd-1e5a8d7c3b42")
	}
	if resp.IsError() {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal,
			fmt.Sprintf("yelp business details returned status %d", resp.StatusCode()), nil, "9e1f6a84-3c7d-4b50-a2e8-6f4d0b9c5a17")
	}
	if business.ID == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal,
			"yelp business details payload missing id", nil, "7d3b5e90-8a14-4c6f-b2d7-0e9a6c4f8b23")
	}

	detail := &RawDetail{Kind: KindYelp, Yelp: &business}

	// Reviews ride along on the detail view. A review fetch failure does
	// not fail the whole lookup.
	var reviews yelpReviewsResponse
	reviewResp, err := c.client.R().
		SetContext(ctx).
		SetResult(&reviews).
		Get("/businesses/" + id + "/reviews")
	if err == nil && !reviewResp.IsError() {
		detail.YelpReviews = reviews.Reviews
	}

	return detail, nil
}
