// Package provider contains the upstream restaurant data clients. Each
// client maps one third-party API (Yelp, Google Places) onto the shared
// Search/GetDetails contract; payload interpretation happens later in the
// domain normalizer.
package provider

import (
	"context"
	"errors"
	"net"

	"fooddash/discovery-api/internal/utils/platformerrors"
)

// Kind identifies which upstream produced a raw payload.
type Kind string

const (
	KindYelp         Kind = "yelp"
	KindGooglePlaces Kind = "googleplaces"
)

// SearchParams carries a geographic search request to an upstream provider.
type SearchParams struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters int
	Keyword      string
	Limit        int
}

// RawResult is a tagged variant over provider-specific search payloads.
// Exactly one of the payload pointers is set, matching Kind.
type RawResult struct {
	Kind   Kind
	Yelp   *YelpBusiness
	Google *GooglePlace
}

// RawDetail is a tagged variant over provider-specific detail payloads.
type RawDetail struct {
	Kind        Kind
	Yelp        *YelpBusiness
	YelpReviews []YelpReview
	Google      *GooglePlace
}

// Client is the polymorphic upstream capability. Implementations perform
// one outbound HTTP call per invocation and do not retry; failures come
// back as platformerrors with External, Timeout, or NotFound types.
type Client interface {
	Kind() Kind
	Search(ctx context.Context, params SearchParams) ([]RawResult, error)
	GetDetails(ctx context.Context, id string) (*RawDetail, error)
}

// clampRadius bounds the requested radius to what the provider accepts,
// substituting the default when unset.
func clampRadius(radius, def, max int) int {
	if radius <= 0 {
		return def
	}
	if radius > max {
		return max
	}
	return radius
}

func clampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

// isTimeout reports whether a transport error was caused by the client
// deadline rather than an upstream refusal.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// transportError converts a resty transport failure into a typed provider
// error, distinguishing deadline hits from everything else.
func transportError(ctx context.Context, err error, message string) *platformerrors.PlatformError {
	errType := platformerrors.ErrorTypeExternal
	if isTimeout(err) {
		errType = platformerrors.ErrorTypeTimeout
	}
	return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, errType, message, err, "")
}

const (
	defaultRadiusMeters = 1500
	defaultLimit        = 20
)
