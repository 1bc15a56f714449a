package places

import (
	"context"
	"errors"
	"time"
)

// deviceLocationTimeout bounds how long a device position read may take.
const deviceLocationTimeout = 10 * time.Second

// ErrPermissionDenied is returned by DeviceLocator implementations when the
// user refused the location permission.
var ErrPermissionDenied = errors.New("location permission denied")

// DeviceLocator abstracts a device-provided geolocation capability.
type DeviceLocator interface {
	CurrentPosition(ctx context.Context) (lat, lng float64, err error)
}

// CurrentLocation reads the device position and reverse-geocodes it through
// the gateway. A reverse-geocode failure falls back to the raw coordinate
// labeled "Current Location"; only an unobtainable device coordinate fails,
// as a LocationUnavailableError carrying the reason.
func CurrentLocation(ctx context.Context, gw Gateway, locator DeviceLocator) (SearchLocation, error) {
	posCtx, cancel := context.WithTimeout(ctx, deviceLocationTimeout)
	defer cancel()

	lat, lng, err := locator.CurrentPosition(posCtx)
	if err != nil {
		return SearchLocation{}, &LocationUnavailableError{Reason: classifyLocatorError(posCtx, err)}
	}

	loc, err := gw.ReverseGeocode(ctx, lat, lng)
	if err != nil {
		return SearchLocation{Lat: lat, Lng: lng, Address: "Current Location"}, nil
	}
	return loc, nil
}

func classifyLocatorError(ctx context.Context, err error) LocationReason {
	switch {
	case errors.Is(err, ErrPermissionDenied):
		return ReasonDenied
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		return ReasonTimeout
	default:
		return ReasonUnsupported
	}
}
