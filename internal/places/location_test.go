package places

import (
	"context"
	"errors"
	"testing"
)

type fakeGateway struct {
	Gateway
	reverseLoc SearchLocation
	reverseErr error
}

func (f *fakeGateway) ReverseGeocode(_ context.Context, lat, lng float64) (SearchLocation, error) {
	if f.reverseErr != nil {
		return SearchLocation{}, f.reverseErr
	}
	return f.reverseLoc, nil
}

type fakeLocator struct {
	lat, lng float64
	err      error
}

func (f fakeLocator) CurrentPosition(ctx context.Context) (float64, float64, error) {
	if f.err != nil {
		return 0, 0, f.err
	}
	return f.lat, f.lng, nil
}

func TestCurrentLocationReverseGeocodes(t *testing.T) {
	gw := &fakeGateway{reverseLoc: SearchLocation{Lat: 40.7128, Lng: -74.006, Address: "Broadway, New York"}}
	locator := fakeLocator{lat: 40.7128, lng: -74.006}

	loc, err := CurrentLocation(context.Background(), gw, locator)
	if err != nil {
		t.Fatalf("CurrentLocation: %v", err)
	}
	if loc.Address != "Broadway, New York" {
		t.Fatalf("expected reverse-geocoded address, got %q", loc.Address)
	}
}

func TestCurrentLocationFallsBackWhenReverseGeocodeFails(t *testing.T) {
	gw := &fakeGateway{reverseErr: &ProviderError{Status: "OVER_QUERY_LIMIT"}}
	locator := fakeLocator{lat: 40.7128, lng: -74.006}

	loc, err := CurrentLocation(context.Background(), gw, locator)
	if err != nil {
		t.Fatalf("reverse-geocode failure must not fail the lookup, got %v", err)
	}
	if loc.Address != "Current Location" {
		t.Fatalf("expected Current Location fallback, got %q", loc.Address)
	}
	if loc.Lat != 40.7128 || loc.Lng != -74.006 {
		t.Fatalf("expected raw coordinate preserved, got %+v", loc)
	}
}

func TestCurrentLocationPermissionDenied(t *testing.T) {
	gw := &fakeGateway{}
	locator := fakeLocator{err: ErrPermissionDenied}

	_, err := CurrentLocation(context.Background(), gw, locator)

	var locErr *LocationUnavailableError
	if !errors.As(err, &locErr) {
		t.Fatalf("expected LocationUnavailableError, got %v", err)
	}
	if locErr.Reason != ReasonDenied {
		t.Fatalf("expected denied reason, got %q", locErr.Reason)
	}
}

func TestCurrentLocationTimeout(t *testing.T) {
	gw := &fakeGateway{}
	locator := fakeLocator{err: context.DeadlineExceeded}

	_, err := CurrentLocation(context.Background(), gw, locator)

	var locErr *LocationUnavailableError
	if !errors.As(err, &locErr) {
		t.Fatalf("expected LocationUnavailableError, got %v", err)
	}
	if locErr.Reason != ReasonTimeout {
		t.Fatalf("expected timeout reason, got %q", locErr.Reason)
	}
}

func TestCurrentLocationUnsupportedDevice(t *testing.T) {
	gw := &fakeGateway{}
	locator := fakeLocator{err: errors.New("no geolocation capability")}

	_, err := CurrentLocation(context.Background(), gw, locator)

	var locErr *LocationUnavailableError
	if !errors.As(err, &locErr) {
		t.Fatalf("expected LocationUnavailableError, got %v", err)
	}
	if locErr.Reason != ReasonUnsupported {
		t.Fatalf("expected unsupported reason, got %q", locErr.Reason)
	}
}
