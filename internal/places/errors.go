package places

import "fmt"

// ProviderError reports a non-OK status from the places provider.
type ProviderError struct {
	Status string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("places provider returned status %s", e.Status)
}

// NotFoundError reports a detail fetch for a place the provider does not know.
type NotFoundError struct {
	PlaceID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("place %s not found", e.PlaceID)
}

// GeocodeError reports zero geocode matches for an address.
type GeocodeError struct {
	Address string
}

func (e *GeocodeError) Error() string {
	return fmt.Sprintf("no geocode matches for %q", e.Address)
}

// LocationReason classifies why a device location could not be obtained.
type LocationReason string

const (
	ReasonDenied      LocationReason = "denied"
	ReasonTimeout     LocationReason = "timeout"
	ReasonUnsupported LocationReason = "unsupported"
)

// LocationUnavailableError reports that the device coordinate itself could
// not be obtained. Reverse-geocode failures never produce this error.
type LocationUnavailableError struct {
	Reason LocationReason
}

func (e *LocationUnavailableError) Error() string {
	return fmt.Sprintf("device location unavailable: %s", e.Reason)
}
