package google

import "github.com/pushpakrawat/veekend/internal/places"

// Provider status codes we branch on. Anything else is surfaced as a
// ProviderError.
const (
	statusOK             = "OK"
	statusZeroResults    = "ZERO_RESULTS"
	statusNotFound       = "NOT_FOUND"
	statusInvalidRequest = "INVALID_REQUEST"
)

type searchResponse struct {
	Results       []placeResult `json:"results"`
	NextPageToken string        `json:"next_page_token"`
	Status        string        `json:"status"`
}

type detailsResponse struct {
	Result placeResult `json:"result"`
	Status string      `json:"status"`
}

type autocompleteResponse struct {
	Predictions []prediction `json:"predictions"`
	Status      string       `json:"status"`
}

type geocodeResponse struct {
	Results []geocodeResult `json:"results"`
	Status  string          `json:"status"`
}

type placeResult struct {
	PlaceID          string        `json:"place_id"`
	Name             string        `json:"name"`
	FormattedAddress string        `json:"formatted_address"`
	Vicinity         string        `json:"vicinity"`
	Geometry         geometry      `json:"geometry"`
	Rating           *float64      `json:"rating,omitempty"`
	UserRatingsTotal *int          `json:"user_ratings_total,omitempty"`
	PriceLevel       *int          `json:"price_level,omitempty"`
	Types            []string      `json:"types"`
	Photos           []photo       `json:"photos,omitempty"`
	OpeningHours     *openingHours `json:"opening_hours,omitempty"`
	BusinessStatus   string        `json:"business_status,omitempty"`
	Phone            string        `json:"formatted_phone_number,omitempty"`
	Website          string        `json:"website,omitempty"`
	Reviews          []review      `json:"reviews,omitempty"`
}

type geometry struct {
	Location location `json:"location"`
}

type location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type photo struct {
	PhotoReference string `json:"photo_reference"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
}

type openingHours struct {
	OpenNow     bool     `json:"open_now"`
	WeekdayText []string `json:"weekday_text,omitempty"`
}

type review struct {
	AuthorName              string  `json:"author_name"`
	Rating                  float64 `json:"rating"`
	Text                    string  `json:"text"`
	RelativeTimeDescription string  `json:"relative_time_description"`
	Time                    int64   `json:"time"`
}

type prediction struct {
	PlaceID              string               `json:"place_id"`
	StructuredFormatting structuredFormatting `json:"structured_formatting"`
}

type structuredFormatting struct {
	MainText      string `json:"main_text"`
	SecondaryText string `json:"secondary_text"`
}

type geocodeResult struct {
	FormattedAddress string   `json:"formatted_address"`
	Geometry         geometry `json:"geometry"`
}

func (r placeResult) toVenueRecord() places.VenueRecord {
	address := r.FormattedAddress
	if address == "" {
		address = r.Vicinity
	}

	rec := places.VenueRecord{
		PlaceID:        r.PlaceID,
		Name:           r.Name,
		Address:        address,
		Lat:            r.Geometry.Location.Lat,
		Lng:            r.Geometry.Location.Lng,
		Rating:         r.Rating,
		RatingCount:    r.UserRatingsTotal,
		PriceLevel:     r.PriceLevel,
		CategoryTags:   r.Types,
		BusinessStatus: r.BusinessStatus,
		Phone:          r.Phone,
		Website:        r.Website,
	}

	for _, p := range r.Photos {
		rec.Photos = append(rec.Photos, places.PhotoRef{
			Reference: p.PhotoReference,
			Width:     p.Width,
			Height:    p.Height,
		})
	}

	if r.OpeningHours != nil {
		rec.OpeningHours = &places.OpeningHours{
			OpenNow:     r.OpeningHours.OpenNow,
			WeekdayText: r.OpeningHours.WeekdayText,
		}
	}

	for _, rev := range r.Reviews {
		rec.Reviews = append(rec.Reviews, places.Review{
			AuthorName:       rev.AuthorName,
			Rating:           rev.Rating,
			Text:             rev.Text,
			RelativeTimeDesc: rev.RelativeTimeDescription,
			Time:             rev.Time,
		})
	}

	return rec
}
