package search

import (
	"testing"

	"github.com/pushpakrawat/veekend/platform/validator"
)

func TestUpdateFiltersRequestDistanceBounds(t *testing.T) {
	val := validator.New()

	cases := []struct {
		name     string
		distance float64
		wantErr  bool
	}{
		{"below minimum", 0.5, true},
		{"minimum", 1, false},
		{"maximum", 20, false},
		{"above maximum", 21, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := UpdateFiltersRequest{DistanceKm: &tc.distance}
			err := val.Struct(req)
			if tc.wantErr && err == nil {
				t.Fatalf("distance %v must be rejected", tc.distance)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("distance %v must be accepted, got %v", tc.distance, err)
			}
		})
	}
}

func TestUpdateFiltersRequestOmittedFieldsPass(t *testing.T) {
	val := validator.New()

	if err := val.Struct(UpdateFiltersRequest{}); err != nil {
		t.Fatalf("empty patch must validate, got %v", err)
	}
}
