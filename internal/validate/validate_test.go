package validate

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type dimensions struct {
	Width  int `json:"width" validate:"gt=0"`
	Height int `json:"height" validate:"gt=0"`
}

type asset struct {
	ID         string     `json:"id" validate:"required"`
	Dimensions dimensions `json:"dimensions"`
}

func TestSlice(t *testing.T) {
	testCases := map[string]struct {
		items  []asset
		expErr FieldErrors
	}{
		"empty": {
			items: nil,
		},
		"valid": {
			items: []asset{{ID: "a", Dimensions: dimensions{Width: 1, Height: 2}}},
		},
		"missingID": {
			items: []asset{
				{ID: "a", Dimensions: dimensions{Width: 1, Height: 2}},
				{Dimensions: dimensions{Width: 1, Height: 2}},
			},
			expErr: FieldErrors{{Field: "result[1].id", Err: "This field is required"}},
		},
		"nestedConstraint": {
			items:  []asset{{ID: "a", Dimensions: dimensions{Width: 0, Height: 2}}},
			expErr: FieldErrors{{Field: "result[0].width", Err: "width must be greater than 0"}},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			err := Slice("result", tc.items)
			if tc.expErr == nil {
				if err != nil {
					t.Fatalf("exp nil err, got: %v", err)
				}
				return
			}

			var fields FieldErrors
			if !errors.As(err, &fields) {
				t.Fatalf("exp FieldErrors, got %T: %v", err, err)
			}
			if diff := cmp.Diff(tc.expErr, fields); diff != "" {
				t.Errorf("field errors mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSlice_Pointers(t *testing.T) {
	items := []*asset{nil, {ID: ""}}

	err := Slice("documents", items)

	var fields FieldErrors
	if !errors.As(err, &fields) {
		t.Fatalf("exp FieldErrors, got %T: %v", err, err)
	}
	if fields[0].Field != "documents[1].id" {
		t.Errorf("Field = %q, want %q", fields[0].Field, "documents[1].id")
	}
}

func TestSlice_NonStruct(t *testing.T) {
	if err := Slice("result", []string{"", "x"}); err != nil {
		t.Errorf("exp nil err for non-struct elements, got: %v", err)
	}
	if err := Slice("result", []map[string]any{{"a": 1}}); err != nil {
		t.Errorf("exp nil err for map elements, got: %v", err)
	}
}

func TestSlice_MixedElements(t *testing.T) {
	items := []any{
		map[string]any{"a": 1},
		"raw",
		asset{Dimensions: dimensions{Width: 1, Height: 2}},
	}

	err := Slice("result", items)

	var fields FieldErrors
	if !errors.As(err, &fields) {
		t.Fatalf("exp FieldErrors, got %T: %v", err, err)
	}

	exp := FieldErrors{{Field: "result[2].id", Err: "This field is required"}}
	if diff := cmp.Diff(exp, fields); diff != "" {
		t.Errorf("field errors mismatch (-want +got):\n%s", diff)
	}
}
