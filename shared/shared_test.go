package shared_test

import (
	"reflect"
	"testing"
	"time"

	"lexdesk/shared"
	"lexdesk/shared/constant"
	"lexdesk/shared/dto"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{name: "empty string returns nil", input: "", expected: nil},
		{name: "valid true string", input: "true", expected: boolPtr(true)},
		{name: "valid false string", input: "false", expected: boolPtr(false)},
		{name: "valid 1 string", input: "1", expected: boolPtr(true)},
		{name: "valid 0 string", input: "0", expected: boolPtr(false)},
		{name: "valid TRUE string", input: "TRUE", expected: boolPtr(true)},
		{name: "invalid string returns nil", input: "invalid", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}
			} else {
				if result == nil {
					t.Errorf("expected %v, got nil", *tt.expected)
				} else if *result != *tt.expected {
					t.Errorf("expected %v, got %v", *tt.expected, *result)
				}
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total returns 1", total: 0, limit: 10, expected: 1},
		{name: "zero limit returns 1", total: 100, limit: 0, expected: 1},
		{name: "negative limit returns 1", total: 100, limit: -5, expected: 1},
		{name: "exact division", total: 100, limit: 10, expected: 10},
		{name: "division with remainder", total: 101, limit: 10, expected: 11},
		{name: "limit greater than total", total: 5, limit: 10, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.CalculateTotalPage(tt.total, tt.limit)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type TestStruct struct {
		ID         int    `db:"id"`
		Name       string `db:"name"`
		Email      string `db:"email"`
		EmptyField string `db:"empty_field"`
		NoDBTag    string
	}

	data := TestStruct{
		ID:    1,
		Name:  "John Doe",
		Email: "john@example.com",
	}

	result := shared.TransformFields(data, "testuser")

	if result[constant.FieldModifiedAt] == nil {
		t.Error("expected modified_at to be set")
	}
	if _, ok := result[constant.FieldModifiedAt].(time.Time); !ok {
		t.Error("expected modified_at to be a time.Time")
	}
	if result[constant.FieldModifiedBy] != "testuser" {
		t.Errorf("expected modified_by to be testuser, got %v", result[constant.FieldModifiedBy])
	}

	expected := map[string]any{
		"id":    1,
		"name":  "John Doe",
		"email": "john@example.com",
	}

	for key, expectedValue := range expected {
		if actualValue, exists := result[key]; !exists {
			t.Errorf("expected field %s to exist", key)
		} else if !reflect.DeepEqual(actualValue, expectedValue) {
			t.Errorf("expected field %s to be %v, got %v", key, expectedValue, actualValue)
		}
	}

	if _, exists := result["empty_field"]; exists {
		t.Error("expected zero-value field to be skipped")
	}
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID("123", "user_id", "users")

	expected := dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    "user_id",
				Value:    "123",
				Operator: dto.FilterOperatorEq,
				Table:    "users",
			},
		},
	}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("expected %+v, got %+v", expected, result)
	}
}

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		id       string
		expected string
	}{
		{name: "prefix and id", prefix: "appointment", id: "abc", expected: "appointment:abc"},
		{name: "prefix only", prefix: "appointment", id: "", expected: "appointment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.BuildCacheKey(tt.prefix, tt.id); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 2, Limit: 10, SortBy: "appointment_date", SortDir: "ASC"}

	got := shared.BuildCacheKeyWithQuery("appointment", "user-1", params)
	expected := "appointment:user-1:2:10:appointment_date:ASC"

	if got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}

	got = shared.BuildCacheKeyWithQuery("appointment", "user-1", dto.QueryParams{Page: 1, Limit: 10})
	expected = "appointment:user-1:1:10"

	if got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func boolPtr(b bool) *bool {
	return &b
}
