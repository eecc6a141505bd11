// ReelMatch - Similar Movie Recommendations with Poster Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package validation

import (
	"strings"
	"testing"
)

type titleRequest struct {
	Title string `query:"title" validate:"required,max=16,printable"`
	Limit int    `query:"limit" validate:"gte=0,lte=100"`
}

type idsRequest struct {
	IDs []int `query:"ids" validate:"required,min=1,max=3,dive,gt=0"`
}

type untaggedRequest struct {
	Name   string `validate:"required"`
	Hidden string `query:"-" validate:"max=1"`
}

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	v1 := GetValidator()
	v2 := GetValidator()
	if v1 == nil || v1 != v2 {
		t.Error("GetValidator() should return one non-nil instance")
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input interface{}
	}{
		{"title", &titleRequest{Title: "Alpha", Limit: 20}},
		{"unicode title", &titleRequest{Title: "Amélie"}},
		{"max length title", &titleRequest{Title: strings.Repeat("x", 16), Limit: 100}},
		{"ids", &idsRequest{IDs: []int{1, 2, 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := ValidateStruct(tt.input); err != nil {
				t.Errorf("ValidateStruct() = %v, want nil", err)
			}
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       interface{}
		wantField   string
		wantTag     string
		wantMessage string
	}{
		{"missing title", &titleRequest{}, "title", "required", "title is required"},
		{"long title", &titleRequest{Title: strings.Repeat("x", 17)}, "title", "max", "title must be at most 16 characters"},
		{"control chars", &titleRequest{Title: "Al\x00pha"}, "title", "printable", "title must not contain control characters"},
		{"negative limit", &titleRequest{Title: "a", Limit: -1}, "limit", "gte", "limit must be greater than or equal to 0"},
		{"limit too high", &titleRequest{Title: "a", Limit: 101}, "limit", "lte", "limit must be less than or equal to 100"},
		{"no ids", &idsRequest{}, "ids", "required", "ids is required"},
		{"too many ids", &idsRequest{IDs: []int{1, 2, 3, 4}}, "ids", "max", "ids must be at most 3 items"},
		{"non-positive id", &idsRequest{IDs: []int{1, 0}}, "ids[1]", "gt", "ids[1] must be greater than 0"},
		{"untagged field keeps Go name", &untaggedRequest{}, "Name", "required", "Name is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			verr := ValidateStruct(tt.input)
			if verr == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			errs := verr.Errors()
			if len(errs) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(errs), verr)
			}
			if errs[0].Field() != tt.wantField {
				t.Errorf("Field() = %q, want %q", errs[0].Field(), tt.wantField)
			}
			if errs[0].Tag() != tt.wantTag {
				t.Errorf("Tag() = %q, want %q", errs[0].Tag(), tt.wantTag)
			}
			if errs[0].Error() != tt.wantMessage {
				t.Errorf("Error() = %q, want %q", errs[0].Error(), tt.wantMessage)
			}
		})
	}
}

func TestToAPIError_SingleError(t *testing.T) {
	t.Parallel()

	verr := ValidateStruct(&titleRequest{})
	if verr == nil {
		t.Fatal("expected validation error")
	}

	apiErr := verr.ToAPIError()
	if apiErr.Code != ErrorCode {
		t.Errorf("Code = %q, want %q", apiErr.Code, ErrorCode)
	}
	if apiErr.Message != "title is required" {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if apiErr.Details["field"] != "title" || apiErr.Details["tag"] != "required" {
		t.Errorf("Details = %v", apiErr.Details)
	}
}

func TestToAPIError_MultipleErrors(t *testing.T) {
	t.Parallel()

	verr := ValidateStruct(&titleRequest{Limit: 500})
	if verr == nil {
		t.Fatal("expected validation error")
	}

	apiErr := verr.ToAPIError()
	if apiErr.Message != "title is required; limit must be less than or equal to 100" {
		t.Errorf("Message = %q", apiErr.Message)
	}
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 2 {
		t.Fatalf("Details[fields] = %#v, want 2 entries", apiErr.Details["fields"])
	}
	if fields[1]["field"] != "limit" {
		t.Errorf("fields[1][field] = %v, want limit", fields[1]["field"])
	}
}

func TestToAPIError_Empty(t *testing.T) {
	t.Parallel()

	verr := &RequestValidationError{}
	if got := verr.Error(); got != "validation failed" {
		t.Errorf("Error() = %q", got)
	}
	if got := verr.ToAPIError(); got.Code != ErrorCode || got.Details != nil {
		t.Errorf("ToAPIError() = %+v", got)
	}
}

func TestValidateStruct_NotAStruct(t *testing.T) {
	t.Parallel()

	verr := ValidateStruct("not a struct")
	if verr == nil {
		t.Fatal("expected error for non-struct input")
	}
	if verr.Errors()[0].Field() != "unknown" {
		t.Errorf("Field() = %q, want unknown", verr.Errors()[0].Field())
	}
}
