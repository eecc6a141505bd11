// ReelMatch - Similar Movie Recommendations with Poster Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package validation validates API query parameters with go-playground/validator v10.
//
// Request structs declare their rules in `validate` tags and their wire
// names in `query` tags:
//
//	type recommendationsRequest struct {
//	    Title string `query:"title" validate:"required,max=512,printable"`
//	}
//
// ValidateStruct returns nil or a *RequestValidationError whose ToAPIError
// produces the VALIDATION_ERROR envelope:
//
//	{
//	    "code": "VALIDATION_ERROR",
//	    "message": "title is required",
//	    "details": {"field": "title", "tag": "required"}
//	}
//
// Several failures are joined into one message and listed under
// details.fields. Messages name the query parameter, not the Go field.
//
// The validator is a lazily built singleton and is safe for concurrent use.
package validation
