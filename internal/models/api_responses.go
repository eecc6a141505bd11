// ReelMatch - Similar Movie Recommendations with Poster Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package models

import (
	"time"
)

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// APIResponse represents a standardized API response wrapper used by all HTTP endpoints.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"query": "Avatar", "count": 20, "recommendations": [...]},
//	  "metadata": {
//	    "timestamp": "2026-10-16T12:00:00Z",
//	    "query_time_ms": 612,
//	    "catalog_version": 1
//	  }
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "error": {
//	    "code": "NO_RECOMMENDATIONS",
//	    "message": "No recommendations found. Please select a different movie."
//	  },
//	  "metadata": {"timestamp": "2026-10-16T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
//
// Fields:
//   - Timestamp: Server time when the response was generated (RFC3339)
//   - QueryTimeMS: Handler time in milliseconds, poster lookups included
//   - Cached: Whether the recommendation list came from the engine cache
//   - CatalogVersion: Catalog snapshot the response was computed from
type Metadata struct {
	Timestamp      time.Time `json:"timestamp"`
	QueryTimeMS    int64     `json:"query_time_ms,omitempty"`
	Cached         bool      `json:"cached,omitempty"`
	CatalogVersion uint64    `json:"catalog_version,omitempty"`
}

// APIError represents an error response with structured error details.
//
// Common error codes:
//   - VALIDATION_ERROR: Invalid query parameters
//   - BAD_REQUEST: Unparseable query parameters
//   - NO_RECOMMENDATIONS: Unknown title or nothing to recommend
//   - NOT_FOUND, METHOD_NOT_ALLOWED: Routing failures
//   - RATE_LIMIT_EXCEEDED: Too many requests
//
// Example:
//
//	{
//	  "code": "VALIDATION_ERROR",
//	  "message": "title is required",
//	  "details": {"field": "title", "tag": "required"}
//	}
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
