// Sabora - Natural-Language Restaurant Recommendations
// Copyright 2026 Sabora Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sabora-app/sabora

// Package validation provides struct validation using go-playground/validator v10.
//
// This package wraps the go-playground/validator library to provide a thread-safe
// singleton validator instance with user-friendly error messages, plus the
// service's business rules (query/radius/rating limits, cuisine and price
// enumerations) and the search-intent checks applied to free-form query text.
//
// # Overview
//
// The package provides:
//   - Thread-safe singleton validator (initialized once, cached struct info)
//   - Error translation to field/message/code triples
//   - APIError conversion matching the response envelope
//   - Business-rule limits and the rules summary endpoint payload
//   - Search-intent validation (food vocabulary vs off-topic queries)
//
// # Quick Start
//
//	type RecommendationRequest struct {
//	    Text      string  `validate:"required,min=1,max=500"`
//	    Latitude  float64 `validate:"latitude"`
//	    Longitude float64 `validate:"longitude"`
//	}
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    var req RecommendationRequest
//	    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
//	        // handle decode error
//	    }
//
//	    if verr := validation.ValidateStruct(&req); verr != nil {
//	        apiErr := verr.ToAPIError()
//	        respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	        return
//	    }
//
//	    // proceed with valid request
//	}
//
// # Common Validation Tags
//
// String validations:
//   - required: Field must not be empty
//   - min=n: Minimum length n characters
//   - max=n: Maximum length n characters
//
// Numeric validations:
//   - gte=n / lte=n / gt=n / lt=n: Range bounds
//   - min=n / max=n: Minimum / maximum value
//
// Enum validations:
//   - oneof=a b c: Must be one of the specified values
//
// Coordinate validations:
//   - latitude: Valid latitude (-90 to 90)
//   - longitude: Valid longitude (-180 to 180)
//
// # Error Codes
//
// Each failed field carries a machine-readable code alongside its message:
//
//	REQUIRED_FIELD  missing mandatory field
//	MIN_LENGTH      string shorter than the minimum
//	MAX_LENGTH      string longer than the maximum
//	OUT_OF_RANGE    numeric value outside its bounds
//	INVALID_VALUE   value not in the allowed enumeration
//	INVALID_TYPE    value of an unexpected type
//	INVALID_FORMAT  value failing a format check
//
// # Search-Intent Validation
//
// ValidateSearchQuery rejects queries that cannot plausibly be about
// restaurants before the pipeline runs: greetings and test strings ("oi",
// "teste"), clearly off-topic vocabulary ("javascript", "hotel"), and text
// with neither food vocabulary nor a restaurant-shaped phrase. The check
// also sanitizes the query (markup characters removed, whitespace
// collapsed, length bounded).
//
// # Thread Safety
//
// The singleton validator is initialized once and safe for concurrent use.
// The business-rule tables and keyword sets are read-only after package
// initialization.
package validation
