// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the board.

# Domain Types

The persisted document is a JSON array of Resource values:

  - Resource: id, type, qty, location, timeframe, details, contact, status, requests
  - Request: name, urgency, contact, victimLocation, details, requestedAt

Field names are part of the stored format and must not change.

# Input Types

Validated form submissions handed to the registry:

  - ResourceInput: volunteer offer
  - RequestInput: victim claim

# Request and Response Types

JSON API bodies:

  - AddResourceRequest / AddResourceResponse
  - CreateRequestRequest
  - ReloadResponse
  - ErrorResponse: error, message

# Constants

Status values:

	StatusAvailable  = "Available"
	StatusInProgress = "In Progress"
	StatusFulfilled  = "Fulfilled"

Urgency values:

	UrgencyLow    = "Low"
	UrgencyMedium = "Medium"
	UrgencyHigh   = "High"

Lifecycles:

	LifecycleBasic    = "basic"
	LifecycleExtended = "extended"
*/
package models
