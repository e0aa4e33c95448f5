// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package registry holds the ordered, in-memory list of resources.

# Identity

Every resource gets a UUID when added. Position in the list is still
reported because the available listing refers back to the full list, but
selections should use the id.

# Lifecycle

	Available ──request──▶ In Progress ──fulfill──▶ Fulfilled
	                                   (extended lifecycle only)

There is no way back to Available. With the basic lifecycle In Progress is
terminal, and a resource is Available exactly when it has no requests.

# Errors

  - ErrInvalidSelection: unknown id, index out of range, or resource no longer Available
  - ErrInvalidTransition: fulfill on a resource that is not In Progress, or basic lifecycle
*/
package registry
