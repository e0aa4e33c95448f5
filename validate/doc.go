// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package validate checks volunteer and victim form submissions.

Both forms trim every field and require a contact of 10 to 15 digits.
The volunteer form additionally resolves the "Others" type to the free-text
custom type. Failures are returned as *ValidationError carrying the flash
variant the page should use (success, warning or danger).
*/
package validate
