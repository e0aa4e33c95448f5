// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists the resource list as one JSON document.

The whole list lives under a single key (drrms_resources by default) and is
rewritten on every save:

	s := store.New(conn, "drrms_resources")
	list, err := s.Load(ctx)
	err = s.Save(ctx, list)

Load treats a missing key or a value that is not valid JSON as an empty
list. Database and encoding errors wrap ErrStorage and are never retried.
*/
package store
