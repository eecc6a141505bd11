// ReelMatch - Similar Movie Recommendations with Poster Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package poster resolves TMDB movie ids to poster image URLs.

For each id the fetcher requests

	GET {base_url}/{id}?api_key={key}

and builds {image_base_url}/{image_size}{poster_path} from the response.
Any failure (timeout, non-200 status, undecodable body, missing poster,
open circuit) yields the configured placeholder URL instead, so callers
always get one URL per id in input order.

Each lookup runs in its own goroutine with:

  - a courtesy delay before the request, applied per task in parallel
  - an optional shared token bucket (golang.org/x/time/rate)
  - an optional bound on in-flight requests per batch
  - its own request timeout, so one slow id never cancels the others
  - a shared sony/gobreaker circuit breaker that fails fast while TMDB is down;
    only TMDB-side faults (transport errors, timeouts, 5xx, 429) count
    against it, never a 404 for an unknown id

Every batch opens its own connection pool and closes idle connections when
the batch completes. The API key never appears in logs.
*/
package poster
