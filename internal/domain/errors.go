package domain

import "errors"

// ErrNotFound means no data exists for the requested asset - empty
// history or a symbol outside the allow-list. The api layer maps it to
// a 404. Everything else is a 500.
var ErrNotFound = errors.New("not found")

// ErrSourceUnavailable means the external price api is unconfigured,
// unreachable, or timed out. It never reaches an end user - the
// fallback chain resolves to the next tier instead.
var ErrSourceUnavailable = errors.New("price source unavailable")

// ErrStoreUnavailable means the db could not serve the query.
var ErrStoreUnavailable = errors.New("store unavailable")
