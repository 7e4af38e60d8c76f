package port

import "time"

// Clock returns the current time. Use cases take it so tests can pin
// ThemeState timestamps.
type Clock func() time.Time
