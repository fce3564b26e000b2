// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis admin-token cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for admin token entries; tokens expire
// from the cache in step with their JWT expiry.
const AuthCacheTTL = 12 * time.Hour

// SessionCachePrefix is the prefix used for booking-session keys.
const SessionCachePrefix = "bookingSession:"
