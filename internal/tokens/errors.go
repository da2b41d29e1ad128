package tokens

import "errors"

// ErrInvalidPrecision is returned when a token declares a negative precision
// or one past amm.MaxPrecision.
var ErrInvalidPrecision = errors.New("invalid token precision")

// ErrNoTokens indicates that the registry file holds neither the requested
// network nor the mainnet fallback section.
var ErrNoTokens = errors.New("no tokens for network")

// ErrMalformed wraps YAML decode failures of a registry file.
var ErrMalformed = errors.New("malformed tokens file")
