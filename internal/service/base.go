// Package service composes the token registry, a reserve source and the amm
// calculator into swap quotes ready to embed in a transaction payload.
package service

import "log/slog"

// BaseService provides common dependencies for service types.
type BaseService struct {
	logger *slog.Logger
}
