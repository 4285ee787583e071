package amm

import "context"

// ReserveReader supplies live pool state. Implemented by the sui JSON-RPC
// client; tests substitute their own.
type ReserveReader interface {
	GetReserves(ctx context.Context, poolID string) (*PoolReserves, error)
}
