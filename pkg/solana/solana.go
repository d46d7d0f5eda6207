package solana

import (
	"context"
	"errors"

	"github.com/solwatch/gateway/pkg/rpc"
)

// SystemProgramID is the address of the System Program. It is involved in
// nearly every transfer, which makes its signature list a usable sample of
// recent network activity.
const SystemProgramID = "11111111111111111111111111111111"

// ErrNotFound marks a search query that could not be resolved to a slot,
// signature or address.
var ErrNotFound = errors.New("not found or invalid query")

// Requester is the surface of the upstream node the gateway consumes.
type Requester interface {
	GetSlot(ctx context.Context) (int64, error)
	GetBlockHeight(ctx context.Context) (int64, error)
	GetRecentPerformanceSamples(ctx context.Context, limit int) ([]rpc.PerformanceSample, error)
	GetVoteAccounts(ctx context.Context) (*rpc.VoteAccounts, error)
	GetSignaturesForAddress(ctx context.Context, address string, limit int) ([]rpc.SignatureInfo, error)
	GetTransaction(ctx context.Context, signature string) (*rpc.TransactionDetail, error)
	GetBlock(ctx context.Context, slot int64) (*rpc.Block, error)
	GetBalance(ctx context.Context, address string) (int64, error)
}

var _ Requester = (*rpc.Client)(nil)
