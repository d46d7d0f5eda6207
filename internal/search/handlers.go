package search

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	com "github.com/solwatch/gateway/internal/common"
	"github.com/solwatch/gateway/pkg/slog"
	"github.com/solwatch/gateway/pkg/solana"
	"go.uber.org/zap"
)

const (
	minQueryLength = 2

	// base58-encoded 64 byte signatures land in this length band
	signatureMinLength = 80
	signatureMaxLength = 100

	// recentSignatureCount is how many signatures an address result lists.
	recentSignatureCount = 5
)

type Service struct {
	rpc    solana.Requester
	logger *zap.SugaredLogger
}

func NewService(rpc solana.Requester) *Service {
	return &Service{
		rpc:    rpc,
		logger: slog.Get(),
	}
}

// Get godoc
//
//	@Summary		Search the chain
//	@Description	resolve a slot number, transaction signature or account address
//	@Tags			search
//	@Produce		json
//	@Param			q	query	string	true	"slot, signature or address"
//	@Success		200
//	@Failure		400
//	@Failure		404
//	@Failure		502
//	@Router			/api/solana/search [get]
func (s *Service) Get(w http.ResponseWriter, r *http.Request) {
	// parse query from url query
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if len(query) < minQueryLength {
		com.Error(w, http.StatusBadRequest, fmt.Sprintf("query must be at least %d characters", minQueryLength))
		return
	}

	result, err := s.classify(r.Context(), query)
	if err != nil {
		s.logger.Warnw("search failed", "query", query, "error", err)
		com.WriteError(w, err)
		return
	}

	err = com.Body(w, result)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// classify resolves a query in a fixed order. Digit-only strings are slot
// numbers, strings of signature length are tried as signatures and fall back
// to the address lookup, everything else is an address. The first rule that
// matches wins, so a digit-only string of signature length is still a slot.
func (s *Service) classify(ctx context.Context, query string) (any, error) {
	if isDigits(query) {
		return s.bySlot(ctx, query), nil
	}

	if n := len(query); n >= signatureMinLength && n <= signatureMaxLength {
		if result, ok := s.bySignature(ctx, query); ok {
			return result, nil
		}
	}

	return s.byAddress(ctx, query)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// bySlot reports the transaction count of the block at the given slot. A
// missing or already-pruned block reads as zero transactions.
func (s *Service) bySlot(ctx context.Context, query string) *solana.SlotResult {
	result := &solana.SlotResult{Kind: solana.SearchKindSlot}

	slot, err := strconv.ParseInt(query, 10, 64)
	if err != nil {
		// beyond any reachable slot, report it with no block
		return result
	}
	result.Slot = slot

	block, err := s.rpc.GetBlock(ctx, slot)
	if err != nil || block == nil {
		return result
	}

	result.TransactionCount = len(block.Transactions)
	return result
}

// bySignature tries the query as a transaction signature. A failed or empty
// lookup reports no match so the caller can fall through to the address path.
func (s *Service) bySignature(ctx context.Context, query string) (*solana.SignatureResult, bool) {
	tx, err := s.rpc.GetTransaction(ctx, query)
	if err != nil || tx == nil {
		return nil, false
	}

	var fee int64
	success := true
	if tx.Meta != nil {
		fee = tx.Meta.Fee
		success = tx.Meta.Err == nil
	}

	return &solana.SignatureResult{
		Kind:      solana.SearchKindSignature,
		Signature: query,
		Slot:      tx.Slot,
		FeeInSol:  solana.LamportsToSol(fee),
		Success:   success,
	}, true
}

// byAddress resolves the query as an account address. An upstream failure
// here means the query matched nothing the gateway can resolve.
func (s *Service) byAddress(ctx context.Context, query string) (*solana.AddressResult, error) {
	balance, err := s.rpc.GetBalance(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", solana.ErrNotFound, query)
	}

	sigs, err := s.rpc.GetSignaturesForAddress(ctx, query, recentSignatureCount)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", solana.ErrNotFound, query)
	}

	signatures := make([]string, 0, len(sigs))
	for _, sig := range sigs {
		signatures = append(signatures, sig.Signature)
	}

	return &solana.AddressResult{
		Kind:             solana.SearchKindAddress,
		Address:          query,
		BalanceInSol:     solana.LamportsToSol(balance),
		RecentSignatures: signatures,
	}, nil
}
