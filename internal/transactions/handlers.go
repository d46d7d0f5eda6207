package transactions

import (
	"context"
	"net/http"
	"strconv"

	com "github.com/solwatch/gateway/internal/common"
	"github.com/solwatch/gateway/pkg/slog"
	"github.com/solwatch/gateway/pkg/solana"
	"go.uber.org/zap"
)

const (
	defaultFeedLimit = 10
	maxFeedLimit     = 20
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

type FeedResponse struct {
	Items []solana.TransactionSummary `json:"items"`
}

// Get godoc
//
//	@Summary		Fetch recent transactions
//	@Description	get a feed of recent transactions sampled from the System Program
//	@Tags			transactions
//	@Produce		json
//	@Param			limit	query	int	false	"number of transactions (1-20, default 10)"
//	@Success		200	{object}	FeedResponse
//	@Failure		502
//	@Router			/api/solana/recent-transactions [get]
func (s *Service) Get(w http.ResponseWriter, r *http.Request) {
	// parse limit from url query
	limitq := r.URL.Query().Get("limit")

	limit, err := strconv.Atoi(limitq)
	if err != nil {
		limit = defaultFeedLimit
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxFeedLimit {
		limit = maxFeedLimit
	}

	items, err := s.recent(r.Context(), limit)
	if err != nil {
		s.logger.Warnw("transaction feed failed", "error", err)
		com.WriteError(w, err)
		return
	}

	err = com.Body(w, &FeedResponse{Items: items})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// recent lists up to limit signatures touching the System Program and
// resolves each one to a summary. Signatures whose detail is no longer held
// upstream are skipped rather than failing the feed.
func (s *Service) recent(ctx context.Context, limit int) ([]solana.TransactionSummary, error) {
	sigs, err := s.rpc.GetSignaturesForAddress(ctx, solana.SystemProgramID, limit)
	if err != nil {
		return nil, err
	}

	if len(sigs) > limit {
		sigs = sigs[:limit]
	}

	items := make([]solana.TransactionSummary, 0, len(sigs))
	for _, sig := range sigs {
		tx, err := s.rpc.GetTransaction(ctx, sig.Signature)
		if err != nil {
			return nil, err
		}
		if tx == nil {
			continue
		}

		var fee int64
		if tx.Meta != nil {
			fee = tx.Meta.Fee
		}

		items = append(items, solana.TransactionSummary{
			Signature: sig.Signature,
			Slot:      tx.Slot,
			FeeInSol:  solana.LamportsToSol(fee),
			Label:     Label(tx),
		})
	}

	return items, nil
}
