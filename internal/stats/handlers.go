package stats

import (
	"context"
	"net/http"
	"time"

	com "github.com/solwatch/gateway/internal/common"
	"github.com/solwatch/gateway/pkg/slog"
	"github.com/solwatch/gateway/pkg/solana"
	"go.uber.org/zap"
)

const (
	// performanceSampleCount is how many one-minute samples back the tps
	// average looks.
	performanceSampleCount = 30

	// blockHeightProbeDelay separates the two block height reads that
	// approximate recent block production.
	blockHeightProbeDelay = 50 * time.Millisecond
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
//	@Summary		Fetch network stats
//	@Description	get the current tps, slot, validator count and recent block production
//	@Tags			stats
//	@Produce		json
//	@Success		200	{object}	solana.NetworkStats
//	@Failure		502
//	@Router			/api/solana/stats [get]
func (s *Service) Get(w http.ResponseWriter, r *http.Request) {
	stats, err := s.compute(r.Context())
	if err != nil {
		s.logger.Warnw("stats aggregation failed", "error", err)
		com.WriteError(w, err)
		return
	}

	err = com.Body(w, stats)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// compute issues the stat fetches one at a time and folds them into a
// NetworkStats. The reads are not atomic, so slot, samples, vote accounts and
// heights may reflect slightly different upstream moments.
func (s *Service) compute(ctx context.Context) (*solana.NetworkStats, error) {
	slot, err := s.rpc.GetSlot(ctx)
	if err != nil {
		return nil, err
	}

	samples, err := s.rpc.GetRecentPerformanceSamples(ctx, performanceSampleCount)
	if err != nil {
		return nil, err
	}

	var totalTxs, totalSecs int64
	for _, sample := range samples {
		totalTxs += sample.NumTransactions
		totalSecs += sample.SamplePeriodSecs
	}

	voteAccounts, err := s.rpc.GetVoteAccounts(ctx)
	if err != nil {
		return nil, err
	}
	validators := len(voteAccounts.Current) + len(voteAccounts.Delinquent)

	height1, err := s.rpc.GetBlockHeight(ctx)
	if err != nil {
		return nil, err
	}

	time.Sleep(blockHeightProbeDelay)

	height2, err := s.rpc.GetBlockHeight(ctx)
	if err != nil {
		return nil, err
	}

	// the two reads can land on nodes that disagree, never report negative
	recentBlocks := height2 - height1
	if recentBlocks < 0 {
		recentBlocks = 0
	}

	return &solana.NetworkStats{
		Tps:          solana.Tps(totalTxs, totalSecs),
		Slot:         slot,
		Validators:   validators,
		RecentBlocks: recentBlocks,
	}, nil
}
