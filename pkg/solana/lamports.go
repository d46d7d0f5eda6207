package solana

import (
	"github.com/shopspring/decimal"
)

// LamportsToSol converts an integer lamport amount to SOL. One lamport is
// exactly 1e-9 SOL, so the conversion carries at most 9 decimal places.
func LamportsToSol(lamports int64) float64 {
	return decimal.New(lamports, -9).InexactFloat64()
}

// Tps derives a transactions-per-second rate from summed performance samples,
// rounded to 2 decimal places. It returns nil when no time was sampled so
// callers can tell "no data" apart from a genuine zero rate.
func Tps(totalTransactions, totalSeconds int64) *float64 {
	if totalSeconds == 0 {
		return nil
	}

	tps := decimal.NewFromInt(totalTransactions).
		Div(decimal.NewFromInt(totalSeconds)).
		Round(2).
		InexactFloat64()

	return &tps
}
