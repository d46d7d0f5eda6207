package transactions

import (
	"github.com/solwatch/gateway/pkg/rpc"
)

const (
	LabelSuccess     = "Success"
	LabelError       = "Error"
	LabelTransaction = "Transaction"
)

// Label derives a short display label for a transaction. The first
// instruction's program id wins when it is available as a string, otherwise
// the label reflects the execution status. It never fails; anything missing
// the expected shape degrades to a fixed fallback.
func Label(tx *rpc.TransactionDetail) string {
	if tx == nil {
		return LabelTransaction
	}

	instructions := tx.Transaction.Message.Instructions
	if len(instructions) > 0 {
		if instructions[0].ProgramId != "" {
			return instructions[0].ProgramId
		}

		// non-parsed encodings carry an index into accountKeys here, which
		// is only usable when already expanded to a string
		if programId, ok := instructions[0].ProgramIdIndex.(string); ok && programId != "" {
			return programId
		}
	}

	if tx.Meta == nil || tx.Meta.Err == nil {
		return LabelSuccess
	}

	return LabelError
}
