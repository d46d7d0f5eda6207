package rpc

type (
	Response[T any] struct {
		Jsonrpc string    `json:"jsonrpc"`
		Result  T         `json:"result,omitempty"`
		Error   *RPCError `json:"error,omitempty"`
		Id      int       `json:"id"`
	}

	// ContextualResult wraps methods that return their value inside a
	// context envelope, e.g. getBalance.
	ContextualResult[T any] struct {
		Context struct {
			Slot int64 `json:"slot"`
		} `json:"context"`
		Value T `json:"value"`
	}

	PerformanceSample struct {
		Slot             int64 `json:"slot"`
		NumSlots         int64 `json:"numSlots"`
		NumTransactions  int64 `json:"numTransactions"`
		SamplePeriodSecs int64 `json:"samplePeriodSecs"`
	}

	VoteAccount struct {
		VotePubkey       string `json:"votePubkey"`
		NodePubkey       string `json:"nodePubkey"`
		ActivatedStake   int64  `json:"activatedStake"`
		Commission       int    `json:"commission"`
		LastVote         int64  `json:"lastVote"`
		EpochVoteAccount bool   `json:"epochVoteAccount"`
	}

	VoteAccounts struct {
		Current    []VoteAccount `json:"current"`
		Delinquent []VoteAccount `json:"delinquent"`
	}

	SignatureInfo struct {
		Signature string `json:"signature"`
		Slot      int64  `json:"slot"`
		BlockTime *int64 `json:"blockTime,omitempty"`
		Err       any    `json:"err,omitempty"`
		Memo      string `json:"memo,omitempty"`
	}

	Instruction struct {
		ProgramId string `json:"programId,omitempty"`
		// ProgramIdIndex is a string in jsonParsed encodings and a numeric
		// index into accountKeys otherwise.
		ProgramIdIndex any    `json:"programIdIndex,omitempty"`
		Accounts       []int  `json:"accounts,omitempty"`
		Data           string `json:"data,omitempty"`
	}

	Message struct {
		AccountKeys  []string      `json:"accountKeys,omitempty"`
		Instructions []Instruction `json:"instructions,omitempty"`
	}

	TransactionEnvelope struct {
		Signatures []string `json:"signatures,omitempty"`
		Message    Message  `json:"message"`
	}

	TransactionMeta struct {
		Err          any     `json:"err"`
		Fee          int64   `json:"fee"`
		PreBalances  []int64 `json:"preBalances,omitempty"`
		PostBalances []int64 `json:"postBalances,omitempty"`
	}

	TransactionDetail struct {
		// Slot is a pointer so a record without one stays distinguishable
		// from slot 0 all the way to the serialized response.
		Slot        *int64              `json:"slot"`
		BlockTime   *int64              `json:"blockTime,omitempty"`
		Meta        *TransactionMeta    `json:"meta,omitempty"`
		Transaction TransactionEnvelope `json:"transaction"`
	}

	BlockTransaction struct {
		Transaction TransactionEnvelope `json:"transaction"`
		Meta        *TransactionMeta    `json:"meta,omitempty"`
	}

	Block struct {
		Blockhash         string             `json:"blockhash"`
		PreviousBlockhash string             `json:"previousBlockhash"`
		ParentSlot        int64              `json:"parentSlot"`
		BlockHeight       *int64             `json:"blockHeight,omitempty"`
		BlockTime         *int64             `json:"blockTime,omitempty"`
		Transactions      []BlockTransaction `json:"transactions,omitempty"`
	}
)
