package solana

// NetworkStats is the stats endpoint payload. Tps is nil when the node
// returned no usable performance samples, which is "no data" rather than a
// zero rate.
type NetworkStats struct {
	Tps          *float64 `json:"tps"`
	Slot         int64    `json:"slot"`
	Validators   int      `json:"validators"`
	RecentBlocks int64    `json:"recentBlocks"`
}

// TransactionSummary is a single entry of the recent transaction feed. Slot
// is nil when the upstream record carried none.
type TransactionSummary struct {
	Signature string  `json:"signature"`
	Slot      *int64  `json:"slot"`
	FeeInSol  float64 `json:"feeInSol"`
	Label     string  `json:"label"`
}

type SearchKind string

const (
	SearchKindSlot      SearchKind = "slot"
	SearchKindSignature SearchKind = "signature"
	SearchKindAddress   SearchKind = "address"
)

// SlotResult is the search payload for a query that parsed as a slot number.
type SlotResult struct {
	Kind             SearchKind `json:"kind"`
	Slot             int64      `json:"slot"`
	TransactionCount int        `json:"transactionCount"`
}

// SignatureResult is the search payload for a query that resolved to a
// transaction signature.
type SignatureResult struct {
	Kind      SearchKind `json:"kind"`
	Signature string     `json:"signature"`
	Slot      *int64     `json:"slot"`
	FeeInSol  float64    `json:"feeInSol"`
	Success   bool       `json:"success"`
}

// AddressResult is the search payload for a query that resolved to an
// account address.
type AddressResult struct {
	Kind             SearchKind `json:"kind"`
	Address          string     `json:"address"`
	BalanceInSol     float64    `json:"balanceInSol"`
	RecentSignatures []string   `json:"recentSignatures"`
}
