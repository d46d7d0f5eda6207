package transactions

import (
	"testing"

	"github.com/solwatch/gateway/pkg/rpc"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		name string
		tx   *rpc.TransactionDetail
		want string
	}{
		{
			name: "program id from first instruction",
			tx: &rpc.TransactionDetail{
				Transaction: rpc.TransactionEnvelope{
					Message: rpc.Message{
						Instructions: []rpc.Instruction{
							{ProgramId: "Vote111111111111111111111111111111111111111"},
							{ProgramId: "ComputeBudget111111111111111111111111111111"},
						},
					},
				},
			},
			want: "Vote111111111111111111111111111111111111111",
		},
		{
			name: "string program id index",
			tx: &rpc.TransactionDetail{
				Transaction: rpc.TransactionEnvelope{
					Message: rpc.Message{
						Instructions: []rpc.Instruction{
							{ProgramIdIndex: "11111111111111111111111111111111"},
						},
					},
				},
			},
			want: "11111111111111111111111111111111",
		},
		{
			name: "numeric program id index falls back to status",
			tx: &rpc.TransactionDetail{
				Transaction: rpc.TransactionEnvelope{
					Message: rpc.Message{
						Instructions: []rpc.Instruction{
							{ProgramIdIndex: float64(3)},
						},
					},
				},
			},
			want: LabelSuccess,
		},
		{
			name: "no instructions and no meta",
			tx:   &rpc.TransactionDetail{},
			want: LabelSuccess,
		},
		{
			name: "no instructions with clean meta",
			tx: &rpc.TransactionDetail{
				Meta: &rpc.TransactionMeta{Err: nil, Fee: 5000},
			},
			want: LabelSuccess,
		},
		{
			name: "failed execution",
			tx: &rpc.TransactionDetail{
				Meta: &rpc.TransactionMeta{
					Err: map[string]any{"InstructionError": []any{float64(0), "Custom"}},
				},
			},
			want: LabelError,
		},
		{
			name: "numeric index with failed execution",
			tx: &rpc.TransactionDetail{
				Meta: &rpc.TransactionMeta{Err: "AccountNotFound"},
				Transaction: rpc.TransactionEnvelope{
					Message: rpc.Message{
						Instructions: []rpc.Instruction{
							{ProgramIdIndex: float64(0)},
						},
					},
				},
			},
			want: LabelError,
		},
		{
			name: "nil transaction",
			tx:   nil,
			want: LabelTransaction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Label(tt.tx); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}
