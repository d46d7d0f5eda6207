package solana

import (
	"testing"
)

func TestLamportsToSol(t *testing.T) {
	inputs := []int64{
		0,
		1,
		5000,
		123456789,
		5_000_000_000,
	}

	expected := []float64{
		0,
		0.000000001,
		0.000005,
		0.123456789,
		5,
	}

	for i, input := range inputs {
		output := LamportsToSol(input)
		expectedOutput := expected[i]
		if output != expectedOutput {
			t.Errorf("LamportsToSol(%d) = %v, want %v", input, output, expectedOutput)
		}
	}
}

func TestTps(t *testing.T) {
	tests := []struct {
		name         string
		transactions int64
		seconds      int64
		want         float64
		wantNil      bool
	}{
		{"two samples", 150, 90, 1.67, false},
		{"single sample", 3000, 60, 50, false},
		{"rounds up", 100, 60, 1.67, false},
		{"rounds down", 1, 3, 0.33, false},
		{"zero transactions", 0, 60, 0, false},
		{"no samples", 0, 0, 0, true},
		{"zero seconds", 100, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tps(tt.transactions, tt.seconds)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Tps(%d, %d) = %v, want nil", tt.transactions, tt.seconds, *got)
				}
				return
			}

			if got == nil {
				t.Fatalf("Tps(%d, %d) = nil, want %v", tt.transactions, tt.seconds, tt.want)
			}
			if *got != tt.want {
				t.Errorf("Tps(%d, %d) = %v, want %v", tt.transactions, tt.seconds, *got, tt.want)
			}
		})
	}
}
