package usecase_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phoenixdev-512/Automated-Data-Integrity-Anomaly-Protocol/internal/domain"
	"github.com/phoenixdev-512/Automated-Data-Integrity-Anomaly-Protocol/internal/usecase"
)

var baseTime = time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC)

func billed(id, amount string) domain.BilledTransaction {
	return domain.BilledTransaction{
		ID:           id,
		Client:       "Client " + id,
		BilledAmount: decimal.RequireFromString(amount),
		BilledAt:     baseTime,
	}
}

func settled(id, amount string) domain.SettlementRecord {
	return domain.SettlementRecord{
		ID:             id,
		BankReference:  "BNK-" + id,
		ReceivedAmount: decimal.RequireFromString(amount),
		SettledAt:      baseTime.Truncate(24 * time.Hour),
	}
}

func ids(entries []domain.ReconciledEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Billed.ID)
	}
	return out
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got.String())
}

// sentinelDataset mirrors the demo data: TXN-1003 short by 500, TXN-1005 unsettled.
func sentinelDataset() ([]domain.BilledTransaction, []domain.SettlementRecord) {
	b := []domain.BilledTransaction{
		billed("TXN-1001", "12000"),
		billed("TXN-1002", "8500"),
		billed("TXN-1003", "5000"),
		billed("TXN-1004", "15000"),
		billed("TXN-1005", "7200"),
		billed("TXN-1006", "9800"),
		billed("TXN-1007", "11500"),
		billed("TXN-1008", "6000"),
		billed("TXN-1009", "13200"),
		billed("TXN-1010", "10500"),
	}
	s := []domain.SettlementRecord{
		settled("TXN-1001", "12000"),
		settled("TXN-1002", "8500"),
		settled("TXN-1003", "4500"),
		settled("TXN-1004", "15000"),
		settled("TXN-1006", "9800"),
		settled("TXN-1007", "11500"),
		settled("TXN-1008", "6000"),
		settled("TXN-1009", "13200"),
		settled("TXN-1010", "10500"),
	}
	return b, s
}

func TestReconcile_Scenarios(t *testing.T) {
	tests := []struct {
		name          string
		billed        []domain.BilledTransaction
		settlements   []domain.SettlementRecord
		wantMissing   []string
		wantVariances []string
		wantMatched   int
	}{
		{
			name:        "exact match",
			billed:      []domain.BilledTransaction{billed("TXN-1001", "12000")},
			settlements: []domain.SettlementRecord{settled("TXN-1001", "12000")},
			wantMatched: 1,
		},
		{
			name:          "short settlement is a variance",
			billed:        []domain.BilledTransaction{billed("TXN-1003", "5000")},
			settlements:   []domain.SettlementRecord{settled("TXN-1003", "4500")},
			wantVariances: []string{"TXN-1003"},
		},
		{
			name:        "no settlement is missing",
			billed:      []domain.BilledTransaction{billed("TXN-1005", "7200")},
			wantMissing: []string{"TXN-1005"},
		},
		{
			name:          "overpayment is a negative variance",
			billed:        []domain.BilledTransaction{billed("TXN-2001", "100.00")},
			settlements:   []domain.SettlementRecord{settled("TXN-2001", "100.25")},
			wantVariances: []string{"TXN-2001"},
		},
		{
			name:        "trailing zeros are not a variance",
			billed:      []domain.BilledTransaction{billed("TXN-2002", "250.5")},
			settlements: []domain.SettlementRecord{settled("TXN-2002", "250.50")},
			wantMatched: 1,
		},
		{
			name:        "settlements without a bill are ignored",
			billed:      []domain.BilledTransaction{billed("TXN-3001", "10")},
			settlements: []domain.SettlementRecord{settled("TXN-3001", "10"), settled("TXN-9999", "75")},
			wantMatched: 1,
		},
		{
			name: "empty inputs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs, err := usecase.Reconcile(tt.billed, tt.settlements)
			require.NoError(t, err)

			assert.Equal(t, len(tt.billed), fs.TotalAnalyzed)
			assert.Equal(t, tt.wantMatched, fs.MatchedCount)
			assert.ElementsMatch(t, tt.wantMissing, ids(fs.Missing))
			assert.ElementsMatch(t, tt.wantVariances, ids(fs.Variances))
			assert.NotNil(t, fs.Missing)
			assert.NotNil(t, fs.Variances)
		})
	}
}

func TestReconcile_VarianceIsExactAndSigned(t *testing.T) {
	fs, err := usecase.Reconcile(
		[]domain.BilledTransaction{billed("TXN-1003", "5000.00"), billed("TXN-2001", "0.30"), billed("TXN-2002", "100")},
		[]domain.SettlementRecord{settled("TXN-1003", "4500.00"), settled("TXN-2001", "0.10"), settled("TXN-2002", "100.01")},
	)
	require.NoError(t, err)
	require.Len(t, fs.Variances, 3)

	assertDecimal(t, "500.00", *fs.Variances[0].Variance)
	assert.Equal(t, "500.00", fs.Variances[0].Variance.StringFixed(2))
	// 0.3 - 0.1 is exactly 0.2, unlike float64.
	assertDecimal(t, "0.2", *fs.Variances[1].Variance)
	assertDecimal(t, "-0.01", *fs.Variances[2].Variance)

	for _, e := range fs.Variances {
		assert.Equal(t, domain.ClassificationVariance, e.Classification())
		require.NotNil(t, e.Settlement)
	}
}

func TestReconcile_SentinelDataset(t *testing.T) {
	b, s := sentinelDataset()

	fs, err := usecase.Reconcile(b, s)
	require.NoError(t, err)

	assert.Equal(t, 10, fs.TotalAnalyzed)
	assert.Equal(t, 8, fs.MatchedCount)
	assert.Equal(t, []string{"TXN-1005"}, ids(fs.Missing))
	assert.Equal(t, []string{"TXN-1003"}, ids(fs.Variances))
	assert.Equal(t, 2, fs.IssueCount())
	assertDecimal(t, "7200.00", fs.RevenueAtRisk())
	assertDecimal(t, "500.00", fs.RevenueLeakage())

	missing := fs.Missing[0]
	assert.Nil(t, missing.Settlement)
	assert.Nil(t, missing.Variance)
	assert.Equal(t, domain.ClassificationMissing, missing.Classification())
}

func TestReconcile_PreservesBilledOrder(t *testing.T) {
	b := []domain.BilledTransaction{
		billed("Z-9", "10"), billed("A-1", "10"), billed("M-5", "10"),
		billed("Y-8", "20"), billed("B-2", "20"), billed("N-6", "20"),
	}
	s := []domain.SettlementRecord{
		settled("N-6", "19"), settled("B-2", "18"), settled("Y-8", "17"),
	}

	fs, err := usecase.Reconcile(b, s)
	require.NoError(t, err)

	assert.Equal(t, []string{"Z-9", "A-1", "M-5"}, ids(fs.Missing))
	assert.Equal(t, []string{"Y-8", "B-2", "N-6"}, ids(fs.Variances))
}

func TestReconcile_DuplicateSettlementLastSeenWins(t *testing.T) {
	b := []domain.BilledTransaction{billed("TXN-1", "100"), billed("TXN-2", "50")}
	s := []domain.SettlementRecord{
		settled("TXN-1", "90"),
		settled("TXN-2", "50"),
		settled("TXN-1", "100"),
		settled("TXN-2", "40"),
		settled("TXN-1", "100"),
	}

	fs, err := usecase.Reconcile(b, s)
	require.NoError(t, err)

	assert.Equal(t, 1, fs.MatchedCount)
	assert.Equal(t, []string{"TXN-2"}, ids(fs.Variances))
	assertDecimal(t, "10", *fs.Variances[0].Variance)
	assert.Equal(t, []string{"TXN-1", "TXN-2"}, fs.DuplicateSettlementIDs)
}

func TestReconcile_InvalidRecords(t *testing.T) {
	tests := []struct {
		name        string
		billed      []domain.BilledTransaction
		settlements []domain.SettlementRecord
		wantErr     error
		wantSource  string
		wantIndex   int
	}{
		{
			name:       "billed record without id",
			billed:     []domain.BilledTransaction{billed("TXN-1", "1"), billed("  ", "2")},
			wantErr:    domain.ErrInvalidRecord,
			wantSource: domain.SourceBilling,
			wantIndex:  2,
		},
		{
			name:        "settlement record without id",
			billed:      []domain.BilledTransaction{billed("TXN-1", "1")},
			settlements: []domain.SettlementRecord{settled("", "1")},
			wantErr:     domain.ErrInvalidRecord,
			wantSource:  domain.SourceSettlement,
			wantIndex:   1,
		},
		{
			name:       "duplicate billed id",
			billed:     []domain.BilledTransaction{billed("TXN-1", "1"), billed("TXN-2", "1"), billed("TXN-1", "3")},
			wantErr:    domain.ErrDuplicateRecord,
			wantSource: domain.SourceBilling,
			wantIndex:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs, err := usecase.Reconcile(tt.billed, tt.settlements)
			assert.Nil(t, fs)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, domain.ErrInvalidRecord)

			var recErr *domain.RecordError
			require.ErrorAs(t, err, &recErr)
			assert.Equal(t, tt.wantSource, recErr.Source)
			assert.Equal(t, tt.wantIndex, recErr.Index)

			concurrent, err := usecase.ReconcileConcurrent(context.Background(), tt.billed, tt.settlements, 4)
			assert.Nil(t, concurrent)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func randomDataset(r *rand.Rand, n int) ([]domain.BilledTransaction, []domain.SettlementRecord) {
	var b []domain.BilledTransaction
	var s []domain.SettlementRecord
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("TXN-%05d", i)
		amount := decimal.New(r.Int63n(1_000_000), -2)
		b = append(b, domain.BilledTransaction{ID: id, BilledAmount: amount, BilledAt: baseTime})
		switch r.Intn(3) {
		case 0: // missing
		case 1:
			s = append(s, domain.SettlementRecord{ID: id, ReceivedAmount: amount})
		default:
			s = append(s, domain.SettlementRecord{ID: id, ReceivedAmount: amount.Sub(decimal.New(r.Int63n(500)+1, -2))})
		}
	}
	r.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
	return b, s
}

func TestReconcile_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for _, n := range []int{0, 1, 2, 7, 100, 1000} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			b, s := randomDataset(r, n)

			fs, err := usecase.Reconcile(b, s)
			require.NoError(t, err)

			// Partition
			assert.Equal(t, len(b), len(fs.Missing)+len(fs.Variances)+fs.MatchedCount)
			assert.Equal(t, len(b), fs.TotalAnalyzed)

			// Order preservation
			position := make(map[string]int, len(b))
			for i, tx := range b {
				position[tx.ID] = i
			}
			for _, group := range [][]domain.ReconciledEntry{fs.Missing, fs.Variances} {
				for i := 1; i < len(group); i++ {
					assert.Less(t, position[group[i-1].Billed.ID], position[group[i].Billed.ID])
				}
			}

			// Zero-variance exclusion
			for _, e := range fs.Variances {
				require.NotNil(t, e.Variance)
				assert.False(t, e.Variance.IsZero())
			}

			// Idempotence
			again, err := usecase.Reconcile(b, s)
			require.NoError(t, err)
			assert.Equal(t, fs, again)

			// Concurrent classification agrees with the single pass
			for _, workers := range []int{2, 3, 8} {
				concurrent, err := usecase.ReconcileConcurrent(context.Background(), b, s, workers)
				require.NoError(t, err)
				assert.Equal(t, fs, concurrent, "workers=%d", workers)
			}
		})
	}
}

func TestReconcileConcurrent_Cancelled(t *testing.T) {
	b, s := randomDataset(rand.New(rand.NewSource(7)), 50)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fs, err := usecase.ReconcileConcurrent(ctx, b, s, 4)
	assert.Nil(t, fs)
	assert.ErrorIs(t, err, context.Canceled)
}

func BenchmarkReconcile(b *testing.B) {
	billedTxs, settlements := randomDataset(rand.New(rand.NewSource(1)), 10_000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := usecase.Reconcile(billedTxs, settlements); err != nil {
			b.Fatalf("Error in benchmark: %v", err)
		}
	}
}
