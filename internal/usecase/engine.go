package usecase

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/phoenixdev-512/Automated-Data-Integrity-Anomaly-Protocol/internal/domain"
)

// Reconcile left-joins billed transactions against settlements by id and
// classifies every billed record as missing, variance or matched.
// It performs no I/O and returns no partial result on error.
func Reconcile(billed []domain.BilledTransaction, settlements []domain.SettlementRecord) (*domain.FindingSet, error) {
	lookup, duplicates, err := buildSettlementLookup(settlements)
	if err != nil {
		return nil, err
	}
	if err := validateBilled(billed); err != nil {
		return nil, err
	}

	fs := newFindingSet(len(billed), duplicates)
	for _, tx := range billed {
		fs.add(classify(tx, lookup))
	}
	return fs.FindingSet, nil
}

// ReconcileConcurrent produces the same FindingSet as Reconcile but classifies
// partitions of the billed sequence in parallel. The settlement lookup is
// fully built before any worker starts and is only read afterwards.
func ReconcileConcurrent(ctx context.Context, billed []domain.BilledTransaction, settlements []domain.SettlementRecord, workers int) (*domain.FindingSet, error) {
	if workers <= 1 || len(billed) < 2 {
		return Reconcile(billed, settlements)
	}

	lookup, duplicates, err := buildSettlementLookup(settlements)
	if err != nil {
		return nil, err
	}
	if err := validateBilled(billed); err != nil {
		return nil, err
	}

	if workers > len(billed) {
		workers = len(billed)
	}
	chunk := (len(billed) + workers - 1) / workers
	classified := make([]domain.ReconciledEntry, len(billed))

	g, gctx := errgroup.WithContext(ctx)
	for start := 0; start < len(billed); start += chunk {
		start, end := start, min(start+chunk, len(billed))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				classified[i] = classify(billed[i], lookup)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Merge in billed order.
	fs := newFindingSet(len(billed), duplicates)
	for _, entry := range classified {
		fs.add(entry)
	}
	return fs.FindingSet, nil
}

type findingSetBuilder struct {
	*domain.FindingSet
}

func newFindingSet(total int, duplicates []string) findingSetBuilder {
	return findingSetBuilder{&domain.FindingSet{
		TotalAnalyzed:          total,
		Missing:                make([]domain.ReconciledEntry, 0),
		Variances:              make([]domain.ReconciledEntry, 0),
		DuplicateSettlementIDs: duplicates,
	}}
}

func (b findingSetBuilder) add(entry domain.ReconciledEntry) {
	switch entry.Classification() {
	case domain.ClassificationMissing:
		b.Missing = append(b.Missing, entry)
	case domain.ClassificationVariance:
		b.Variances = append(b.Variances, entry)
	default:
		b.MatchedCount++
	}
}

func classify(tx domain.BilledTransaction, lookup map[string]domain.SettlementRecord) domain.ReconciledEntry {
	settlement, ok := lookup[normalizeID(tx.ID)]
	if !ok {
		return domain.ReconciledEntry{Billed: tx}
	}
	variance := tx.BilledAmount.Sub(settlement.ReceivedAmount)
	return domain.ReconciledEntry{
		Billed:     tx,
		Settlement: &settlement,
		Variance:   &variance,
	}
}

// buildSettlementLookup indexes settlements by id. Later records replace
// earlier ones with the same id; such ids are returned in first-seen order.
func buildSettlementLookup(settlements []domain.SettlementRecord) (map[string]domain.SettlementRecord, []string, error) {
	lookup := make(map[string]domain.SettlementRecord, len(settlements))
	var duplicates []string
	reported := make(map[string]bool)

	for i, s := range settlements {
		id := normalizeID(s.ID)
		if id == "" {
			return nil, nil, &domain.RecordError{Source: domain.SourceSettlement, Index: i + 1, Err: domain.ErrInvalidRecord}
		}
		if _, seen := lookup[id]; seen && !reported[id] {
			duplicates = append(duplicates, id)
			reported[id] = true
		}
		lookup[id] = s
	}
	return lookup, duplicates, nil
}

func validateBilled(billed []domain.BilledTransaction) error {
	seen := make(map[string]int, len(billed))
	for i, tx := range billed {
		id := normalizeID(tx.ID)
		if id == "" {
			return &domain.RecordError{Source: domain.SourceBilling, Index: i + 1, Err: domain.ErrInvalidRecord}
		}
		if _, dup := seen[id]; dup {
			return &domain.RecordError{Source: domain.SourceBilling, Index: i + 1, ID: id, Err: domain.ErrDuplicateRecord}
		}
		seen[id] = i
	}
	return nil
}

func normalizeID(id string) string {
	return strings.TrimSpace(id)
}
