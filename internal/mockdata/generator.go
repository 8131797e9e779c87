// Package mockdata writes a small demo billing ledger and bank feed with
// known anomalies: TXN-1003 is settled 500.00 short and TXN-1005 is never
// settled. TXN-1008 is the control record and matches exactly.
package mockdata

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

const (
	SalesFile = "sales_log.csv"
	BankFile  = "bank_feed.csv"
)

var salesRecords = [][]string{
	{"txn_id", "client", "billed_amount", "timestamp"},
	{"TXN-1001", "Acme Corp", "12000", "2025-12-01 09:15:00"},
	{"TXN-1002", "GlobalTech Inc", "8500", "2025-12-02 11:30:00"},
	{"TXN-1003", "Beta Industries", "5000", "2025-12-03 14:20:00"},
	{"TXN-1004", "Omega Solutions", "15000", "2025-12-04 10:45:00"},
	{"TXN-1005", "Phantom LLC", "7200", "2025-12-05 16:00:00"},
	{"TXN-1006", "Delta Enterprises", "9800", "2025-12-06 13:10:00"},
	{"TXN-1007", "Epsilon Group", "11500", "2025-12-07 08:50:00"},
	{"TXN-1008", "Control Co", "6000", "2025-12-08 15:30:00"},
	{"TXN-1009", "Zenith Partners", "13200", "2025-12-09 12:00:00"},
	{"TXN-1010", "Vortex Systems", "10500", "2025-12-10 17:20:00"},
}

var bankRecords = [][]string{
	{"txn_id", "bank_ref", "received_amount", "settled_date"},
	{"TXN-1001", "BNK-REF-A001", "12000", "2025-12-01"},
	{"TXN-1002", "BNK-REF-A002", "8500", "2025-12-02"},
	{"TXN-1003", "BNK-REF-A003", "4500", "2025-12-03"},
	{"TXN-1004", "BNK-REF-A004", "15000", "2025-12-04"},
	{"TXN-1006", "BNK-REF-A006", "9800", "2025-12-06"},
	{"TXN-1007", "BNK-REF-A007", "11500", "2025-12-07"},
	{"TXN-1008", "BNK-REF-A008", "6000", "2025-12-08"},
	{"TXN-1009", "BNK-REF-A009", "13200", "2025-12-09"},
	{"TXN-1010", "BNK-REF-A010", "10500", "2025-12-10"},
}

// Generate writes both demo files into dir and returns their paths.
func Generate(dir string) (salesPath, bankPath string, err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create data dir %s: %w", dir, err)
	}

	salesPath = filepath.Join(dir, SalesFile)
	if err := writeCSV(salesPath, salesRecords); err != nil {
		return "", "", err
	}
	bankPath = filepath.Join(dir, BankFile)
	if err := writeCSV(bankPath, bankRecords); err != nil {
		return "", "", err
	}
	return salesPath, bankPath, nil
}

func writeCSV(path string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
