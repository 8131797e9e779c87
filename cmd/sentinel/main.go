// Command sentinel reconciles an internal billing ledger against a bank
// settlement feed and writes a forensic audit report.
//
//	sentinel generate            - write demo data into ./data
//	sentinel audit               - reconcile and write audit_reports/FORENSIC_REPORT.txt
//	sentinel version             - print build information
package main

import "os"

func main() {
	os.Exit(execute())
}
