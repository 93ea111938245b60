package services

import "os"

// LedgerMode selects how multi-record writes are applied.
//
// "legacy" issues the writes sequentially and independently, matching the
// system this one replaces; concurrent orders for the last unit of stock
// can both be accepted, and concurrent budget updates can lose writes.
// "strict" applies each ledger unit as a single conditional transaction.
type LedgerMode string

const (
	LedgerModeLegacy LedgerMode = "legacy"
	LedgerModeStrict LedgerMode = "strict"
)

// LedgerModeFromEnv reads LEDGER_MODE; legacy is the default because this
// service is run side by side with the system it migrates away from.
func LedgerModeFromEnv() LedgerMode {
	if os.Getenv("LEDGER_MODE") == string(LedgerModeStrict) {
		return LedgerModeStrict
	}
	return LedgerModeLegacy
}
