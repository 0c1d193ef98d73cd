package interfaces

import "errors"

var (
	// ErrVersionConflict is returned by versioned writes when the inspection changed
	// since it was read.
	ErrVersionConflict = errors.New("inspection version conflict")
	// ErrDuplicateKey is returned by creates when the unique key is already taken.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrLockNotAcquired is returned by ILedgerLocker when another writer holds the lock.
	ErrLockNotAcquired = errors.New("ledger lock not acquired")
)
