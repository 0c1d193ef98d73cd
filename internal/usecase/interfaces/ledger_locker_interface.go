package interfaces

import "context"

//go:generate mockgen -source=ledger_locker_interface.go -destination=mocks/mock_ledger_locker_interface.go -package=mock_interfaces

// ILedgerLocker serializes ledger writers of the same inspection across instances.
// Lock returns ErrLockNotAcquired when the lock could not be taken in time.
type ILedgerLocker interface {
	Lock(ctx context.Context, inspectionID string) (unlock func(context.Context), err error)
}
