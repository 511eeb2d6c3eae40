package interfaces

import "context"

// ILocker serializes reference allocation. Lock blocks until key is held or
// ctx ends; the returned func releases it.

//go:generate mockgen -source=locker_interface.go -destination=mocks/mock_locker_interface.go -package=mock_interfaces

type ILocker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}
