//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_test
package driver

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, driverModify entities.DriverModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Driver, error)
	GetByLogin(ctx context.Context, login string) (*entities.Driver, error)
	Update(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
