//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=schedule_test
package schedule

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type Repository interface {
	GetOverrideVehicle(ctx context.Context, date time.Time, region string) (*entities.VehicleRef, error)
	GetStandingVehicle(ctx context.Context, region string) (*entities.VehicleRef, error)
	UpsertOverride(ctx context.Context, overrideModify entities.RegionOverrideModify) (*entities.RegionOverride, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
