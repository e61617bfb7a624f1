package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/entities"
)

type Schedule struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Schedule {
	return &Schedule{
		repository: repository,
		txManager:  txManager,
	}
}

// ResolveVehicleForRegion возвращает машину, обслуживающую регион в
// конкретный день: сначала override на (день, регион), иначе постоянное
// расписание. Даты сравниваются с точностью до дня — override создается
// на календарный день, а не на момент времени.
func (s *Schedule) ResolveVehicleForRegion(ctx context.Context, region string, date time.Time) (*entities.VehicleRef, error) {
	if !isValidRegion(region) {
		return nil, ErrInvalidRegion
	}
	if date.IsZero() {
		return nil, ErrInvalidDate
	}

	day := Day(date)

	vehicle, err := s.repository.GetOverrideVehicle(ctx, day, region)
	if err == nil {
		return vehicle, nil
	}
	if !errors.Is(err, ErrOverrideNotFound) {
		return nil, fmt.Errorf("get override vehicle: %w", err)
	}

	vehicle, err = s.repository.GetStandingVehicle(ctx, region)
	if err != nil {
		if errors.Is(err, ErrStandingNotFound) {
			return nil, ErrRegionNotServed
		}
		return nil, fmt.Errorf("get standing vehicle: %w", err)
	}

	return vehicle, nil
}

// UpsertOverride создает override на (день, регион) или обновляет
// существующий: активный override на пару всегда один.
func (s *Schedule) UpsertOverride(ctx context.Context, overrideModify entities.RegionOverrideModify) (*entities.RegionOverride, error) {
	if overrideModify.Date == nil ||
		overrideModify.Region == nil ||
		overrideModify.VehicleID == nil ||
		overrideModify.CreatedBy == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidRegion(*overrideModify.Region) {
		return nil, ErrInvalidRegion
	}
	if overrideModify.Date.IsZero() {
		return nil, ErrInvalidDate
	}
	if !isValidVehicleID(*overrideModify.VehicleID) {
		return nil, ErrInvalidVehicleID
	}

	day := Day(*overrideModify.Date)
	overrideModify.Date = &day

	var override *entities.RegionOverride
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		upserted, err := s.repository.UpsertOverride(ctx, overrideModify)
		if err != nil {
			return fmt.Errorf("upsert override: %w", err)
		}
		override = upserted
		return nil
	})
	if err != nil {
		return nil, err
	}

	return override, nil
}

// Day обрезает время до полуночи UTC. Вся логика движка работает с датами
// дневной гранулярности, поэтому нормализация живет здесь, рядом с resolver.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
