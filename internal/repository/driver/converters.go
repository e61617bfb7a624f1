package driver

import "dispatch/internal/entities"

func ToDomain(d *DriverDB) *entities.Driver {
	if d == nil {
		return nil
	}
	return &entities.Driver{
		ID:        d.ID,
		Name:      d.Name,
		Login:     d.Login,
		PinHash:   d.PinHash,
		Status:    entities.DriverStatusType(d.Status),
		IsAdmin:   d.IsAdmin,
		IsActive:  d.IsActive,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func FromDomainModify(d *entities.DriverModify) *DriverModifyDB {
	if d == nil {
		return nil
	}
	modifyDB := &DriverModifyDB{
		ID:      d.ID,
		Name:    d.Name,
		Login:   d.Login,
		PinHash: d.PinHash,
		IsAdmin: d.IsAdmin,
	}

	if d.Status != nil {
		status := d.Status.String()
		modifyDB.Status = &status
	}

	return modifyDB
}
