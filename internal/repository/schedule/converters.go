package schedule

import "dispatch/internal/entities"

func ToDomain(o *RegionOverrideDB) *entities.RegionOverride {
	if o == nil {
		return nil
	}
	return &entities.RegionOverride{
		ID:        o.ID,
		Date:      o.Date,
		Region:    o.Region,
		VehicleID: o.VehicleID,
		CreatedBy: o.CreatedBy,
		Notes:     o.Notes,
		IsActive:  o.IsActive,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
