package vehicle

import "dispatch/internal/entities"

func ToDomain(v *VehicleDB) *entities.Vehicle {
	if v == nil {
		return nil
	}
	return &entities.Vehicle{
		ID:          v.ID,
		Name:        v.Name,
		Capacity:    v.Capacity,
		IsActive:    v.IsActive,
		IsAvailable: v.IsAvailable,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func ToAssignableDomainList(vehicles []AssignableVehicleDB) []entities.AssignableVehicle {
	result := make([]entities.AssignableVehicle, 0, len(vehicles))
	for i := range vehicles {
		result = append(result, entities.AssignableVehicle{
			Vehicle:         *ToDomain(&vehicles[i].VehicleDB),
			PrimaryDriverID: vehicles[i].PrimaryDriverID,
		})
	}
	return result
}
