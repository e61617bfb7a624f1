package assignment

import "dispatch/internal/entities"

func ToDomain(a *AssignmentDB) *entities.Assignment {
	if a == nil {
		return nil
	}
	return &entities.Assignment{
		ID:           a.ID,
		OrderID:      a.OrderID,
		VehicleID:    a.VehicleID,
		DriverID:     a.DriverID,
		DeliveryDate: a.DeliveryDate,
		TimeWindow:   a.TimeWindow,
		Status:       entities.AssignmentStatusType(a.Status),
		AcceptedAt:   a.AcceptedAt,
		StartedAt:    a.StartedAt,
		CompletedAt:  a.CompletedAt,
		DriverNotes:  a.DriverNotes,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func FromDomainModify(a *entities.AssignmentModify) *AssignmentModifyDB {
	if a == nil {
		return nil
	}
	modifyDB := &AssignmentModifyDB{
		ID:           a.ID,
		OrderID:      a.OrderID,
		VehicleID:    a.VehicleID,
		DriverID:     a.DriverID,
		DeliveryDate: a.DeliveryDate,
		TimeWindow:   a.TimeWindow,
		AcceptedAt:   a.AcceptedAt,
		StartedAt:    a.StartedAt,
		CompletedAt:  a.CompletedAt,
		DriverNotes:  a.DriverNotes,
	}

	if a.Status != nil {
		status := a.Status.String()
		modifyDB.Status = &status
	}

	return modifyDB
}
