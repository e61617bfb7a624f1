package order

import "dispatch/internal/entities"

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}
	return &entities.Order{
		ID:           o.ID,
		ExternalID:   o.ExternalID,
		Region:       o.Region,
		DeliveryDate: o.DeliveryDate,
		TimeWindow:   o.TimeWindow,
		Products:     o.Products,
		Total:        o.Total,
		IsPaid:       o.IsPaid,
		CreatedAt:    o.CreatedAt,
	}
}

func ToDomainList(orders []OrderDB) []entities.Order {
	result := make([]entities.Order, 0, len(orders))
	for i := range orders {
		result = append(result, *ToDomain(&orders[i]))
	}
	return result
}
