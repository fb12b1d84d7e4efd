package generator

import (
	"shopforge/internal/models"
	"shopforge/internal/sampling"
)

// SelectWhales samples floor(len(customers) * share) customer ids
// without replacement as the high-value cohort. The returned set is
// read-only data for the order and order-item stages.
func SelectWhales(src *sampling.Source, customers []models.Customer, share float64) (map[int]bool, error) {
	count := int(float64(len(customers)) * share)
	picks, err := src.Sample(len(customers), count)
	if err != nil {
		return nil, err
	}
	whales := make(map[int]bool, count)
	for _, i := range picks {
		whales[customers[i].ID] = true
	}
	return whales, nil
}
