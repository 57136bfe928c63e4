package queries

import (
	"context"

	"freight/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

type GetStatusDistributionQueryHandler struct {
	db *gorm.DB
}

func NewGetStatusDistributionQueryHandler(db *gorm.DB) GetStatusDistributionQueryHandler {
	return GetStatusDistributionQueryHandler{db: db}
}

// Handle returns one entry per shipment status in lifecycle order, including
// statuses no shipment currently has.
func (h GetStatusDistributionQueryHandler) Handle(
	ctx context.Context,
	query GetStatusDistributionQuery,
) ([]StatusCount, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []struct {
		Status string
		Total  int64
	}
	err := h.db.WithContext(ctx).Table("shipments").
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}

	statuses := shipment.Statuses()
	distribution := make([]StatusCount, 0, len(statuses))
	for _, status := range statuses {
		distribution = append(distribution, StatusCount{Status: status.String(), Count: counts[status.String()]})
	}
	return distribution, nil
}
