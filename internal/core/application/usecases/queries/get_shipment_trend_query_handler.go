package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type GetShipmentTrendQueryHandler struct {
	db *gorm.DB
}

func NewGetShipmentTrendQueryHandler(db *gorm.DB) GetShipmentTrendQueryHandler {
	return GetShipmentTrendQueryHandler{db: db}
}

// Handle buckets creation timestamps in Go so the query stays the same on
// every supported store. Buckets are oldest first and always complete.
func (h GetShipmentTrendQueryHandler) Handle(ctx context.Context, query GetShipmentTrendQuery) ([]MonthlyCount, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := query.Now()
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	first := current.AddDate(0, -(query.Months() - 1), 0)
	end := current.AddDate(0, 1, 0)

	trend := make([]MonthlyCount, query.Months())
	index := make(map[time.Time]int, query.Months())
	for i := range trend {
		month := first.AddDate(0, i, 0)
		trend[i] = MonthlyCount{Month: month}
		index[month] = i
	}

	var createdAt []time.Time
	err := h.db.WithContext(ctx).Table("shipments").
		Where("created_at >= ? AND created_at < ?", first, end).
		Pluck("created_at", &createdAt).Error
	if err != nil {
		return nil, err
	}

	for _, t := range createdAt {
		t = t.UTC()
		if i, ok := index[time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)]; ok {
			trend[i].Count++
		}
	}
	return trend, nil
}
