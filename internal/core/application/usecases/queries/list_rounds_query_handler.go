package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListRoundsQueryHandler struct {
	db *gorm.DB
}

func NewListRoundsQueryHandler(db *gorm.DB) ListRoundsQueryHandler {
	return ListRoundsQueryHandler{db: db}
}

func (h ListRoundsQueryHandler) Handle(ctx context.Context, query ListRoundsQuery) ([]RoundResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := selectRounds(h.db.WithContext(ctx))
	if query.Status() != nil {
		stmt = stmt.Where("r.status = ?", query.Status().String())
	}
	if query.DriverID() != nil {
		stmt = stmt.Where("r.driver_id = ?", query.DriverID().Bytes())
	}
	if query.Date() != nil {
		day := *query.Date()
		stmt = stmt.Where("r.date >= ? AND r.date < ?", day, day.AddDate(0, 0, 1))
	}

	var rows []roundRow
	if err := query.Page().apply(stmt.Order("r.date DESC, r.code")).Scan(&rows).Error; err != nil {
		return nil, err
	}

	rounds := make([]RoundResponse, 0, len(rows))
	for _, row := range rows {
		response, err := row.toResponse()
		if err != nil {
			return nil, err
		}
		rounds = append(rounds, response)
	}
	return rounds, nil
}
