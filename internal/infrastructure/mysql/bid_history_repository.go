package mysql

import (
	"context"
	"database/sql"
	"time"

	"auction-house/internal/domain"

	_ "github.com/go-sql-driver/mysql"
)

type BidHistoryRepository struct {
	db *sql.DB
}

func NewBidHistoryRepository(db *sql.DB) *BidHistoryRepository {
	return &BidHistoryRepository{db: db}
}

func (r *BidHistoryRepository) SaveBidEvent(ctx context.Context, event *domain.BidEvent) error {
	query := `
        INSERT INTO bid_events (event_id, auction_id, user_id, amount, event_type, reason, timestamp, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		event.EventID, event.AuctionID, event.UserID, event.Amount,
		string(event.Type), event.Reason, event.Timestamp, time.Now())
	return err
}

func (r *BidHistoryRepository) GetBidHistory(ctx context.Context, auctionID int64) ([]*domain.BidEvent, error) {
	query := `
        SELECT event_id, auction_id, user_id, amount, event_type, reason, timestamp
        FROM bid_events
        WHERE auction_id = ? AND event_type = ?
        ORDER BY timestamp ASC
    `

	rows, err := r.db.QueryContext(ctx, query, auctionID, string(domain.BidAccepted))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*domain.BidEvent
	for rows.Next() {
		var event domain.BidEvent
		var eventType string

		err := rows.Scan(&event.EventID, &event.AuctionID, &event.UserID, &event.Amount,
			&eventType, &event.Reason, &event.Timestamp)
		if err != nil {
			return nil, err
		}

		event.Type = domain.BidEventType(eventType)
		events = append(events, &event)
	}

	return events, rows.Err()
}
