package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrderTimelineQueryHandler assembles the tracking view for an
// order. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type GetOrderTimelineQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderTimelineQueryHandler creates a handler for timeline queries.
func NewGetOrderTimelineQueryHandler(db *gorm.DB) GetOrderTimelineQueryHandler {
	return GetOrderTimelineQueryHandler{db: db}
}

// Handle executes the query. The trail comes back chronologically and
// every photo id is resolved to its URL in a single batch lookup.
func (h GetOrderTimelineQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTimelineQuery,
) ([]TimelineEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT`+orderActionColumns+`
		FROM order_actions
		WHERE order_id = ?
		ORDER BY created_at, id
	`, query.OrderID().Int64()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	actions, err := scanOrderActions(rows)
	if err != nil {
		return nil, err
	}

	urls, err := h.resolveEvidenceURLs(ctx, actions)
	if err != nil {
		return nil, err
	}

	timeline := make([]TimelineEntryResponse, 0, len(actions))
	for _, entry := range actions {
		entryURLs := make([]string, 0, len(entry.EvidenceFileIDs))
		for _, fileID := range entry.EvidenceFileIDs {
			if url, ok := urls[fileID.Int64()]; ok {
				entryURLs = append(entryURLs, url)
			}
		}
		timeline = append(timeline, TimelineEntryResponse{
			Action:       entry,
			EvidenceURLs: entryURLs,
		})
	}

	return timeline, nil
}

func (h GetOrderTimelineQueryHandler) resolveEvidenceURLs(
	ctx context.Context,
	actions []OrderActionResponse,
) (map[int64]string, error) {
	var fileIDs []int64
	seen := make(map[int64]bool)
	for _, entry := range actions {
		for _, fileID := range entry.EvidenceFileIDs {
			if !seen[fileID.Int64()] {
				seen[fileID.Int64()] = true
				fileIDs = append(fileIDs, fileID.Int64())
			}
		}
	}

	urls := make(map[int64]string, len(fileIDs))
	if len(fileIDs) == 0 {
		return urls, nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, url
		FROM evidence_files
		WHERE id IN ?
	`, fileIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		var url string
		if err = rows.Scan(&id, &url); err != nil {
			return nil, err
		}
		urls[id] = url
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return urls, nil
}
