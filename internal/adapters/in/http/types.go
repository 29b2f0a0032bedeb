package http

import (
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreatePackageRequest batches orders into one package.
type CreatePackageRequest struct {
	OrderIDs    []int64 `json:"order_ids"`
	ShopID      int64   `json:"shop_id"`
	Mode        int     `json:"mode"`
	Destination int     `json:"destination"`
	WarehouseID *int64  `json:"warehouse_id,omitempty"`
}

// ClaimPackageRequest is a driver claiming an unassigned package.
type ClaimPackageRequest struct {
	DriverID int64 `json:"driver_id"`
}

// MarkPreparedRequest confirms the goods of a package are ready.
type MarkPreparedRequest struct {
	Actor           string  `json:"actor"`
	EvidenceFileIDs []int64 `json:"evidence_file_ids,omitempty"`
}

// TransitionRequest moves one order a step along its workflow. DriverID
// is required only for the driver-side steps.
type TransitionRequest struct {
	Actor           string  `json:"actor,omitempty"`
	DriverID        int64   `json:"driver_id,omitempty"`
	EvidenceFileIDs []int64 `json:"evidence_file_ids,omitempty"`
}

// RecordActionRequest appends an audit entry without moving any status.
type RecordActionRequest struct {
	ActionType      int     `json:"action_type"`
	Actor           string  `json:"actor"`
	EvidenceFileIDs []int64 `json:"evidence_file_ids,omitempty"`
	Remark          string  `json:"remark,omitempty"`
}

// PackageResponse is the full package view.
type PackageResponse struct {
	ID          int64                  `json:"id"`
	PrepareSN   string                 `json:"prepare_sn"`
	ShopID      int64                  `json:"shop_id"`
	OrderIDs    []int64                `json:"order_ids"`
	Mode        int                    `json:"mode"`
	Destination int                    `json:"destination"`
	Status      string                 `json:"status"`
	Driver      *DriverResponse        `json:"driver,omitempty"`
	Warehouse   *WarehouseResponse     `json:"warehouse,omitempty"`
	Items       []PackageItemResponse  `json:"items"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// PackageSummaryResponse is the listing row.
type PackageSummaryResponse struct {
	ID          int64     `json:"id"`
	PrepareSN   string    `json:"prepare_sn"`
	ShopID      int64     `json:"shop_id"`
	OrderIDs    []int64   `json:"order_ids"`
	Mode        int       `json:"mode"`
	Destination int       `json:"destination"`
	Status      string    `json:"status"`
	DriverID    *int64    `json:"driver_id,omitempty"`
	WarehouseID *int64    `json:"warehouse_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DriverResponse identifies an assigned driver.
type DriverResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// WarehouseResponse identifies the routed warehouse.
type WarehouseResponse struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// PackageItemResponse is a snapshotted order line.
type PackageItemResponse struct {
	ID          int64  `json:"id"`
	OrderID     int64  `json:"order_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

// ActionResponse is one audit trail entry.
type ActionResponse struct {
	ID              int64     `json:"id"`
	OrderID         int64     `json:"order_id"`
	ActionType      string    `json:"action_type"`
	OrderStatus     int       `json:"order_status"`
	ShippingStatus  int       `json:"shipping_status"`
	EvidenceFileIDs []int64   `json:"evidence_file_ids"`
	CreatedBy       string    `json:"created_by"`
	Remark          string    `json:"remark,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// TimelineEntryResponse pairs an audit entry with its photo URLs.
type TimelineEntryResponse struct {
	Action       ActionResponse `json:"action"`
	EvidenceURLs []string       `json:"evidence_urls"`
}

// EvidenceFileResponse describes an uploaded photo.
type EvidenceFileResponse struct {
	ID         int64     `json:"id"`
	URL        string    `json:"url"`
	Size       int64     `json:"size"`
	MimeType   string    `json:"mime_type"`
	UploadedAt time.Time `json:"uploaded_at"`
}

func idsToInt64(ids []kernel.ID) []int64 {
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Int64())
	}
	return out
}

func packageSummaryFromQuery(summary queries.PackageSummaryResponse) PackageSummaryResponse {
	response := PackageSummaryResponse{
		ID:          summary.ID.Int64(),
		PrepareSN:   summary.PrepareSN,
		ShopID:      summary.ShopID.Int64(),
		OrderIDs:    idsToInt64(summary.OrderIDs),
		Mode:        int(summary.Mode),
		Destination: int(summary.Destination),
		Status:      summary.Status.String(),
		CreatedAt:   summary.CreatedAt,
		UpdatedAt:   summary.UpdatedAt,
	}
	if summary.DriverID != nil {
		raw := summary.DriverID.Int64()
		response.DriverID = &raw
	}
	if summary.WarehouseID != nil {
		raw := summary.WarehouseID.Int64()
		response.WarehouseID = &raw
	}
	return response
}

func actionFromQuery(entry queries.OrderActionResponse) ActionResponse {
	return ActionResponse{
		ID:              entry.ID.Int64(),
		OrderID:         entry.OrderID.Int64(),
		ActionType:      entry.Type.String(),
		OrderStatus:     int(entry.OrderStatus),
		ShippingStatus:  int(entry.ShippingStatus),
		EvidenceFileIDs: idsToInt64(entry.EvidenceFileIDs),
		CreatedBy:       entry.CreatedBy,
		Remark:          entry.Remark,
		CreatedAt:       entry.CreatedAt,
	}
}
