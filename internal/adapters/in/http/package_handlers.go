package http

import (
	"net/http"
	"strconv"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/prep"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreatePackage handles POST /api/v1/packages.
func (s *Server) CreatePackage(ctx echo.Context) error {
	var request CreatePackageRequest
	if err := ctx.Bind(&request); err != nil {
		return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	orderIDs, err := optionalIDs(request.OrderIDs)
	if err != nil {
		return s.writeError(ctx, err)
	}
	shopID, err := kernel.NewID(request.ShopID)
	if err != nil {
		return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("shop_id", err))
	}

	var warehouseID *kernel.ID
	if request.WarehouseID != nil {
		id, idErr := kernel.NewID(*request.WarehouseID)
		if idErr != nil {
			return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("warehouse_id", idErr))
		}
		warehouseID = &id
	}

	cmd, err := commands.NewCreatePackageCommand(
		orderIDs, shopID,
		prep.DeliveryMode(request.Mode),
		prep.DestinationType(request.Destination),
		warehouseID,
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	pkg, err := s.createPackageHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PackageSummaryResponse{
		ID:          pkg.ID().Int64(),
		PrepareSN:   pkg.PrepareSN(),
		ShopID:      pkg.ShopID().Int64(),
		OrderIDs:    idsToInt64(pkg.OrderIDs()),
		Mode:        int(pkg.Mode()),
		Destination: int(pkg.Destination()),
		Status:      pkg.Status().String(),
		CreatedAt:   pkg.CreatedAt(),
		UpdatedAt:   pkg.UpdatedAt(),
	})
}

// GetPackage handles GET /api/v1/packages/:prepareSN.
func (s *Server) GetPackage(ctx echo.Context) error {
	query, err := queries.NewGetPackageQuery(ctx.Param("prepareSN"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.getPackageHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := PackageResponse{
		ID:          result.ID.Int64(),
		PrepareSN:   result.PrepareSN,
		ShopID:      result.ShopID.Int64(),
		OrderIDs:    idsToInt64(result.OrderIDs),
		Mode:        int(result.Mode),
		Destination: int(result.Destination),
		Status:      result.Status.String(),
		Items:       make([]PackageItemResponse, 0, len(result.Items)),
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}
	if result.Driver != nil {
		response.Driver = &DriverResponse{
			ID:    result.Driver.ID.Int64(),
			Name:  result.Driver.Name,
			Phone: result.Driver.Phone,
		}
	}
	if result.Warehouse != nil {
		response.Warehouse = &WarehouseResponse{
			ID:   result.Warehouse.ID.Int64(),
			Code: result.Warehouse.Code,
			Name: result.Warehouse.Name,
		}
	}
	for _, item := range result.Items {
		response.Items = append(response.Items, PackageItemResponse{
			ID:          item.ID.Int64(),
			OrderID:     item.OrderID.Int64(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// MarkPrepared handles POST /api/v1/packages/:prepareSN/prepared.
func (s *Server) MarkPrepared(ctx echo.Context) error {
	var request MarkPreparedRequest
	if err := ctx.Bind(&request); err != nil {
		return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	evidenceIDs, err := optionalIDs(request.EvidenceFileIDs)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewMarkPreparedCommand(ctx.Param("prepareSN"), request.Actor, evidenceIDs)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.markPreparedHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClaimPackage handles POST /api/v1/packages/:prepareSN/claim.
func (s *Server) ClaimPackage(ctx echo.Context) error {
	var request ClaimPackageRequest
	if err := ctx.Bind(&request); err != nil {
		return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	driverID, err := kernel.NewID(request.DriverID)
	if err != nil {
		return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("driver_id", err))
	}

	cmd, err := commands.NewAssignDriverCommand(ctx.Param("prepareSN"), driverID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.assignDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvancePackageStatusRequest moves a package straight to a target
// status. Used by back-office tooling to correct stuck packages.
type AdvancePackageStatusRequest struct {
	Target int `json:"target"`
}

// AdvancePackageStatus handles POST /api/v1/packages/:prepareSN/advance.
func (s *Server) AdvancePackageStatus(ctx echo.Context) error {
	var request AdvancePackageStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewAdvancePackageStatusCommand(
		ctx.Param("prepareSN"), prep.PrepareStatus(request.Target))
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.advanceStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListShopPackages handles GET /api/v1/shops/:shopID/packages.
func (s *Server) ListShopPackages(ctx echo.Context) error {
	shopID, err := pathID(ctx, "shopID")
	if err != nil {
		return s.writeError(ctx, err)
	}

	var status *prep.PrepareStatus
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, parseErr := strconv.Atoi(raw)
		if parseErr != nil {
			return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("status", parseErr))
		}
		value := prep.PrepareStatus(parsed)
		status = &value
	}

	query, err := queries.NewListShopPackagesQuery(shopID, status, queryLimit(ctx))
	if err != nil {
		return s.writeError(ctx, err)
	}

	summaries, err := s.listShopPackagesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summariesToResponse(summaries))
}

// ListDriverPackages handles GET /api/v1/drivers/:driverID/packages.
func (s *Server) ListDriverPackages(ctx echo.Context) error {
	driverID, err := pathID(ctx, "driverID")
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewListDriverPackagesQuery(driverID, queryLimit(ctx))
	if err != nil {
		return s.writeError(ctx, err)
	}

	summaries, err := s.listDriverPackagesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summariesToResponse(summaries))
}

// ListAvailablePackages handles GET /api/v1/packages/available.
func (s *Server) ListAvailablePackages(ctx echo.Context) error {
	query := queries.NewListAvailablePackagesQuery(queryLimit(ctx))

	summaries, err := s.listAvailablePackagesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summariesToResponse(summaries))
}

func summariesToResponse(summaries []queries.PackageSummaryResponse) []PackageSummaryResponse {
	response := make([]PackageSummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		response = append(response, packageSummaryFromQuery(summary))
	}
	return response
}

func queryLimit(ctx echo.Context) int {
	limit, err := strconv.Atoi(ctx.QueryParam("limit"))
	if err != nil {
		return 0
	}
	return limit
}
