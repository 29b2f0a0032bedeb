// Package http exposes the fulfillment use cases over a REST API.
// Handlers stay thin: they parse the request, build a command or query,
// and translate domain errors to status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/evidence"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/prep"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createPackageHandler     commands.CreatePackageCommandHandler
	markPreparedHandler      commands.MarkPreparedCommandHandler
	assignDriverHandler      commands.AssignDriverCommandHandler
	advanceStatusHandler     commands.AdvancePackageStatusCommandHandler
	pickupOrderHandler       commands.PickupOrderCommandHandler
	arriveWarehouseHandler   commands.ArriveWarehouseCommandHandler
	warehouseReceiveHandler  commands.WarehouseReceiveCommandHandler
	warehouseShipHandler     commands.WarehouseShipCommandHandler
	completeDeliveryHandler  commands.CompleteDeliveryCommandHandler
	recordOrderActionHandler commands.RecordOrderActionCommandHandler
	uploadEvidenceHandler    commands.UploadEvidenceCommandHandler

	// Query handlers
	getPackageHandler            queries.GetPackageQueryHandler
	listShopPackagesHandler      queries.ListShopPackagesQueryHandler
	listDriverPackagesHandler    queries.ListDriverPackagesQueryHandler
	listAvailablePackagesHandler queries.ListAvailablePackagesQueryHandler
	listOrderActionsHandler      queries.ListOrderActionsQueryHandler
	getLatestOrderActionHandler  queries.GetLatestOrderActionQueryHandler
	getActionFilesHandler        queries.GetActionFilesQueryHandler
	getOrderTimelineHandler      queries.GetOrderTimelineQueryHandler
}

// NewServer creates a new HTTP server with the required command and
// query handlers.
func NewServer(
	createPackageHandler commands.CreatePackageCommandHandler,
	markPreparedHandler commands.MarkPreparedCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	advanceStatusHandler commands.AdvancePackageStatusCommandHandler,
	pickupOrderHandler commands.PickupOrderCommandHandler,
	arriveWarehouseHandler commands.ArriveWarehouseCommandHandler,
	warehouseReceiveHandler commands.WarehouseReceiveCommandHandler,
	warehouseShipHandler commands.WarehouseShipCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	recordOrderActionHandler commands.RecordOrderActionCommandHandler,
	uploadEvidenceHandler commands.UploadEvidenceCommandHandler,
	getPackageHandler queries.GetPackageQueryHandler,
	listShopPackagesHandler queries.ListShopPackagesQueryHandler,
	listDriverPackagesHandler queries.ListDriverPackagesQueryHandler,
	listAvailablePackagesHandler queries.ListAvailablePackagesQueryHandler,
	listOrderActionsHandler queries.ListOrderActionsQueryHandler,
	getLatestOrderActionHandler queries.GetLatestOrderActionQueryHandler,
	getActionFilesHandler queries.GetActionFilesQueryHandler,
	getOrderTimelineHandler queries.GetOrderTimelineQueryHandler,
) *Server {
	return &Server{
		createPackageHandler:         createPackageHandler,
		markPreparedHandler:          markPreparedHandler,
		assignDriverHandler:          assignDriverHandler,
		advanceStatusHandler:         advanceStatusHandler,
		pickupOrderHandler:           pickupOrderHandler,
		arriveWarehouseHandler:       arriveWarehouseHandler,
		warehouseReceiveHandler:      warehouseReceiveHandler,
		warehouseShipHandler:         warehouseShipHandler,
		completeDeliveryHandler:      completeDeliveryHandler,
		recordOrderActionHandler:     recordOrderActionHandler,
		uploadEvidenceHandler:        uploadEvidenceHandler,
		getPackageHandler:            getPackageHandler,
		listShopPackagesHandler:      listShopPackagesHandler,
		listDriverPackagesHandler:    listDriverPackagesHandler,
		listAvailablePackagesHandler: listAvailablePackagesHandler,
		listOrderActionsHandler:      listOrderActionsHandler,
		getLatestOrderActionHandler:  getLatestOrderActionHandler,
		getActionFilesHandler:        getActionFilesHandler,
		getOrderTimelineHandler:      getOrderTimelineHandler,
	}
}

// RegisterRoutes binds every endpoint onto e under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/packages", s.CreatePackage)
	v1.GET("/packages/available", s.ListAvailablePackages)
	v1.GET("/packages/:prepareSN", s.GetPackage)
	v1.POST("/packages/:prepareSN/prepared", s.MarkPrepared)
	v1.POST("/packages/:prepareSN/claim", s.ClaimPackage)
	v1.POST("/packages/:prepareSN/advance", s.AdvancePackageStatus)

	v1.GET("/shops/:shopID/packages", s.ListShopPackages)
	v1.GET("/drivers/:driverID/packages", s.ListDriverPackages)

	v1.POST("/orders/:orderSN/pickup", s.PickupOrder)
	v1.POST("/orders/:orderSN/arrive-warehouse", s.ArriveWarehouse)
	v1.POST("/orders/:orderSN/warehouse-receive", s.WarehouseReceive)
	v1.POST("/orders/:orderSN/warehouse-ship", s.WarehouseShip)
	v1.POST("/orders/:orderSN/complete", s.CompleteDelivery)

	v1.POST("/orders/:orderID/actions", s.RecordOrderAction)
	v1.GET("/orders/:orderID/actions", s.ListOrderActions)
	v1.GET("/orders/:orderID/actions/latest", s.GetLatestOrderAction)
	v1.GET("/orders/:orderID/timeline", s.GetOrderTimeline)
	v1.GET("/actions/:actionID/files", s.GetActionFiles)

	v1.POST("/evidence", s.UploadEvidence)
}

func (s *Server) writeError(ctx echo.Context, err error) error {
	code := statusCodeFor(err)
	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}

func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, evidence.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, evidence.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, commands.ErrOrderAlreadyPrepared),
		errors.Is(err, commands.ErrOrderNotPrepared),
		errors.Is(err, prep.ErrDriverAlreadyAssigned),
		errors.Is(err, prep.ErrInvalidTransition),
		errors.Is(err, prep.ErrInvalidAssignment),
		errors.Is(err, order.ErrShippingTransitionIsInvalid):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, prep.ErrInvalidConfiguration):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func pathID(ctx echo.Context, name string) (kernel.ID, error) {
	raw, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		return kernel.ID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return kernel.NewID(raw)
}

func optionalIDs(raw []int64) ([]kernel.ID, error) {
	ids := make([]kernel.ID, 0, len(raw))
	for _, v := range raw {
		id, err := kernel.NewID(v)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
