package http

import (
	"context"
	"net/http"
	"strconv"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/action"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// PickupOrder handles POST /api/v1/orders/:orderSN/pickup.
func (s *Server) PickupOrder(ctx echo.Context) error {
	return s.driverTransition(ctx, func(c context.Context, orderSN string, driverID kernel.ID, evidenceIDs []kernel.ID) error {
		cmd, err := commands.NewPickupOrderCommand(orderSN, driverID, evidenceIDs)
		if err != nil {
			return err
		}
		return s.pickupOrderHandler.Handle(c, cmd)
	})
}

// ArriveWarehouse handles POST /api/v1/orders/:orderSN/arrive-warehouse.
func (s *Server) ArriveWarehouse(ctx echo.Context) error {
	return s.driverTransition(ctx, func(c context.Context, orderSN string, driverID kernel.ID, evidenceIDs []kernel.ID) error {
		cmd, err := commands.NewArriveWarehouseCommand(orderSN, driverID, evidenceIDs)
		if err != nil {
			return err
		}
		return s.arriveWarehouseHandler.Handle(c, cmd)
	})
}

// WarehouseReceive handles POST /api/v1/orders/:orderSN/warehouse-receive.
func (s *Server) WarehouseReceive(ctx echo.Context) error {
	return s.staffTransition(ctx, func(c context.Context, orderSN, actor string, evidenceIDs []kernel.ID) error {
		cmd, err := commands.NewWarehouseReceiveCommand(orderSN, actor, evidenceIDs)
		if err != nil {
			return err
		}
		return s.warehouseReceiveHandler.Handle(c, cmd)
	})
}

// WarehouseShip handles POST /api/v1/orders/:orderSN/warehouse-ship.
func (s *Server) WarehouseShip(ctx echo.Context) error {
	return s.staffTransition(ctx, func(c context.Context, orderSN, actor string, evidenceIDs []kernel.ID) error {
		cmd, err := commands.NewWarehouseShipCommand(orderSN, actor, evidenceIDs)
		if err != nil {
			return err
		}
		return s.warehouseShipHandler.Handle(c, cmd)
	})
}

// CompleteDelivery handles POST /api/v1/orders/:orderSN/complete.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	return s.staffTransition(ctx, func(c context.Context, orderSN, actor string, evidenceIDs []kernel.ID) error {
		cmd, err := commands.NewCompleteDeliveryCommand(orderSN, actor, evidenceIDs)
		if err != nil {
			return err
		}
		return s.completeDeliveryHandler.Handle(c, cmd)
	})
}

func (s *Server) driverTransition(
	ctx echo.Context,
	run func(context.Context, string, kernel.ID, []kernel.ID) error,
) error {
	var request TransitionRequest
	if err := ctx.Bind(&request); err != nil {
		return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	driverID, err := kernel.NewID(request.DriverID)
	if err != nil {
		return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("driver_id", err))
	}
	evidenceIDs, err := optionalIDs(request.EvidenceFileIDs)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = run(ctx.Request().Context(), ctx.Param("orderSN"), driverID, evidenceIDs); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) staffTransition(
	ctx echo.Context,
	run func(context.Context, string, string, []kernel.ID) error,
) error {
	var request TransitionRequest
	if err := ctx.Bind(&request); err != nil {
		return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	evidenceIDs, err := optionalIDs(request.EvidenceFileIDs)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = run(ctx.Request().Context(), ctx.Param("orderSN"), request.Actor, evidenceIDs); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordOrderAction handles POST /api/v1/orders/:orderID/actions.
func (s *Server) RecordOrderAction(ctx echo.Context) error {
	var request RecordActionRequest
	if err := ctx.Bind(&request); err != nil {
		return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	orderID, err := pathID(ctx, "orderID")
	if err != nil {
		return s.writeError(ctx, err)
	}
	evidenceIDs, err := optionalIDs(request.EvidenceFileIDs)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewRecordOrderActionCommand(
		orderID, action.Type(request.ActionType), request.Actor, evidenceIDs, request.Remark)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.recordOrderActionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// ListOrderActions handles GET /api/v1/orders/:orderID/actions.
func (s *Server) ListOrderActions(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderID")
	if err != nil {
		return s.writeError(ctx, err)
	}

	var actionType *action.Type
	if raw := ctx.QueryParam("action_type"); raw != "" {
		parsed, parseErr := strconv.Atoi(raw)
		if parseErr != nil {
			return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("action_type", parseErr))
		}
		value := action.Type(parsed)
		actionType = &value
	}
	newestFirst := ctx.QueryParam("newest_first") == "true"

	query, err := queries.NewListOrderActionsQuery(orderID, actionType, newestFirst)
	if err != nil {
		return s.writeError(ctx, err)
	}

	trail, err := s.listOrderActionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]ActionResponse, 0, len(trail))
	for _, entry := range trail {
		response = append(response, actionFromQuery(entry))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetLatestOrderAction handles GET /api/v1/orders/:orderID/actions/latest.
func (s *Server) GetLatestOrderAction(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderID")
	if err != nil {
		return s.writeError(ctx, err)
	}

	var actionType *action.Type
	if raw := ctx.QueryParam("action_type"); raw != "" {
		parsed, parseErr := strconv.Atoi(raw)
		if parseErr != nil {
			return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("action_type", parseErr))
		}
		value := action.Type(parsed)
		actionType = &value
	}

	query, err := queries.NewGetLatestOrderActionQuery(orderID, actionType)
	if err != nil {
		return s.writeError(ctx, err)
	}

	entry, err := s.getLatestOrderActionHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, actionFromQuery(entry))
}

// GetOrderTimeline handles GET /api/v1/orders/:orderID/timeline.
func (s *Server) GetOrderTimeline(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderID")
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetOrderTimelineQuery(orderID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	timeline, err := s.getOrderTimelineHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]TimelineEntryResponse, 0, len(timeline))
	for _, entry := range timeline {
		response = append(response, TimelineEntryResponse{
			Action:       actionFromQuery(entry.Action),
			EvidenceURLs: entry.EvidenceURLs,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetActionFiles handles GET /api/v1/actions/:actionID/files.
func (s *Server) GetActionFiles(ctx echo.Context) error {
	actionID, err := pathID(ctx, "actionID")
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetActionFilesQuery(actionID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	files, err := s.getActionFilesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]EvidenceFileResponse, 0, len(files))
	for _, file := range files {
		response = append(response, EvidenceFileResponse{
			ID:         file.ID.Int64(),
			URL:        file.URL,
			Size:       file.Size,
			MimeType:   file.MimeType,
			UploadedAt: file.UploadedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}
