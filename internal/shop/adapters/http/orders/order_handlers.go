// Package orders содержит HTTP обработчики заказов.
package orders

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"goshop/internal/shop/adapters/http/dto"
	"goshop/internal/shop/adapters/http/httperr"
	"goshop/internal/shop/adapters/http/middleware"
	"goshop/internal/shop/domain/entities"
	"goshop/internal/shop/ports/api"
	"goshop/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerCreateOrder  = "order handler: create order"
	LogHandlerGetOrder     = "order handler: get order"
	LogHandlerListOrders   = "order handler: list orders"
	LogHandlerUpdateStatus = "order handler: update status"

	ErrorInvalidRequest       = "invalid request"
	ErrorUnauthorized         = "unauthorized"
	ErrorUnknownStatus        = "unknown order status"
	ErrorFailedToServeRequest = "failed to serve request"

	defaultPageSize = 10
	maxPageSize     = 100
)

// Handler содержит HTTP обработчики заказов.
type Handler struct {
	orderUseCase api.OrderUseCase
}

// NewHandler создает новый экземпляр обработчика заказов.
func NewHandler(orderUseCase api.OrderUseCase) *Handler {
	return &Handler{orderUseCase: orderUseCase}
}

// parsePagination читает limit и offset из query-параметров.
func parsePagination(ctx fiber.Ctx) (int, int) {
	limit, err := strconv.Atoi(ctx.Query("limit"))
	if err != nil || limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	offset, err := strconv.Atoi(ctx.Query("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	return limit, offset
}

// CreateOrder обрабатывает запрос на создание заказа.
func (h *Handler) CreateOrder(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCreateOrder)

	userID, ok := middleware.UserID(ctx)
	if !ok {
		return httperr.Unauthorized(ctx, ErrorUnauthorized)
	}

	var req dto.CreateOrderRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return httperr.BadRequest(ctx, ErrorInvalidRequest)
	}

	items := make([]api.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, api.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.orderUseCase.CreateOrder(requestCtx, userID, items)
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Respond(ctx, err)
	}

	return ctx.Status(http.StatusCreated).JSON(dto.NewOrderResponse(order))
}

// GetOrder обрабатывает запрос на получение заказа.
func (h *Handler) GetOrder(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerGetOrder)

	userID, ok := middleware.UserID(ctx)
	if !ok {
		return httperr.Unauthorized(ctx, ErrorUnauthorized)
	}

	order, err := h.orderUseCase.GetOrder(requestCtx, ctx.Params("id"), userID)
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Respond(ctx, err)
	}

	return ctx.Status(http.StatusOK).JSON(dto.NewOrderResponse(order))
}

// ListOrders обрабатывает запрос на получение заказов пользователя.
func (h *Handler) ListOrders(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerListOrders)

	userID, ok := middleware.UserID(ctx)
	if !ok {
		return httperr.Unauthorized(ctx, ErrorUnauthorized)
	}

	limit, offset := parsePagination(ctx)

	orders, totalCount, err := h.orderUseCase.ListOrders(requestCtx, userID, limit, offset)
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Respond(ctx, err)
	}

	return ctx.Status(http.StatusOK).JSON(dto.NewOrderListResponse(orders, totalCount, limit, offset))
}

// UpdateStatus обрабатывает запрос на смену статуса заказа.
func (h *Handler) UpdateStatus(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerUpdateStatus)

	userID, ok := middleware.UserID(ctx)
	if !ok {
		return httperr.Unauthorized(ctx, ErrorUnauthorized)
	}

	var req dto.UpdateOrderStatusRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return httperr.BadRequest(ctx, ErrorInvalidRequest)
	}

	next := entities.OrderStatus(req.Status)
	if !next.Valid() {
		return httperr.BadRequest(ctx, ErrorUnknownStatus)
	}

	order, err := h.orderUseCase.TransitionStatus(requestCtx, ctx.Params("id"), userID, next)
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Respond(ctx, err)
	}

	return ctx.Status(http.StatusOK).JSON(dto.NewOrderResponse(order))
}
