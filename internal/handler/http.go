package handler

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/ride-dispatch/internal/entities"
	"github.com/SergeyBogomolovv/ride-dispatch/internal/render"
	"github.com/SergeyBogomolovv/ride-dispatch/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const (
	textOK            = "OK"
	textAssigned      = "指派成功"
	textOrderNotFound = "找不到訂單"
	textPhoneRequired = "缺少手機號碼"
)

type Dispatcher interface {
	SubmitOrder(ctx context.Context, req entities.RideRequest) entities.Order
	ExpressInterest(ctx context.Context, orderID int, driver string)
	TakeOrder(ctx context.Context, orderID int) bool
	AssignDriver(ctx context.Context, orderID int, driver string) error
	DispatcherOrders(ctx context.Context) []entities.DispatchOrder
	CustomerProfile(ctx context.Context, phone string) (entities.CustomerProfile, bool)
	DriverProfile(ctx context.Context, phone string) (entities.DriverProfile, bool)
	SaveDriverProfile(ctx context.Context, p entities.DriverProfile) error
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      Dispatcher
}

func NewHTTPHandler(logger *slog.Logger, svc Dispatcher) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Post("/passenger/order", h.SubmitOrder)

	r.Get("/dispatcher/orders", h.DispatcherOrders)
	r.Post("/dispatcher/assign", h.AssignDriver)

	r.Post("/driver/want", h.ExpressInterest)
	r.Post("/driver/take", h.TakeOrder)

	r.Get("/api/last-info", h.LastInfo)
	r.Get("/api/driver-info", h.DriverInfo)
	r.Post("/api/driver-info", h.SaveDriverInfo)
}

// SubmitOrder создает заказ и возвращает страницу подтверждения.
// @Summary      Submit a ride order
// @Description  Creates an order from the passenger form and renders the confirmation page
// @Tags         passenger
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        order  body  RideRequest  true  "Passenger form"
// @Success      200  {string}  string  "Confirmation page"
// @Failure      400  {object}  utils.ErrorResponse
// @Router       /passenger/order [post]
func (h *HTTPHandler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RideRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request", http.StatusBadRequest)
		return
	}

	rideReq := RideRequestToEntity(req)
	order := h.svc.SubmitOrder(ctx, rideReq)

	var page bytes.Buffer
	if err := render.WriteConfirmationPage(&page, render.NewConfirmation(order, rideReq)); err != nil {
		h.logger.ErrorContext(ctx, "failed to render confirmation", slog.Any("error", err), slog.Int("order_id", order.ID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(page.Bytes())
}

// DispatcherOrders возвращает все заказы вместе с желающими водителями.
// @Summary      List orders for the dispatcher
// @Tags         dispatcher
// @Produce      json
// @Success      200  {array}  Order
// @Router       /dispatcher/orders [get]
func (h *HTTPHandler) DispatcherOrders(w http.ResponseWriter, r *http.Request) {
	orders := h.svc.DispatcherOrders(r.Context())

	result := make([]Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, DispatchOrderToJSON(o))
	}
	utils.WriteJSON(w, result, http.StatusOK)
}

// AssignDriver назначает водителя на заказ.
// @Summary      Assign a driver
// @Tags         dispatcher
// @Accept       json
// @Produce      plain
// @Param        body  body  AssignRequest  true  "Order id and driver"
// @Success      200  {string}  string  "指派成功"
// @Failure      404  {string}  string  "找不到訂單"
// @Router       /dispatcher/assign [post]
func (h *HTTPHandler) AssignDriver(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req AssignRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request", http.StatusBadRequest)
		return
	}
	if !req.ID.Valid {
		utils.WriteText(w, textOrderNotFound, http.StatusNotFound)
		return
	}

	err := h.svc.AssignDriver(ctx, req.ID.Value, req.Driver)
	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteText(w, textOrderNotFound, http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to assign driver", slog.Any("error", err), slog.Int("order_id", req.ID.Value))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteText(w, textAssigned, http.StatusOK)
}

// ExpressInterest запоминает, что водитель хочет взять заказ. Всегда отвечает OK.
// @Summary      Express interest in an order
// @Tags         driver
// @Accept       json
// @Produce      plain
// @Param        body  body  WantRequest  true  "Order id and driver"
// @Success      200  {string}  string  "OK"
// @Router       /driver/want [post]
func (h *HTTPHandler) ExpressInterest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req WantRequest
	if err := utils.DecodeBody(r, &req); err != nil || !req.ID.Valid {
		h.logger.DebugContext(ctx, "want without a valid order id", slog.Any("error", err))
		utils.WriteText(w, textOK, http.StatusOK)
		return
	}

	h.svc.ExpressInterest(ctx, req.ID.Value, string(req.Driver))
	utils.WriteText(w, textOK, http.StatusOK)
}

// TakeOrder отвечает успехом даже для несуществующего заказа и нечитаемого тела.
// @Summary      Take an order
// @Tags         driver
// @Accept       json
// @Produce      json
// @Param        body  body  TakeRequest  true  "Order id"
// @Success      200  {object}  TakeResponse
// @Router       /driver/take [post]
func (h *HTTPHandler) TakeOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req TakeRequest
	if err := utils.DecodeBody(r, &req); err != nil || !req.ID.Valid {
		h.logger.DebugContext(ctx, "take without a valid order id", slog.Any("error", err))
		utils.WriteJSON(w, TakeResponse{OK: true}, http.StatusOK)
		return
	}

	if !h.svc.TakeOrder(ctx, req.ID.Value) {
		h.logger.InfoContext(ctx, "take for unknown order", slog.Int("order_id", req.ID.Value))
	}
	utils.WriteJSON(w, TakeResponse{OK: true}, http.StatusOK)
}

// LastInfo возвращает последние данные клиента по телефону или null.
// @Summary      Last customer info
// @Tags         passenger
// @Produce      json
// @Param        phone  query  string  false  "Phone number"
// @Success      200  {object}  CustomerProfile  "Profile or null"
// @Router       /api/last-info [get]
func (h *HTTPHandler) LastInfo(w http.ResponseWriter, r *http.Request) {
	phone := r.URL.Query().Get("phone")
	if phone == "" {
		utils.WriteJSON(w, nil, http.StatusOK)
		return
	}

	profile, ok := h.svc.CustomerProfile(r.Context(), phone)
	if !ok {
		utils.WriteJSON(w, nil, http.StatusOK)
		return
	}
	utils.WriteJSON(w, CustomerProfileToJSON(profile), http.StatusOK)
}

// DriverInfo возвращает данные водителя по телефону или null.
// @Summary      Driver info
// @Tags         driver
// @Produce      json
// @Param        phone  query  string  false  "Phone number"
// @Success      200  {object}  DriverProfile  "Profile or null"
// @Router       /api/driver-info [get]
func (h *HTTPHandler) DriverInfo(w http.ResponseWriter, r *http.Request) {
	phone := r.URL.Query().Get("phone")
	if phone == "" {
		utils.WriteJSON(w, nil, http.StatusOK)
		return
	}

	profile, ok := h.svc.DriverProfile(r.Context(), phone)
	if !ok {
		utils.WriteJSON(w, nil, http.StatusOK)
		return
	}
	utils.WriteJSON(w, DriverProfileToJSON(profile), http.StatusOK)
}

// SaveDriverInfo сохраняет данные водителя.
// @Summary      Save driver info
// @Tags         driver
// @Accept       json
// @Produce      plain
// @Param        body  body  DriverProfile  true  "Driver profile"
// @Success      200  {string}  string  "OK"
// @Failure      400  {string}  string  "缺少手機號碼"
// @Router       /api/driver-info [post]
func (h *HTTPHandler) SaveDriverInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req DriverProfile
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteText(w, textPhoneRequired, http.StatusBadRequest)
		return
	}

	err := h.svc.SaveDriverProfile(ctx, DriverProfileJSONToEntity(req))
	if errors.Is(err, entities.ErrPhoneRequired) {
		utils.WriteText(w, textPhoneRequired, http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to save driver profile", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteText(w, textOK, http.StatusOK)
}
