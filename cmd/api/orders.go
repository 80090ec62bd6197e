package main

import (
	"net/http"
	"time"

	"github.com/AndersonViniciusReis/acai-app/internal/domain"
	"github.com/go-chi/chi"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateOrderRequest struct {
	SessionID     string `json:"session_id" validate:"required"`
	Name          string `json:"name" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	Address       string `json:"address" validate:"required"`
	Neighborhood  string `json:"neighborhood"`
	Reference     string `json:"reference"`
	PaymentMethod string `json:"payment_method"`
	Notes         string `json:"notes"`
}

// createOrderHandler godoc
//
//	@Summary		Submit order
//	@Description	Turns the session's cart into a pending order and queues the WhatsApp notification
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateOrderRequest	true	"Checkout form"
//	@Success		201		{object}	domain.Order
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/orders [post]
func (app *application) createOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	profile := domain.CustomerProfile{
		Name:          req.Name,
		Phone:         req.Phone,
		Address:       req.Address,
		Neighborhood:  req.Neighborhood,
		Reference:     req.Reference,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	}

	order, err := app.orderService.Submit(r.Context(), req.SessionID, profile)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusCreated, order); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listOrdersHandler godoc
//
//	@Summary		List orders
//	@Description	Lists orders newest first, optionally filtered by status
//	@Tags			orders
//	@Produce		json
//	@Param			status	query		string	false	"Status filter"
//	@Success		200		{array}		domain.Order
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/orders [get]
func (app *application) listOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := app.orderService.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, orders); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getOrderHandler godoc
//
//	@Summary		Get order
//	@Description	Get one order with its customer profile
//	@Tags			orders
//	@Produce		json
//	@Param			order_id	path		string	true	"Order ID"
//	@Success		200			{object}	domain.Order
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Failure		500			{object}	map[string]string
//	@Router			/orders/{order_id} [get]
func (app *application) getOrderHandler(w http.ResponseWriter, r *http.Request) {
	orderID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "order_id"))
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	order, err := app.orderService.Get(r.Context(), orderID)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, order); err != nil {
		app.internalServerError(w, r, err)
	}
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// updateOrderStatusHandler godoc
//
//	@Summary		Update order status
//	@Description	Moves an order along the fulfillment lifecycle
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			order_id	path		string						true	"Order ID"
//	@Param			request		body		UpdateOrderStatusRequest	true	"Target status"
//	@Success		200			{object}	domain.Order
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Failure		409			{object}	map[string]string
//	@Failure		500			{object}	map[string]string
//	@Router			/orders/{order_id}/status [patch]
func (app *application) updateOrderStatusHandler(w http.ResponseWriter, r *http.Request) {
	orderID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "order_id"))
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	var req UpdateOrderStatusRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	order, err := app.orderService.Transition(r.Context(), orderID, req.Status)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, order); err != nil {
		app.internalServerError(w, r, err)
	}
}

// orderStatsHandler godoc
//
//	@Summary		Order statistics
//	@Description	Dashboard metrics: totals, today's count, delivered revenue and average ticket
//	@Tags			orders
//	@Produce		json
//	@Success		200	{object}	domain.OrderStats
//	@Failure		500	{object}	map[string]string
//	@Router			/orders/stats [get]
func (app *application) orderStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := app.orderService.Stats(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, stats); err != nil {
		app.internalServerError(w, r, err)
	}
}

// exportOrdersHandler godoc
//
//	@Summary		Export orders
//	@Description	Downloads the order history as an xlsx workbook
//	@Tags			orders
//	@Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Success		200	{file}		file
//	@Failure		500	{object}	map[string]string
//	@Router			/orders/export [get]
func (app *application) exportOrdersHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="pedidos-`+time.Now().Format("2006-01-02")+`.xlsx"`)

	if err := app.orderService.Export(r.Context(), w); err != nil {
		app.logger.Errorw("failed to export orders", "error", err)
	}
}

// customerOrdersHandler godoc
//
//	@Summary		Customer order history
//	@Description	Lists a customer's orders, looked up by phone
//	@Tags			customers
//	@Produce		json
//	@Param			phone	path		string	true	"Customer phone"
//	@Success		200		{array}		domain.Order
//	@Failure		404		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/customers/{phone}/orders [get]
func (app *application) customerOrdersHandler(w http.ResponseWriter, r *http.Request) {
	phone := chi.URLParam(r, "phone")
	if phone == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	orders, err := app.orderService.CustomerOrders(r.Context(), phone)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, orders); err != nil {
		app.internalServerError(w, r, err)
	}
}
