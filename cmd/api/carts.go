package main

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi"
)

// createCartHandler godoc
//
//	@Summary		Start a cart session
//	@Description	Creates a new session with an empty cart
//	@Tags			carts
//	@Produce		json
//	@Success		201	{object}	map[string]string
//	@Failure		500	{object}	map[string]string
//	@Router			/carts [post]
func (app *application) createCartHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := app.cartService.CreateSession()

	response := map[string]string{
		"session_id": sessionID,
	}

	if err := app.jsonRespone(w, http.StatusCreated, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getCartHandler godoc
//
//	@Summary		Get cart
//	@Description	Returns the cart items, total, item count and any saved checkout form
//	@Tags			carts
//	@Produce		json
//	@Param			session_id	path		string	true	"Session ID"
//	@Success		200			{object}	service.CartSummary
//	@Failure		400			{object}	map[string]string
//	@Failure		500			{object}	map[string]string
//	@Router			/carts/{session_id} [get]
func (app *application) getCartHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session_id")
	if sessionID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	summary := app.cartService.Summary(sessionID)

	if err := app.jsonRespone(w, http.StatusOK, summary); err != nil {
		app.internalServerError(w, r, err)
	}
}

type AddCartItemRequest struct {
	ProductID   string   `json:"product_id" validate:"required"`
	Size        string   `json:"size" validate:"required"`
	Complements []string `json:"complements"`
}

// addCartItemHandler godoc
//
//	@Summary		Add item to cart
//	@Description	Adds a product in the chosen size with optional complements; every add creates a new line
//	@Tags			carts
//	@Accept			json
//	@Produce		json
//	@Param			session_id	path		string				true	"Session ID"
//	@Param			request		body		AddCartItemRequest	true	"Item to add"
//	@Success		201			{object}	domain.LineItem
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Failure		500			{object}	map[string]string
//	@Router			/carts/{session_id}/items [post]
func (app *application) addCartItemHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session_id")
	if sessionID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	var req AddCartItemRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	item, err := app.cartService.AddItem(r.Context(), sessionID, req.ProductID, req.Size, req.Complements)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusCreated, item); err != nil {
		app.internalServerError(w, r, err)
	}
}

type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

// updateCartItemHandler godoc
//
//	@Summary		Update item quantity
//	@Description	Sets an item's quantity; zero removes the item
//	@Tags			carts
//	@Accept			json
//	@Produce		json
//	@Param			session_id	path		string					true	"Session ID"
//	@Param			item_id		path		string					true	"Item ID"
//	@Param			request		body		UpdateCartItemRequest	true	"New quantity"
//	@Success		200			{object}	service.CartSummary
//	@Failure		400			{object}	map[string]string
//	@Failure		500			{object}	map[string]string
//	@Router			/carts/{session_id}/items/{item_id} [patch]
func (app *application) updateCartItemHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session_id")
	itemID := chi.URLParam(r, "item_id")
	if sessionID == "" || itemID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	var req UpdateCartItemRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if req.Quantity == nil {
		app.badRequestResponse(w, r, errors.New("quantity is required"))
		return
	}

	if err := app.cartService.SetQuantity(sessionID, itemID, *req.Quantity); err != nil {
		app.serviceError(w, r, err)
		return
	}

	summary := app.cartService.Summary(sessionID)

	if err := app.jsonRespone(w, http.StatusOK, summary); err != nil {
		app.internalServerError(w, r, err)
	}
}
