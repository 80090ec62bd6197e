package main

import (
	"net/http"

	"github.com/go-chi/chi"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// getProductsHandler godoc
//
//	@Summary		List products
//	@Description	Lists the açaí products with their size variants
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{array}		domain.Product
//	@Failure		500	{object}	map[string]string
//	@Router			/catalog/products [get]
func (app *application) getProductsHandler(w http.ResponseWriter, r *http.Request) {
	products := app.catalogService.Products(r.Context())

	if err := app.jsonRespone(w, http.StatusOK, products); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getAddOnsHandler godoc
//
//	@Summary		List complements
//	@Description	Lists the complements that can be added to an açaí
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{array}		domain.AddOn
//	@Failure		500	{object}	map[string]string
//	@Router			/catalog/complements [get]
func (app *application) getAddOnsHandler(w http.ResponseWriter, r *http.Request) {
	addOns := app.catalogService.AddOns(r.Context())

	if err := app.jsonRespone(w, http.StatusOK, addOns); err != nil {
		app.internalServerError(w, r, err)
	}
}

type CreateImportTaskRequest struct {
	SpreadsheetID string `json:"spreadsheet_id" validate:"required"`
}

// createImportTaskHandler godoc
//
//	@Summary		Import catalog
//	@Description	Queues a catalog import from a Google Sheets spreadsheet
//	@Tags			catalog
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateImportTaskRequest	true	"Import request"
//	@Success		201		{object}	map[string]string
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/catalog/import [post]
func (app *application) createImportTaskHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateImportTaskRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	taskID, err := app.catalogService.CreateImportTask(r.Context(), req.SpreadsheetID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	response := map[string]string{
		"task_id": taskID.Hex(),
		"status":  "queued",
	}

	if err := app.jsonRespone(w, http.StatusCreated, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getImportTaskHandler godoc
//
//	@Summary		Get import task status
//	@Description	Get the status of a catalog import task
//	@Tags			catalog
//	@Produce		json
//	@Param			task_id	path		string	true	"Task ID"
//	@Success		200		{object}	domain.CatalogImportTask
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/catalog/import/{task_id} [get]
func (app *application) getImportTaskHandler(w http.ResponseWriter, r *http.Request) {
	taskIDStr := chi.URLParam(r, "task_id")
	if taskIDStr == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	taskID, err := primitive.ObjectIDFromHex(taskIDStr)
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	task, err := app.catalogService.GetImportTask(r.Context(), taskID)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, task); err != nil {
		app.internalServerError(w, r, err)
	}
}
