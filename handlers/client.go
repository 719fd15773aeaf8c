package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/securecyberdata/legal-case-tracker/models"
	"github.com/securecyberdata/legal-case-tracker/services"
	"github.com/securecyberdata/legal-case-tracker/store"
)

type createClientRequest struct {
	Name          string `json:"name"`
	ContactNumber string `json:"contact_number"`
	Email         string `json:"email"`
	Address       string `json:"address"`
}

type updateClientRequest struct {
	Name          *string `json:"name"`
	ContactNumber *string `json:"contact_number"`
	Email         *string `json:"email"`
	Address       *string `json:"address"`
}

// GetClientsHandler returns the user's clients. Supports a keyword search
// over name, email, and contact number.
func GetClientsHandler(c echo.Context) error {
	scope, err := currentScope(c)
	if err != nil {
		return err
	}

	var clients []models.Client
	if query := c.QueryParam("q"); query != "" {
		clients, err = scope.SearchClients(query)
	} else {
		clients, err = scope.ListClients()
	}
	if err != nil {
		return storeError(err, "clients")
	}

	return c.JSON(http.StatusOK, clients)
}

// GetClientHandler returns a single client
func GetClientHandler(c echo.Context) error {
	scope, err := currentScope(c)
	if err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	client, err := scope.GetClient(id)
	if err != nil {
		return storeError(err, "client")
	}
	return c.JSON(http.StatusOK, client)
}

// CreateClientHandler creates a new client for the user
func CreateClientHandler(c echo.Context) error {
	scope, err := currentScope(c)
	if err != nil {
		return err
	}

	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Client name is required")
	}

	client := &models.Client{
		Name:          req.Name,
		ContactNumber: req.ContactNumber,
		Email:         req.Email,
		Address:       services.SanitizeText(req.Address),
	}

	created, err := scope.CreateClient(client)
	if err != nil {
		return storeError(err, "client")
	}

	services.RecordActivity(scope, "created_client", models.ClientRef(created.ID),
		fmt.Sprintf("Added client %s", created.Name))

	return c.JSON(http.StatusCreated, created)
}

// UpdateClientHandler merges the provided fields into an existing client
func UpdateClientHandler(c echo.Context) error {
	scope, err := currentScope(c)
	if err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req updateClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	if req.Name != nil && *req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Client name cannot be empty")
	}

	params := store.ClientParams{
		Name:          req.Name,
		ContactNumber: req.ContactNumber,
		Email:         req.Email,
	}
	if req.Address != nil {
		clean := services.SanitizeText(*req.Address)
		params.Address = &clean
	}

	updated, err := scope.UpdateClient(id, params)
	if err != nil {
		return storeError(err, "client")
	}

	services.RecordActivity(scope, "updated_client", models.ClientRef(updated.ID),
		fmt.Sprintf("Updated client %s", updated.Name))

	return c.JSON(http.StatusOK, updated)
}

// DeleteClientHandler removes a client and detaches it from its cases
func DeleteClientHandler(c echo.Context) error {
	scope, err := currentScope(c)
	if err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	client, err := scope.GetClient(id)
	if err != nil {
		return storeError(err, "client")
	}
	if err := scope.DeleteClient(id); err != nil {
		return storeError(err, "client")
	}

	services.RecordActivity(scope, "deleted_client", models.ClientRef(id),
		fmt.Sprintf("Removed client %s", client.Name))

	return c.NoContent(http.StatusNoContent)
}
