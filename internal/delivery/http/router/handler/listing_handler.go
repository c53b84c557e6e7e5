package handler

import (
	"log/slog"
	"net/http"

	"dealdrop/internal/delivery/http/response"
	"dealdrop/internal/domain/entity"
	domainerrors "dealdrop/internal/domain/errors"
	"dealdrop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	roleVendor = "vendor"
)

// ListingHandlerParams holds dependencies for ListingHandler, injected by Fx.
type ListingHandlerParams struct {
	fx.In

	ListingUC usecase.ListingUsecase
	Logger    *slog.Logger
}

// ListingHandler holds dependencies for vendor-listing handlers
type ListingHandler struct {
	listingUC usecase.ListingUsecase
	logger    *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler
func NewListingHandler(params ListingHandlerParams) *ListingHandler {
	return &ListingHandler{
		listingUC: params.ListingUC,
		logger:    params.Logger,
	}
}

// CreateListingRequest represents the request body for creating a listing
type CreateListingRequest struct {
	BusinessName string  `json:"business_name" validate:"required"`
	Category     string  `json:"category" validate:"required"`
	LocationLat  float64 `json:"location_lat" validate:"min=-90,max=90"`
	LocationLng  float64 `json:"location_lng" validate:"min=-180,max=180"`
	City         string  `json:"city"`
	State        string  `json:"state"`
}

// UpdateLocationRequest represents the request body for a location update
type UpdateLocationRequest struct {
	LocationLat float64 `json:"location_lat" validate:"min=-90,max=90"`
	LocationLng float64 `json:"location_lng" validate:"min=-180,max=180"`
	City        string  `json:"city"`
	State       string  `json:"state"`
}

// CreateListing handles creating a new vendor listing
func (h *ListingHandler) CreateListing(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	var req CreateListingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := usecase.CreateListingInput{
		BusinessName: req.BusinessName,
		Category:     req.Category,
		LocationLat:  req.LocationLat,
		LocationLng:  req.LocationLng,
		City:         req.City,
		State:        req.State,
	}

	listing, err := h.listingUC.CreateListing(c.Request().Context(), userID, input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, listing, "Listing created successfully")
}

// GetListing handles retrieving a single listing
func (h *ListingHandler) GetListing(c echo.Context) error {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	listing, err := h.listingUC.GetListing(c.Request().Context(), listingID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listing, "Listing retrieved successfully")
}

// GetMyListings handles retrieving all listings owned by the caller
func (h *ListingHandler) GetMyListings(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	listings, err := h.listingUC.GetListingsByUser(c.Request().Context(), userID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listings, "Listings retrieved successfully")
}

// UpdateLocation handles a vendor location update. Updates inside the
// cooldown window come back as 429 with the remaining wait in minutes.
func (h *ListingHandler) UpdateLocation(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	var req UpdateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	update := entity.LocationUpdate{
		LocationLat: req.LocationLat,
		LocationLng: req.LocationLng,
		City:        req.City,
		State:       req.State,
	}

	listing, err := h.listingUC.UpdateLocation(c.Request().Context(), userID, listingID, update)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listing, "Location updated successfully")
}

// DeleteListing handles deleting a listing
func (h *ListingHandler) DeleteListing(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	if err := h.listingUC.DeleteListing(c.Request().Context(), userID, listingID); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Listing deleted successfully"}, "Listing deleted successfully")
}

// getUserID extracts the user ID from the context
func (h *ListingHandler) getUserID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}

// handleAppError handles application errors
func (h *ListingHandler) handleAppError(c echo.Context, err error) error {
	var rateLimitErr *domainerrors.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return response.ErrorWithData(c, rateLimitErr.HTTPCode(), rateLimitErr.ErrorCode(), rateLimitErr.Message(), map[string]int{
			"waitMinutes": rateLimitErr.WaitMinutes,
		})
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
