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

// FavoriteHandlerParams holds dependencies for FavoriteHandler, injected by Fx.
type FavoriteHandlerParams struct {
	fx.In

	FavoriteUC usecase.FavoriteUsecase
	AlertUC    usecase.AlertUsecase
	Logger     *slog.Logger
}

// FavoriteHandler holds dependencies for favorite and alert-preference handlers
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
	alertUC    usecase.AlertUsecase
	logger     *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler
func NewFavoriteHandler(params FavoriteHandlerParams) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUC: params.FavoriteUC,
		alertUC:    params.AlertUC,
		logger:     params.Logger,
	}
}

// SetNotifyRequest represents the request body for toggling proximity alerts
type SetNotifyRequest struct {
	NotifyWhenNearby *bool `json:"notify_when_nearby" validate:"required"`
}

// FavoriteFromQRRequest represents the request body for scanning a favorite QR code
type FavoriteFromQRRequest struct {
	QRData string `json:"qr_data" validate:"required"`
}

// SavePreferencesRequest represents the request body for saving alert preferences
type SavePreferencesRequest struct {
	SubscribedVendors    []uuid.UUID `json:"subscribed_vendors"`
	SubscribedCategories []string    `json:"subscribed_categories"`
}

// NearbyCheckRequest represents the request body for a proximity check
type NearbyCheckRequest struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// FavoriteVendor handles favoriting a vendor. Favoriting twice returns the
// existing subscription.
func (h *FavoriteHandler) FavoriteVendor(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	vendorID, err := uuid.Parse(c.Param("vendorId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vendor ID")
	}

	favorite, err := h.favoriteUC.FavoriteVendor(c.Request().Context(), userID, vendorID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, favorite, "Vendor favorited successfully")
}

// UnfavoriteVendor handles removing a favorite
func (h *FavoriteHandler) UnfavoriteVendor(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	vendorID, err := uuid.Parse(c.Param("vendorId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vendor ID")
	}

	if err := h.favoriteUC.UnfavoriteVendor(c.Request().Context(), userID, vendorID); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Vendor unfavorited successfully"}, "Vendor unfavorited successfully")
}

// SetNotifyWhenNearby handles toggling proximity alerts for a favorite
func (h *FavoriteHandler) SetNotifyWhenNearby(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	vendorID, err := uuid.Parse(c.Param("vendorId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vendor ID")
	}

	var req SetNotifyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notify input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.favoriteUC.SetNotifyWhenNearby(c.Request().Context(), userID, vendorID, *req.NotifyWhenNearby); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Notification preference updated"}, "Notification preference updated")
}

// ListFavorites handles retrieving the caller's favorite vendors
func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	favorites, err := h.favoriteUC.ListFavorites(c.Request().Context(), userID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, favorites, "Favorites retrieved successfully")
}

// GenerateFavoriteQR handles generating a favorite QR code PNG for a vendor
func (h *FavoriteHandler) GenerateFavoriteQR(c echo.Context) error {
	vendorID, err := uuid.Parse(c.Param("vendorId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vendor ID")
	}

	pngBytes, err := h.favoriteUC.GenerateFavoriteQR(c.Request().Context(), vendorID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", pngBytes)
}

// FavoriteFromQR handles favoriting the vendor encoded in scanned QR data
func (h *FavoriteHandler) FavoriteFromQR(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	var req FavoriteFromQRRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid QR input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	favorite, err := h.favoriteUC.FavoriteFromQR(c.Request().Context(), userID, req.QRData)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, favorite, "Vendor favorited from QR successfully")
}

// GetAlertPreferences handles retrieving the caller's flash-deal alert preferences
func (h *FavoriteHandler) GetAlertPreferences(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	prefs, err := h.favoriteUC.GetAlertPreferences(c.Request().Context(), userID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, prefs, "Alert preferences retrieved successfully")
}

// SaveAlertPreferences handles saving the caller's flash-deal alert preferences
func (h *FavoriteHandler) SaveAlertPreferences(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	var req SavePreferencesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preferences input")
	}

	prefs := &entity.AlertPreferences{
		UserID:               userID,
		SubscribedVendors:    req.SubscribedVendors,
		SubscribedCategories: req.SubscribedCategories,
	}

	if err := h.favoriteUC.SaveAlertPreferences(c.Request().Context(), prefs); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, prefs, "Alert preferences saved successfully")
}

// CheckNearbyFavorites handles a proximity check against the caller's
// favorites, pushing an alert for each vendor inside the radius.
func (h *FavoriteHandler) CheckNearbyFavorites(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	var req NearbyCheckRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid position input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	alerts, err := h.alertUC.CheckNearbyFavorites(c.Request().Context(), userID, req.Latitude, req.Longitude)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alerts, "Nearby favorites checked successfully")
}

// getUserID extracts the user ID from the context
func (h *FavoriteHandler) getUserID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}

// handleAppError handles application errors
func (h *FavoriteHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
