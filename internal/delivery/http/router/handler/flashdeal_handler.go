package handler

import (
	"log/slog"
	"net/http"
	"time"

	"dealdrop/internal/delivery/http/response"
	domainerrors "dealdrop/internal/domain/errors"
	"dealdrop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// FlashDealHandlerParams holds dependencies for FlashDealHandler, injected by Fx.
type FlashDealHandlerParams struct {
	fx.In

	FlashDealUC usecase.FlashDealUsecase
	Logger      *slog.Logger
}

// FlashDealHandler holds dependencies for flash-deal handlers
type FlashDealHandler struct {
	flashDealUC usecase.FlashDealUsecase
	logger      *slog.Logger
}

// NewFlashDealHandler is the constructor for FlashDealHandler
func NewFlashDealHandler(params FlashDealHandlerParams) *FlashDealHandler {
	return &FlashDealHandler{
		flashDealUC: params.FlashDealUC,
		logger:      params.Logger,
	}
}

// PostFlashDealRequest represents the request body for posting a flash deal
type PostFlashDealRequest struct {
	Title          string    `json:"title" validate:"required"`
	Category       string    `json:"category" validate:"required"`
	OriginalPrice  float64   `json:"original_price" validate:"required,gt=0"`
	FlashPrice     float64   `json:"flash_price" validate:"required,gt=0"`
	ExpiresAt      time.Time `json:"expires_at" validate:"required"`
	MaxRedemptions *int      `json:"max_redemptions,omitempty" validate:"omitempty,gt=0"`
}

// PostFlashDeal handles posting a new flash deal under the caller's listing
func (h *FlashDealHandler) PostFlashDeal(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	listingID, err := uuid.Parse(c.Param("listingId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	var req PostFlashDealRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid flash deal input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := usecase.PostFlashDealInput{
		Title:          req.Title,
		Category:       req.Category,
		OriginalPrice:  req.OriginalPrice,
		FlashPrice:     req.FlashPrice,
		ExpiresAt:      req.ExpiresAt,
		MaxRedemptions: req.MaxRedemptions,
	}

	deal, err := h.flashDealUC.PostFlashDeal(c.Request().Context(), userID, listingID, input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, deal, "Flash deal posted successfully")
}

// GetFlashDeal handles retrieving a single flash deal
func (h *FlashDealHandler) GetFlashDeal(c echo.Context) error {
	dealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid flash deal ID")
	}

	deal, err := h.flashDealUC.GetFlashDeal(c.Request().Context(), dealID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, deal, "Flash deal retrieved successfully")
}

// GetActiveFlashDeals handles retrieving all unexpired flash deals
func (h *FlashDealHandler) GetActiveFlashDeals(c echo.Context) error {
	deals, err := h.flashDealUC.GetActiveFlashDeals(c.Request().Context())
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, deals, "Active flash deals retrieved successfully")
}

// RedeemFlashDeal handles consuming one redemption of a flash deal.
// Expired deals come back as 410 and sold-out deals as 409.
func (h *FlashDealHandler) RedeemFlashDeal(c echo.Context) error {
	dealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid flash deal ID")
	}

	deal, err := h.flashDealUC.RedeemFlashDeal(c.Request().Context(), dealID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, deal, "Flash deal redeemed successfully")
}

// getUserID extracts the user ID from the context
func (h *FlashDealHandler) getUserID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}

// handleAppError handles application errors
func (h *FlashDealHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
