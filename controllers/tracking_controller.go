package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "shophub/common/errors"
	"shophub/middleware"
	"shophub/services"
)

type TrackingController struct {
	tracking *services.TrackingService
}

func NewTrackingController(tracking *services.TrackingService) *TrackingController {
	return &TrackingController{tracking: tracking}
}

// GetByOrder returns an order's tracking history for its owner or an admin.
func (tc *TrackingController) GetByOrder(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrUnauthorized.Message})
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID format"})
		return
	}

	result, appErr := tc.tracking.GetByOrder(c.Request.Context(), userID, orderID)
	if appErr != nil {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetByCode is the public tracking lookup by the trailing 8 characters of an
// order id. No authentication; the route carries a rate limit instead.
func (tc *TrackingController) GetByCode(c *gin.Context) {
	code := c.Param("code")
	if len(code) != 8 {
		c.JSON(http.StatusNotFound, gin.H{"error": apperrors.ErrOrderNotFound.Message})
		return
	}

	result, appErr := tc.tracking.GetByShortCode(c.Request.Context(), code)
	if appErr != nil {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusOK, result)
}
