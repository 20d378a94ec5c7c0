package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shophub/models"
	"shophub/services"
)

type AdminController struct {
	admin    *services.AdminService
	tracking *services.TrackingService
}

func NewAdminController(admin *services.AdminService, tracking *services.TrackingService) *AdminController {
	return &AdminController{admin: admin, tracking: tracking}
}

// ListOrders returns every order in the store, optionally filtered by
// ?status=.
func (ac *AdminController) ListOrders(c *gin.Context) {
	var status *models.OrderStatus
	if raw := c.Query("status"); raw != "" {
		parsed, err := models.ParseOrderStatus(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		status = &parsed
	}

	orders, appErr := ac.admin.ListAllOrders(c.Request.Context(), status)
	if appErr != nil {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders, "count": len(orders)})
}

type updateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus overwrites an order's status and notifies its owner.
func (ac *AdminController) UpdateOrderStatus(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID format"})
		return
	}

	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	status, parseErr := models.ParseOrderStatus(req.Status)
	if parseErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": parseErr.Error()})
		return
	}

	order, appErr := ac.admin.UpdateOrderStatus(c.Request.Context(), orderID, status)
	if appErr != nil {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusOK, order)
}

// AddTrackingEvent appends a tracking event to an order. The order's status
// field follows the event's status.
func (ac *AdminController) AddTrackingEvent(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID format"})
		return
	}

	var req models.AddTrackingEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	status, parseErr := models.ParseOrderStatus(req.Status)
	if parseErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": parseErr.Error()})
		return
	}

	if appErr := ac.tracking.AddEvent(c.Request.Context(), orderID, status, req.Description, req.Location); appErr != nil {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Tracking event added"})
}

// Stats returns the dashboard summary.
func (ac *AdminController) Stats(c *gin.Context) {
	stats, appErr := ac.admin.Stats(c.Request.Context())
	if appErr != nil {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListUsers returns all registered users.
func (ac *AdminController) ListUsers(c *gin.Context) {
	users, appErr := ac.admin.ListUsers(c.Request.Context())
	if appErr != nil {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users, "count": len(users)})
}

// PromoteUser grants admin rights to the user in the path.
func (ac *AdminController) PromoteUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}
	if appErr := ac.admin.PromoteUser(c.Request.Context(), userID); appErr != nil {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User promoted to admin"})
}

// Bootstrap promotes the earliest-registered user to admin. This route sits
// outside the admin guard so a fresh deployment can mint its first admin.
func (ac *AdminController) Bootstrap(c *gin.Context) {
	user, appErr := ac.admin.PromoteFirstUser(c.Request.Context())
	if appErr != nil {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Admin access granted", "user": user})
}
