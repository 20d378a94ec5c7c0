package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"shophub/controllers"
	"shophub/middleware"
	"shophub/repository"
)

// Controllers bundles the handler set the router wires up.
type Controllers struct {
	Products *controllers.ProductController
	Cart     *controllers.CartController
	Orders   *controllers.OrderController
	Payments *controllers.PaymentController
	Tracking *controllers.TrackingController
	Admin    *controllers.AdminController
}

// RegisterRoutes attaches every storefront and admin route to the engine.
func RegisterRoutes(router *gin.Engine, ctrl Controllers, users repository.UserRepository) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "service": "shophub"})
	})

	// Public catalog
	products := router.Group("/products")
	{
		products.GET("", ctrl.Products.List)
		products.GET("/categories", ctrl.Products.Categories)
		products.GET("/:id", ctrl.Products.Get)
	}

	// Public tracking lookup by short code. Unauthenticated, so rate limited.
	router.GET("/track/:code", middleware.RateLimitMiddleware(rate.Limit(1), 5), ctrl.Tracking.GetByCode)

	// Cart count renders in the storefront header for everyone; an anonymous
	// caller gets zero rather than a 401.
	router.GET("/cart/count", middleware.OptionalAuthMiddleware(), ctrl.Cart.ItemCount)

	cart := router.Group("/cart", middleware.AuthMiddleware())
	{
		cart.GET("", ctrl.Cart.GetCart)
		cart.POST("/add", ctrl.Cart.AddItem)
		cart.PATCH("/items/:id", ctrl.Cart.UpdateItem)
		cart.DELETE("/items/:id", ctrl.Cart.RemoveItem)
		cart.DELETE("/clear", ctrl.Cart.ClearCart)
	}

	orders := router.Group("/orders", middleware.AuthMiddleware())
	{
		orders.POST("", ctrl.Orders.PlaceOrder)
		orders.GET("", ctrl.Orders.GetOrders)
		orders.GET("/:id", ctrl.Orders.GetOrderByID)
		orders.GET("/:id/tracking", ctrl.Tracking.GetByOrder)
	}

	payments := router.Group("/payments", middleware.AuthMiddleware())
	{
		payments.POST("/intent", ctrl.Payments.CreateIntent)
		payments.POST("/confirm", ctrl.Payments.ConfirmPayment)
	}

	// Bootstrap sits outside the admin guard so a fresh deployment can mint
	// its first admin. It still requires a logged-in caller.
	router.POST("/admin/bootstrap", middleware.AuthMiddleware(), ctrl.Admin.Bootstrap)

	admin := router.Group("/admin", middleware.AuthMiddleware(), middleware.AdminOnly(users))
	{
		admin.GET("/orders", ctrl.Admin.ListOrders)
		admin.PATCH("/orders/:id/status", ctrl.Admin.UpdateOrderStatus)
		admin.POST("/orders/:id/tracking", ctrl.Admin.AddTrackingEvent)
		admin.GET("/stats", ctrl.Admin.Stats)
		admin.GET("/users", ctrl.Admin.ListUsers)
		admin.POST("/users/:id/promote", ctrl.Admin.PromoteUser)
		admin.POST("/products", ctrl.Products.Create)
		admin.POST("/products/seed", ctrl.Products.Seed)
	}
}
