// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-gateway/internal/cart"
	"github.com/your-org/storefront-gateway/internal/catalog"
	"github.com/your-org/storefront-gateway/internal/config"
	"github.com/your-org/storefront-gateway/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-gateway/internal/notify"
	"github.com/your-org/storefront-gateway/internal/order"
	"github.com/your-org/storefront-gateway/internal/session"
	"github.com/your-org/storefront-gateway/internal/wishlist"
)

// Dependencies carries the wired domain components into the route layer
type Dependencies struct {
	Config   *config.Config
	Logger   *logrus.Logger
	Hub      *notify.Hub
	Sessions *session.Manager
	Cart     *cart.Store
	Wishlist *wishlist.Store
	Catalog  *catalog.Client
	Searcher *catalog.Searcher
	Orders   *order.Client
}

// SetupRoutes registers all routes on the given group
func SetupRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	SetupAuthRoutes(rg, deps)
	SetupCatalogRoutes(rg, deps)
	SetupCartRoutes(rg, deps)
	SetupWishlistRoutes(rg, deps)
	SetupCheckoutRoutes(rg, deps)
	SetupOrderRoutes(rg, deps)
	SetupNotificationRoutes(rg, deps)
}

// SetupAuthRoutes sets up authentication related routes
func SetupAuthRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	sessionHandler := handlers.NewSessionHandler(deps.Sessions)

	auth := rg.Group("/auth")
	{
		auth.POST("/register", sessionHandler.Register)
		auth.POST("/login", sessionHandler.Login)
		auth.POST("/logout", sessionHandler.Logout)
		auth.GET("/profile", sessionHandler.Profile)
		auth.GET("/is-admin", sessionHandler.IsAdmin)
	}
}

// SetupCatalogRoutes sets up product catalog routes
func SetupCatalogRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	catalogHandler := handlers.NewCatalogHandler(deps.Catalog, deps.Searcher)

	products := rg.Group("/products")
	{
		products.GET("", catalogHandler.GetProducts)
		products.GET("/search", catalogHandler.SearchProducts)
		products.GET("/:id", catalogHandler.GetProduct)
	}
}

// SetupCartRoutes sets up cart related routes
func SetupCartRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	cartHandler := handlers.NewCartHandler(deps.Cart)

	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.DELETE("", cartHandler.ClearCart)
		cartGroup.GET("/count", cartHandler.GetCartCount)
		cartGroup.POST("/items", cartHandler.AddToCart)
		cartGroup.PUT("/items/:id", cartHandler.UpdateCartItem)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveFromCart)
		cartGroup.GET("/sidebar", cartHandler.GetSidebar)
		cartGroup.POST("/sidebar/toggle", cartHandler.ToggleSidebar)
	}
}

// SetupWishlistRoutes sets up wishlist related routes
func SetupWishlistRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	wishlistHandler := handlers.NewWishlistHandler(deps.Wishlist)

	wishlistGroup := rg.Group("/wishlist")
	{
		wishlistGroup.GET("", wishlistHandler.GetWishlist)
		wishlistGroup.DELETE("", wishlistHandler.ClearWishlist)
		wishlistGroup.GET("/count", wishlistHandler.GetWishlistCount)
		wishlistGroup.POST("/toggle", wishlistHandler.Toggle)
		wishlistGroup.DELETE("/:productId", wishlistHandler.RemoveFromWishlist)
		wishlistGroup.POST("/:productId/move-to-cart", wishlistHandler.MoveToCart)
	}
}

// SetupCheckoutRoutes sets up checkout flow routes
func SetupCheckoutRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	checkoutHandler := handlers.NewCheckoutHandler(deps.Config, deps.Cart, deps.Orders, deps.Hub, deps.Logger)

	checkoutGroup := rg.Group("/checkout")
	{
		checkoutGroup.POST("", checkoutHandler.Start)
		checkoutGroup.GET("/steps", checkoutHandler.GetSteps)
		checkoutGroup.POST("/steps/:index", checkoutHandler.GoToStep)
		checkoutGroup.POST("/shipping", checkoutHandler.SubmitShipping)
		checkoutGroup.POST("/payment", checkoutHandler.SubmitPayment)
		checkoutGroup.GET("/summary", checkoutHandler.GetSummary)
		checkoutGroup.POST("/summary/recalculate", checkoutHandler.RecalculateSummary)
		checkoutGroup.GET("/payment-methods", checkoutHandler.GetPaymentMethods)
	}
}

// SetupOrderRoutes sets up order history routes
func SetupOrderRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	orderHandler := handlers.NewOrderHandler(deps.Orders)

	orders := rg.Group("/orders")
	{
		orders.GET("", orderHandler.ListOrders)
	}
}

// SetupNotificationRoutes sets up the notification stream
func SetupNotificationRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	notificationHandler := handlers.NewNotificationHandler(deps.Hub)

	rg.GET("/notifications/stream", notificationHandler.Stream)
}
