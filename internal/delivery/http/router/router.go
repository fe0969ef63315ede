// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"freshdeal/internal/delivery/http/middleware"
	"freshdeal/internal/delivery/http/router/handler"
	"freshdeal/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	UserHandler       *handler.UserHandler
	RestaurantHandler *handler.RestaurantHandler
	CartHandler       *handler.CartHandler
	PurchaseHandler   *handler.PurchaseHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	auth       *handler.AuthHandler
	user       *handler.UserHandler
	restaurant *handler.RestaurantHandler
	cart       *handler.CartHandler
	purchase   *handler.PurchaseHandler
	authMW     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		auth:       params.AuthHandler,
		user:       params.UserHandler,
		restaurant: params.RestaurantHandler,
		cart:       params.CartHandler,
		purchase:   params.PurchaseHandler,
		authMW:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	e.POST("/login", r.auth.Login)
	e.POST("/register", r.auth.Register)

	authenticate := r.authMW.Authenticate
	owner := r.authMW.RequireRole(entity.RoleRestaurant)

	userGroup := e.Group("/user", authenticate)
	{
		userGroup.GET("/data", r.user.GetData)
		userGroup.PUT("/username", r.user.UpdateUsername)
		userGroup.PUT("/email", r.user.UpdateEmail)
		userGroup.PUT("/password", r.user.UpdatePassword)
		userGroup.POST("/addresses", r.user.AddAddress)
		userGroup.DELETE("/addresses/:id", r.user.RemoveAddress)
		userGroup.GET("/achievements", r.user.Achievements)
		userGroup.GET("/rankings", r.user.Rankings)
		userGroup.GET("/stats", r.user.Stats)
		userGroup.GET("/favorites", r.user.Favorites)
		userGroup.POST("/favorites", r.user.AddFavorite)
		userGroup.DELETE("/favorites", r.user.RemoveFavorite)
	}

	restaurantGroup := e.Group("/restaurants", authenticate)
	{
		restaurantGroup.POST("/proximity", r.restaurant.Proximity)
		restaurantGroup.GET("", r.restaurant.List)
		restaurantGroup.GET("/:id", r.restaurant.Get)
		restaurantGroup.GET("/:id/listings", r.restaurant.Listings)
		restaurantGroup.POST("/:id/comments", r.restaurant.AddComment)

		// Owner routes
		restaurantGroup.POST("", r.restaurant.Create, owner)
		restaurantGroup.PUT("/:id", r.restaurant.Update, owner)
		restaurantGroup.DELETE("/:id", r.restaurant.Delete, owner)
	}

	cartGroup := e.Group("/cart", authenticate)
	{
		cartGroup.GET("", r.cart.Get)
		cartGroup.POST("", r.cart.Add)
		cartGroup.PUT("", r.cart.Update)
		cartGroup.DELETE("/:listing_id", r.cart.Remove)
		cartGroup.POST("/reset", r.cart.Reset)
	}

	purchaseGroup := e.Group("/purchase", authenticate)
	{
		purchaseGroup.POST("", r.purchase.Create)
		purchaseGroup.GET("/active", r.purchase.Active)
		purchaseGroup.GET("/previous", r.purchase.Previous)
		purchaseGroup.GET("/:id", r.purchase.Get)
		purchaseGroup.GET("/:id/has-rating", r.purchase.HasRating)
		purchaseGroup.POST("/:id/response", r.purchase.Respond, owner)
	}
}
