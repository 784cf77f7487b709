package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "github.com/Skotchmaster/ecom-api/internal/middleware/auth"
)

type Deps struct {
	ProductHandler *ProductHTTP
	CartHandler    *CartHTTP
	OrderHandler   *OrderHTTP
	AuthHandler    *AuthHTTP
	SearchHandler  *SearchHTTP
	JWTSecret      []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", d.AuthHandler.Register)
	auth.POST("/login", d.AuthHandler.Login)
	auth.GET("/me", d.AuthHandler.Me, authmw.RequireAuth(d.JWTSecret))

	products := api.Group("/products")
	products.POST("", d.ProductHandler.CreateProduct)
	products.GET("", d.ProductHandler.GetProducts)
	products.GET("/search", d.SearchHandler.Search)
	products.GET("/:id", d.ProductHandler.GetProduct)
	products.PUT("/:id", d.ProductHandler.ReplaceProduct)
	products.DELETE("/:id", d.ProductHandler.DeleteProduct)

	cart := api.Group("/cart")
	cart.POST("/add", d.CartHandler.AddToCart)
	cart.GET("/:userId", d.CartHandler.GetCart)
	cart.PUT("/update", d.CartHandler.SetQuantity)
	cart.DELETE("/remove/:userId/:productId", d.CartHandler.RemoveFromCart)

	orders := api.Group("/orders")
	orders.POST("", d.OrderHandler.CreateOrder)
	orders.GET("/:userId", d.OrderHandler.ListOrders)
	orders.GET("/order/:orderId", d.OrderHandler.GetOrder)
	orders.PUT("/update", d.OrderHandler.SetStatus)
	orders.DELETE("/delete/:orderId", d.OrderHandler.DeleteOrder)
}
