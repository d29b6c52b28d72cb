package server

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"shop-backoffice/internal/handler"
	custommw "shop-backoffice/internal/middleware"
	"shop-backoffice/internal/service"
)

type Server struct {
	echo            *echo.Echo
	paymentHandler  *handler.PaymentHandler
	couponHandler   *handler.CouponHandler
	orderHandler    *handler.OrderHandler
	customerHandler *handler.CustomerHandler
	catalogHandler  *handler.CatalogHandler
	adminToken      string
}

func NewServer(
	adminToken string,
	paymentService service.PaymentService,
	couponService service.CouponService,
	orderService service.OrderService,
	customerService service.CustomerService,
	catalogService service.CatalogService,
) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:            e,
		paymentHandler:  handler.NewPaymentHandler(paymentService),
		couponHandler:   handler.NewCouponHandler(couponService),
		orderHandler:    handler.NewOrderHandler(orderService),
		customerHandler: handler.NewCustomerHandler(customerService),
		catalogHandler:  handler.NewCatalogHandler(catalogService),
		adminToken:      adminToken,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// -------- gateway callback / storefront --------
	api.POST("/payment/webhook", s.paymentHandler.HandleCallback)
	api.GET("/payment/webhook", s.paymentHandler.HandleCallback)
	api.POST("/coupons/validate", s.couponHandler.Validate)

	// -------- admin back office --------
	admin := api.Group("/admin", custommw.AdminAuth(s.adminToken))

	admin.GET("/dashboard", s.orderHandler.Dashboard)

	admin.GET("/orders", s.orderHandler.List)
	admin.GET("/orders/:id", s.orderHandler.Get)
	admin.PUT("/orders/:id/status", s.orderHandler.UpdateStatus)

	admin.GET("/customers", s.customerHandler.List)
	admin.GET("/customers/:id", s.customerHandler.Get)

	admin.GET("/coupons", s.couponHandler.List)
	admin.POST("/coupons", s.couponHandler.Create)
	admin.DELETE("/coupons/:id", s.couponHandler.Delete)
	admin.PUT("/coupons/:id/active", s.couponHandler.SetActive)

	admin.GET("/products", s.catalogHandler.ListProducts)
	admin.POST("/products", s.catalogHandler.CreateProduct)
	admin.PUT("/products/:id", s.catalogHandler.UpdateProduct)
	admin.DELETE("/products/:id", s.catalogHandler.DeleteProduct)
	admin.PUT("/products/:id/stock", s.catalogHandler.SetProductInStock)

	admin.GET("/shipping-options", s.catalogHandler.ListShippingOptions)
	admin.POST("/shipping-options", s.catalogHandler.CreateShippingOption)
	admin.PUT("/shipping-options/:id", s.catalogHandler.UpdateShippingOption)
	admin.DELETE("/shipping-options/:id", s.catalogHandler.DeleteShippingOption)
}

// Echo exposes the router for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
