package routes

import (
	"github.com/Naitik2408/pizza-sub001/configs"
	"github.com/Naitik2408/pizza-sub001/controllers"
	"github.com/Naitik2408/pizza-sub001/middlewares"
	"github.com/Naitik2408/pizza-sub001/repository"
	"github.com/Naitik2408/pizza-sub001/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Deps struct {
	Gateway  services.PaymentGateway
	Notifier services.Notifier
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, deps Deps) *services.BusinessRulesService {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	catalogRepo := repository.NewCatalogRepository(db)
	offerRepo := repository.NewOfferRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	rulesSvc := services.NewBusinessRulesService(settingsRepo)
	discountSvc := services.NewDiscountService(offerRepo)
	cartSvc := services.NewCartService(catalogRepo, cartRepo, rulesSvc, discountSvc)
	orderSvc := services.NewOrderService(db, orderRepo, deps.Notifier)
	addressSvc := services.NewAddressService(addressRepo)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	checkoutSvc := services.NewCheckoutService(cartSvc, rulesSvc, orderSvc, addressSvc, deps.Gateway)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	catalogCtrl := controllers.NewCatalogController(catalogRepo, rulesSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	offerCtrl := controllers.NewOfferController(offerRepo, discountSvc, cartSvc)
	checkoutCtrl := controllers.NewCheckoutController(checkoutSvc, authSvc)
	addressCtrl := controllers.NewAddressController(addressSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	settingsCtrl := controllers.NewSettingsController(rulesSvc)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(), authCtrl.Me)

	// Catalog (public)
	r.GET("/catalog/items", catalogCtrl.List)
	r.GET("/catalog/items/:id", catalogCtrl.Detail)
	r.GET("/catalog/settings", catalogCtrl.Settings)
	r.GET("/offers", offerCtrl.List)

	// Cart + checkout: user token or guest id, same surface either way
	id := r.Group("/", middlewares.Identify())
	{
		id.GET("/offers/:code", offerCtrl.Validate)

		id.GET("/cart", cartCtrl.Get)
		id.POST("/cart/items", cartCtrl.Add)
		id.PATCH("/cart/items/qty", cartCtrl.UpdateQty)
		id.PATCH("/cart/items/size", cartCtrl.ChangeSize)
		id.DELETE("/cart/items", cartCtrl.Remove)
		id.DELETE("/cart", cartCtrl.Clear)
		id.POST("/cart/offer", cartCtrl.ApplyOffer)
		id.DELETE("/cart/offer", cartCtrl.RemoveOffer)

		id.GET("/checkout", checkoutCtrl.State)
		id.POST("/checkout/address", checkoutCtrl.ProceedToAddress)
		id.POST("/checkout/select-address", checkoutCtrl.SelectAddress)
		id.POST("/checkout/payment", checkoutCtrl.ProceedToPayment)
		id.POST("/checkout/guest-contact", checkoutCtrl.GuestContact)
		id.POST("/checkout/back", checkoutCtrl.Back)
		id.POST("/checkout/pay", checkoutCtrl.Pay)
		id.POST("/checkout/complete", checkoutCtrl.Complete)
		id.POST("/checkout/cancel", checkoutCtrl.Cancel)

		id.GET("/addresses", addressCtrl.List)
		id.POST("/addresses", addressCtrl.Create)
		id.PUT("/addresses/:id", addressCtrl.Update)
		id.DELETE("/addresses/:id", addressCtrl.Delete)

		id.GET("/orders", orderCtrl.List)
		id.GET("/orders/:id", orderCtrl.Detail)
	}

	// Admin
	r.PUT("/admin/settings", middlewares.AuthMiddleware("admin"), settingsCtrl.Update)

	return rulesSvc
}
