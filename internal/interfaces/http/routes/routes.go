// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/config"
	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/domain/cart"
	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/domain/catalog"
	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/domain/contact"
	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/domain/order"
	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/domain/payment"
	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/domain/review"
	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/domain/user"
	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/domain/wishlist"
	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/interfaces/http/handlers"
	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/interfaces/http/middleware"
	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/pkg/auth"
	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/pkg/email"
	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/pkg/pdf"
	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/pkg/storage"
)

// Dependencies carries everything the route handlers need
type Dependencies struct {
	Config     *config.Config
	DB         *gorm.DB
	Redis      *redis.Client
	Dispatcher *email.Dispatcher
	Storage    storage.Storage
	Gateway    payment.GatewayVerifier
}

// SetupRoutes wires all API routes
func SetupRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	cfg := deps.Config
	db := deps.DB

	jwtManager := auth.NewJWTManager(cfg)
	passwordMgr := auth.NewPasswordManager(cfg)

	catalogSvc := catalog.NewService(db)
	userSvc := user.NewService(db, jwtManager, passwordMgr)
	otpSvc := user.NewOTPService(deps.Redis, cfg.OTP.TTL, cfg.OTP.Digits)
	cartSvc := cart.NewService(db)
	orderSvc := order.NewService(db, deps.Dispatcher)
	paymentSvc := payment.NewService(db, deps.Gateway, deps.Dispatcher)
	reviewSvc := review.NewService(db)
	wishlistSvc := wishlist.NewService(db)
	contactSvc := contact.NewService(db, deps.Dispatcher)
	pdfSvc := pdf.NewService(cfg)

	userHandler := handlers.NewUserHandler(userSvc, otpSvc, deps.Dispatcher)
	productHandler := handlers.NewProductHandler(catalogSvc, deps.Storage, db)
	cartHandler := handlers.NewCartHandler(cartSvc)
	orderHandler := handlers.NewOrderHandler(orderSvc, pdfSvc)
	paymentHandler := handlers.NewPaymentHandler(paymentSvc)
	reviewHandler := handlers.NewReviewHandler(reviewSvc)
	wishlistHandler := handlers.NewWishlistHandler(wishlistSvc)
	contactHandler := handlers.NewContactHandler(contactSvc)

	authRequired := middleware.AuthMiddleware(cfg)
	adminOnly := middleware.AdminMiddleware()

	users := rg.Group("/user")
	{
		users.POST("/Register", userHandler.Register)
		users.POST("/Login", userHandler.Login)
		users.POST("/SendOTP", userHandler.SendOTP)
		users.POST("/VerifyOTP", userHandler.VerifyOTP)
		users.GET("/Profile", authRequired, userHandler.GetProfile)
	}

	products := rg.Group("/product")
	{
		products.GET("/GetProducts", productHandler.GetProducts)
		products.GET("/GetProductById/:id", productHandler.GetProductByID)
		products.GET("/GetBrands", productHandler.GetBrands)
		products.GET("/GetCategories", productHandler.GetCategories)

		admin := products.Group("", authRequired, adminOnly)
		{
			admin.POST("/AddProduct", productHandler.AddProduct)
			admin.POST("/AddBrand", productHandler.AddBrand)
			admin.POST("/AddCategory", productHandler.AddCategory)
			admin.POST("/UploadImages", productHandler.UploadImages)
			admin.PATCH("/UpdateStock", productHandler.UpdateStock)
			admin.DELETE("/DeleteProduct/:id", productHandler.DeleteProduct)
		}
	}

	carts := rg.Group("/cart", authRequired)
	{
		carts.POST("/add", cartHandler.AddToCart)
		carts.GET("/user/:id", cartHandler.GetCart)
		carts.PUT("/item/:id", cartHandler.UpdateItem)
		carts.DELETE("/item/:id", cartHandler.RemoveItem)
		carts.DELETE("/user/:id", cartHandler.ClearCart)
	}

	orders := rg.Group("/order", authRequired)
	{
		orders.POST("/create", orderHandler.CreateOrder)
		orders.GET("/GetUserOrder/:userId", orderHandler.GetUserOrders)
		orders.GET("/GetOrderDetails/:orderId", orderHandler.GetOrderDetails)
		orders.GET("/Invoice/:orderId", orderHandler.DownloadInvoice)
		orders.PATCH("/CancelOrder/:id", orderHandler.CancelOrder)

		admin := orders.Group("", adminOnly)
		{
			admin.GET("/GetAllOrders", orderHandler.GetAllOrders)
			admin.GET("/GetOrdersByStatus", orderHandler.GetOrdersByStatus)
			admin.PATCH("/UpdateOrderStatus", orderHandler.UpdateOrderStatus)
			admin.GET("/AllStatistics", orderHandler.GetStatistics)
		}
	}

	payments := rg.Group("/payment", authRequired)
	{
		payments.POST("/CreatePayment", paymentHandler.CreatePayment)
		payments.GET("/GetPaymentById/:orderId", paymentHandler.GetPaymentByOrderID)
		payments.GET("/GetAllPayments", adminOnly, paymentHandler.GetAllPayments)
	}

	reviews := rg.Group("/review")
	{
		reviews.GET("/GetReviewsByProductId/:productId", reviewHandler.GetReviewsByProductID)
		reviews.POST("/AddReview", authRequired, reviewHandler.AddReview)
		reviews.DELETE("/DeleteReview/:id", authRequired, reviewHandler.DeleteReview)
	}

	wishlists := rg.Group("/wishlist", authRequired)
	{
		wishlists.POST("/add", wishlistHandler.Add)
		wishlists.DELETE("/remove", wishlistHandler.Remove)
		wishlists.GET("/user/:id", wishlistHandler.List)
	}

	rg.POST("/contact", contactHandler.Submit)
	rg.GET("/contact", authRequired, adminOnly, contactHandler.List)
}
