package routes

import (
	"eggslist_backend/internal/handlers"
	"eggslist_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Setup registers the public API surface.
func Setup(router *gin.Engine, h *handlers.Handler) {
	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.GET("/verify-email", h.VerifyEmail)
		auth.POST("/resend-verification", middleware.RequireAuth(), h.ResendVerification)
		auth.POST("/password/change", middleware.RequireAuth(), h.ChangePassword)
		auth.POST("/password/forgot", h.RequestPasswordReset)
		auth.POST("/password/reset", h.ResetPassword)
	}

	users := api.Group("/users", middleware.RequireAuth())
	{
		users.GET("/me", h.GetProfile)
		users.PATCH("/me", h.UpdateProfile)
		users.POST("/me/avatar", h.UploadAvatar)

		users.POST("/me/seller-application", h.ApplyForVerification)
		users.GET("/me/seller-applications", h.ListMyApplications)

		users.GET("/me/favorite-farms", h.ListFavoriteFarms)
		users.POST("/favorite-farms/:id", h.FollowFarm)
		users.DELETE("/favorite-farms/:id", h.UnfollowFarm)
	}

	catalog := api.Group("/catalog")
	{
		catalog.GET("/categories", h.ListCategories)
		catalog.GET("/products", h.ListProducts)
		catalog.GET("/products/:slug", h.GetProduct)
		catalog.GET("/sellers/:id/products", h.ListSellerProducts)

		catalog.POST("/products", middleware.RequireAuth(), h.CreateProduct)
		catalog.PATCH("/products/:slug", middleware.RequireAuth(), h.UpdateProduct)
		catalog.DELETE("/products/:slug", middleware.RequireAuth(), h.DeleteProduct)
		catalog.POST("/products/:slug/image", middleware.RequireAuth(), h.UploadProductImage)
		catalog.POST("/products/:slug/hide", middleware.RequireAuth(), h.SetProductHidden)
		catalog.POST("/products/:slug/out-of-stock", middleware.RequireAuth(), h.SetProductOutOfStock)
	}

	locations := api.Group("/locations")
	{
		locations.GET("/states", h.ListStates)
		locations.GET("/states/:state/cities", h.ListCities)
		locations.GET("/cities/:city/zip-codes", h.ListZipCodes)
		locations.GET("/me", h.GetViewerLocation)
		locations.PUT("/me", h.SetViewerLocation)
	}

	blog := api.Group("/blog")
	{
		blog.GET("/categories", h.ListBlogCategories)
		blog.GET("/articles", h.ListBlogArticles)
		blog.GET("/articles/:slug", h.GetBlogArticle)
	}

	site := api.Group("/site")
	{
		site.GET("/testimonials", h.ListTestimonials)
		site.GET("/faqs", h.ListFAQs)
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
