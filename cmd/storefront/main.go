package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/shahAagam369/New-Clothing-Website/docs"
	"github.com/shahAagam369/New-Clothing-Website/internal/cart"
	"github.com/shahAagam369/New-Clothing-Website/internal/catalog"
	"github.com/shahAagam369/New-Clothing-Website/internal/config"
	"github.com/shahAagam369/New-Clothing-Website/internal/httpx"
	"github.com/shahAagam369/New-Clothing-Website/internal/inquiry"
	"github.com/shahAagam369/New-Clothing-Website/internal/order"
)

// @title Clothing Storefront API
// @version 1.0
// @description Catalog browsing, checkout and inquiry endpoints.
// @BasePath /api
func main() {
	cfg := config.Load()

	var (
		products  catalog.Repository
		orders    order.Repository
		inquiries inquiry.Repository
		carts     storeProvider
	)
	if cfg.PostgresDSN != "" {
		pool, err := pgxpool.New(context.Background(), cfg.PostgresDSN)
		if err != nil {
			log.Fatalf("[storefront] postgres: %v", err)
		}
		defer pool.Close()
		products = catalog.NewPGRepo(pool)
		orders = order.NewPGRepo(pool)
		inquiries = inquiry.NewPGRepo(pool)
		carts = func(sessionID string) cart.Store { return cart.NewPGStore(pool, sessionID) }
		log.Printf("[storefront] using postgres repositories")
	} else {
		products = catalog.NewMemRepo(catalog.SeedProducts())
		orders = order.NewMemRepo()
		inquiries = inquiry.NewMemRepo()
		carts = memStoreProvider()
		log.Printf("[storefront] no POSTGRES_DSN, using in-memory repositories with seed catalog")
	}

	pricing := cart.PricingOptions{
		FreeShippingThreshold: cfg.FreeShippingThreshold,
		FlatShippingFee:       cfg.FlatShippingFee,
		TaxRateBP:             cfg.TaxRateBP,
		TaxInclusive:          cfg.TaxInclusive,
	}

	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger())

	r.GET("/healthz", func(c *gin.Context) { c.String(200, "ok") })
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.GET("/products", listProductsHandler(products, cfg.PageSize))
	api.GET("/products/:id", getProductHandler(products))
	api.POST("/checkout", checkoutHandler(orders, products, pricing))
	api.POST("/inquiry", createInquiryHandler(inquiries))
	api.GET("/cart", getCartHandler(carts, products, pricing))
	api.DELETE("/cart", clearCartHandler(carts))
	api.POST("/cart/items", addCartLineHandler(carts, products, pricing))
	api.PUT("/cart/items", setCartQuantityHandler(carts, products, pricing))
	api.DELETE("/cart/items", removeCartLineHandler(carts, products, pricing))

	admin := api.Group("/", httpx.AdminOnly(cfg.AdminToken))
	admin.POST("/admin/products", createProductHandler(products))
	admin.PUT("/admin/products/:id", updateProductHandler(products))
	admin.DELETE("/admin/products/:id", deleteProductHandler(products))
	admin.GET("/orders", listOrdersHandler(orders))
	admin.GET("/orders/:id", getOrderHandler(orders))
	admin.PUT("/orders/:id/status", updateOrderStatusHandler(orders))

	log.Printf("[storefront] listening on %s", cfg.Addr)
	log.Fatal(r.Run(cfg.Addr))
}
