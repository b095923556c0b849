package main

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shahAagam369/New-Clothing-Website/internal/cart"
	"github.com/shahAagam369/New-Clothing-Website/internal/catalog"
	"github.com/shahAagam369/New-Clothing-Website/internal/inquiry"
	"github.com/shahAagam369/New-Clothing-Website/internal/order"
)

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func atoi64Default(s string, def int64) int64 {
	if s == "" {
		return def
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return def
	}
	return n
}

// splitCSV turns "S,M,L" into its non-empty parts; empty input yields nil.
func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// listProductsHandler godoc
// @Summary List products
// @Description Shop listing: filter, sort and paginate the catalog.
// @Tags products
// @Param search query string false "free-text match on title, description and tags"
// @Param category query string false "exact category match"
// @Param sizes query string false "comma-separated sizes, OR-matched"
// @Param colors query string false "comma-separated color names, OR-matched"
// @Param minPrice query int false "inclusive lower price bound"
// @Param maxPrice query int false "inclusive upper price bound"
// @Param sort query string false "featured, price-asc, price-desc, name-asc, name-desc"
// @Param page query int false "1-indexed page"
// @Success 200 {object} catalog.ListResponse
// @Router /products [get]
func listProductsHandler(repo catalog.Repository, pageSize int) gin.HandlerFunc {
	return func(c *gin.Context) {
		f := catalog.Filter{
			Category: c.Query("category"),
			Search:   c.Query("search"),
			MinPrice: atoi64Default(c.Query("minPrice"), 0),
			MaxPrice: atoi64Default(c.Query("maxPrice"), 0),
		}
		products, err := repo.List(c.Request.Context(), f)
		if err != nil {
			c.JSON(http.StatusInternalServerError, catalog.HTTPError{Error: "failed to fetch products"})
			return
		}

		page := atoiDefault(c.Query("page"), 1)
		if page < 1 {
			page = 1
		}
		spec := catalog.QuerySpec{
			Query:    f.Search,
			Category: f.Category,
			Sizes:    splitCSV(c.Query("sizes")),
			Colors:   splitCSV(c.Query("colors")),
			MinPrice: f.MinPrice,
			MaxPrice: f.MaxPrice,
			Sort:     catalog.ParseSort(c.Query("sort")),
			Page:     page,
			PageSize: pageSize,
		}
		res := catalog.Search(products, spec)

		c.JSON(http.StatusOK, catalog.ListResponse{
			Items:      res.Items,
			TotalCount: res.TotalCount,
			PageCount:  res.PageCount,
			Page:       page,
		})
	}
}

// getProductHandler godoc
// @Summary Get a product by id or slug
// @Tags products
// @Param id path string true "product id, falls back to slug"
// @Success 200 {object} catalog.Product
// @Failure 404 {object} catalog.HTTPError
// @Router /products/{id} [get]
func getProductHandler(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		p, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			p, err = repo.GetBySlug(c.Request.Context(), id)
		}
		if err != nil {
			c.JSON(http.StatusNotFound, catalog.HTTPError{Error: "product not found"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// createProductHandler godoc
// @Summary Create a product
// @Tags admin
// @Security AdminToken
// @Param product body catalog.CreateProductRequest true "product"
// @Success 201 {object} catalog.Product
// @Failure 400 {object} catalog.HTTPError
// @Router /admin/products [post]
func createProductHandler(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req catalog.CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: "invalid product data"})
			return
		}
		if req.Title == "" || req.Slug == "" || req.Category == "" || req.Price <= 0 || len(req.Sizes) == 0 {
			c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: "title, slug, category, positive price and sizes are required"})
			return
		}
		currency := req.Currency
		if currency == "" {
			currency = "INR"
		}
		p := catalog.Product{
			ID:          uuid.NewString(),
			Slug:        req.Slug,
			Title:       req.Title,
			Category:    req.Category,
			Price:       req.Price,
			Currency:    currency,
			Sizes:       req.Sizes,
			Colors:      req.Colors,
			Images:      req.Images,
			Description: req.Description,
			SKU:         req.SKU,
			Inventory:   req.Inventory,
			Tags:        req.Tags,
		}
		if err := repo.Create(c.Request.Context(), &p); err != nil {
			c.JSON(http.StatusInternalServerError, catalog.HTTPError{Error: "failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

// updateProductHandler godoc
// @Summary Partially update a product
// @Tags admin
// @Security AdminToken
// @Param id path string true "product id"
// @Param product body catalog.UpdateProductRequest true "fields to update"
// @Success 200 {object} catalog.Product
// @Failure 404 {object} catalog.HTTPError
// @Router /admin/products/{id} [put]
func updateProductHandler(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req catalog.UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: "invalid product data"})
			return
		}
		if req.Price != nil && *req.Price <= 0 {
			c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: "price must be positive"})
			return
		}
		p, err := repo.Update(c.Request.Context(), c.Param("id"), req)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				c.JSON(http.StatusNotFound, catalog.HTTPError{Error: "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, catalog.HTTPError{Error: "failed to update product"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// deleteProductHandler godoc
// @Summary Delete a product
// @Tags admin
// @Security AdminToken
// @Param id path string true "product id"
// @Success 204
// @Failure 404 {object} catalog.HTTPError
// @Router /admin/products/{id} [delete]
func deleteProductHandler(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := repo.Delete(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, catalog.HTTPError{Error: "failed to delete product"})
			return
		}
		if !ok {
			c.JSON(http.StatusNotFound, catalog.HTTPError{Error: "product not found"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// checkoutHandler godoc
// @Summary Place an order
// @Description Accepts the finalized cart, recomputes totals against the catalog and creates the order.
// @Tags orders
// @Param checkout body order.CheckoutRequest true "cart, address and payment method"
// @Success 201 {object} order.CheckoutResponse
// @Failure 400 {object} catalog.HTTPError
// @Router /checkout [post]
func checkoutHandler(orders order.Repository, products catalog.Repository, pricing cart.PricingOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: "invalid checkout data"})
			return
		}
		if len(req.Items) == 0 {
			c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: "cart items are required"})
			return
		}
		addr := req.ShippingAddress
		if addr.Name == "" || addr.Address == "" || addr.City == "" || addr.State == "" || addr.Pincode == "" || addr.Phone == "" {
			c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: "shipping address is required"})
			return
		}
		if !order.ValidPaymentMethod(req.PaymentMethod) {
			c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: "payment method is required"})
			return
		}

		// The client's total is advisory; the order stores what the catalog
		// says the cart is worth right now.
		lookup := func(id string) (*catalog.Product, bool) {
			p, err := products.GetByID(c.Request.Context(), id)
			if err != nil {
				return nil, false
			}
			return p, true
		}
		items := cart.Cart(req.Items)
		if len(cart.Resolve(items, lookup)) == 0 {
			c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: "no purchasable items in cart"})
			return
		}
		subtotal := cart.Subtotal(items, lookup)
		total := pricing.GrandTotal(subtotal, pricing.Shipping(subtotal))

		o := order.Order{
			ID:              uuid.NewString(),
			Items:           req.Items,
			Total:           total,
			Status:          order.StatusPending,
			ShippingAddress: addr,
			PaymentMethod:   req.PaymentMethod,
		}
		if err := orders.Create(c.Request.Context(), &o); err != nil {
			c.JSON(http.StatusInternalServerError, catalog.HTTPError{Error: "failed to process checkout"})
			return
		}
		c.JSON(http.StatusCreated, order.CheckoutResponse{
			Success: true,
			OrderID: o.ID,
			Message: "Order placed successfully",
		})
	}
}

// createInquiryHandler godoc
// @Summary Submit an inquiry
// @Tags inquiries
// @Param inquiry body inquiry.CreateInquiryRequest true "inquiry"
// @Success 201 {object} inquiry.Inquiry
// @Failure 400 {object} catalog.HTTPError
// @Router /inquiry [post]
func createInquiryHandler(repo inquiry.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req inquiry.CreateInquiryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: "invalid inquiry data"})
			return
		}
		if req.Name == "" || req.Email == "" || req.Message == "" {
			c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: "name, email and message are required"})
			return
		}
		in := inquiry.Inquiry{
			ID:        uuid.NewString(),
			Name:      req.Name,
			Email:     req.Email,
			Message:   req.Message,
			ProductID: req.ProductID,
		}
		if err := repo.Create(c.Request.Context(), &in); err != nil {
			c.JSON(http.StatusInternalServerError, catalog.HTTPError{Error: "failed to submit inquiry"})
			return
		}
		c.JSON(http.StatusCreated, in)
	}
}

// listOrdersHandler godoc
// @Summary List orders
// @Tags admin
// @Security AdminToken
// @Param limit query int false "page size"
// @Param offset query int false "offset"
// @Success 200 {array} order.Order
// @Router /orders [get]
func listOrdersHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := atoiDefault(c.Query("limit"), 20)
		offset := atoiDefault(c.Query("offset"), 0)
		out, err := repo.List(c.Request.Context(), limit, offset)
		if err != nil {
			c.JSON(http.StatusInternalServerError, catalog.HTTPError{Error: "failed to fetch orders"})
			return
		}
		if out == nil {
			out = []order.Order{}
		}
		c.JSON(http.StatusOK, out)
	}
}

// getOrderHandler godoc
// @Summary Get an order
// @Tags admin
// @Security AdminToken
// @Param id path string true "order id"
// @Success 200 {object} order.Order
// @Failure 404 {object} catalog.HTTPError
// @Router /orders/{id} [get]
func getOrderHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := repo.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, catalog.HTTPError{Error: "order not found"})
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// updateOrderStatusHandler godoc
// @Summary Update order status
// @Tags admin
// @Security AdminToken
// @Param id path string true "order id"
// @Param status body order.UpdateStatusRequest true "new status"
// @Success 200
// @Failure 400 {object} catalog.HTTPError
// @Failure 404 {object} catalog.HTTPError
// @Router /orders/{id}/status [put]
func updateOrderStatusHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil || !order.ValidStatus(req.Status) {
			c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: "invalid status"})
			return
		}
		if err := repo.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
			if errors.Is(err, order.ErrNotFound) {
				c.JSON(http.StatusNotFound, catalog.HTTPError{Error: "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, catalog.HTTPError{Error: "failed to update order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": req.Status})
	}
}
