package main

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/shahAagam369/New-Clothing-Website/internal/cart"
	"github.com/shahAagam369/New-Clothing-Website/internal/catalog"
)

// storeProvider yields the cart store for one shopper session. Postgres
// deployments map a session to a carts row; dev mode keeps a MemStore per
// session id.
type storeProvider func(sessionID string) cart.Store

func memStoreProvider() storeProvider {
	var mu sync.Mutex
	stores := make(map[string]*cart.MemStore)
	return func(sessionID string) cart.Store {
		mu.Lock()
		defer mu.Unlock()
		s, ok := stores[sessionID]
		if !ok {
			s = cart.NewMemStore()
			stores[sessionID] = s
		}
		return s
	}
}

const sessionHeader = "X-Session-ID"

func sessionStore(c *gin.Context, provider storeProvider) (cart.Store, bool) {
	sid := c.GetHeader(sessionHeader)
	if sid == "" {
		c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: "X-Session-ID header is required"})
		return nil, false
	}
	return provider(sid), true
}

// CartLineView is a resolved cart line in the cart summary.
// swagger:model CartLineView
type CartLineView struct {
	ProductID string          `json:"productId"`
	Size      string          `json:"size"`
	Color     catalog.Color   `json:"color"`
	Quantity  int             `json:"quantity"`
	Product   catalog.Product `json:"product"`
	LineTotal int64           `json:"lineTotal"`
}

// CartView is the full cart summary returned by the cart endpoints.
// swagger:model CartView
type CartView struct {
	Items        []CartLineView `json:"items"`
	ItemCount    int            `json:"itemCount"`
	Subtotal     int64          `json:"subtotal"`
	Shipping     int64          `json:"shipping"`
	Tax          int64          `json:"tax"`
	Total        int64          `json:"total"`
	TotalDisplay string         `json:"totalDisplay"`
}

// AddCartLineRequest payload of cart line addition.
// swagger:model AddCartLineRequest
type AddCartLineRequest struct {
	ProductID string        `json:"productId"`
	Size      string        `json:"size"`
	Color     catalog.Color `json:"color"`
	Quantity  int           `json:"quantity"`
}

// SetCartQuantityRequest payload of quantity update. Quantity <= 0 removes
// the line.
// swagger:model SetCartQuantityRequest
type SetCartQuantityRequest struct {
	ProductID string `json:"productId"`
	Size      string `json:"size"`
	ColorHex  string `json:"colorHex"`
	Quantity  int    `json:"quantity"`
}

func cartView(c cart.Cart, lookup cart.Lookup, pricing cart.PricingOptions) CartView {
	resolved := cart.Resolve(c, lookup)
	items := make([]CartLineView, 0, len(resolved))
	currency := "INR"
	for _, r := range resolved {
		items = append(items, CartLineView{
			ProductID: r.Line.ProductID,
			Size:      r.Line.Size,
			Color:     r.Line.Color,
			Quantity:  r.Line.Quantity,
			Product:   r.Product,
			LineTotal: r.Product.Price * int64(r.Line.Quantity),
		})
		currency = r.Product.Currency
	}
	subtotal := cart.Subtotal(c, lookup)
	shipping := pricing.Shipping(subtotal)
	total := pricing.GrandTotal(subtotal, shipping)
	return CartView{
		Items:        items,
		ItemCount:    cart.ItemCount(c),
		Subtotal:     subtotal,
		Shipping:     shipping,
		Tax:          pricing.Tax(total),
		Total:        total,
		TotalDisplay: catalog.FormatPrice(total, currency),
	}
}

func repoLookup(c *gin.Context, products catalog.Repository) cart.Lookup {
	return func(id string) (*catalog.Product, bool) {
		p, err := products.GetByID(c.Request.Context(), id)
		if err != nil {
			return nil, false
		}
		return p, true
	}
}

// getCartHandler godoc
// @Summary Get the session cart with totals
// @Tags cart
// @Param X-Session-ID header string true "shopper session id"
// @Success 200 {object} CartView
// @Router /cart [get]
func getCartHandler(provider storeProvider, products catalog.Repository, pricing cart.PricingOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := sessionStore(c, provider)
		if !ok {
			return
		}
		current, err := store.Load()
		if err != nil {
			current = cart.Cart{}
		}
		c.JSON(http.StatusOK, cartView(current, repoLookup(c, products), pricing))
	}
}

// addCartLineHandler godoc
// @Summary Add a line to the session cart
// @Description Lines with the same product, size and color hex merge into one.
// @Tags cart
// @Param X-Session-ID header string true "shopper session id"
// @Param line body AddCartLineRequest true "selection"
// @Success 200 {object} CartView
// @Router /cart/items [post]
func addCartLineHandler(provider storeProvider, products catalog.Repository, pricing cart.PricingOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := sessionStore(c, provider)
		if !ok {
			return
		}
		var req AddCartLineRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.ProductID == "" {
			c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: "productId is required"})
			return
		}
		current, err := store.Load()
		if err != nil {
			current = cart.Cart{}
		}
		next := cart.Add(current, req.ProductID, req.Size, req.Color, req.Quantity)
		if err := store.Save(next); err != nil {
			c.JSON(http.StatusInternalServerError, catalog.HTTPError{Error: "failed to save cart"})
			return
		}
		c.JSON(http.StatusOK, cartView(next, repoLookup(c, products), pricing))
	}
}

// setCartQuantityHandler godoc
// @Summary Set a cart line's quantity
// @Tags cart
// @Param X-Session-ID header string true "shopper session id"
// @Param line body SetCartQuantityRequest true "identity and new quantity"
// @Success 200 {object} CartView
// @Router /cart/items [put]
func setCartQuantityHandler(provider storeProvider, products catalog.Repository, pricing cart.PricingOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := sessionStore(c, provider)
		if !ok {
			return
		}
		var req SetCartQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.ProductID == "" {
			c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: "productId is required"})
			return
		}
		current, err := store.Load()
		if err != nil {
			current = cart.Cart{}
		}
		next := cart.SetQuantity(current, req.ProductID, req.Size, req.ColorHex, req.Quantity)
		if err := store.Save(next); err != nil {
			c.JSON(http.StatusInternalServerError, catalog.HTTPError{Error: "failed to save cart"})
			return
		}
		c.JSON(http.StatusOK, cartView(next, repoLookup(c, products), pricing))
	}
}

// removeCartLineHandler godoc
// @Summary Remove a line from the session cart
// @Tags cart
// @Param X-Session-ID header string true "shopper session id"
// @Param productId query string true "product id"
// @Param size query string true "size"
// @Param colorHex query string true "color hex"
// @Success 200 {object} CartView
// @Router /cart/items [delete]
func removeCartLineHandler(provider storeProvider, products catalog.Repository, pricing cart.PricingOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := sessionStore(c, provider)
		if !ok {
			return
		}
		current, err := store.Load()
		if err != nil {
			current = cart.Cart{}
		}
		next := cart.Remove(current, c.Query("productId"), c.Query("size"), c.Query("colorHex"))
		if err := store.Save(next); err != nil {
			c.JSON(http.StatusInternalServerError, catalog.HTTPError{Error: "failed to save cart"})
			return
		}
		c.JSON(http.StatusOK, cartView(next, repoLookup(c, products), pricing))
	}
}

// clearCartHandler godoc
// @Summary Clear the session cart
// @Tags cart
// @Param X-Session-ID header string true "shopper session id"
// @Success 204
// @Router /cart [delete]
func clearCartHandler(provider storeProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := sessionStore(c, provider)
		if !ok {
			return
		}
		if err := store.Clear(); err != nil {
			c.JSON(http.StatusInternalServerError, catalog.HTTPError{Error: "failed to clear cart"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
