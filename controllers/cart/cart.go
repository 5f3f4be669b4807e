package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yosergargouri/boutique-api/kv"
	"github.com/yosergargouri/boutique-api/models"
)

const tokenHeader = "X-Cart-Token"

func cartKey(token string) string { return "cart:" + token }

// loadCart reads the shopper's cart for the request token. A missing or
// unreadable payload degrades to an empty cart.
func loadCart(c *gin.Context, store kv.Store) (string, models.Cart) {
	token := c.GetHeader(tokenHeader)
	if token == "" {
		return "", models.Cart{}
	}
	raw, err := store.Get(c.Request.Context(), cartKey(token))
	if err != nil {
		return token, models.Cart{}
	}
	cart, err := models.DecodeCart(raw)
	if err != nil {
		return token, models.Cart{}
	}
	return token, cart
}

// saveCart writes through to storage. An empty cart erases the key instead of
// storing an empty list, so "no cart" and "no key" stay the same thing.
func saveCart(c *gin.Context, store kv.Store, token string, cart models.Cart) error {
	if len(cart) == 0 {
		return store.Remove(c.Request.Context(), cartKey(token))
	}
	encoded, err := cart.Encode()
	if err != nil {
		return err
	}
	return store.Set(c.Request.Context(), cartKey(token), encoded)
}

func respond(c *gin.Context, token string, cart models.Cart) {
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"items": cart,
		"count": cart.Count(),
	})
}

// GET /cart
func GetCart(store kv.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, cart := loadCart(c, store)
		respond(c, token, cart)
	}
}

// POST /cart/items
func AddItem(store kv.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.CartItem
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}

		token, cart := loadCart(c, store)
		if token == "" {
			token = uuid.NewString()
		}

		cart = cart.Add(input)
		if err := saveCart(c, store, token, cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}
		respond(c, token, cart)
	}
}

type updateQuantityInput struct {
	Quantity int `json:"quantity"`
}

// PUT /cart/items/:index
// Quantities below 1 and indexes out of range are ignored, not errors.
func UpdateQuantity(store kv.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input updateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		token, cart := loadCart(c, store)
		index, ok := models.ParseIndex(c.Param("index"))
		if !ok {
			respond(c, token, cart)
			return
		}

		updated := cart.UpdateQuantity(index, input.Quantity)
		if token != "" {
			if err := saveCart(c, store, token, updated); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
				return
			}
		}
		respond(c, token, updated)
	}
}

// DELETE /cart/items/:index
func RemoveItem(store kv.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, cart := loadCart(c, store)
		index, ok := models.ParseIndex(c.Param("index"))
		if !ok {
			respond(c, token, cart)
			return
		}

		updated := cart.Remove(index)
		if token != "" {
			if err := saveCart(c, store, token, updated); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
				return
			}
		}
		respond(c, token, updated)
	}
}

// DELETE /cart
func ClearCart(store kv.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(tokenHeader)
		if token != "" {
			if err := store.Remove(c.Request.Context(), cartKey(token)); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
				return
			}
		}
		respond(c, token, models.Cart{})
	}
}
