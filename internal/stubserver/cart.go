package stubserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tirtanusa/storefront-go/internal/core/domain"
)

// cartEnvelope matches the production backend's wrapper on all /cart
// endpoints. success=false with a 2xx is a legal answer, which is why the
// SDK checks the marker and not just the status code.
type cartEnvelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func cartOK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, cartEnvelope{Success: true, Data: data})
}

func cartFail(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, cartEnvelope{Success: false, Message: message})
}

type cartMutationRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func (s *Server) handleGetCart(c echo.Context) error {
	userID, _ := c.Get("sub").(string)

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	return cartOK(c, s.store.cartFor(userID))
}

func (s *Server) handleAddToCart(c echo.Context) error {
	var req cartMutationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.ProductID == "" || req.Quantity <= 0 {
		return cartFail(c, "product_id and a positive quantity are required")
	}
	userID, _ := c.Get("sub").(string)

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	product, ok := s.store.products[req.ProductID]
	if !ok {
		return cartFail(c, "unknown product")
	}

	cart := s.store.cartFor(userID)
	for i := range cart.Items {
		if cart.Items[i].ProductID == req.ProductID {
			cart.Items[i].Quantity += req.Quantity
			recalcTotal(cart)
			return cartOK(c, cart)
		}
	}
	cart.Items = append(cart.Items, domain.CartItem{
		ProductID:     product.ID,
		ContainerType: product.ContainerType,
		UnitPrice:     product.UnitPrice,
		Quantity:      req.Quantity,
	})
	recalcTotal(cart)
	return cartOK(c, cart)
}

func (s *Server) handleUpdateCartQuantity(c echo.Context) error {
	var req cartMutationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.ProductID == "" || req.Quantity < 0 {
		return cartFail(c, "product_id and a non-negative quantity are required")
	}
	userID, _ := c.Get("sub").(string)

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	cart := s.store.cartFor(userID)
	for i := range cart.Items {
		if cart.Items[i].ProductID != req.ProductID {
			continue
		}
		if req.Quantity == 0 {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
		} else {
			cart.Items[i].Quantity = req.Quantity
		}
		recalcTotal(cart)
		return cartOK(c, cart)
	}
	return cartFail(c, "item not in cart")
}

func (s *Server) handleRemoveFromCart(c echo.Context) error {
	productID := c.Param("id")
	userID, _ := c.Get("sub").(string)

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	cart := s.store.cartFor(userID)
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			recalcTotal(cart)
			return cartOK(c, cart)
		}
	}
	return cartFail(c, "item not in cart")
}

func (s *Server) handleClearCart(c echo.Context) error {
	userID, _ := c.Get("sub").(string)

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	cart := s.store.cartFor(userID)
	cart.Items = cart.Items[:0]
	recalcTotal(cart)
	return cartOK(c, cart)
}

func (s *Server) handleValidateCart(c echo.Context) error {
	userID, _ := c.Get("sub").(string)

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	cart := s.store.cartFor(userID)
	validation := domain.CartValidation{Valid: true}
	if len(cart.Items) == 0 {
		validation.Valid = false
		validation.Issues = append(validation.Issues, "cart is empty")
	}
	for _, item := range cart.Items {
		product, ok := s.store.products[item.ProductID]
		if !ok {
			validation.Valid = false
			validation.Issues = append(validation.Issues, "product "+item.ProductID+" no longer available")
			continue
		}
		if product.UnitPrice != item.UnitPrice {
			validation.Valid = false
			validation.Issues = append(validation.Issues, "price changed for product "+item.ProductID)
		}
	}
	return cartOK(c, validation)
}
