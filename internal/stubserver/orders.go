package stubserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tirtanusa/storefront-go/internal/core/domain"
)

type createOrderRequest struct {
	ScheduledDeliveryDate string `json:"scheduled_delivery_date"`
	PaymentMethod         string `json:"payment_method"`
	Notes                 string `json:"notes"`
}

// handleCreateOrder snapshots the caller's cart into an order, clears the
// cart, and schedules a delivery so the post-checkout enrichment read has
// something to find.
func (s *Server) handleCreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.ScheduledDeliveryDate == "" || req.PaymentMethod == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "scheduled_delivery_date and payment_method are required")
	}
	userID, _ := c.Get("sub").(string)

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	cart := s.store.cartFor(userID)
	if len(cart.Items) == 0 {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "cart is empty")
	}

	now := time.Now().UTC()
	order := &domain.Order{
		ID:                    s.store.nextID("order"),
		CustomerID:            userID,
		Items:                 append([]domain.CartItem(nil), cart.Items...),
		Total:                 cart.Total,
		ScheduledDeliveryDate: req.ScheduledDeliveryDate,
		PaymentMethod:         req.PaymentMethod,
		Notes:                 req.Notes,
		Status:                domain.OrderPending,
		PaymentStatus:         domain.PaymentUnpaid,
		CreatedAt:             now,
	}
	s.store.orders[order.ID] = order
	s.store.orderIDs = append(s.store.orderIDs, order.ID)

	// Checkout clears the cart server-side.
	cart.Items = cart.Items[:0]
	recalcTotal(cart)

	address := "address on file"
	if profile, ok := s.store.customerProfiles[userID]; ok {
		address = profile.Address
	}
	delivery := &domain.Delivery{
		ID:            s.store.nextID("delivery"),
		OrderID:       order.ID,
		Address:       address,
		ScheduledDate: req.ScheduledDeliveryDate,
		Status:        domain.DeliveryScheduled,
		UpdatedAt:     now,
	}
	s.store.deliveries[delivery.ID] = delivery
	s.store.deliveryIDs = append(s.store.deliveryIDs, delivery.ID)
	s.store.deliveryByOrder[order.ID] = delivery.ID

	s.store.notify(userID, "", "order "+order.ID+" received")
	return c.JSON(http.StatusCreated, order)
}

func (s *Server) handleListOrders(c echo.Context) error {
	userID, _ := c.Get("sub").(string)
	role, _ := c.Get("role").(string)

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	orders := make([]*domain.Order, 0, len(s.store.orderIDs))
	for _, id := range s.store.orderIDs {
		order := s.store.orders[id]
		if role == domain.RoleAdmin || order.CustomerID == userID {
			orders = append(orders, order)
		}
	}
	return c.JSON(http.StatusOK, orders)
}

func (s *Server) handleListCustomerOrders(c echo.Context) error {
	customerID := c.Param("id")

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	orders := make([]*domain.Order, 0)
	for _, id := range s.store.orderIDs {
		if order := s.store.orders[id]; order.CustomerID == customerID {
			orders = append(orders, order)
		}
	}
	return c.JSON(http.StatusOK, orders)
}

func (s *Server) handleGetOrder(c echo.Context) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	order, ok := s.store.orders[c.Param("id")]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "order not found")
	}
	return c.JSON(http.StatusOK, order)
}

type orderStatusRequest struct {
	Status domain.OrderStatus `json:"status"`
}

func (s *Server) handleUpdateOrderStatus(c echo.Context) error {
	var req orderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	order, ok := s.store.orders[c.Param("id")]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "order not found")
	}
	order.Status = req.Status
	s.store.notify(order.CustomerID, "", "order "+order.ID+" is now "+string(req.Status))
	return c.JSON(http.StatusOK, order)
}

type paymentStatusRequest struct {
	PaymentStatus domain.PaymentStatus `json:"payment_status"`
}

func (s *Server) handleUpdatePaymentStatus(c echo.Context) error {
	var req paymentStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	order, ok := s.store.orders[c.Param("id")]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "order not found")
	}
	order.PaymentStatus = req.PaymentStatus
	return c.JSON(http.StatusOK, order)
}
