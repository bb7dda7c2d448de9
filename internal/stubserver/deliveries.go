package stubserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tirtanusa/storefront-go/internal/core/domain"
)

type createDeliveryRequest struct {
	OrderID       string `json:"order_id"`
	Address       string `json:"address"`
	ScheduledDate string `json:"scheduled_date"`
	DriverName    string `json:"driver_name"`
	Notes         string `json:"notes"`
}

func (s *Server) handleCreateDelivery(c echo.Context) error {
	var req createDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.OrderID == "" || req.Address == "" || req.ScheduledDate == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "order_id, address and scheduled_date are required")
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if _, ok := s.store.orders[req.OrderID]; !ok {
		return echo.NewHTTPError(http.StatusNotFound, "order not found")
	}
	if _, exists := s.store.deliveryByOrder[req.OrderID]; exists {
		return echo.NewHTTPError(http.StatusConflict, "delivery already scheduled for order")
	}

	status := domain.DeliveryScheduled
	if req.DriverName != "" {
		status = domain.DeliveryAssigned
	}
	delivery := &domain.Delivery{
		ID:            s.store.nextID("delivery"),
		OrderID:       req.OrderID,
		DriverName:    req.DriverName,
		Address:       req.Address,
		ScheduledDate: req.ScheduledDate,
		Status:        status,
		Notes:         req.Notes,
		UpdatedAt:     time.Now().UTC(),
	}
	s.store.deliveries[delivery.ID] = delivery
	s.store.deliveryIDs = append(s.store.deliveryIDs, delivery.ID)
	s.store.deliveryByOrder[req.OrderID] = delivery.ID
	return c.JSON(http.StatusCreated, delivery)
}

func (s *Server) handleGetDelivery(c echo.Context) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	delivery, ok := s.store.deliveries[c.Param("id")]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "delivery not found")
	}
	return c.JSON(http.StatusOK, delivery)
}

func (s *Server) handleGetDeliveryByOrder(c echo.Context) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	deliveryID, ok := s.store.deliveryByOrder[c.Param("id")]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "no delivery for order")
	}
	return c.JSON(http.StatusOK, s.store.deliveries[deliveryID])
}

type deliveryStatusRequest struct {
	Status domain.DeliveryStatus `json:"status"`
}

func (s *Server) handleUpdateDeliveryStatus(c echo.Context) error {
	var req deliveryStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	delivery, ok := s.store.deliveries[c.Param("id")]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "delivery not found")
	}
	if !delivery.Status.CanTransitionTo(req.Status) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, domain.ErrInvalidDeliveryTransition.Error())
	}
	delivery.Status = req.Status
	delivery.UpdatedAt = time.Now().UTC()

	if order, ok := s.store.orders[delivery.OrderID]; ok {
		s.store.notify(order.CustomerID, "", "delivery for order "+order.ID+" is now "+string(req.Status))
	}
	return c.JSON(http.StatusOK, delivery)
}

func (s *Server) handleListDriverDeliveries(c echo.Context) error {
	driver := c.Param("name")

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	deliveries := make([]*domain.Delivery, 0)
	for _, id := range s.store.deliveryIDs {
		if d := s.store.deliveries[id]; d.DriverName == driver {
			deliveries = append(deliveries, d)
		}
	}
	return c.JSON(http.StatusOK, deliveries)
}

func (s *Server) handleListDeliveries(c echo.Context) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	deliveries := make([]*domain.Delivery, 0, len(s.store.deliveryIDs))
	for _, id := range s.store.deliveryIDs {
		deliveries = append(deliveries, s.store.deliveries[id])
	}
	return c.JSON(http.StatusOK, deliveries)
}
