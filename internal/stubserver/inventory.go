package stubserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tirtanusa/storefront-go/internal/core/domain"
)

type createReplenishmentRequest struct {
	LocationID string `json:"location_id"`
	ProductID  string `json:"product_id"`
	Quantity   int    `json:"quantity"`
}

func (s *Server) handleCreateReplenishment(c echo.Context) error {
	var req createReplenishmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.LocationID == "" || req.ProductID == "" || req.Quantity <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "location_id, product_id and a positive quantity are required")
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	repl := &domain.ReplenishmentOrder{
		ID:         s.store.nextID("repl"),
		LocationID: req.LocationID,
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
		Status:     domain.ReplenishmentOpen,
		CreatedAt:  time.Now().UTC(),
	}
	s.store.replenishments[repl.ID] = repl
	s.store.replIDs = append(s.store.replIDs, repl.ID)
	s.store.notify("", req.LocationID, "replenishment "+repl.ID+" raised")
	return c.JSON(http.StatusCreated, repl)
}

func (s *Server) handleReplenishmentStatus(c echo.Context) error {
	locationID := c.Param("id")

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	orders := make([]*domain.ReplenishmentOrder, 0)
	for _, id := range s.store.replIDs {
		if r := s.store.replenishments[id]; r.LocationID == locationID {
			orders = append(orders, r)
		}
	}
	return c.JSON(http.StatusOK, orders)
}

type stockLevelsRequest struct {
	CurrentLevel int `json:"current_level"`
	TargetLevel  int `json:"target_level"`
}

func (s *Server) handleUpdateStockLevels(c echo.Context) error {
	var req stockLevelsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	locationID, productID := c.Param("location"), c.Param("product")

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	level := &domain.StockLevel{
		LocationID:   locationID,
		ProductID:    productID,
		CurrentLevel: req.CurrentLevel,
		TargetLevel:  req.TargetLevel,
	}
	s.store.stock[stockKey(locationID, productID)] = level

	if req.CurrentLevel == 0 {
		s.store.stockOuts = append(s.store.stockOuts, domain.StockOutRecord{
			LocationID: locationID,
			ProductID:  productID,
			OccurredAt: time.Now().UTC(),
		})
		s.store.notify("", locationID, "stock-out of product "+productID)
	}
	return c.JSON(http.StatusOK, level)
}

func (s *Server) handleListLowStock(c echo.Context) error {
	locationID := c.QueryParam("location_id")

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	low := make([]*domain.StockLevel, 0)
	for _, level := range s.store.stock {
		if locationID != "" && level.LocationID != locationID {
			continue
		}
		if level.LowOnStock() {
			low = append(low, level)
		}
	}
	return c.JSON(http.StatusOK, low)
}

func (s *Server) handleStockOutHistory(c echo.Context) error {
	locationID := c.Param("id")

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	records := make([]domain.StockOutRecord, 0)
	for _, rec := range s.store.stockOuts {
		if rec.LocationID == locationID {
			records = append(records, rec)
		}
	}
	return c.JSON(http.StatusOK, records)
}

func (s *Server) handleCompleteReplenishment(c echo.Context) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	repl, ok := s.store.replenishments[c.Param("id")]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "replenishment not found")
	}
	repl.Status = domain.ReplenishmentCompleted

	if level, ok := s.store.stock[stockKey(repl.LocationID, repl.ProductID)]; ok {
		level.CurrentLevel += repl.Quantity
	}
	return c.JSON(http.StatusOK, repl)
}

func (s *Server) handleUserNotifications(c echo.Context) error {
	userID, _ := c.Get("sub").(string)

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	notes := make([]*domain.Notification, 0)
	for i := len(s.store.notifications) - 1; i >= 0; i-- {
		if n := s.store.notifications[i]; n.UserID == userID {
			notes = append(notes, n)
		}
	}
	return c.JSON(http.StatusOK, notes)
}

func (s *Server) handleLocationNotifications(c echo.Context) error {
	locationID := c.Param("id")

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	notes := make([]*domain.Notification, 0)
	for i := len(s.store.notifications) - 1; i >= 0; i-- {
		if n := s.store.notifications[i]; n.LocationID == locationID {
			notes = append(notes, n)
		}
	}
	return c.JSON(http.StatusOK, notes)
}
