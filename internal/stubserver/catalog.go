package stubserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tirtanusa/storefront-go/internal/core/domain"
)

func (s *Server) handleListProducts(c echo.Context) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	products := make([]*domain.Product, 0, len(s.store.productOrder))
	for _, id := range s.store.productOrder {
		products = append(products, s.store.products[id])
	}
	return c.JSON(http.StatusOK, products)
}

func (s *Server) handleGetProduct(c echo.Context) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	product, ok := s.store.products[c.Param("id")]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}
	return c.JSON(http.StatusOK, product)
}

func (s *Server) handleGetCustomerProfile(c echo.Context) error {
	userID, _ := c.Get("sub").(string)

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	profile, ok := s.store.customerProfiles[userID]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "profile not found")
	}
	return c.JSON(http.StatusOK, profile)
}

func (s *Server) handleUpsertCustomerProfile(c echo.Context) error {
	var profile domain.CustomerProfile
	if err := c.Bind(&profile); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	userID, _ := c.Get("sub").(string)
	profile.UserID = userID

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	s.store.customerProfiles[userID] = &profile
	return c.JSON(http.StatusOK, &profile)
}

func (s *Server) handleListCustomerProfiles(c echo.Context) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	profiles := make([]*domain.CustomerProfile, 0, len(s.store.customerProfiles))
	for _, p := range s.store.customerProfiles {
		profiles = append(profiles, p)
	}
	return c.JSON(http.StatusOK, profiles)
}

func (s *Server) handleGetOrganizationProfile(c echo.Context) error {
	userID, _ := c.Get("sub").(string)

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	profile, ok := s.store.orgProfiles[userID]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "profile not found")
	}
	return c.JSON(http.StatusOK, profile)
}

func (s *Server) handleUpsertOrganizationProfile(c echo.Context) error {
	var profile domain.OrganizationProfile
	if err := c.Bind(&profile); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	userID, _ := c.Get("sub").(string)
	profile.UserID = userID

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	s.store.orgProfiles[userID] = &profile
	return c.JSON(http.StatusOK, &profile)
}

func (s *Server) handleListOrganizationProfiles(c echo.Context) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	profiles := make([]*domain.OrganizationProfile, 0, len(s.store.orgProfiles))
	for _, p := range s.store.orgProfiles {
		profiles = append(profiles, p)
	}
	return c.JSON(http.StatusOK, profiles)
}
