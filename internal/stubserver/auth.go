package stubserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/tirtanusa/storefront-go/internal/core/domain"
)

// rolePermissions is the static capability set baked into issued tokens.
var rolePermissions = map[string][]string{
	domain.RoleAdmin:        {"manage_users", "manage_stock", "manage_deliveries"},
	domain.RoleOrganization: {"place_orders", "bulk_orders"},
	domain.RoleCustomer:     {"place_orders"},
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

func (s *Server) handleRegister(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" || !domain.ValidRole(req.Role) {
		return echo.NewHTTPError(http.StatusBadRequest, "email, password and a valid role are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if _, exists := s.store.emails[req.Email]; exists {
		return echo.NewHTTPError(http.StatusConflict, "email already registered")
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:        s.store.nextID("user"),
		Email:     req.Email,
		Role:      req.Role,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.store.users[user.ID] = user
	s.store.emails[user.Email] = user.ID
	s.store.passwords[user.ID] = string(hash)

	token, err := s.issueToken(user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, authResponse{Token: token, User: user})
}

func (s *Server) handleLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	userID, ok := s.store.emails[req.Email]
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}
	user := s.store.users[userID]
	if bcrypt.CompareHashAndPassword([]byte(s.store.passwords[userID]), []byte(req.Password)) != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}
	if !user.Active {
		return echo.NewHTTPError(http.StatusForbidden, "account disabled")
	}

	token, err := s.issueToken(user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

func (s *Server) handleListUsers(c echo.Context) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	users := make([]*domain.User, 0, len(s.store.users))
	for _, u := range s.store.users {
		users = append(users, u)
	}
	return c.JSON(http.StatusOK, users)
}

func (s *Server) handleProfile(c echo.Context) error {
	userID, _ := c.Get("sub").(string)

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	user, ok := s.store.users[userID]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}
	return c.JSON(http.StatusOK, user)
}

func (s *Server) handleToggleUserStatus(c echo.Context) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	user, ok := s.store.users[c.Param("id")]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}
	user.Active = !user.Active
	user.UpdatedAt = time.Now().UTC()
	return c.JSON(http.StatusOK, user)
}

// issueToken signs an HS256 token carrying both sub and id, matching what
// the production backend emits. Callers hold the mutex or pass a stable user.
func (s *Server) issueToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":         user.ID,
		"id":          user.ID,
		"role":        user.Role,
		"permissions": rolePermissions[user.Role],
		"exp":         time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// authMiddleware validates the bearer token and injects sub/role into the
// request context.
func (s *Server) authMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get("Authorization")
		if header == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
		}

		claims := jwt.MapClaims{}
		tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return []byte(s.jwtSecret), nil
		})
		if err != nil || !tkn.Valid {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}

		sub, _ := claims["sub"].(string)
		if sub == "" {
			sub, _ = claims["id"].(string)
		}
		c.Set("sub", sub)
		c.Set("role", claims["role"])

		return next(c)
	}
}

// requireRole enforces role-based access on top of authMiddleware.
func requireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
