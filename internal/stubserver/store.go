package stubserver

import (
	"fmt"
	"sync"
	"time"

	"github.com/tirtanusa/storefront-go/internal/core/domain"
)

// memStore holds all stub state behind one mutex. Nothing is persisted: the
// stub exists so the SDK has a complete backend to talk to in tests and
// local development, not to be a real order system.
type memStore struct {
	mu sync.Mutex

	users     map[string]*domain.User
	passwords map[string]string // user id → bcrypt hash
	emails    map[string]string // email → user id

	customerProfiles map[string]*domain.CustomerProfile
	orgProfiles      map[string]*domain.OrganizationProfile

	products     map[string]*domain.Product
	productOrder []string

	carts map[string]*domain.Cart // user id → cart

	orders          map[string]*domain.Order
	orderIDs        []string
	deliveries      map[string]*domain.Delivery
	deliveryIDs     []string
	deliveryByOrder map[string]string

	replenishments map[string]*domain.ReplenishmentOrder
	replIDs        []string
	stock          map[string]*domain.StockLevel // location|product
	stockOuts      []domain.StockOutRecord

	notifications []*domain.Notification

	seq int
}

func newMemStore() *memStore {
	s := &memStore{
		users:            make(map[string]*domain.User),
		passwords:        make(map[string]string),
		emails:           make(map[string]string),
		customerProfiles: make(map[string]*domain.CustomerProfile),
		orgProfiles:      make(map[string]*domain.OrganizationProfile),
		products:         make(map[string]*domain.Product),
		carts:            make(map[string]*domain.Cart),
		orders:           make(map[string]*domain.Order),
		deliveries:       make(map[string]*domain.Delivery),
		deliveryByOrder:  make(map[string]string),
		replenishments:   make(map[string]*domain.ReplenishmentOrder),
		stock:            make(map[string]*domain.StockLevel),
	}
	s.seedCatalog()
	return s
}

// seedCatalog loads the standard bottled-water lineup so a fresh stub has
// something to sell.
func (s *memStore) seedCatalog() {
	for _, p := range []domain.Product{
		{ID: "1", ContainerType: domain.ContainerGallon19L, Description: "19L returnable gallon", UnitPrice: 22000},
		{ID: "2", ContainerType: domain.ContainerBottle15L, Description: "1500ml bottle, box of 12", UnitPrice: 60000},
		{ID: "3", ContainerType: domain.ContainerBottle600, Description: "600ml bottle, box of 24", UnitPrice: 55000},
		{ID: "4", ContainerType: domain.ContainerCup240, Description: "240ml cup, box of 48", UnitPrice: 38000},
	} {
		prod := p
		s.products[prod.ID] = &prod
		s.productOrder = append(s.productOrder, prod.ID)
	}
}

// nextID hands out process-unique ids. Callers hold the mutex.
func (s *memStore) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s-%d", prefix, s.seq)
}

// cartFor returns the user's cart, creating an empty one on first touch.
// Callers hold the mutex.
func (s *memStore) cartFor(userID string) *domain.Cart {
	cart, ok := s.carts[userID]
	if !ok {
		cart = &domain.Cart{Items: []domain.CartItem{}}
		s.carts[userID] = cart
	}
	return cart
}

// recalcTotal keeps the server-owned total consistent with the line items.
// Callers hold the mutex.
func recalcTotal(cart *domain.Cart) {
	cart.Total = cart.ComputedTotal()
}

// notify appends a notification for a user or location. Callers hold the
// mutex.
func (s *memStore) notify(userID, locationID, message string) {
	s.notifications = append(s.notifications, &domain.Notification{
		ID:         s.nextID("note"),
		UserID:     userID,
		LocationID: locationID,
		Message:    message,
		CreatedAt:  time.Now().UTC(),
	})
}

func stockKey(locationID, productID string) string {
	return locationID + "|" + productID
}
