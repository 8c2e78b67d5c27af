package listener

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	ProductChanged  = "ProductChanged"
	CategoryChanged = "CategoryChanged"
	ChefChanged     = "ChefChanged"
	ReviewCreated   = "ReviewCreated"
	OrderCreated    = "OrderCreated"
)

// affected lists the cached entities whose records embed data owned by each
// event type. Category and chef names are joined into product records, and
// reviews feed chef ratings.
var affected = map[string][]string{
	ProductChanged:  {"products", "categories", "chefs"},
	CategoryChanged: {"categories", "products"},
	ChefChanged:     {"chefs", "products"},
	ReviewCreated:   {"products", "chefs"},
	OrderCreated:    {"products"},
}

// EventTypes returns the event types the listener acts on.
func EventTypes() []string {
	return []string{ProductChanged, CategoryChanged, ChefChanged, ReviewCreated, OrderCreated}
}

type CatalogEvent struct {
	EventID   string          `json:"event_id"`
	EventType string          `json:"event_type"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

func NewEvent(eventType string, payload any) (CatalogEvent, error) {
	ev := CatalogEvent{
		EventID:   uuid.New().String(),
		EventType: eventType,
		Timestamp: time.Now().UTC(),
	}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return ev, err
		}
		ev.Payload = data
	}
	return ev, nil
}
