package mongo

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/shopverse/storefront/internal/core/domain"
)

func TestProductDocument_InlinesProduct(t *testing.T) {
	raw, err := bson.Marshal(productDocument{
		Product: domain.Product{ID: 7, Title: "Lamp", Category: domain.CategoryHomeLiving, ReviewCount: 3},
		Rank:    -2,
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m["_id"] != int32(7) || m["title"] != "Lamp" || m["rank"] != int32(-2) || m["review_count"] != int32(3) {
		t.Fatalf("unexpected document: %v", m)
	}
	if _, nested := m["product"]; nested {
		t.Fatalf("product should be inlined, got %v", m)
	}
}

func TestOrderDocument_InlinesLineItems(t *testing.T) {
	o := domain.Order{
		ID:     "ORD-000042",
		Items:  domain.Cart{{Product: domain.Product{ID: 1, Title: "Mug", Price: 12.5}, Quantity: 2}},
		Status: domain.OrderPending,
	}
	raw, err := bson.Marshal(o)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded domain.Order
	if err := bson.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.ID != "ORD-000042" || len(decoded.Items) != 1 || decoded.Items[0].Title != "Mug" || decoded.Items[0].Quantity != 2 {
		t.Fatalf("unexpected decoded order: %+v", decoded)
	}

	var m bson.M
	_ = bson.Unmarshal(raw, &m)
	items, ok := m["items"].(bson.A)
	if !ok || len(items) != 1 {
		t.Fatalf("items not encoded as array: %v", m["items"])
	}
	if line := items[0].(bson.M); line["title"] != "Mug" || line["quantity"] != int32(2) {
		t.Fatalf("line item not flattened: %v", line)
	}
}
