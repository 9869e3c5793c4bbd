package mongo

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/99minutos/commerce-api/internal/core/domain"
)

func TestToDocument_PrependsSequence(t *testing.T) {
	doc, err := toDocument(4, domain.Product{ID: 9, Name: "Shoe"})
	if err != nil {
		t.Fatalf("toDocument: %v", err)
	}
	if doc[0].Key != seqField || doc[0].Value != 4 {
		t.Fatalf("expected %s=4 first, got %v", seqField, doc[0])
	}

	raw, err := bson.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back domain.Product
	if err := bson.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.ID != 9 || back.Name != "Shoe" {
		t.Errorf("unexpected round trip %+v", back)
	}
}

func TestToDocument_UsesBSONTags(t *testing.T) {
	doc, err := toDocument(0, domain.CartItem{ID: "c1", IDUser: "3"})
	if err != nil {
		t.Fatalf("toDocument: %v", err)
	}
	m := doc.Map()
	if m["idUser"] != "3" {
		t.Errorf("expected idUser field, got %v", m)
	}
}
