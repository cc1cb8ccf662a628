package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product representa un producto del inventario.
// RetailPrice y WholesalePrice se guardan codificados.
type Product struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name"`
	PurchasePrice  string             `json:"purchasePrice" bson:"purchasePrice"`
	RetailPrice    string             `json:"retailPrice" bson:"retailPrice"`
	WholesalePrice string             `json:"wholesalePrice" bson:"wholesalePrice"`
	Image          string             `json:"image" bson:"image"`
	Barcode        string             `json:"barcode" bson:"barcode"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ProductUpdate son los campos que se pueden modificar después de crear
type ProductUpdate struct {
	Name           string `bson:"name"`
	PurchasePrice  string `bson:"purchasePrice"`
	RetailPrice    string `bson:"retailPrice"`
	WholesalePrice string `bson:"wholesalePrice"`
}
