package models

import "time"

// SettingsID es el _id fijo del único documento de configuración
const SettingsID = "price-codes"

// Setting guarda el mapa de códigos de precio
type Setting struct {
	ID        string            `bson:"_id"`
	Codes     map[string]string `bson:"codes"`
	UpdatedAt time.Time         `bson:"updatedAt"`
}
