package dto

import (
	"encoding/json"
	"time"
)

// CreateItemRequest campos del formulario multipart de creación (la imagen viaja aparte, campo "image").
// Price y Stock aceptan número JSON o texto numérico.
type CreateItemRequest struct {
	Name    string      `json:"name" form:"name" validate:"required"`
	Price   json.Number `json:"price" form:"price" validate:"required,posint"`
	Stock   json.Number `json:"stock" form:"stock" validate:"required,nonnegint"`
	StoreID string      `json:"store_id" form:"store_id" validate:"required,uuid15"`
}

// UpdateItemRequest actualización parcial; un campo vacío conserva el valor actual.
type UpdateItemRequest struct {
	ID      string      `json:"id" form:"id" validate:"required,uuid15"`
	Name    string      `json:"name" form:"name"`
	Price   json.Number `json:"price" form:"price" validate:"omitempty,posint"`
	Stock   json.Number `json:"stock" form:"stock" validate:"omitempty,nonnegint"`
	StoreID string      `json:"store_id" form:"store_id" validate:"omitempty,uuid15"`
}

// ItemResponse salida de un item.
type ItemResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     int64     `json:"price"`
	Stock     int64     `json:"stock"`
	StoreID   string    `json:"store_id"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}
