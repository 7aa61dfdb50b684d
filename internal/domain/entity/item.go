package entity

import "time"

// Item representa un producto publicado por una tienda.
type Item struct {
	ID        string
	Name      string
	Price     int64 // positivo
	Stock     int64 // no negativo
	StoreID   string
	ImageURL  string
	CreatedAt time.Time
}

// ItemPatch actualización parcial: un campo nil conserva el valor actual (COALESCE).
type ItemPatch struct {
	Name     *string
	Price    *int64
	Stock    *int64
	StoreID  *string
	ImageURL *string
}

// Apply aplica el patch sobre una copia del item.
func (p ItemPatch) Apply(it Item) Item {
	if p.Name != nil {
		it.Name = *p.Name
	}
	if p.Price != nil {
		it.Price = *p.Price
	}
	if p.Stock != nil {
		it.Stock = *p.Stock
	}
	if p.StoreID != nil {
		it.StoreID = *p.StoreID
	}
	if p.ImageURL != nil {
		it.ImageURL = *p.ImageURL
	}
	return it
}
