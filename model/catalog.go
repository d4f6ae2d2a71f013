// model/catalog.go
package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Game struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Image       string          `json:"image"`
	StockTotal  int64           `json:"stockTotal"`
	CategoryID  int64           `json:"categoryId"`
	PricePerDay decimal.Decimal `json:"pricePerDay"`
}

// CreateCategoryReq represents category creation payload
// swagger:model CreateCategoryReq
type CreateCategoryReq struct {
	Name string `json:"name" validate:"notblank"`
}

// CreateGameReq represents game creation payload
// swagger:model CreateGameReq
type CreateGameReq struct {
	Name        string          `json:"name" validate:"notblank"`
	Image       string          `json:"image" validate:"notblank"`
	StockTotal  int64           `json:"stockTotal" validate:"gt=0"`
	CategoryID  int64           `json:"categoryId" validate:"gt=0"`
	PricePerDay decimal.Decimal `json:"pricePerDay"`
}

func (r *CreateCategoryReq) Normalize() { r.Name = strings.TrimSpace(r.Name) }

func (r *CreateGameReq) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Image = strings.TrimSpace(r.Image)
}
