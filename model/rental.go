// model/rental.go
package model

import "github.com/shopspring/decimal"

type RentalStatus string

const (
	RentalOpen   RentalStatus = "OPEN"
	RentalClosed RentalStatus = "CLOSED"
)

type Rental struct {
	ID            int64               `json:"id"`
	CustomerID    int64               `json:"customerId"`
	GameID        int64               `json:"gameId"`
	RentDate      Date                `json:"rentDate"`
	DaysRented    int                 `json:"daysRented"`
	ReturnDate    *Date               `json:"returnDate"`
	OriginalPrice decimal.Decimal     `json:"originalPrice"`
	DelayFee      decimal.NullDecimal `json:"delayFee"`
}

func (r *Rental) Status() RentalStatus {
	if r.ReturnDate != nil {
		return RentalClosed
	}
	return RentalOpen
}

// DueDate is the last day the game may be kept without a delay fee.
func (r *Rental) DueDate() Date { return r.RentDate.AddDays(r.DaysRented) }

type RentalCustomer struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type RentalGame struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	CategoryID   int64  `json:"categoryId"`
	CategoryName string `json:"categoryName"`
}

// RentalView is a rental with its customer and game denormalized for listing.
type RentalView struct {
	Rental
	Customer RentalCustomer `json:"customer"`
	Game     RentalGame     `json:"game"`
}

// RentalFilter selects rentals by customer or game. CustomerID wins when both are set.
type RentalFilter struct {
	CustomerID *int64
	GameID     *int64
}

// OpenRentalReq represents rental creation payload
// swagger:model OpenRentalReq
type OpenRentalReq struct {
	CustomerID int64 `json:"customerId" validate:"gt=0"`
	GameID     int64 `json:"gameId" validate:"gt=0"`
	DaysRented int   `json:"daysRented" validate:"gte=1,lte=3650"`
}
