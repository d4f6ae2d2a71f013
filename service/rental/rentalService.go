package rental

import (
	"context"
	"time"

	"boardcamp/model"
	rrepo "boardcamp/repository/rental"
	"boardcamp/util/apperr"
	"boardcamp/util/database"
	"boardcamp/util/validate"

	"github.com/shopspring/decimal"
)

type Repo = rrepo.Repo

type Service interface {
	// Open reserves one unit of stock and records the rental (no return date, no fee).
	Open(ctx context.Context, req model.OpenRentalReq) (*model.Rental, error)

	// Close records the return date and the delay fee. Stock is not restored.
	Close(ctx context.Context, rentalID int64) (*model.Rental, error)

	// List returns rentals with customer and game denormalized.
	List(ctx context.Context, f model.RentalFilter) ([]model.RentalView, error)

	// Cancel deletes a rental that was never returned.
	Cancel(ctx context.Context, rentalID int64) error
}

// ----- Service implementation -----

type service struct {
	db  database.Transactor
	r   Repo
	now func() time.Time
}

func New(db database.Transactor, r Repo) Service {
	return &service{db: db, r: r, now: time.Now}
}

func (s *service) today() model.Date { return model.NewDate(s.now().UTC()) }

func (s *service) Open(ctx context.Context, req model.OpenRentalReq) (*model.Rental, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	var out *model.Rental
	err := s.db.InTx(ctx, func(q database.Querier) error {
		ok, err := s.r.CustomerExists(ctx, q, req.CustomerID)
		if err != nil {
			return apperr.Storage("check customer", err)
		}
		if !ok {
			return apperr.Reference("customer not found")
		}

		game, err := s.r.LockGame(ctx, q, req.GameID)
		if err != nil {
			return apperr.Storage("lock game", err)
		}
		if game == nil {
			return apperr.Reference("game not found")
		}
		if game.StockTotal < 1 {
			return apperr.OutOfStock("game out of stock")
		}

		rt := &model.Rental{
			CustomerID:    req.CustomerID,
			GameID:        req.GameID,
			RentDate:      s.today(),
			DaysRented:    req.DaysRented,
			OriginalPrice: game.PricePerDay.Mul(decimal.NewFromInt(int64(req.DaysRented))),
		}
		if err := validate.Money("originalPrice", rt.OriginalPrice); err != nil {
			return err
		}

		dec, err := s.r.DecrementStock(ctx, q, game.ID)
		if err != nil {
			return apperr.Storage("decrement stock", err)
		}
		if !dec {
			return apperr.OutOfStock("game out of stock")
		}

		if err := s.r.InsertRental(ctx, q, rt); err != nil {
			return apperr.Storage("insert rental", err)
		}
		out = rt
		return nil
	})
	if err != nil {
		return nil, apperr.Storage("open rental", err)
	}
	return out, nil
}

func (s *service) Close(ctx context.Context, rentalID int64) (*model.Rental, error) {
	var out *model.Rental
	err := s.db.InTx(ctx, func(q database.Querier) error {
		rt, err := s.r.LockRental(ctx, q, rentalID)
		if err != nil {
			return apperr.Storage("lock rental", err)
		}
		if rt == nil {
			return apperr.NotFound("rental not found")
		}
		if rt.Status() == model.RentalClosed {
			return apperr.AlreadyClosed("rental already returned")
		}

		ret := s.today()
		fee := DelayFee(rt.OriginalPrice, rt.DaysRented, rt.RentDate, ret)

		ok, err := s.r.MarkReturned(ctx, q, rt.ID, ret, fee)
		if err != nil {
			return apperr.Storage("mark returned", err)
		}
		if !ok {
			return apperr.AlreadyClosed("rental already returned")
		}
		rt.ReturnDate = &ret
		rt.DelayFee = fee
		out = rt
		return nil
	})
	if err != nil {
		return nil, apperr.Storage("close rental", err)
	}
	return out, nil
}

func (s *service) List(ctx context.Context, f model.RentalFilter) ([]model.RentalView, error) {
	if f.CustomerID != nil {
		f.GameID = nil
	}
	out, err := s.r.List(ctx, f)
	if err != nil {
		return nil, apperr.Storage("list rentals", err)
	}
	return out, nil
}

func (s *service) Cancel(ctx context.Context, rentalID int64) error {
	err := s.db.InTx(ctx, func(q database.Querier) error {
		rt, err := s.r.LockRental(ctx, q, rentalID)
		if err != nil {
			return apperr.Storage("lock rental", err)
		}
		if rt == nil {
			return apperr.NotFound("rental not found")
		}
		if rt.Status() == model.RentalClosed {
			return apperr.Conflict("rental already returned")
		}

		ok, err := s.r.DeleteOpen(ctx, q, rt.ID)
		if err != nil {
			return apperr.Storage("delete rental", err)
		}
		if !ok {
			return apperr.Conflict("rental already returned")
		}
		return nil
	})
	return apperr.Storage("cancel rental", err)
}

// DelayFee charges the truncated daily rate for every calendar day past the
// due date. It is null when the game comes back on or before the due date.
func DelayFee(originalPrice decimal.Decimal, daysRented int, rentDate, returnDate model.Date) decimal.NullDecimal {
	if daysRented < 1 {
		return decimal.NullDecimal{}
	}
	rt := model.Rental{RentDate: rentDate, DaysRented: daysRented}
	delay := rt.DueDate().DaysUntil(returnDate)
	if delay <= 0 {
		return decimal.NullDecimal{}
	}
	daily := originalPrice.Div(decimal.NewFromInt(int64(daysRented))).Truncate(0)
	return decimal.NewNullDecimal(daily.Mul(decimal.NewFromInt(int64(delay))))
}
