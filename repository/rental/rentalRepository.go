// repository/rental/rentalRepository.go
package rental

import (
	"context"
	"time"

	"boardcamp/model"
	"boardcamp/util/database"

	"github.com/shopspring/decimal"
)

// GameStock is the slice of a game row the open flow needs.
type GameStock struct {
	ID          int64
	StockTotal  int64
	PricePerDay decimal.Decimal
}

type Repo interface {
	// Customers & games
	CustomerExists(ctx context.Context, q database.Querier, customerID int64) (bool, error)
	LockGame(ctx context.Context, q database.Querier, gameID int64) (*GameStock, error)
	DecrementStock(ctx context.Context, q database.Querier, gameID int64) (bool, error)

	// Rentals
	InsertRental(ctx context.Context, q database.Querier, r *model.Rental) error
	LockRental(ctx context.Context, q database.Querier, rentalID int64) (*model.Rental, error)
	MarkReturned(ctx context.Context, q database.Querier, rentalID int64, returned model.Date, fee decimal.NullDecimal) (bool, error)
	DeleteOpen(ctx context.Context, q database.Querier, rentalID int64) (bool, error)

	// Listing
	List(ctx context.Context, f model.RentalFilter) ([]model.RentalView, error)
}

type repo struct {
	db database.Querier
}

func New(db database.Querier) Repo { return &repo{db: db} }

// Customers & games

func (r *repo) CustomerExists(ctx context.Context, q database.Querier, customerID int64) (bool, error) {
	const s = `SELECT EXISTS (SELECT 1 FROM customers WHERE id = $1)`
	var ok bool
	err := q.QueryRow(ctx, s, customerID).Scan(&ok)
	return ok, err
}

// LockGame reads stock and price under a row lock so concurrent opens on the
// same game serialize. Returns nil when the game does not exist.
func (r *repo) LockGame(ctx context.Context, q database.Querier, gameID int64) (*GameStock, error) {
	const s = `
		SELECT id, stock_total, price_per_day
		FROM games
		WHERE id = $1
		FOR UPDATE`
	var g GameStock
	err := q.QueryRow(ctx, s, gameID).Scan(&g.ID, &g.StockTotal, &g.PricePerDay)
	if database.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *repo) DecrementStock(ctx context.Context, q database.Querier, gameID int64) (bool, error) {
	// Guard: never below zero.
	const s = `
		UPDATE games
		SET stock_total = stock_total - 1
		WHERE id = $1
		AND stock_total >= 1`
	tag, err := q.Exec(ctx, s, gameID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// Rentals

func (r *repo) InsertRental(ctx context.Context, q database.Querier, rt *model.Rental) error {
	const s = `
		INSERT INTO rentals (customer_id, game_id, rent_date, days_rented, return_date, original_price, delay_fee)
		VALUES ($1, $2, $3, $4, NULL, $5, NULL)
		RETURNING id`
	return q.QueryRow(ctx, s, rt.CustomerID, rt.GameID, rt.RentDate.Time, rt.DaysRented, rt.OriginalPrice).Scan(&rt.ID)
}

// LockRental returns nil when the rental does not exist.
func (r *repo) LockRental(ctx context.Context, q database.Querier, rentalID int64) (*model.Rental, error) {
	const s = `
		SELECT id, customer_id, game_id, rent_date, days_rented, return_date, original_price, delay_fee
		FROM rentals
		WHERE id = $1
		FOR UPDATE`
	var (
		rt       model.Rental
		rentDate time.Time
		retDate  *time.Time
	)
	err := q.QueryRow(ctx, s, rentalID).Scan(
		&rt.ID, &rt.CustomerID, &rt.GameID, &rentDate, &rt.DaysRented,
		&retDate, &rt.OriginalPrice, &rt.DelayFee,
	)
	if database.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	rt.RentDate = model.NewDate(rentDate)
	if retDate != nil {
		d := model.NewDate(*retDate)
		rt.ReturnDate = &d
	}
	return &rt, nil
}

func (r *repo) MarkReturned(ctx context.Context, q database.Querier, rentalID int64, returned model.Date, fee decimal.NullDecimal) (bool, error) {
	const s = `
		UPDATE rentals
		SET return_date = $2,
			delay_fee = $3
		WHERE id = $1
		AND return_date IS NULL`
	tag, err := q.Exec(ctx, s, rentalID, returned.Time, fee)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *repo) DeleteOpen(ctx context.Context, q database.Querier, rentalID int64) (bool, error) {
	const s = `
		DELETE FROM rentals
		WHERE id = $1
		AND return_date IS NULL`
	tag, err := q.Exec(ctx, s, rentalID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// Listing

func (r *repo) List(ctx context.Context, f model.RentalFilter) ([]model.RentalView, error) {
	const base = `
			SELECT
			r.id, r.customer_id, r.game_id, r.rent_date, r.days_rented,
			r.return_date, r.original_price, r.delay_fee,
			c.name  AS customer_name,
			g.name  AS game_name,
			g.category_id,
			ca.name AS category_name
			FROM rentals r
			JOIN customers c   ON c.id = r.customer_id
			JOIN games g       ON g.id = r.game_id
			JOIN categories ca ON ca.id = g.category_id`

	q, args := base, []any{}
	switch {
	case f.CustomerID != nil:
		q += ` WHERE r.customer_id = $1`
		args = append(args, *f.CustomerID)
	case f.GameID != nil:
		q += ` WHERE r.game_id = $1`
		args = append(args, *f.GameID)
	}
	q += ` ORDER BY r.id`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.RentalView{}
	for rows.Next() {
		var (
			v        model.RentalView
			rentDate time.Time
			retDate  *time.Time
		)
		if err := rows.Scan(
			&v.ID, &v.CustomerID, &v.GameID, &rentDate, &v.DaysRented,
			&retDate, &v.OriginalPrice, &v.DelayFee,
			&v.Customer.Name, &v.Game.Name, &v.Game.CategoryID, &v.Game.CategoryName,
		); err != nil {
			return nil, err
		}
		v.RentDate = model.NewDate(rentDate)
		if retDate != nil {
			d := model.NewDate(*retDate)
			v.ReturnDate = &d
		}
		v.Customer.ID = v.CustomerID
		v.Game.ID = v.GameID
		out = append(out, v)
	}
	return out, rows.Err()
}
