package catalogrepo

import (
	"context"

	"boardcamp/model"
	"boardcamp/util/database"

	"github.com/jackc/pgx/v5"
)

type Repo interface {
	// Categories
	CategoryNameExists(ctx context.Context, name string) (bool, error)
	CategoryExists(ctx context.Context, id int64) (bool, error)
	InsertCategory(ctx context.Context, name string) (*model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)

	// Games
	GameNameExists(ctx context.Context, name string) (bool, error)
	InsertGame(ctx context.Context, g *model.Game) error
	ListGames(ctx context.Context, name string) ([]model.Game, error)
}

type repo struct{ db database.Querier }

func New(db database.Querier) Repo { return &repo{db: db} }

// Categories

func (r *repo) CategoryNameExists(ctx context.Context, name string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM categories WHERE name = $1)`
	var ok bool
	err := r.db.QueryRow(ctx, q, name).Scan(&ok)
	return ok, err
}

func (r *repo) CategoryExists(ctx context.Context, id int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)`
	var ok bool
	err := r.db.QueryRow(ctx, q, id).Scan(&ok)
	return ok, err
}

func (r *repo) InsertCategory(ctx context.Context, name string) (*model.Category, error) {
	const q = `
INSERT INTO categories (name)
VALUES ($1)
RETURNING id, name`
	var c model.Category
	if err := r.db.QueryRow(ctx, q, name).Scan(&c.ID, &c.Name); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repo) ListCategories(ctx context.Context) ([]model.Category, error) {
	const q = `SELECT id, name FROM categories ORDER BY id`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Category{}
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Games

func (r *repo) GameNameExists(ctx context.Context, name string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM games WHERE name = $1)`
	var ok bool
	err := r.db.QueryRow(ctx, q, name).Scan(&ok)
	return ok, err
}

func (r *repo) InsertGame(ctx context.Context, g *model.Game) error {
	const q = `
INSERT INTO games (name, image, stock_total, category_id, price_per_day)
VALUES ($1,$2,$3,$4,$5)
RETURNING id`
	return r.db.QueryRow(ctx, q, g.Name, g.Image, g.StockTotal, g.CategoryID, g.PricePerDay).Scan(&g.ID)
}

func (r *repo) ListGames(ctx context.Context, name string) ([]model.Game, error) {
	const base = `
SELECT id, name, image, stock_total, category_id, price_per_day
FROM games`
	var (
		rows pgx.Rows
		err  error
	)
	if name != "" {
		rows, err = r.db.Query(ctx, base+` WHERE name = $1 ORDER BY id`, name)
	} else {
		rows, err = r.db.Query(ctx, base+` ORDER BY id`)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Game{}
	for rows.Next() {
		var g model.Game
		if err := rows.Scan(&g.ID, &g.Name, &g.Image, &g.StockTotal, &g.CategoryID, &g.PricePerDay); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}
