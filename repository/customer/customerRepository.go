package customerrepo

import (
	"context"
	"strings"
	"time"

	"boardcamp/model"
	"boardcamp/util/database"

	"github.com/jackc/pgx/v5"
)

type Repo interface {
	// IDByCPF returns the id owning cpf, or 0 when nobody does.
	IDByCPF(ctx context.Context, cpf string) (int64, error)
	ByID(ctx context.Context, id int64) (*model.Customer, error)
	Create(ctx context.Context, c *model.Customer) error
	Update(ctx context.Context, c *model.Customer) (bool, error)
	List(ctx context.Context, cpfPrefix string) ([]model.Customer, error)
}

type repo struct{ db database.Querier }

func New(db database.Querier) Repo { return &repo{db: db} }

func (r *repo) IDByCPF(ctx context.Context, cpf string) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `SELECT id FROM customers WHERE cpf = $1`, cpf).Scan(&id)
	if database.IsNoRows(err) {
		return 0, nil
	}
	return id, err
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Customer, error) {
	const q = `
SELECT id, name, phone, cpf, birthday
FROM customers
WHERE id = $1`
	c, err := scanCustomer(r.db.QueryRow(ctx, q, id))
	if database.IsNoRows(err) {
		return nil, nil
	}
	return c, err
}

func (r *repo) Create(ctx context.Context, c *model.Customer) error {
	const q = `
INSERT INTO customers (name, phone, cpf, birthday)
VALUES ($1,$2,$3,$4)
RETURNING id`
	return r.db.QueryRow(ctx, q, c.Name, c.Phone, c.CPF, c.Birthday.Time).Scan(&c.ID)
}

func (r *repo) Update(ctx context.Context, c *model.Customer) (bool, error) {
	const q = `
UPDATE customers
SET name = $2, phone = $3, cpf = $4, birthday = $5
WHERE id = $1`
	tag, err := r.db.Exec(ctx, q, c.ID, c.Name, c.Phone, c.CPF, c.Birthday.Time)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *repo) List(ctx context.Context, cpfPrefix string) ([]model.Customer, error) {
	const base = `
SELECT id, name, phone, cpf, birthday
FROM customers`
	var (
		rows pgx.Rows
		err  error
	)
	if cpfPrefix != "" {
		rows, err = r.db.Query(ctx, base+` WHERE cpf LIKE $1 ESCAPE '\' ORDER BY id`, likePrefix(cpfPrefix))
	} else {
		rows, err = r.db.Query(ctx, base+` ORDER BY id`)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func scanCustomer(row pgx.Row) (*model.Customer, error) {
	var (
		c        model.Customer
		birthday time.Time
	)
	if err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.CPF, &birthday); err != nil {
		return nil, err
	}
	c.Birthday = model.NewDate(birthday)
	return &c, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePrefix(p string) string { return likeEscaper.Replace(p) + "%" }
