package customersvc

import (
	"context"
	"strings"

	"boardcamp/model"
	repo "boardcamp/repository/customer"
	"boardcamp/util/apperr"
	"boardcamp/util/database"
	"boardcamp/util/validate"

	"github.com/jackc/pgerrcode"
)

type Repo = repo.Repo

type Service interface {
	Create(ctx context.Context, req model.CustomerReq) (*model.Customer, error)
	Update(ctx context.Context, id int64, req model.CustomerReq) (*model.Customer, error)
	// List filters by cpf prefix when cpfPrefix is non-empty.
	List(ctx context.Context, cpfPrefix string) ([]model.Customer, error)
	Get(ctx context.Context, id int64) (*model.Customer, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Create(ctx context.Context, req model.CustomerReq) (*model.Customer, error) {
	req, err := check(req)
	if err != nil {
		return nil, err
	}

	owner, err := s.r.IDByCPF(ctx, req.CPF)
	if err != nil {
		return nil, apperr.Storage("lookup cpf", err)
	}
	if owner != 0 {
		return nil, apperr.Conflict("cpf already registered")
	}

	c := fromReq(req)
	if err := s.r.Create(ctx, c); err != nil {
		return nil, mapWriteErr("insert customer", err)
	}
	return c, nil
}

func (s *service) Update(ctx context.Context, id int64, req model.CustomerReq) (*model.Customer, error) {
	if id <= 0 {
		return nil, apperr.Invalid("id", "gt=0")
	}
	req, err := check(req)
	if err != nil {
		return nil, err
	}

	cur, err := s.r.ByID(ctx, id)
	if err != nil {
		return nil, apperr.Storage("get customer", err)
	}
	if cur == nil {
		return nil, apperr.NotFound("customer not found")
	}

	owner, err := s.r.IDByCPF(ctx, req.CPF)
	if err != nil {
		return nil, apperr.Storage("lookup cpf", err)
	}
	if owner != 0 && owner != id {
		return nil, apperr.Conflict("cpf already registered")
	}

	c := fromReq(req)
	c.ID = id
	updated, err := s.r.Update(ctx, c)
	if err != nil {
		return nil, mapWriteErr("update customer", err)
	}
	if !updated {
		// deleted between the read and the write
		return nil, apperr.NotFound("customer not found")
	}
	return c, nil
}

func (s *service) List(ctx context.Context, cpfPrefix string) ([]model.Customer, error) {
	out, err := s.r.List(ctx, strings.TrimSpace(cpfPrefix))
	if err != nil {
		return nil, apperr.Storage("list customers", err)
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id int64) (*model.Customer, error) {
	c, err := s.r.ByID(ctx, id)
	if err != nil {
		return nil, apperr.Storage("get customer", err)
	}
	if c == nil {
		return nil, apperr.NotFound("customer not found")
	}
	return c, nil
}

func check(req model.CustomerReq) (model.CustomerReq, error) {
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return req, err
	}
	if req.Birthday.IsZero() {
		return req, apperr.Invalid("birthday", "required")
	}
	return req, nil
}

func fromReq(req model.CustomerReq) *model.Customer {
	return &model.Customer{
		Name:     req.Name,
		Phone:    req.Phone,
		CPF:      req.CPF,
		Birthday: req.Birthday,
	}
}

func mapWriteErr(op string, err error) error {
	if database.PgCode(err) == pgerrcode.UniqueViolation {
		return apperr.Conflict("cpf already registered")
	}
	return apperr.Storage(op, err)
}
