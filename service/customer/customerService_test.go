package customersvc_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"boardcamp/model"
	customersvc "boardcamp/service/customer"
	"boardcamp/util/apperr"

	"github.com/stretchr/testify/require"
)

type repoMock struct {
	idByCPFFn func(ctx context.Context, cpf string) (int64, error)
	byIDFn    func(ctx context.Context, id int64) (*model.Customer, error)
	createFn  func(ctx context.Context, c *model.Customer) error
	updateFn  func(ctx context.Context, c *model.Customer) (bool, error)
	listFn    func(ctx context.Context, cpfPrefix string) ([]model.Customer, error)
}

var _ customersvc.Repo = (*repoMock)(nil)

func (m *repoMock) IDByCPF(ctx context.Context, cpf string) (int64, error) {
	if m.idByCPFFn == nil {
		return 0, nil
	}
	return m.idByCPFFn(ctx, cpf)
}
func (m *repoMock) ByID(ctx context.Context, id int64) (*model.Customer, error) {
	if m.byIDFn == nil {
		return nil, nil
	}
	return m.byIDFn(ctx, id)
}
func (m *repoMock) Create(ctx context.Context, c *model.Customer) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, c)
}
func (m *repoMock) Update(ctx context.Context, c *model.Customer) (bool, error) {
	if m.updateFn == nil {
		return true, nil
	}
	return m.updateFn(ctx, c)
}
func (m *repoMock) List(ctx context.Context, cpfPrefix string) ([]model.Customer, error) {
	if m.listFn == nil {
		return nil, nil
	}
	return m.listFn(ctx, cpfPrefix)
}

func req(cpf string) model.CustomerReq {
	return model.CustomerReq{
		Name:     "João Alfredo",
		Phone:    "21998899222",
		CPF:      cpf,
		Birthday: model.NewDate(time.Date(1992, 10, 5, 0, 0, 0, 0, time.UTC)),
	}
}

func TestCreate_Success(t *testing.T) {
	m := &repoMock{
		createFn: func(ctx context.Context, c *model.Customer) error {
			c.ID = 42
			return nil
		},
	}
	c, err := customersvc.New(m).Create(context.Background(), req("01234567890"))
	require.NoError(t, err)
	require.Equal(t, int64(42), c.ID)
	require.Equal(t, "01234567890", c.CPF)
	require.Equal(t, "1992-10-05", c.Birthday.String())
}

func TestCreate_CPFTenDigitsIsValidation(t *testing.T) {
	_, err := customersvc.New(&repoMock{}).Create(context.Background(), req("0123456789"))
	require.Error(t, err)
	require.Equal(t, apperr.ErrValidation, apperr.Code(err))
	require.Contains(t, apperr.Fields(err), "cpf")
}

func TestCreate_Validation(t *testing.T) {
	s := customersvc.New(&repoMock{})
	cases := map[string]func(r *model.CustomerReq){
		"name":     func(r *model.CustomerReq) { r.Name = "" },
		"phone":    func(r *model.CustomerReq) { r.Phone = "123456789" },
		"cpf":      func(r *model.CustomerReq) { r.CPF = "0123456789a" },
		"birthday": func(r *model.CustomerReq) { r.Birthday = model.Date{} },
	}
	for field, mutate := range cases {
		t.Run(field, func(t *testing.T) {
			r := req("01234567890")
			mutate(&r)
			_, err := s.Create(context.Background(), r)
			require.Equal(t, apperr.ErrValidation, apperr.Code(err))
			require.Contains(t, apperr.Fields(err), field)
		})
	}
}

func TestCreate_PhoneLengths(t *testing.T) {
	s := customersvc.New(&repoMock{})
	for _, phone := range []string{"2199887766", "21998877665"} {
		r := req("01234567890")
		r.Phone = phone
		_, err := s.Create(context.Background(), r)
		require.NoError(t, err, phone)
	}
	r := req("01234567890")
	r.Phone = strings.Repeat("9", 12)
	_, err := s.Create(context.Background(), r)
	require.Equal(t, apperr.ErrValidation, apperr.Code(err))
}

func TestCreate_CPFTaken(t *testing.T) {
	m := &repoMock{
		idByCPFFn: func(ctx context.Context, cpf string) (int64, error) { return 7, nil },
		createFn: func(ctx context.Context, c *model.Customer) error {
			t.Fatal("create must not be called")
			return nil
		},
	}
	_, err := customersvc.New(m).Create(context.Background(), req("01234567890"))
	require.Equal(t, apperr.ErrConflict, apperr.Code(err))
}

func TestUpdate_NotFound(t *testing.T) {
	_, err := customersvc.New(&repoMock{}).Update(context.Background(), 5, req("01234567890"))
	require.Equal(t, apperr.ErrNotFound, apperr.Code(err))
}

func TestUpdate_CPFOfAnotherCustomerConflicts(t *testing.T) {
	m := &repoMock{
		byIDFn:    func(ctx context.Context, id int64) (*model.Customer, error) { return &model.Customer{ID: id}, nil },
		idByCPFFn: func(ctx context.Context, cpf string) (int64, error) { return 9, nil },
	}
	_, err := customersvc.New(m).Update(context.Background(), 5, req("01234567890"))
	require.Equal(t, apperr.ErrConflict, apperr.Code(err))
}

func TestUpdate_KeepingOwnCPF(t *testing.T) {
	var saved *model.Customer
	m := &repoMock{
		byIDFn:    func(ctx context.Context, id int64) (*model.Customer, error) { return &model.Customer{ID: id}, nil },
		idByCPFFn: func(ctx context.Context, cpf string) (int64, error) { return 5, nil },
		updateFn: func(ctx context.Context, c *model.Customer) (bool, error) {
			saved = c
			return true, nil
		},
	}
	r := req("01234567890")
	r.Name = "João A."
	c, err := customersvc.New(m).Update(context.Background(), 5, r)
	require.NoError(t, err)
	require.Equal(t, int64(5), c.ID)
	require.Equal(t, "João A.", saved.Name)
}

func TestUpdate_InvalidBodyBeforeLookup(t *testing.T) {
	m := &repoMock{
		byIDFn: func(ctx context.Context, id int64) (*model.Customer, error) {
			t.Fatal("lookup must not run for invalid payload")
			return nil, nil
		},
	}
	_, err := customersvc.New(m).Update(context.Background(), 5, req("123"))
	require.Equal(t, apperr.ErrValidation, apperr.Code(err))
}

func TestGet(t *testing.T) {
	m := &repoMock{
		byIDFn: func(ctx context.Context, id int64) (*model.Customer, error) {
			if id == 1 {
				return &model.Customer{ID: 1, Name: "Ana"}, nil
			}
			return nil, nil
		},
	}
	s := customersvc.New(m)

	c, err := s.Get(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "Ana", c.Name)

	_, err = s.Get(context.Background(), 2)
	require.Equal(t, apperr.ErrNotFound, apperr.Code(err))
}

func TestList_PrefixAndStorageError(t *testing.T) {
	var got string
	m := &repoMock{
		listFn: func(ctx context.Context, cpfPrefix string) ([]model.Customer, error) {
			got = cpfPrefix
			if cpfPrefix == "999" {
				return nil, errors.New("db down")
			}
			return []model.Customer{{ID: 1, CPF: "01234567890"}}, nil
		},
	}
	s := customersvc.New(m)

	out, err := s.List(context.Background(), "012")
	require.NoError(t, err)
	require.Equal(t, "012", got)
	require.Len(t, out, 1)

	_, err = s.List(context.Background(), "999")
	require.Equal(t, apperr.ErrStorage, apperr.Code(err))
}
