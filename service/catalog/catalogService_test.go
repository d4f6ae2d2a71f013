// service/catalog/catalogService_test.go
package catalogsvc_test

import (
	"context"
	"errors"
	"testing"

	"boardcamp/model"
	catalogsvc "boardcamp/service/catalog"
	"boardcamp/util/apperr"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type repoMock struct {
	categoryNameExistsFn func(ctx context.Context, name string) (bool, error)
	categoryExistsFn     func(ctx context.Context, id int64) (bool, error)
	insertCategoryFn     func(ctx context.Context, name string) (*model.Category, error)
	listCategoriesFn     func(ctx context.Context) ([]model.Category, error)
	gameNameExistsFn     func(ctx context.Context, name string) (bool, error)
	insertGameFn         func(ctx context.Context, g *model.Game) error
	listGamesFn          func(ctx context.Context, name string) ([]model.Game, error)
}

var _ catalogsvc.Repo = (*repoMock)(nil)

func (m *repoMock) CategoryNameExists(ctx context.Context, name string) (bool, error) {
	return m.categoryNameExistsFn(ctx, name)
}
func (m *repoMock) CategoryExists(ctx context.Context, id int64) (bool, error) {
	return m.categoryExistsFn(ctx, id)
}
func (m *repoMock) InsertCategory(ctx context.Context, name string) (*model.Category, error) {
	return m.insertCategoryFn(ctx, name)
}
func (m *repoMock) ListCategories(ctx context.Context) ([]model.Category, error) {
	return m.listCategoriesFn(ctx)
}
func (m *repoMock) GameNameExists(ctx context.Context, name string) (bool, error) {
	return m.gameNameExistsFn(ctx, name)
}
func (m *repoMock) InsertGame(ctx context.Context, g *model.Game) error { return m.insertGameFn(ctx, g) }
func (m *repoMock) ListGames(ctx context.Context, name string) ([]model.Game, error) {
	return m.listGamesFn(ctx, name)
}

// memCatalog is a tiny in-memory catalog used where the sequence of calls matters.
func memCatalog() *repoMock {
	cats := map[string]int64{}
	games := map[string]bool{}
	var next int64
	return &repoMock{
		categoryNameExistsFn: func(ctx context.Context, name string) (bool, error) {
			_, ok := cats[name]
			return ok, nil
		},
		categoryExistsFn: func(ctx context.Context, id int64) (bool, error) {
			for _, cid := range cats {
				if cid == id {
					return true, nil
				}
			}
			return false, nil
		},
		insertCategoryFn: func(ctx context.Context, name string) (*model.Category, error) {
			next++
			cats[name] = next
			return &model.Category{ID: next, Name: name}, nil
		},
		gameNameExistsFn: func(ctx context.Context, name string) (bool, error) { return games[name], nil },
		insertGameFn: func(ctx context.Context, g *model.Game) error {
			next++
			g.ID = next
			games[g.Name] = true
			return nil
		},
	}
}

func TestCreateCategory_DuplicateIsConflict(t *testing.T) {
	ctx := context.Background()
	s := catalogsvc.New(memCatalog())

	c, err := s.CreateCategory(ctx, model.CreateCategoryReq{Name: "Strategy"})
	require.NoError(t, err)
	require.Equal(t, "Strategy", c.Name)
	require.NotZero(t, c.ID)

	_, err = s.CreateCategory(ctx, model.CreateCategoryReq{Name: "Strategy"})
	require.Error(t, err)
	require.Equal(t, apperr.ErrConflict, apperr.Code(err))
}

func TestCreateCategory_EmptyName(t *testing.T) {
	s := catalogsvc.New(&repoMock{})
	for _, name := range []string{"", "   "} {
		_, err := s.CreateCategory(context.Background(), model.CreateCategoryReq{Name: name})
		require.Equal(t, apperr.ErrValidation, apperr.Code(err))
		require.Contains(t, apperr.Fields(err), "name")
	}
}

func TestCreateCategory_RaceLostToUniqueIndex(t *testing.T) {
	m := &repoMock{
		categoryNameExistsFn: func(ctx context.Context, name string) (bool, error) { return false, nil },
		insertCategoryFn: func(ctx context.Context, name string) (*model.Category, error) {
			return nil, &pgconn.PgError{Code: pgerrcode.UniqueViolation}
		},
	}
	_, err := catalogsvc.New(m).CreateCategory(context.Background(), model.CreateCategoryReq{Name: "Party"})
	require.Equal(t, apperr.ErrConflict, apperr.Code(err))
}

func TestCreateCategory_StorageFailure(t *testing.T) {
	m := &repoMock{
		categoryNameExistsFn: func(ctx context.Context, name string) (bool, error) { return false, errors.New("db down") },
	}
	_, err := catalogsvc.New(m).CreateCategory(context.Background(), model.CreateCategoryReq{Name: "Party"})
	require.Equal(t, apperr.ErrStorage, apperr.Code(err))
}

func validGame(categoryID int64) model.CreateGameReq {
	return model.CreateGameReq{
		Name:        "Banco Imobiliário",
		Image:       "http://example.com/banco.jpg",
		StockTotal:  3,
		CategoryID:  categoryID,
		PricePerDay: decimal.RequireFromString("15.00"),
	}
}

func TestCreateGame_Success(t *testing.T) {
	ctx := context.Background()
	m := memCatalog()
	s := catalogsvc.New(m)
	c, err := s.CreateCategory(ctx, model.CreateCategoryReq{Name: "Strategy"})
	require.NoError(t, err)

	g, err := s.CreateGame(ctx, validGame(c.ID))
	require.NoError(t, err)
	require.NotZero(t, g.ID)
	require.Equal(t, int64(3), g.StockTotal)
	require.True(t, g.PricePerDay.Equal(decimal.NewFromInt(15)))
}

func TestCreateGame_UnknownCategoryIsReference(t *testing.T) {
	_, err := catalogsvc.New(memCatalog()).CreateGame(context.Background(), validGame(99))
	require.Error(t, err)
	require.Equal(t, apperr.ErrReference, apperr.Code(err))
}

func TestCreateGame_DuplicateName(t *testing.T) {
	ctx := context.Background()
	s := catalogsvc.New(memCatalog())
	c, _ := s.CreateCategory(ctx, model.CreateCategoryReq{Name: "Strategy"})
	_, err := s.CreateGame(ctx, validGame(c.ID))
	require.NoError(t, err)

	_, err = s.CreateGame(ctx, validGame(c.ID))
	require.Equal(t, apperr.ErrConflict, apperr.Code(err))
}

func TestCreateGame_Validation(t *testing.T) {
	s := catalogsvc.New(&repoMock{})
	cases := map[string]func(r *model.CreateGameReq){
		"name":        func(r *model.CreateGameReq) { r.Name = "" },
		"image":       func(r *model.CreateGameReq) { r.Image = " " },
		"stockTotal":  func(r *model.CreateGameReq) { r.StockTotal = 0 },
		"categoryId":  func(r *model.CreateGameReq) { r.CategoryID = 0 },
		"pricePerDay": func(r *model.CreateGameReq) { r.PricePerDay = decimal.NewFromInt(-1) },
	}
	for field, mutate := range cases {
		t.Run(field, func(t *testing.T) {
			req := validGame(1)
			mutate(&req)
			_, err := s.CreateGame(context.Background(), req)
			require.Equal(t, apperr.ErrValidation, apperr.Code(err))
			require.Contains(t, apperr.Fields(err), field)
		})
	}
}

func TestCreateGame_PriceMustFitMoneyColumn(t *testing.T) {
	s := catalogsvc.New(&repoMock{})
	for _, price := range []string{"0.001", "10.005", "10000000000", "0"} {
		req := validGame(1)
		req.PricePerDay = decimal.RequireFromString(price)
		_, err := s.CreateGame(context.Background(), req)
		require.Equal(t, apperr.ErrValidation, apperr.Code(err), price)
		require.Contains(t, apperr.Fields(err), "pricePerDay", price)
	}

	ctx := context.Background()
	m := memCatalog()
	svc := catalogsvc.New(m)
	c, err := svc.CreateCategory(ctx, model.CreateCategoryReq{Name: "Strategy"})
	require.NoError(t, err)
	req := validGame(c.ID)
	req.PricePerDay = decimal.RequireFromString("9999999999.99")
	g, err := svc.CreateGame(ctx, req)
	require.NoError(t, err)
	require.Equal(t, "9999999999.99", g.PricePerDay.StringFixed(2))
}

func TestCreateGame_TrimsBeforeValidating(t *testing.T) {
	ctx := context.Background()
	s := catalogsvc.New(memCatalog())
	c, err := s.CreateCategory(ctx, model.CreateCategoryReq{Name: "  Strategy  "})
	require.NoError(t, err)
	require.Equal(t, "Strategy", c.Name)

	req := validGame(c.ID)
	req.Name = "  Detetive "
	g, err := s.CreateGame(ctx, req)
	require.NoError(t, err)
	require.Equal(t, "Detetive", g.Name)
}

func TestCreateGame_ForeignKeyRaceIsReference(t *testing.T) {
	m := &repoMock{
		categoryExistsFn: func(ctx context.Context, id int64) (bool, error) { return true, nil },
		gameNameExistsFn: func(ctx context.Context, name string) (bool, error) { return false, nil },
		insertGameFn: func(ctx context.Context, g *model.Game) error {
			return &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}
		},
	}
	_, err := catalogsvc.New(m).CreateGame(context.Background(), validGame(1))
	require.Equal(t, apperr.ErrReference, apperr.Code(err))
}

func TestListGames_PassesNameFilter(t *testing.T) {
	var got string
	m := &repoMock{
		listGamesFn: func(ctx context.Context, name string) ([]model.Game, error) {
			got = name
			return []model.Game{{ID: 1, Name: name}}, nil
		},
		listCategoriesFn: func(ctx context.Context) ([]model.Category, error) { return nil, errors.New("boom") },
	}
	s := catalogsvc.New(m)

	games, err := s.ListGames(context.Background(), "Catan")
	require.NoError(t, err)
	require.Equal(t, "Catan", got)
	require.Len(t, games, 1)

	_, err = s.ListCategories(context.Background())
	require.Equal(t, apperr.ErrStorage, apperr.Code(err))
}
