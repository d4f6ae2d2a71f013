package catalogsvc

import (
	"context"

	"boardcamp/model"
	repo "boardcamp/repository/catalog"
	"boardcamp/util/apperr"
	"boardcamp/util/database"
	"boardcamp/util/validate"

	"github.com/jackc/pgerrcode"
)

type Repo = repo.Repo

type Service interface {
	CreateCategory(ctx context.Context, req model.CreateCategoryReq) (*model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	CreateGame(ctx context.Context, req model.CreateGameReq) (*model.Game, error)
	// ListGames filters by exact name when name is non-empty.
	ListGames(ctx context.Context, name string) ([]model.Game, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) CreateCategory(ctx context.Context, req model.CreateCategoryReq) (*model.Category, error) {
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	taken, err := s.r.CategoryNameExists(ctx, req.Name)
	if err != nil {
		return nil, apperr.Storage("check category name", err)
	}
	if taken {
		return nil, apperr.Conflict("category already exists")
	}

	c, err := s.r.InsertCategory(ctx, req.Name)
	if err != nil {
		return nil, mapWriteErr("insert category", err)
	}
	return c, nil
}

func (s *service) ListCategories(ctx context.Context) ([]model.Category, error) {
	out, err := s.r.ListCategories(ctx)
	if err != nil {
		return nil, apperr.Storage("list categories", err)
	}
	return out, nil
}

func (s *service) CreateGame(ctx context.Context, req model.CreateGameReq) (*model.Game, error) {
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	if err := validate.Money("pricePerDay", req.PricePerDay); err != nil {
		return nil, err
	}

	ok, err := s.r.CategoryExists(ctx, req.CategoryID)
	if err != nil {
		return nil, apperr.Storage("check category", err)
	}
	if !ok {
		return nil, apperr.Reference("category not found")
	}

	taken, err := s.r.GameNameExists(ctx, req.Name)
	if err != nil {
		return nil, apperr.Storage("check game name", err)
	}
	if taken {
		return nil, apperr.Conflict("game already exists")
	}

	g := &model.Game{
		Name:        req.Name,
		Image:       req.Image,
		StockTotal:  req.StockTotal,
		CategoryID:  req.CategoryID,
		PricePerDay: req.PricePerDay,
	}
	if err := s.r.InsertGame(ctx, g); err != nil {
		return nil, mapWriteErr("insert game", err)
	}
	return g, nil
}

func (s *service) ListGames(ctx context.Context, name string) ([]model.Game, error) {
	out, err := s.r.ListGames(ctx, name)
	if err != nil {
		return nil, apperr.Storage("list games", err)
	}
	return out, nil
}

// mapWriteErr turns constraint violations that slipped past the pre-checks
// (a concurrent insert, a category deleted in between) into business errors.
func mapWriteErr(op string, err error) error {
	switch database.PgCode(err) {
	case pgerrcode.UniqueViolation:
		return apperr.Conflict("name already exists")
	case pgerrcode.ForeignKeyViolation:
		return apperr.Reference("category not found")
	}
	return apperr.Storage(op, err)
}
