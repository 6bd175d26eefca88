package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// OptionUseCase casos de uso CRUD para opciones y sus valores. Los valores se
// administran en línea con la opción, estilo replace: lo que no viene en el
// request se elimina.
type OptionUseCase struct {
	repo repository.OptionRepository
}

// NewOptionUseCase construye el caso de uso.
func NewOptionUseCase(repo repository.OptionRepository) *OptionUseCase {
	return &OptionUseCase{repo: repo}
}

// Create crea una opción con sus valores iniciales.
func (uc *OptionUseCase) Create(ctx context.Context, in dto.CreateOptionRequest) (*dto.OptionResponse, error) {
	now := time.Now()
	option := &entity.Option{Name: in.Name, CreatedAt: now, UpdatedAt: now}
	if err := uc.repo.Create(ctx, option); err != nil {
		return nil, err
	}
	if len(in.Values) > 0 {
		if err := uc.repo.ReplaceValues(ctx, option.ID, toValueEntities(option.ID, in.Values)); err != nil {
			return nil, err
		}
	}
	return uc.GetByID(ctx, option.ID)
}

// GetByID obtiene una opción con sus valores.
func (uc *OptionUseCase) GetByID(ctx context.Context, id int64) (*dto.OptionResponse, error) {
	option, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if option == nil {
		return nil, nil
	}
	out := toOptionResponse(option)
	return &out, nil
}

// List lista opciones con paginación.
func (uc *OptionUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.OptionListResponse, error) {
	page.DefaultPage()
	list, total, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OptionResponse, 0, len(list))
	for _, o := range list {
		items = append(items, toOptionResponse(o))
	}
	return &dto.OptionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Update actualiza una opción; Values nil no toca los valores existentes.
func (uc *OptionUseCase) Update(ctx context.Context, id int64, in dto.UpdateOptionRequest) (*dto.OptionResponse, error) {
	option, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if option == nil {
		return nil, nil
	}
	if in.Name != nil {
		option.Name = *in.Name
	}
	option.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, option); err != nil {
		return nil, err
	}
	if in.Values != nil {
		if err := uc.repo.ReplaceValues(ctx, id, toValueEntities(id, in.Values)); err != nil {
			return nil, err
		}
	}
	return uc.GetByID(ctx, id)
}

// Delete elimina la opción; sus valores caen en cascada.
func (uc *OptionUseCase) Delete(ctx context.Context, id int64) error {
	option, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if option == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toValueEntities(optionID int64, values []dto.OptionValueInput) []entity.OptionValue {
	out := make([]entity.OptionValue, 0, len(values))
	for _, v := range values {
		out = append(out, entity.OptionValue{
			ID:         v.ID,
			OptionID:   optionID,
			Name:       v.Name,
			PriceAdder: v.PriceAdder,
		})
	}
	return out
}

func toOptionResponse(o *entity.Option) dto.OptionResponse {
	out := dto.OptionResponse{
		ID:        o.ID,
		Name:      o.Name,
		Values:    make([]dto.OptionValueResponse, 0, len(o.Values)),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
	for _, v := range o.Values {
		out.Values = append(out.Values, dto.OptionValueResponse{
			ID:         v.ID,
			OptionID:   v.OptionID,
			Name:       v.Name,
			PriceAdder: v.PriceAdder,
		})
	}
	return out
}
