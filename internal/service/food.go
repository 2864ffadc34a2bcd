package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"marketplace-api/internal/api"
	"marketplace-api/internal/model"
	"marketplace-api/internal/store"
)

var (
	createFood  = store.CreateFood
	getFoodByID = store.GetFoodByID
	listFoods   = store.ListFoods
	updateFood  = store.UpdateFood
	deleteFood  = store.DeleteFood
	countFoods  = store.CountFoods
)

// FoodInput holds the fields of a new food item.
type FoodInput struct {
	Name        string
	Description string
	Price       float64
	PrepTime    string
	Category    string
}

// FoodPatch carries only the fields present in an update request.
type FoodPatch struct {
	Name        api.Optional[string]
	Description api.Optional[string]
	Price       api.Optional[float64]
	PrepTime    api.Optional[string]
	Category    api.Optional[string]
}

type FoodService struct {
	p pipeline
}

func NewFoodService(c Catalog) *FoodService {
	return &FoodService{p: newPipeline(c, model.ItemFood)}
}

// Create 存圖後新增資料列；資料列寫入失敗時移除剛存下的圖檔
func (s *FoodService) Create(ctx context.Context, in FoodInput, image []byte) (*model.Food, error) {
	if len(image) == 0 {
		return nil, NewError(ErrValidation, "Image is required.")
	}
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, NewError(ErrValidation, "Food name is required.")
	}
	if err := checkPrice(in.Price); err != nil {
		return nil, err
	}
	if in.Category == "" {
		in.Category = model.DefaultCategory
	}

	filename, err := s.p.storeImage(ctx, image, in.Name)
	if err != nil {
		return nil, err
	}

	f, err := createFood(ctx, s.p.DB, &model.Food{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		PrepTime:    in.PrepTime,
		Category:    in.Category,
		Image:       filename,
	})
	if err != nil {
		s.p.discard(ctx, filename)
		return nil, fmt.Errorf("create food: %w", err)
	}

	if err := s.p.committed(ctx, model.ActionCreate, "Added new food item "+f.Name, f.ID); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *FoodService) List(ctx context.Context) ([]model.Food, error) {
	foods, err := listCached(ctx, &s.p, func(ctx context.Context) ([]model.Food, error) {
		return listFoods(ctx, s.p.DB)
	})
	if err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	return foods, nil
}

// Update applies patch and, when image is non-empty, swaps the stored image.
// The old image is removed only after the row points at the new one.
func (s *FoodService) Update(ctx context.Context, id int, patch FoodPatch, image []byte) error {
	if err := validateFoodPatch(patch); err != nil {
		return err
	}

	existing, err := getFoodByID(ctx, s.p.DB, id)
	if errors.Is(err, store.ErrNotFound) {
		return NewError(ErrNotFound, "Food item not found.")
	}
	if err != nil {
		return fmt.Errorf("load food %d: %w", id, err)
	}

	name := patch.Name.Or(existing.Name)
	changes := foodChanges(patch)

	var filename string
	if len(image) > 0 {
		if filename, err = s.p.storeImage(ctx, image, name); err != nil {
			return err
		}
		changes = changes.Set(store.FoodImage, filename)
	}

	if len(changes) > 0 {
		if err := updateFood(ctx, s.p.DB, id, changes); err != nil {
			s.p.discard(ctx, filename)
			if errors.Is(err, store.ErrNotFound) {
				return NewError(ErrNotFound, "Food item not found.")
			}
			return fmt.Errorf("update food %d: %w", id, err)
		}
	}
	if filename != "" {
		s.p.discard(ctx, existing.Image)
	}

	return s.p.committed(ctx, model.ActionUpdate, "Updated food item "+name, id)
}

// Delete 先刪圖檔再刪資料列
func (s *FoodService) Delete(ctx context.Context, id int) error {
	existing, err := getFoodByID(ctx, s.p.DB, id)
	if errors.Is(err, store.ErrNotFound) {
		return NewError(ErrNotFound, "Food not found.")
	}
	if err != nil {
		return fmt.Errorf("load food %d: %w", id, err)
	}

	if existing.Image != "" {
		if err := s.p.Assets.Remove(ctx, existing.Image); err != nil {
			return fmt.Errorf("remove food image: %w", err)
		}
	}
	if err := deleteFood(ctx, s.p.DB, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return NewError(ErrNotFound, "Food not found.")
		}
		return fmt.Errorf("delete food %d: %w", id, err)
	}

	return s.p.committed(ctx, model.ActionDelete, "Deleted food item "+existing.Name, id)
}

func (s *FoodService) Count(ctx context.Context) (int, error) {
	return countFoods(ctx, s.p.DB)
}

func validateFoodPatch(p FoodPatch) error {
	if p.Name.Set && strings.TrimSpace(p.Name.Value) == "" {
		return NewError(ErrValidation, "Food name cannot be empty.")
	}
	if p.Category.Set && p.Category.Value == "" {
		return NewError(ErrValidation, "Category cannot be empty.")
	}
	if p.Price.Set {
		if err := checkPrice(p.Price.Value); err != nil {
			return err
		}
	}
	return nil
}

func foodChanges(p FoodPatch) store.Changes {
	var c store.Changes
	if p.Name.Set {
		c = c.Set(store.FoodName, strings.TrimSpace(p.Name.Value))
	}
	if p.Description.Set {
		c = c.Set(store.FoodDescription, p.Description.Value)
	}
	if p.Price.Set {
		c = c.Set(store.FoodPrice, p.Price.Value)
	}
	if p.PrepTime.Set {
		c = c.Set(store.FoodPrepTime, p.PrepTime.Value)
	}
	if p.Category.Set {
		c = c.Set(store.FoodCategory, p.Category.Value)
	}
	return c
}
