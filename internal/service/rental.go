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
	createRental          = store.CreateRental
	getRentalByID         = store.GetRentalByID
	listRentals           = store.ListRentals
	updateRental          = store.UpdateRental
	deleteRental          = store.DeleteRental
	countRentals          = store.CountRentals
	countAvailableRentals = store.CountAvailableRentals
)

type RentalInput struct {
	Title       string
	Description string
	Price       float64
	PriceType   string
	Category    string
	Available   bool
}

// RentalPatch carries only the fields present in an update request.
type RentalPatch struct {
	Title       api.Optional[string]
	Description api.Optional[string]
	Price       api.Optional[float64]
	PriceType   api.Optional[string]
	Category    api.Optional[string]
	Available   api.Optional[bool]
}

type RentalService struct {
	p pipeline
}

func NewRentalService(c Catalog) *RentalService {
	return &RentalService{p: newPipeline(c, model.ItemRental)}
}

func (s *RentalService) Create(ctx context.Context, in RentalInput, image []byte) (*model.Rental, error) {
	if len(image) == 0 {
		return nil, NewError(ErrValidation, "Image is required.")
	}
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return nil, NewError(ErrValidation, "Title is required.")
	}
	if err := checkPrice(in.Price); err != nil {
		return nil, err
	}
	if in.Category == "" {
		in.Category = model.DefaultCategory
	}

	filename, err := s.p.storeImage(ctx, image, in.Title)
	if err != nil {
		return nil, err
	}

	r, err := createRental(ctx, s.p.DB, &model.Rental{
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		PriceType:   in.PriceType,
		Category:    in.Category,
		Image:       filename,
		Available:   in.Available,
	})
	if err != nil {
		s.p.discard(ctx, filename)
		return nil, fmt.Errorf("create rental: %w", err)
	}

	if err := s.p.committed(ctx, model.ActionCreate, "Added new rental item "+r.Title, r.ID); err != nil {
		return nil, err
	}
	return r, nil
}

// List 依 id 由新到舊
func (s *RentalService) List(ctx context.Context) ([]model.Rental, error) {
	rentals, err := listCached(ctx, &s.p, func(ctx context.Context) ([]model.Rental, error) {
		return listRentals(ctx, s.p.DB)
	})
	if err != nil {
		return nil, fmt.Errorf("list rentals: %w", err)
	}
	return rentals, nil
}

func (s *RentalService) Update(ctx context.Context, id int, patch RentalPatch, image []byte) error {
	if err := validateRentalPatch(patch); err != nil {
		return err
	}

	existing, err := getRentalByID(ctx, s.p.DB, id)
	if errors.Is(err, store.ErrNotFound) {
		return NewError(ErrNotFound, "Rental item not found.")
	}
	if err != nil {
		return fmt.Errorf("load rental %d: %w", id, err)
	}

	title := patch.Title.Or(existing.Title)
	changes := rentalChanges(patch)

	var filename string
	if len(image) > 0 {
		if filename, err = s.p.storeImage(ctx, image, title); err != nil {
			return err
		}
		changes = changes.Set(store.RentalImage, filename)
	}

	if len(changes) > 0 {
		if err := updateRental(ctx, s.p.DB, id, changes); err != nil {
			s.p.discard(ctx, filename)
			if errors.Is(err, store.ErrNotFound) {
				return NewError(ErrNotFound, "Rental item not found.")
			}
			return fmt.Errorf("update rental %d: %w", id, err)
		}
	}
	if filename != "" {
		s.p.discard(ctx, existing.Image)
	}

	return s.p.committed(ctx, model.ActionUpdate, "Updated rental item "+title, id)
}

func (s *RentalService) Delete(ctx context.Context, id int) error {
	existing, err := getRentalByID(ctx, s.p.DB, id)
	if errors.Is(err, store.ErrNotFound) {
		return NewError(ErrNotFound, "Rental not found.")
	}
	if err != nil {
		return fmt.Errorf("load rental %d: %w", id, err)
	}

	if existing.Image != "" {
		if err := s.p.Assets.Remove(ctx, existing.Image); err != nil {
			return fmt.Errorf("remove rental image: %w", err)
		}
	}
	if err := deleteRental(ctx, s.p.DB, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return NewError(ErrNotFound, "Rental not found.")
		}
		return fmt.Errorf("delete rental %d: %w", id, err)
	}

	return s.p.committed(ctx, model.ActionDelete, "Deleted rental item "+existing.Title, id)
}

func (s *RentalService) Count(ctx context.Context) (int, error) {
	return countRentals(ctx, s.p.DB)
}

func (s *RentalService) CountAvailable(ctx context.Context) (int, error) {
	return countAvailableRentals(ctx, s.p.DB)
}

func validateRentalPatch(p RentalPatch) error {
	if p.Title.Set && strings.TrimSpace(p.Title.Value) == "" {
		return NewError(ErrValidation, "Title cannot be empty.")
	}
	if p.Category.Set && p.Category.Value == "" {
		return NewError(ErrValidation, "Category cannot be empty.")
	}
	if p.PriceType.Set && p.PriceType.Value == "" {
		return NewError(ErrValidation, "Price type cannot be empty.")
	}
	if p.Price.Set {
		if err := checkPrice(p.Price.Value); err != nil {
			return err
		}
	}
	return nil
}

func rentalChanges(p RentalPatch) store.Changes {
	var c store.Changes
	if p.Title.Set {
		c = c.Set(store.RentalTitle, strings.TrimSpace(p.Title.Value))
	}
	if p.Description.Set {
		c = c.Set(store.RentalDescription, p.Description.Value)
	}
	if p.Price.Set {
		c = c.Set(store.RentalPrice, p.Price.Value)
	}
	if p.PriceType.Set {
		c = c.Set(store.RentalPriceType, p.PriceType.Value)
	}
	if p.Category.Set {
		c = c.Set(store.RentalCategory, p.Category.Value)
	}
	if p.Available.Set {
		c = c.Set(store.RentalAvailable, p.Available.Value)
	}
	return c
}
