// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: dev@cinelog.app

package genre

import (
	"context"
	"fmt"
)

// Service implements genre catalog use cases.
type Service struct {
	repository Repository
}

// NewService constructs a new [Service].
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

// Create persists a new genre and returns it with its generated ID.
func (service *Service) Create(context context.Context, description string) (*Genre, error) {
	genre := &Genre{Description: description}

	if err := service.repository.Create(context, genre); err != nil {
		return nil, fmt.Errorf("genre_service_create_failed: %w", err)
	}

	return genre, nil
}

// Get returns the genre with the given ID.
func (service *Service) Get(context context.Context, id int64) (*Genre, error) {
	return service.repository.FindByID(context, id)
}

// List returns every genre in the catalog.
func (service *Service) List(context context.Context) ([]Genre, error) {
	genres, err := service.repository.List(context)
	if err != nil {
		return nil, fmt.Errorf("genre_service_list_failed: %w", err)
	}
	return genres, nil
}

// Update replaces the description of an existing genre.
//
// The existence guard runs before the write so updating an unknown ID
// returns NotFound without creating a row.
func (service *Service) Update(context context.Context, id int64, description string) (*Genre, error) {
	genre, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	genre.Description = description
	if err := service.repository.Update(context, genre); err != nil {
		return nil, fmt.Errorf("genre_service_update_failed: %w", err)
	}

	return genre, nil
}

// Delete removes a genre.
//
// A genre still referenced by a movie fails its foreign key, which
// surfaces as a validation error rather than a partial delete.
func (service *Service) Delete(context context.Context, id int64) error {
	if _, err := service.repository.FindByID(context, id); err != nil {
		return err
	}

	if err := service.repository.Delete(context, id); err != nil {
		return err
	}

	return nil
}
