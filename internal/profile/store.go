// Package profile keeps the single candidate profile of this local store.
package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/jobboard/internal/localstore"
	"github.com/jonathan/jobboard/internal/logger"
	"github.com/jonathan/jobboard/internal/types"
	"github.com/sirupsen/logrus"
)

// Store reads and writes the "candidateProfile" key.
type Store struct {
	store *localstore.Accessor
	log   logrus.FieldLogger
}

// NewStore creates a profile store. A nil logger discards output.
func NewStore(store *localstore.Accessor, log logrus.FieldLogger) *Store {
	if log == nil {
		log = logger.Discard()
	}
	return &Store{store: store, log: log}
}

// Get returns the saved profile and whether one exists.
func (s *Store) Get(ctx context.Context) (*types.CandidateProfile, bool, error) {
	p, found, err := localstore.Get(ctx, s.store, localstore.KeyCandidateProfile, types.CandidateProfile{})
	if err != nil {
		return nil, false, fmt.Errorf("failed to load profile: %w", err)
	}
	return &p, found, nil
}

// Email returns the saved profile's email, or "" when there is no profile.
func (s *Store) Email(ctx context.Context) (string, error) {
	p, found, err := s.Get(ctx)
	if err != nil || !found {
		return "", err
	}
	return p.Email, nil
}

// Save validates and replaces the profile. Name, email and phone are
// required.
func (s *Store) Save(ctx context.Context, p types.CandidateProfile) error {
	if err := Validate(&p); err != nil {
		return err
	}
	if err := s.store.Set(ctx, localstore.KeyCandidateProfile, p); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	s.log.WithField("email", p.Email).Info("Saved candidate profile")
	return nil
}

// Clear removes the profile entirely.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.store.Remove(ctx, localstore.KeyCandidateProfile); err != nil {
		return fmt.Errorf("failed to clear profile: %w", err)
	}
	s.log.Info("Cleared candidate profile")
	return nil
}

// Validate checks the required profile fields and converts validator
// failures into a ValidationError.
func Validate(p *types.CandidateProfile) error {
	err := p.Validate()
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}
	out := &ValidationError{Fields: make([]FieldError, 0, len(validationErrors))}
	for _, fe := range validationErrors {
		out.Fields = append(out.Fields, FieldError{
			Field:   jsonName(fe.Field()),
			Message: message(fe.Tag()),
		})
	}
	return out
}

func jsonName(field string) string {
	switch field {
	case "Name":
		return "name"
	case "Email":
		return "email"
	case "Phone":
		return "phone"
	default:
		return field
	}
}

func message(tag string) string {
	switch tag {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	default:
		return "failed " + tag
	}
}
