// Package seed loads client fixtures from YAML and inserts them through the
// client service.
package seed

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aussiebroadwan/clientbook/internal/clients/domain"
	"github.com/aussiebroadwan/clientbook/pkg/slogx"
	"gopkg.in/yaml.v3"
)

var ErrInvalidFixture = errors.New("seed: invalid fixture")

// File is the layout of a fixture file.
type File struct {
	Clients []Fixture `yaml:"clients"`
}

type Fixture struct {
	Name      string    `yaml:"name"`
	Cpf       string    `yaml:"cpf"`
	Income    float64   `yaml:"income"`
	BirthDate time.Time `yaml:"birthDate"`
	Children  int       `yaml:"children"`
}

func (f Fixture) toDTO() domain.ClientDTO {
	return domain.ClientDTO{
		Name:      f.Name,
		Cpf:       f.Cpf,
		Income:    f.Income,
		BirthDate: f.BirthDate.UTC(),
		Children:  f.Children,
	}
}

// Inserter is the part of the client service seeding needs.
type Inserter interface {
	Insert(ctx context.Context, dto domain.ClientDTO) (domain.ClientDTO, error)
}

// Load reads and validates the fixture file at path.
func Load(path string) ([]domain.ClientDTO, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: read %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes a fixture document. Every client needs a name and a
// non-negative income and children count.
func Parse(raw []byte) ([]domain.ClientDTO, error) {
	var file File
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("seed: decode: %w", err)
	}

	out := make([]domain.ClientDTO, 0, len(file.Clients))
	for i, f := range file.Clients {
		switch {
		case strings.TrimSpace(f.Name) == "":
			return nil, fmt.Errorf("%w: client %d has no name", ErrInvalidFixture, i)
		case f.Income < 0:
			return nil, fmt.Errorf("%w: client %q has negative income", ErrInvalidFixture, f.Name)
		case f.Children < 0:
			return nil, fmt.Errorf("%w: client %q has negative children", ErrInvalidFixture, f.Name)
		}
		out = append(out, f.toDTO())
	}
	return out, nil
}

// Apply inserts fixtures in order and returns them as stored. It stops at
// the first failure.
func Apply(ctx context.Context, svc Inserter, fixtures []domain.ClientDTO) ([]domain.ClientDTO, error) {
	l := slogx.FromContext(ctx)

	created := make([]domain.ClientDTO, 0, len(fixtures))
	for _, dto := range fixtures {
		saved, err := svc.Insert(ctx, dto)
		if err != nil {
			return created, fmt.Errorf("seed: insert %q: %w", dto.Name, err)
		}
		created = append(created, saved)
	}

	l.Info("fixtures applied", "clients", len(created))
	return created, nil
}
