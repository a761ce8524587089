// Package seed fills a local mapping database with demo data by exercising
// the service façade end to end.
package seed

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/simplemapping/simplemapping/internal/services/mapping/app"
	"github.com/simplemapping/simplemapping/internal/services/mapping/domain"
	"github.com/simplemapping/simplemapping/internal/services/mapping/service"
)

// Config controls a seeding run.
type Config struct {
	DBPath  string
	Owner   string
	Verbose bool
}

// DefaultConfig returns the seeding defaults for local development.
func DefaultConfig() Config {
	return Config{
		DBPath: filepath.Join("data", "mapping.db"),
		Owner:  "demo-user",
	}
}

type fixtureField struct {
	name      string
	fieldType domain.FieldType
}

type fixtureProject struct {
	name      string
	fields    []fixtureField
	positions [][]domain.PositionProperty
	access    []domain.CreateAccessInput
}

func fixtures(owner string) []fixtureProject {
	return []fixtureProject{
		{
			name: "Andes Trail Survey",
			fields: []fixtureField{
				{name: "surface", fieldType: domain.FieldTypeString},
				{name: "elevation_m", fieldType: domain.FieldTypeNumeric},
			},
			positions: [][]domain.PositionProperty{
				{
					{Name: "core_icon", Value: "flag"},
					{Name: "core_latitude", Value: "-32.65"},
					{Name: "core_longitude", Value: "-70.01"},
					{Name: "surface", Value: "scree"},
					{Name: "elevation_m", Value: "3200"},
				},
				{
					{Name: "core_icon", Value: "camp"},
					{Name: "core_latitude", Value: "-32.81"},
					{Name: "core_longitude", Value: "-70.09"},
					{Name: "surface", Value: "gravel"},
					{Name: "elevation_m", Value: "2450"},
				},
			},
			access: []domain.CreateAccessInput{
				{
					UserID:   owner,
					Type:     domain.AccessTypeReadOnly,
					Message:  "Season scouting notes",
					Invitees: []string{"scout@example.com"},
				},
			},
		},
		{
			name: "City Food Spots",
			fields: []fixtureField{
				{name: "cuisine", fieldType: domain.FieldTypeString},
			},
			positions: [][]domain.PositionProperty{
				{
					{Name: "core_icon", Value: "pin"},
					{Name: "core_latitude", Value: "45.50"},
					{Name: "core_longitude", Value: "-73.57"},
					{Name: "cuisine", Value: "smoked meat"},
				},
			},
			access: []domain.CreateAccessInput{
				{UserID: owner, Type: domain.AccessTypePublic},
			},
		},
	}
}

// Run seeds the database at cfg.DBPath through the mapping service.
func Run(ctx context.Context, cfg Config) error {
	application, err := app.NewWithDBPath(cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := application.Close(); err != nil {
			log.Printf("close app: %v", err)
		}
	}()
	return seedInto(ctx, application.Service, cfg)
}

func seedInto(ctx context.Context, svc *service.Service, cfg Config) error {
	if _, err := svc.UpdateUserSettings(ctx, domain.UserSettings{UserID: cfg.Owner}); err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}

	for _, fixture := range fixtures(cfg.Owner) {
		project, err := svc.AddProject(ctx, service.AddProjectInput{
			Name:    fixture.name,
			OwnerID: cfg.Owner,
		})
		if err != nil {
			return fmt.Errorf("seed project %q: %w", fixture.name, err)
		}
		if cfg.Verbose {
			log.Printf("seeded project %q (%s)", fixture.name, project.ID)
		}

		for _, field := range fixture.fields {
			if _, err := svc.AddPositionField(ctx, service.AddPositionFieldInput{
				ProjectID: project.ID,
				Name:      field.name,
				Type:      field.fieldType,
			}); err != nil {
				return fmt.Errorf("seed field %q on %q: %w", field.name, fixture.name, err)
			}
		}

		inputs := make([]service.AddPositionInput, 0, len(fixture.positions))
		for _, properties := range fixture.positions {
			inputs = append(inputs, service.AddPositionInput{
				ProjectID:  project.ID,
				Properties: properties,
			})
		}
		if len(inputs) > 0 {
			if _, err := svc.AddPositions(ctx, inputs); err != nil {
				return fmt.Errorf("seed positions on %q: %w", fixture.name, err)
			}
		}

		for _, grant := range fixture.access {
			grant.ProjectID = project.ID
			if _, err := svc.AddProjectAccess(ctx, grant); err != nil {
				return fmt.Errorf("seed access on %q: %w", fixture.name, err)
			}
		}
	}
	return nil
}
