package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/simplemapping/simplemapping/internal/services/mapping/service"
)

func TestNewWithDBPathCreatesDirectoryAndServes(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "nested", "mapping.db")
	application, err := NewWithDBPath(dbPath)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	t.Cleanup(func() {
		if err := application.Close(); err != nil {
			t.Fatalf("close app: %v", err)
		}
	})

	project, err := application.Service.AddProject(context.Background(), service.AddProjectInput{
		Name:    "Smoke",
		OwnerID: "user-1",
	})
	if err != nil {
		t.Fatalf("add project: %v", err)
	}
	if project.ID == "" {
		t.Fatal("project id is empty")
	}
}

func TestCloseOnNilApp(t *testing.T) {
	t.Parallel()

	var application *App
	if err := application.Close(); err != nil {
		t.Fatalf("close nil app: %v", err)
	}
}
