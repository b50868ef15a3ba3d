package ports

import "go.trai.ch/restyle/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers restyle.yaml by walking up from cwd and resolves it.
	Load(cwd string) (*domain.Config, error)

	// LoadFile resolves the config file at path.
	LoadFile(path string) (*domain.Config, error)
}
