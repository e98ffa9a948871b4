package ports

import "go.trai.ch/provision/internal/core/domain"

// ConfigLoader defines the interface for loading the provisioning configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the config file at path and returns the task list.
	Load(path string) (*domain.TaskList, error)
}
