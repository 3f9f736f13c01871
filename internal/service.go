package internal

import (
	"github.com/golangid/questionario-service/internal/factory"
	"github.com/golangid/questionario-service/internal/modules/resposta"
)

// Service model
type Service struct {
	deps    *factory.Dependency
	modules []factory.ModuleFactory
	name    factory.Service
}

// NewService in this service
func NewService(serviceName string, deps *factory.Dependency) factory.ServiceFactory {
	modules := []factory.ModuleFactory{
		resposta.NewModule(deps),
	}

	return &Service{
		deps:    deps,
		modules: modules,
		name:    factory.Service(serviceName),
	}
}

// GetDependency method
func (s *Service) GetDependency() *factory.Dependency {
	return s.deps
}

// GetModules method
func (s *Service) GetModules() []factory.ModuleFactory {
	return s.modules
}

// Name method
func (s *Service) Name() factory.Service {
	return s.name
}
