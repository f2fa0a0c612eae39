package stack

import (
	"fmt"

	"github.com/vk/topoconf/internal/cardinality"
)

// Metadata is the read-only view of a stack the resolver works against.
type Metadata interface {
	// Cardinality returns the declared instance-count constraint for a
	// component. Unknown components are a configuration-integrity fault.
	Cardinality(component string) (cardinality.Cardinality, error)

	// ServiceFor returns the service owning a component.
	ServiceFor(component string) (string, bool)

	// IsMaster reports whether the component is a master component.
	IsMaster(component string) bool

	// ConfigTypesFor returns the configuration types a service owns.
	ConfigTypesFor(service string) []string

	// ExcludedConfigTypesFor returns configuration types a service declares
	// but never exports.
	ExcludedConfigTypesFor(service string) []string
}

// Component is one stack component entry.
type Component struct {
	Name        string
	Service     string
	Cardinality cardinality.Cardinality
	Master      bool
}

// Service is one stack service entry.
type Service struct {
	Name          string
	ConfigTypes   []string
	ExcludedTypes []string
}

// Stack is an in-memory Metadata implementation.
type Stack struct {
	components map[string]Component
	services   map[string]Service
}

// New builds a stack from explicit component and service tables.
func New(components []Component, services []Service) *Stack {
	s := &Stack{
		components: make(map[string]Component, len(components)),
		services:   make(map[string]Service, len(services)),
	}
	for _, c := range components {
		s.components[c.Name] = c
	}
	for _, svc := range services {
		s.services[svc.Name] = svc
	}
	return s
}

// Override replaces or adds a single component entry. Used when a blueprint
// document carries stack_component blocks.
func (s *Stack) Override(c Component) {
	s.components[c.Name] = c
}

// Cardinality implements Metadata.
func (s *Stack) Cardinality(component string) (cardinality.Cardinality, error) {
	c, ok := s.components[component]
	if !ok {
		return cardinality.Cardinality{}, fmt.Errorf("stack has no component %q", component)
	}
	return c.Cardinality, nil
}

// ServiceFor implements Metadata.
func (s *Stack) ServiceFor(component string) (string, bool) {
	c, ok := s.components[component]
	if !ok {
		return "", false
	}
	return c.Service, true
}

// IsMaster implements Metadata.
func (s *Stack) IsMaster(component string) bool {
	return s.components[component].Master
}

// ConfigTypesFor implements Metadata.
func (s *Stack) ConfigTypesFor(service string) []string {
	return s.services[service].ConfigTypes
}

// ExcludedConfigTypesFor implements Metadata.
func (s *Stack) ExcludedConfigTypesFor(service string) []string {
	return s.services[service].ExcludedTypes
}
