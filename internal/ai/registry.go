package ai

import (
	"sort"
	"sync"
)

// ProviderFactory creates provider instances
type ProviderFactory interface {
	// Create creates a new provider instance with the given config
	Create(config *ProviderConfig) (Provider, error)

	// Type returns the provider type this factory creates
	Type() string

	// DefaultConfig returns a default configuration
	DefaultConfig() *ProviderConfig
}

// Registry maps provider types to their factories
type Registry struct {
	mu        sync.RWMutex
	factories map[string]ProviderFactory
}

// NewRegistry creates a new provider registry
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]ProviderFactory),
	}
}

// Register adds a provider factory to the registry
func (r *Registry) Register(name string, factory ProviderFactory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return NewConfigurationError(name, "provider", "provider already registered")
	}

	r.factories[name] = factory
	return nil
}

// Create builds a provider of the named type, filling unset fields from its defaults
func (r *Registry) Create(name string, config *ProviderConfig) (Provider, error) {
	r.mu.RLock()
	factory, exists := r.factories[name]
	r.mu.RUnlock()

	if !exists {
		return nil, NewConfigurationError(name, "provider", "provider not registered")
	}

	merged := mergeConfig(factory.DefaultConfig(), config)
	if err := validateProviderConfig(merged); err != nil {
		return nil, err
	}

	return factory.Create(merged)
}

// List returns all registered provider names
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a provider is registered
func (r *Registry) IsRegistered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.factories[name]
	return exists
}

func mergeConfig(defaults, config *ProviderConfig) *ProviderConfig {
	if defaults == nil {
		defaults = &ProviderConfig{}
	}
	merged := *defaults
	if config == nil {
		return &merged
	}

	if config.Name != "" {
		merged.Name = config.Name
	}
	if config.Type != "" {
		merged.Type = config.Type
	}
	if config.APIKey != "" {
		merged.APIKey = config.APIKey
	}
	if config.BaseURL != "" {
		merged.BaseURL = config.BaseURL
	}
	if config.DefaultModel != "" {
		merged.DefaultModel = config.DefaultModel
	}
	if config.Persona != "" {
		merged.Persona = config.Persona
	}
	if config.Timeout > 0 {
		merged.Timeout = config.Timeout
	}
	if config.RetryConfig != nil {
		merged.RetryConfig = config.RetryConfig
	}
	if len(config.Headers) > 0 {
		merged.Headers = config.Headers
	}
	return &merged
}

// Global registry instance
var globalRegistry = NewRegistry()

// GlobalRegistry returns the global provider registry
func GlobalRegistry() *Registry {
	return globalRegistry
}

// RegisterProvider registers a provider in the global registry
func RegisterProvider(name string, factory ProviderFactory) error {
	return globalRegistry.Register(name, factory)
}

// CreateProvider builds a provider from the global registry
func CreateProvider(name string, config *ProviderConfig) (Provider, error) {
	return globalRegistry.Create(name, config)
}
