package openrouter

import (
	"github.com/yildizm/randy/internal/ai"
)

type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) Create(config *ai.ProviderConfig) (ai.Provider, error) {
	if config == nil {
		config = f.DefaultConfig()
	}

	return New(FromProviderConfig(config))
}

func (f *Factory) Type() string {
	return ProviderName
}

func (f *Factory) DefaultConfig() *ai.ProviderConfig {
	return DefaultConfig().ToProviderConfig()
}

func Register() error {
	if ai.GlobalRegistry().IsRegistered(ProviderName) {
		return nil
	}
	return ai.RegisterProvider(ProviderName, NewFactory())
}
