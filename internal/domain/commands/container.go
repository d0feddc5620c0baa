package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	if err := container.Provide(NewSetVersionCommand); err != nil {
		return err
	}
	if err := container.Provide(NewDetectCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *SetVersionCommand) SetVersion {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *DetectCommand) Detect {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
