package main

import (
	"github.com/rios0rios0/setversion/internal"
	"github.com/rios0rios0/setversion/internal/infrastructure/controllers"
	"go.uber.org/dig"
)

func injectAppContext() *internal.AppInternal {
	container := dig.New()

	// Register all providers
	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	// Invoke to get AppInternal
	var appInternal *internal.AppInternal
	if err := container.Invoke(func(ai *internal.AppInternal) {
		appInternal = ai
	}); err != nil {
		panic(err)
	}

	return appInternal
}

func injectSetVersionController() *controllers.SetVersionController {
	container := dig.New()

	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	var setVersionController *controllers.SetVersionController
	if err := container.Invoke(func(sc *controllers.SetVersionController) {
		setVersionController = sc
	}); err != nil {
		panic(err)
	}

	return setVersionController
}
