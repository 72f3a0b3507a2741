package e2e

import (
	"github.com/cucumber/godog"

	"menagerie/e2e/steps/zoo"
)

// RegisterSteps registers all step definitions from modular packages
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	zoo.RegisterSteps(ctx, tc)
}
