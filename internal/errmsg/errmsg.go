// Package errmsg is the catalog of user-facing messages for import
// argument validation. The flow package depends on the Catalog interface
// only, so wording can evolve without touching validation logic.
package errmsg

import "fmt"

// Catalog produces the user-facing sentences for import validation failures.
type Catalog interface {
	RequiredParamMissing(param, flow, syntax string) string
	MixedFlows() string
	NoFlowSpecified() string
}

type defaultCatalog struct{}

// Default is the catalog used by the CLI.
func Default() Catalog {
	return defaultCatalog{}
}

func (defaultCatalog) RequiredParamMissing(param, flow, syntax string) string {
	return fmt.Sprintf("%s is required for %s flow. Correct syntax: %s", param, flow, syntax)
}

func (defaultCatalog) MixedFlows() string {
	return "invalid argument combination: Direct API flow arguments (path, -i/--input, --format) " +
		"cannot be mixed with CICD flow arguments (--config-file, --env, -P/--params)"
}

func (defaultCatalog) NoFlowSpecified() string {
	return "no import flow specified. Provide <path> with -i/--input (Direct API flow) " +
		"or --config-file with --env (CICD flow)"
}
