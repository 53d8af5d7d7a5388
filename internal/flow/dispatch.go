package flow

import (
	"context"
	"fmt"

	"fabcli/internal/hierarchy"
	"fabcli/internal/pathutil"
)

// DirectExecutor performs a Direct API import of one item's definition
// from local input files.
type DirectExecutor interface {
	ImportSingleItem(ctx context.Context, target hierarchy.SingleItem, input []string, format string) error
}

// ConfigExecutor performs a CICD import driven by a deployment descriptor.
// It resolves its own targets from the descriptor.
type ConfigExecutor interface {
	ImportWithConfigFile(ctx context.Context, configFile, env, params string) error
}

// Dispatcher routes a validated Args bag to the matching executor.
type Dispatcher struct {
	direct DirectExecutor
	cicd   ConfigExecutor
}

func NewDispatcher(direct DirectExecutor, cicd ConfigExecutor) *Dispatcher {
	return &Dispatcher{direct: direct, cicd: cicd}
}

// Dispatch forwards a bag that already passed Validate. Flow membership is
// re-derived from field presence so Dispatch stays correct when invoked
// standalone; required-field checking is not repeated. Executor failures
// propagate unchanged.
func (d *Dispatcher) Dispatch(ctx context.Context, a Args, target hierarchy.Element) error {
	switch {
	case a.DirectShape():
		item, ok := target.(hierarchy.SingleItem)
		if !ok {
			return newError(KindDispatchRejected, fmt.Sprintf(
				"cannot import into %q: the Direct API flow requires a single item target, got a %s",
				elementPath(target), elementType(target)))
		}
		input := pathutil.NormalizeList(a.Input)
		return d.direct.ImportSingleItem(ctx, item, input, a.Format)

	case a.CICDShape():
		return d.cicd.ImportWithConfigFile(ctx, a.ConfigFile, a.Env, a.Params)
	}

	return newError(KindDispatchRejected,
		"nothing to dispatch: arguments match neither import flow")
}

func elementPath(e hierarchy.Element) string {
	if e == nil {
		return "<none>"
	}
	return e.Path()
}

func elementType(e hierarchy.Element) string {
	if e == nil {
		return "missing target"
	}
	return e.Type()
}
