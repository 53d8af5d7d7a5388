package flow

import "fabcli/internal/errmsg"

// Flow display names and canonical usage strings, as printed in
// missing-parameter errors.
const (
	DirectFlowName = "Direct API"
	CICDFlowName   = "CICD"

	DirectFlowSyntax = "fab import <path> -i <input_path> [--format <format>]"
	CICDFlowSyntax   = "fab import --config-file <config_path> --env <env_name> [-P <params>]"
)

// Validator classifies an Args bag into one of the two flows and checks
// that flow's required fields. It is pure: no I/O, no mutation, the same
// bag always yields the same outcome.
type Validator struct {
	msgs errmsg.Catalog
}

func NewValidator(msgs errmsg.Catalog) *Validator {
	return &Validator{msgs: msgs}
}

// Validate returns nil when the bag belongs to exactly one flow and that
// flow's required fields are present. Otherwise it returns a *Error.
// Checks run in a fixed order and stop at the first failure: mixed flows,
// then the detected flow's required fields (path before input, config file
// before env), then no flow at all.
func (v *Validator) Validate(a Args) error {
	direct := a.directCandidate()
	cicd := a.cicdCandidate()

	if direct && cicd {
		return newError(KindMixedFlows, v.msgs.MixedFlows())
	}

	switch {
	case direct:
		if !isSetList(a.Path) {
			return v.missing("path", DirectFlowName, DirectFlowSyntax)
		}
		if !isSetList(a.Input) {
			return v.missing("-i/--input", DirectFlowName, DirectFlowSyntax)
		}
	case cicd:
		if !isSet(a.ConfigFile) {
			return v.missing("--config-file", CICDFlowName, CICDFlowSyntax)
		}
		if !isSet(a.Env) {
			return v.missing("--env", CICDFlowName, CICDFlowSyntax)
		}
	default:
		return newError(KindNoFlowSpecified, v.msgs.NoFlowSpecified())
	}

	return nil
}

func (v *Validator) missing(param, flowName, syntax string) *Error {
	return newMissingParam(param, flowName, syntax,
		v.msgs.RequiredParamMissing(param, flowName, syntax))
}

// Validate runs the default validator over a bag.
func Validate(a Args) error {
	return NewValidator(errmsg.Default()).Validate(a)
}
