// Package flow validates and dispatches the import command's two mutually
// exclusive argument flows: Direct API (path + input, optional format) and
// CICD (config file + environment, optional parameter overrides).
package flow

// Args is the import command's parameter bag as parsed from the CLI.
// Every field is optional; which flow the caller intends is derived from
// which fields are set. Validation never mutates an Args value.
type Args struct {
	// Direct API flow.
	Path   []string
	Input  []string
	Format string

	// CICD flow.
	ConfigFile string
	Env        string
	Params     string
}

// Presence is uniform across fields: a list field is set when it has at
// least one element, a string field when it is non-empty. An explicitly
// empty value counts as absent.
func isSet(s string) bool {
	return s != ""
}

func isSetList(v []string) bool {
	return len(v) > 0
}

// directCandidate reports whether any Direct API signal field is set,
// including the optional format hint.
func (a Args) directCandidate() bool {
	return isSetList(a.Path) || isSetList(a.Input) || isSet(a.Format)
}

// cicdCandidate reports whether any CICD signal field is set, including
// the optional parameter overrides.
func (a Args) cicdCandidate() bool {
	return isSet(a.ConfigFile) || isSet(a.Env) || isSet(a.Params)
}

// DirectShape reports whether the bag has both required Direct API fields.
// The dispatcher uses it to re-derive flow membership from field presence.
func (a Args) DirectShape() bool {
	return isSetList(a.Path) && isSetList(a.Input)
}

// CICDShape reports whether the bag carries a config file.
func (a Args) CICDShape() bool {
	return isSet(a.ConfigFile)
}
