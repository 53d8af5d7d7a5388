package flow

// ErrorCodeImportValidation is the stable status code carried by every
// import validation or dispatch failure, so the CLI boundary can tell
// these apart from other command errors.
const ErrorCodeImportValidation = "ImportValidation"

// Kind classifies an import validation failure.
type Kind int

const (
	// KindMixedFlows means signal fields of both flows were supplied.
	KindMixedFlows Kind = iota + 1
	// KindNoFlowSpecified means no signal field of either flow was supplied.
	KindNoFlowSpecified
	// KindRequiredParamMissing means exactly one flow was detected but one
	// of its required fields is absent.
	KindRequiredParamMissing
	// KindDispatchRejected means a validated bag could not be routed, e.g.
	// the Direct API flow was aimed at a target that is not a single item.
	KindDispatchRejected
)

// Error is the typed failure returned by Validate and Dispatch. All four
// kinds are user-input errors, not system faults; the CLI boundary prints
// the message and maps them to a non-zero exit status.
type Error struct {
	Kind Kind
	Code string

	// Parameter, Flow and Syntax are set for KindRequiredParamMissing only.
	Parameter string
	Flow      string
	Syntax    string

	message string
}

func (e *Error) Error() string {
	return e.message
}

func newError(kind Kind, message string) *Error {
	return &Error{
		Kind:    kind,
		Code:    ErrorCodeImportValidation,
		message: message,
	}
}

func newMissingParam(param, flowName, syntax, message string) *Error {
	return &Error{
		Kind:      KindRequiredParamMissing,
		Code:      ErrorCodeImportValidation,
		Parameter: param,
		Flow:      flowName,
		Syntax:    syntax,
		message:   message,
	}
}
