package poly

import (
	"fmt"

	"github.com/vybium/circle-stark-core/circle"
	"github.com/vybium/circle-stark-core/qm31"
	"github.com/vybium/circle-stark-core/starkerr"
)

// SecureEvaluation pairs a circle domain with a SecureColumn of QM31
// values on it, tagged Natural or BitReversedOrder at the type level.
type SecureEvaluation[O Order] struct {
	Domain circle.Domain
	Values qm31.SecureColumn
}

// NewSecureEvaluation validates values.Len() matches domain.Size() and
// wraps them without reordering.
func NewSecureEvaluation[O Order](domain circle.Domain, values qm31.SecureColumn) (SecureEvaluation[O], error) {
	if values.Len() != domain.Size() {
		return SecureEvaluation[O]{}, starkerr.New(starkerr.CodeLengthMismatch,
			fmt.Sprintf("secure evaluation: values length %d does not match domain size %d", values.Len(), domain.Size()))
	}
	return SecureEvaluation[O]{Domain: domain, Values: values}, nil
}
