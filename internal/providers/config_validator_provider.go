package providers

import (
	"github.com/gookit/validate"

	"camsd/internal/structures"
)

// CnfValidator checks the loaded config against the struct tags in
// structures.Config before the daemon starts using it.
type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if !v.Validate() {
		return v.Errors.OneError()
	}
	return nil
}
