package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks every field-level and cross-field constraint of the
// manifest and reports all violations together.
func (c *Config) Validate() error {
	var errs []error
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				errs = append(errs, fmt.Errorf("%s: violates %q (value %v)", fieldPath(fe), fe.Tag(), fe.Value()))
			}
		} else {
			errs = append(errs, err)
		}
	}
	errs = append(errs, c.validateLattice()...)
	errs = append(errs, c.validateSelfConsistency()...)
	errs = append(errs, c.validateLambdaCorrection()...)
	return errors.Join(errs...)
}

// fieldPath turns a validator namespace like "Config.lattice.nk[0]" into
// the manifest path "lattice.nk[0]".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func (c *Config) validateLattice() []error {
	var errs []error
	l := c.Lattice

	switch l.Type {
	case LatticeTTpTpp:
		if !l.HrInput.IsList() || len(l.HrInput.Values) != 3 {
			errs = append(errs, fmt.Errorf("lattice.hr_input: type %q requires a 3-element [t, tp, tpp] list", l.Type))
		}
	case LatticeFromWannier90, LatticeFromWannierHK:
		if !l.HrInput.IsPath() {
			errs = append(errs, fmt.Errorf("lattice.hr_input: type %q requires a file path", l.Type))
		}
	}

	switch l.InteractionType {
	case InteractionKanamori:
		if _, _, _, _, err := l.KanamoriParams(); err != nil {
			errs = append(errs, err)
		}
	case InteractionCustom:
		if !l.InteractionInput.IsPath() {
			errs = append(errs, fmt.Errorf("lattice.interaction_input: type %q requires a file path to the interaction matrix", l.InteractionType))
		}
	case InteractionLocalFromDMFT, InteractionKanamoriFromDMFT:
		if !l.InteractionInput.IsZero() {
			errs = append(errs, fmt.Errorf("lattice.interaction_input: must be empty for type %q, the interaction is taken from the DMFT input", l.InteractionType))
		}
	}

	if _, err := l.Symmetries.Resolve(); err != nil {
		errs = append(errs, fmt.Errorf("lattice.symmetries: %w", err))
	}
	return errs
}

func (c *Config) validateSelfConsistency() []error {
	var errs []error
	sc := c.SelfConsistency
	if sc.MixingStrategy == MixingPulay && (!sc.SaveIter || !c.Output.SaveQuantities) {
		errs = append(errs, fmt.Errorf("self_consistency.mixing_strategy: pulay mixing requires self_consistency.save_iter and output.save_quantities to both be enabled"))
	}
	return errs
}

func (c *Config) validateLambdaCorrection() []error {
	var errs []error
	if c.LambdaCorrection.PerformLambdaCorrection && c.NBands() > 1 {
		errs = append(errs, fmt.Errorf("lambda_correction: only supported for single-orbital systems, but the configuration implies %d bands", c.NBands()))
	}
	return errs
}

// NBands returns the orbital count implied by the interaction settings.
// Interaction types taken from the DMFT input imply a single band until
// the DMFT data says otherwise; custom matrices are counted when the
// matrix file is read.
func (c *Config) NBands() int {
	if c.Lattice.InteractionType == InteractionKanamori && len(c.Lattice.InteractionInput.Values) > 0 {
		return int(c.Lattice.InteractionInput.Values[0])
	}
	return 1
}

// KanamoriParams extracts the Kanamori parameters [n_bands, U, J] or
// [n_bands, U, J, U'] from the interaction input. When U' is omitted it
// defaults to U - 2J.
func (l Lattice) KanamoriParams() (nBands int, u, j, uprime float64, err error) {
	vals := l.InteractionInput.Values
	if !l.InteractionInput.IsList() || len(vals) < 3 || len(vals) > 4 {
		return 0, 0, 0, 0, fmt.Errorf("lattice.interaction_input: type %q requires a [n_bands, U, J] or [n_bands, U, J, U'] list", InteractionKanamori)
	}
	nBands = int(vals[0])
	if float64(nBands) != vals[0] || nBands < 1 {
		return 0, 0, 0, 0, fmt.Errorf("lattice.interaction_input: band count must be a positive integer, got %v", vals[0])
	}
	u, j = vals[1], vals[2]
	if len(vals) == 4 {
		uprime = vals[3]
	} else {
		uprime = u - 2*j
	}
	return nBands, u, j, uprime, nil
}
