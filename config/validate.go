package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/lixenwraith/beat-judge/combo"
	"github.com/lixenwraith/beat-judge/parameter"
)

var (
	ErrInvalid   = errors.New("invalid configuration")
	ErrBarLength = errors.New("bar length must be 4")
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate fails fast on any configuration the judge cannot start with
// Checks with a dedicated sentinel run before struct tag validation
func (c *Config) Validate() error {
	if c.BarLength != parameter.BarLength {
		return fmt.Errorf("%w: got %d", ErrBarLength, c.BarLength)
	}
	if err := c.Thresholds().Validate(); err != nil {
		return err
	}
	if len(c.Combos) == 0 {
		return combo.ErrEmptyTable
	}
	for i, cc := range c.Combos {
		if len(cc.Keys) != parameter.SequenceLength {
			return fmt.Errorf("combo #%d %q: %w", i, cc.ID, combo.ErrSequenceLength)
		}
	}

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s failed %q (value %v)", ErrInvalid, fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}
