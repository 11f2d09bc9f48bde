package employee

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/storeops-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// CommissionPlan accepts the plan as either a JSON number (2) or a string
// ("2", "2%", " 2.5 "). It is normalized once, when the employee record is
// decoded, so calculators never re-parse it.
type CommissionPlan struct {
	Value decimal.Decimal
	Set   bool
}

func (c *CommissionPlan) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" || raw == `""` {
		*c = CommissionPlan{}
		return nil
	}

	var text string
	if strings.HasPrefix(raw, `"`) {
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
	} else {
		text = raw
	}

	value, err := ParseCommissionPlan(text)
	if err != nil {
		return err
	}
	*c = CommissionPlan{Value: value, Set: true}
	return nil
}

func (c CommissionPlan) MarshalJSON() ([]byte, error) {
	if !c.Set {
		return []byte("null"), nil
	}
	return []byte(c.Value.String()), nil
}

// Or returns the plan value or fallback when unset.
func (c CommissionPlan) Or(fallback decimal.Decimal) decimal.Decimal {
	if !c.Set {
		return fallback
	}
	return c.Value
}

// ParseCommissionPlan parses a percentage. Blank input yields the default
// plan; anything else that is not a number is a validator.ErrNotANumber.
func ParseCommissionPlan(text string) (decimal.Decimal, error) {
	text = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), "%"))
	if text == "" {
		return DefaultCommissionPlan, nil
	}
	value, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, &validator.FieldError{Field: "commission_plan", Value: text, Err: validator.ErrNotANumber}
	}
	if value.IsNegative() {
		return decimal.Zero, fmt.Errorf("commission_plan: must be non-negative, got %s", value)
	}
	return value, nil
}
