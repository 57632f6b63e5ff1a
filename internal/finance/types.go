package finance

import "fmt"

// Type identifies one way of paying for a vehicle.
type Type string

const (
	TypeFinance Type = "finance"
	TypeLease   Type = "lease"
	TypeUsed    Type = "used"
)

// Condition grades a used vehicle.
type Condition string

const (
	ConditionExcellent Condition = "excellent"
	ConditionGood      Condition = "good"
	ConditionFair      Condition = "fair"
)

// FinanceOption configures a loan on a new vehicle. Percentages are 0-100.
type FinanceOption struct {
	TermMonths   int     `json:"term_months" yaml:"term_months"`
	InterestRate float64 `json:"interest_rate" yaml:"interest_rate"`
	DownPayment  float64 `json:"down_payment" yaml:"down_payment"`
	TradeInValue float64 `json:"trade_in_value,omitempty" yaml:"trade_in_value"`
}

// LeaseOption configures a lease. MoneyFactor is a small decimal, not a
// percentage.
type LeaseOption struct {
	TermMonths    int     `json:"term_months" yaml:"term_months"`
	MoneyFactor   float64 `json:"money_factor" yaml:"money_factor"`
	DownPayment   float64 `json:"down_payment" yaml:"down_payment"`
	ResidualValue float64 `json:"residual_value" yaml:"residual_value"`
	MileageLimit  int     `json:"mileage_limit" yaml:"mileage_limit"`
	TradeInValue  float64 `json:"trade_in_value,omitempty" yaml:"trade_in_value"`
}

// UsedFinancing is the optional loan on a used vehicle.
type UsedFinancing struct {
	TermMonths   int     `json:"term_months" yaml:"term_months"`
	InterestRate float64 `json:"interest_rate" yaml:"interest_rate"`
	DownPayment  float64 `json:"down_payment" yaml:"down_payment"`
}

// UsedCarOption describes a comparable used vehicle. A nil Financing means
// a cash purchase.
type UsedCarOption struct {
	Price     float64        `json:"price"`
	Year      int            `json:"year"`
	Mileage   int            `json:"mileage"`
	Condition Condition      `json:"condition"`
	Financing *UsedFinancing `json:"financing,omitempty"`
}

// PaymentCalculation holds the raw numbers behind a ComparisonResult.
type PaymentCalculation struct {
	MonthlyPayment float64  `json:"monthly_payment"`
	TotalCost      float64  `json:"total_cost"`
	DownPayment    float64  `json:"down_payment"`
	TotalInterest  *float64 `json:"total_interest,omitempty"`
	TradeInValue   *float64 `json:"trade_in_value,omitempty"`
	ResidualValue  *float64 `json:"residual_value,omitempty"`
	TotalSavings   *float64 `json:"total_savings,omitempty"`
}

// ComparisonResult is one payment path with its qualitative notes.
type ComparisonResult struct {
	Type           Type               `json:"type"`
	Label          string             `json:"label"`
	MonthlyPayment float64            `json:"monthly_payment"`
	TotalCost      float64            `json:"total_cost"`
	DownPayment    float64            `json:"down_payment"`
	Pros           []string           `json:"pros"`
	Cons           []string           `json:"cons"`
	BestFor        string             `json:"best_for"`
	Calculation    PaymentCalculation `json:"calculation"`
}

// Validate reports a non-positive term or an out-of-range percentage.
func (o FinanceOption) Validate() error {
	if err := validateLoan(o.TermMonths, o.InterestRate, o.DownPayment); err != nil {
		return err
	}
	if o.TradeInValue < 0 {
		return fmt.Errorf("trade-in value must not be negative, got %.2f", o.TradeInValue)
	}
	return nil
}

// Validate reports a non-positive term or an out-of-range percentage.
func (o LeaseOption) Validate() error {
	if o.TermMonths <= 0 {
		return fmt.Errorf("term must be positive, got %d months", o.TermMonths)
	}
	if o.MoneyFactor < 0 {
		return fmt.Errorf("money factor must not be negative, got %f", o.MoneyFactor)
	}
	if err := percent("down payment", o.DownPayment); err != nil {
		return err
	}
	if err := percent("residual value", o.ResidualValue); err != nil {
		return err
	}
	if o.MileageLimit < 0 {
		return fmt.Errorf("mileage limit must not be negative, got %d", o.MileageLimit)
	}
	if o.TradeInValue < 0 {
		return fmt.Errorf("trade-in value must not be negative, got %.2f", o.TradeInValue)
	}
	return nil
}

// Validate reports a non-positive price, an unknown condition or invalid
// financing terms.
func (o UsedCarOption) Validate() error {
	if o.Price <= 0 {
		return fmt.Errorf("used price must be positive, got %.2f", o.Price)
	}
	switch o.Condition {
	case ConditionExcellent, ConditionGood, ConditionFair, "":
	default:
		return fmt.Errorf("unknown condition %q", o.Condition)
	}
	if o.Financing != nil {
		if err := validateLoan(o.Financing.TermMonths, o.Financing.InterestRate, o.Financing.DownPayment); err != nil {
			return fmt.Errorf("used financing: %w", err)
		}
	}
	return nil
}

func validateLoan(term int, apr, down float64) error {
	if term <= 0 {
		return fmt.Errorf("term must be positive, got %d months", term)
	}
	if err := percent("interest rate", apr); err != nil {
		return err
	}
	return percent("down payment", down)
}

func percent(name string, v float64) error {
	if v < 0 || v > 100 {
		return fmt.Errorf("%s must be between 0 and 100, got %.2f", name, v)
	}
	return nil
}
