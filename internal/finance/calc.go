package finance

import (
	"math"

	"github.com/MikeSquared-Agency/Showroom/internal/catalog"
)

// Comparison is the side-by-side result of Compare. Best indexes Options.
type Comparison struct {
	Options []ComparisonResult `json:"options"`
	Best    int                `json:"best"`
}

// BestOption returns the lowest-cost option.
func (c Comparison) BestOption() ComparisonResult {
	return c.Options[c.Best]
}

// Payment is the level monthly payment that amortizes principal over n
// months at the given APR. A zero rate falls back to straight-line.
func Payment(principal, apr float64, n int) float64 {
	rate := apr / 100 / 12
	if rate > 0 {
		growth := math.Pow(1+rate, float64(n))
		return principal * rate * growth / (growth - 1)
	}
	return principal / float64(n)
}

// Finance prices a loan on a new vehicle.
func Finance(price float64, o FinanceOption) ComparisonResult {
	down := price * o.DownPayment / 100
	principal := price - down - o.TradeInValue
	payment := Payment(principal, o.InterestRate, o.TermMonths)

	totalCost := payment*float64(o.TermMonths) + down + o.TradeInValue
	totalInterest := totalCost - price
	tradeIn := o.TradeInValue

	return ComparisonResult{
		Type:           TypeFinance,
		Label:          "Finance (Buy New)",
		MonthlyPayment: payment,
		TotalCost:      totalCost,
		DownPayment:    down,
		Pros:           financePros(),
		Cons:           financeCons(),
		BestFor:        "Long-term ownership, high mileage drivers, customization needs",
		Calculation: PaymentCalculation{
			MonthlyPayment: payment,
			TotalCost:      totalCost,
			DownPayment:    down,
			TotalInterest:  &totalInterest,
			TradeInValue:   &tradeIn,
		},
	}
}

// Lease prices a closed-end lease.
func Lease(price float64, o LeaseOption) ComparisonResult {
	down := price * o.DownPayment / 100
	capCost := price - down - o.TradeInValue
	residual := price * o.ResidualValue / 100

	depreciation := (capCost - residual) / float64(o.TermMonths)
	rent := (capCost + residual) * o.MoneyFactor
	payment := depreciation + rent

	totalCost := payment*float64(o.TermMonths) + down + o.TradeInValue
	tradeIn := o.TradeInValue

	return ComparisonResult{
		Type:           TypeLease,
		Label:          "Lease (New Car)",
		MonthlyPayment: payment,
		TotalCost:      totalCost,
		DownPayment:    down,
		Pros:           leasePros(),
		Cons:           leaseCons(),
		BestFor:        "Short-term needs, low mileage, want latest features",
		Calculation: PaymentCalculation{
			MonthlyPayment: payment,
			TotalCost:      totalCost,
			DownPayment:    down,
			ResidualValue:  &residual,
			TradeInValue:   &tradeIn,
		},
	}
}

// Used prices a comparable used vehicle against the new price.
func Used(newPrice float64, o UsedCarOption) ComparisonResult {
	if o.Financing == nil {
		return ComparisonResult{
			Type:      TypeUsed,
			Label:     "Buy Used",
			TotalCost: o.Price,
			Pros:      []string{},
			Cons:      []string{},
			Calculation: PaymentCalculation{
				TotalCost: o.Price,
			},
		}
	}

	f := o.Financing
	down := o.Price * f.DownPayment / 100
	payment := Payment(o.Price-down, f.InterestRate, f.TermMonths)

	totalCost := payment*float64(f.TermMonths) + down
	totalInterest := totalCost - o.Price
	savings := newPrice - totalCost

	return ComparisonResult{
		Type:           TypeUsed,
		Label:          "Buy Used",
		MonthlyPayment: payment,
		TotalCost:      totalCost,
		DownPayment:    down,
		Pros:           usedPros(),
		Cons:           usedCons(),
		BestFor:        "Budget-conscious buyers, value seekers, don't need latest features",
		Calculation: PaymentCalculation{
			MonthlyPayment: payment,
			TotalCost:      totalCost,
			DownPayment:    down,
			TotalInterest:  &totalInterest,
			TotalSavings:   &savings,
		},
	}
}

// Compare runs all three calculators. The lowest total cost wins; ties go to
// the earlier option (finance, lease, used).
func Compare(price float64, fo FinanceOption, lo LeaseOption, uo UsedCarOption) Comparison {
	options := []ComparisonResult{
		Finance(price, fo),
		Lease(price, lo),
		Used(price, uo),
	}

	best := 0
	for i := 1; i < len(options); i++ {
		if options[i].TotalCost < options[best].TotalCost {
			best = i
		}
	}
	return Comparison{Options: options, Best: best}
}

// DefaultFinanceOption is 60 months at 4.99% with 10% down.
func DefaultFinanceOption() FinanceOption {
	return FinanceOption{TermMonths: 60, InterestRate: 4.99, DownPayment: 10}
}

// DefaultLeaseOption is 36 months, money factor 0.0015, 60% residual and
// 12,000 miles a year.
func DefaultLeaseOption() LeaseOption {
	return LeaseOption{TermMonths: 36, MoneyFactor: 0.0015, ResidualValue: 60, MileageLimit: 12000}
}

// DefaultUsedCarOption models a two-year-old, 30,000 mile example of car at
// 75% of its new price, financed over 60 months at 5.49% with 10% down.
func DefaultUsedCarOption(car catalog.Car) UsedCarOption {
	return UsedCarOption{
		Price:     car.Price * 0.75,
		Year:      car.Year - 2,
		Mileage:   30000,
		Condition: ConditionExcellent,
		Financing: &UsedFinancing{TermMonths: 60, InterestRate: 5.49, DownPayment: 10},
	}
}

func financePros() []string {
	return []string{
		"Own the vehicle after payments",
		"No mileage restrictions",
		"Can customize and modify",
		"Build equity over time",
		"No lease-end fees",
	}
}

func financeCons() []string {
	return []string{
		"Higher monthly payments",
		"Full responsibility for maintenance",
		"Depreciation affects resale value",
		"Longer commitment",
	}
}

func leasePros() []string {
	return []string{
		"Lower monthly payments",
		"Drive a new car every few years",
		"Warranty coverage during lease",
		"No resale concerns",
		"Latest technology and features",
	}
}

func leaseCons() []string {
	return []string{
		"No ownership at lease end",
		"Mileage restrictions",
		"Wear and tear charges",
		"Ongoing payments forever",
		"Early termination fees",
	}
}

func usedPros() []string {
	return []string{
		"Significantly lower purchase price",
		"Lower monthly payments",
		"Less depreciation loss",
		"Own the vehicle",
		"No mileage restrictions",
	}
}

func usedCons() []string {
	return []string{
		"No warranty (may need extended)",
		"Unknown maintenance history",
		"Older technology/features",
		"Higher interest rates possible",
		"May need repairs sooner",
	}
}
