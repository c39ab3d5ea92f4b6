package calculator

import (
	"fmt"
	"math"
)

const (
	flatTaxRate        = 0.2
	dependentDeduction = 500.0
	monthsPerYear      = 12

	// MaxInvestmentYears bounds the simulated horizon of the investment
	// calculator.
	MaxInvestmentYears = 100
)

// Compute runs the calculator named by t over in. monthly is the caller's
// precomputed loan payment and is ignored by every other calculator.
func Compute(t Type, in Inputs, monthly *float64) (Result, error) {
	switch t {
	case TypeIncomeTax:
		return IncomeTax(in)
	case TypeCorporateTax:
		return CorporateTax(in)
	case TypeVAT:
		return VAT(in)
	case TypeLoan:
		return Loan(in, monthly)
	case TypeInvestment:
		return Investment(in)
	case TypeBudget:
		return Budget(in)
	}
	return Result{}, fmt.Errorf("%w: unknown calculator type %q", ErrInvalidRequest, t)
}

// IncomeTax: gross income, tax before credit, dependent credit, net tax.
func IncomeTax(in Inputs) (Result, error) {
	income, err := in.Number("income")
	if err != nil {
		return Result{}, err
	}
	dependents, err := in.Number("dependents")
	if err != nil {
		return Result{}, err
	}

	deduction := dependents * dependentDeduction
	taxBefore := income * flatTaxRate
	netTax := math.Max(0, taxBefore-deduction)

	return Result{
		Type:   TypeIncomeTax,
		Values: []float64{income, taxBefore, deduction, netTax},
	}, nil
}

// CorporateTax: revenue, expenses, profit, corporate tax.
func CorporateTax(in Inputs) (Result, error) {
	revenue, err := in.Number("revenue")
	if err != nil {
		return Result{}, err
	}
	expenses, err := in.Number("expenses")
	if err != nil {
		return Result{}, err
	}

	profit := revenue - expenses
	tax := math.Max(0, profit*flatTaxRate)

	return Result{
		Type:   TypeCorporateTax,
		Values: []float64{revenue, expenses, profit, tax},
	}, nil
}

// VAT splits an amount excluding tax into its HT and VAT parts. rate is a
// fraction (0.2 for 20%).
func VAT(in Inputs) (Result, error) {
	ht, err := in.Number("amountHT")
	if err != nil {
		return Result{}, err
	}
	rate, err := in.Number("rate")
	if err != nil {
		return Result{}, err
	}

	tva := ht * rate
	ttc := ht + tva

	return Result{
		Type:   TypeVAT,
		Values: []float64{ht, tva},
		Params: map[string]float64{"ttc": ttc},
	}, nil
}

// Loan splits the total cost of a loan into principal and interest. The
// monthly payment comes from the caller when given, otherwise it is derived
// from the amortization formula.
func Loan(in Inputs, monthly *float64) (Result, error) {
	amount, err := in.Number("amount")
	if err != nil {
		return Result{}, err
	}
	rate, err := in.Number("rate")
	if err != nil {
		return Result{}, err
	}
	months, err := in.Number("months")
	if err != nil {
		return Result{}, err
	}

	var payment float64
	if monthly != nil {
		payment = *monthly
	} else {
		payment, err = MonthlyPayment(amount, rate, months)
		if err != nil {
			return Result{}, err
		}
	}

	totalPaid := payment * months
	totalInterest := totalPaid - amount

	return Result{
		Type:   TypeLoan,
		Values: []float64{amount, totalInterest},
		Params: map[string]float64{
			"monthly_payment": payment,
			"total_paid":      totalPaid,
		},
	}, nil
}

// MonthlyPayment is the fixed payment that amortizes amount over months at
// an annual percentage rate, rounded to cents.
func MonthlyPayment(amount, annualRate, months float64) (float64, error) {
	if months <= 0 {
		return 0, fmt.Errorf("%w: loan term must be positive, got %g months", ErrComputation, months)
	}

	if annualRate == 0 {
		return roundCents(amount / months), nil
	}

	r := annualRate / 100 / monthsPerYear
	payment := amount * (r / (1 - math.Pow(1+r, -months)))
	if math.IsNaN(payment) || math.IsInf(payment, 0) {
		return 0, fmt.Errorf("%w: no finite payment for amount=%g rate=%g months=%g", ErrComputation, amount, annualRate, months)
	}
	return roundCents(payment), nil
}

// Investment compounds an initial deposit monthly with a fixed monthly
// contribution and samples the balance at the end of every year, for at most
// MaxInvestmentYears.
func Investment(in Inputs) (Result, error) {
	initial, err := in.Number("initial")
	if err != nil {
		return Result{}, err
	}
	rate, err := in.Number("rate")
	if err != nil {
		return Result{}, err
	}
	years, err := in.Int("years")
	if err != nil {
		return Result{}, err
	}
	contribution, err := in.Number("monthly")
	if err != nil {
		return Result{}, err
	}

	if years > MaxInvestmentYears {
		return Result{}, fmt.Errorf("%w: investment horizon of %d years exceeds %d", ErrComputation, years, MaxInvestmentYears)
	}
	if years <= 0 {
		return Result{
			Type:   TypeInvestment,
			Years:  []int{0},
			Values: []float64{initial},
		}, nil
	}

	monthlyRate := rate / 100 / monthsPerYear
	months := years * monthsPerYear

	var (
		yearList []int
		values   []float64
	)
	current := initial
	for m := 1; m <= months; m++ {
		current = current*(1+monthlyRate) + contribution
		if m%monthsPerYear == 0 {
			yearList = append(yearList, m/monthsPerYear)
			values = append(values, current)
		}
	}

	return Result{
		Type:   TypeInvestment,
		Years:  yearList,
		Values: values,
	}, nil
}

// Budget splits income into expenses and what remains, never below zero.
func Budget(in Inputs) (Result, error) {
	income, err := in.Number("income")
	if err != nil {
		return Result{}, err
	}
	expenses, err := in.Number("expenses")
	if err != nil {
		return Result{}, err
	}

	remaining := math.Max(0, income-expenses)

	return Result{
		Type:   TypeBudget,
		Values: []float64{expenses, remaining},
		Params: map[string]float64{"income": income},
	}, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
