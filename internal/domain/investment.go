package domain

import "errors"

// ErrInvalidInvestmentParameters covers every precondition violation;
// callers get no detail on which parameter failed.
var ErrInvalidInvestmentParameters = errors.New("invalid investment parameters")

type InvestmentRequest struct {
	MonthlyInvestment  float64 `json:"monthlyInvestment"`
	NumberOfMonths     int     `json:"numberOfMonths"`
	AnnualInterestRate float64 `json:"annualInterestRate"`
}

type InvestmentResult struct {
	MonthlyInvestment  float64 `json:"monthlyInvestment"`
	NumberOfMonths     int     `json:"numberOfMonths"`
	AnnualInterestRate float64 `json:"annualInterestRate"`
	TotalInvested      float64 `json:"totalInvested"`
	TotalInterest      float64 `json:"totalInterest"`
	FinalValue         float64 `json:"finalValue"`
}
