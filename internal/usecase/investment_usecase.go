package usecase

import (
	"math"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type InvestmentUseCase interface {
	Project(req domain.InvestmentRequest) (*domain.InvestmentResult, error)
}

type investmentUseCase struct {
	log *logrus.Logger
}

func NewInvestmentUseCase(logger *logrus.Logger) InvestmentUseCase {
	return &investmentUseCase{log: logger}
}

// Project computes the future value of fixed monthly contributions made
// at the start of each period, compounded monthly at a nominal annual
// rate (future value of an annuity-due).
func (uc *investmentUseCase) Project(req domain.InvestmentRequest) (*domain.InvestmentResult, error) {
	if req.MonthlyInvestment <= 0 || req.NumberOfMonths <= 0 || req.AnnualInterestRate < 0 {
		uc.log.Warnf("Use Case: Invalid investment parameters: monthly=%f, months=%d, rate=%f",
			req.MonthlyInvestment, req.NumberOfMonths, req.AnnualInterestRate)
		return nil, domain.ErrInvalidInvestmentParameters
	}

	monthlyRate := req.AnnualInterestRate / 12
	months := float64(req.NumberOfMonths)

	var futureValue float64
	if monthlyRate == 0 {
		futureValue = req.MonthlyInvestment * months
	} else {
		// Ordinary-annuity factor shifted by one period so each
		// contribution accrues from the start of its month.
		factor := (math.Pow(1+monthlyRate, months) - 1) / monthlyRate
		futureValue = req.MonthlyInvestment * factor * (1 + monthlyRate)
	}

	totalInvested := req.MonthlyInvestment * months
	result := &domain.InvestmentResult{
		MonthlyInvestment:  req.MonthlyInvestment,
		NumberOfMonths:     req.NumberOfMonths,
		AnnualInterestRate: req.AnnualInterestRate,
		TotalInvested:      totalInvested,
		TotalInterest:      futureValue - totalInvested,
		FinalValue:         futureValue,
	}

	uc.log.Infof("Use Case: Projected investment of %f over %d months at rate %f: final value %f",
		req.MonthlyInvestment, req.NumberOfMonths, req.AnnualInterestRate, result.FinalValue)
	return result, nil
}
