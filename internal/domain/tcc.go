package domain

import (
	"github.com/shopspring/decimal"
)

// TCCAnalysis is one tier's total-cost-of-care breakdown. Ranking is
// 1 = lowest total annual cost; ties keep stable input order.
type TCCAnalysis struct {
	MetalTier       MetalTier       `json:"metalTier"`
	AnnualPremium   decimal.Decimal `json:"annualPremium"`
	EstimatedOOP    decimal.Decimal `json:"estimatedOOP"`
	TotalAnnualCost decimal.Decimal `json:"totalAnnualCost"` // premium + OOP
	Deductible      decimal.Decimal `json:"deductible"`
	OOPMaximum      decimal.Decimal `json:"oopMaximum"`
	Ranking         int             `json:"ranking"`
}

// PrescriptionVolume buckets monthly prescription counts for utilization
// scoring.
type PrescriptionVolume string

const (
	RxNone      PrescriptionVolume = "none"
	RxOneToThree PrescriptionVolume = "1-3"
	RxFourPlus  PrescriptionVolume = "4-or-more"
)
