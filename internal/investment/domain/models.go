package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// InvestmentType is the closed set of investment categories.
type InvestmentType string

const (
	InvestmentStocks              InvestmentType = "stocks"
	InvestmentMarketingCampaign   InvestmentType = "marketing_campaign"
	InvestmentBusinessExpansion   InvestmentType = "business_expansion"
	InvestmentRealEstate          InvestmentType = "real_estate"
	InvestmentCryptocurrency      InvestmentType = "cryptocurrency"
	InvestmentResearchDevelopment InvestmentType = "research_development"
)

var investmentTypes = map[InvestmentType]struct{}{
	InvestmentStocks:              {},
	InvestmentMarketingCampaign:   {},
	InvestmentBusinessExpansion:   {},
	InvestmentRealEstate:          {},
	InvestmentCryptocurrency:      {},
	InvestmentResearchDevelopment: {},
}

func (t InvestmentType) Valid() bool {
	_, ok := investmentTypes[t]
	return ok
}

const (
	MinRiskLevel = 1
	MaxRiskLevel = 10

	// BaseAnnualRate is the 8% base rate behind the default
	// expected-return projection.
	BaseAnnualRate = 0.08
)

// ExpectedReturn is the risk and time scaled projection used when a
// create request leaves expected_return at zero:
//
//	amount * (risk/10) * (months/12) * 0.08
func ExpectedReturn(amount float64, riskLevel, durationMonths int) float64 {
	riskMultiplier := float64(riskLevel) / 10
	timeMultiplier := float64(durationMonths) / 12
	return amount * riskMultiplier * timeMultiplier * BaseAnnualRate
}

type Investment struct {
	ID             snowflake.ID   `gorm:"primaryKey" json:"id"`
	PlayerID       snowflake.ID   `gorm:"not null;index" json:"player_id"`
	BusinessID     *snowflake.ID  `gorm:"index" json:"business_id"`
	InvestmentType InvestmentType `gorm:"not null" json:"investment_type"`
	Title          string         `gorm:"not null" json:"title"`
	Description    string         `gorm:"not null" json:"description"`
	AmountInvested float64        `gorm:"type:decimal(12,2);not null" json:"amount_invested"`
	ExpectedReturn float64        `gorm:"type:decimal(12,2);not null" json:"expected_return"`
	ActualReturn   float64        `gorm:"type:decimal(12,2);not null" json:"actual_return"`
	RiskLevel      int            `gorm:"not null" json:"risk_level"`
	DurationMonths int            `gorm:"not null" json:"duration_months"`
	IsCompleted    bool           `gorm:"not null" json:"is_completed"`
	CreatedAt      time.Time      `gorm:"not null" json:"created_at"`
	CompletedAt    *time.Time     `json:"completed_at"`
}

func (Investment) TableName() string { return "investments" }
