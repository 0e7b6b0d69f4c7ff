package mapping

import (
	"github.com/SscSPs/statement_ledger/internal/core/domain"
	"github.com/SscSPs/statement_ledger/internal/models"
)

// ToModelUSDRate converts a domain USDRate to a model USDRate
func ToModelUSDRate(d domain.USDRate) models.USDRate {
	return models.USDRate{
		RateDate:      d.RateDate,
		Official:      d.Official,
		Blue:          d.Blue,
		CreatedAt:     d.CreatedAt,
		LastUpdatedAt: d.LastUpdatedAt,
	}
}

// ToDomainUSDRate converts a model USDRate to a domain USDRate
func ToDomainUSDRate(m models.USDRate) domain.USDRate {
	return domain.USDRate{
		RateDate:      domain.DateOnly(m.RateDate),
		Official:      m.Official,
		Blue:          m.Blue,
		CreatedAt:     m.CreatedAt,
		LastUpdatedAt: m.LastUpdatedAt,
	}
}
