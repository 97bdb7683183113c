package extractor

import (
	"fmt"
	"strings"

	"github.com/techstar9797/voicebazaar/backend/src/models"
	"github.com/techstar9797/voicebazaar/backend/src/utils"
)

const defaultUnit = "units"

// TradeExtractor normalizes trade arguments handed over by the voice
// assistant's function-calling layer into a TradeRecord plus a confirmation
// sentence the assistant can speak back. It holds no state; one instance
// serves all requests.
type TradeExtractor struct{}

func NewTradeExtractor() *TradeExtractor {
	return &TradeExtractor{}
}

// Extract never fails: malformed numerics are treated as absent and absent
// fields default (unit "units", currency "USD", numerics 0 in the record).
// The confirmation string only mentions fields that were actually supplied.
func (e *TradeExtractor) Extract(args models.TradeArgs) models.TradeExtraction {
	quantity, hasQuantity := CoerceNumber(args.Quantity)
	unitPrice, hasUnitPrice := CoerceNumber(args.UnitPrice)
	totalValue, hasTotal := CoerceNumber(args.TotalValue)

	unit := CoerceString(args.Unit)
	if unit == "" {
		unit = defaultUnit
	}
	currency := strings.ToUpper(CoerceString(args.Currency))
	if currency == "" {
		currency = DefaultCurrency
	}

	// Derive the total only when it was not independently supplied.
	if !hasTotal && hasQuantity && hasUnitPrice {
		totalValue = quantity * unitPrice
		hasTotal = true
	}

	var parts []string
	if hasQuantity {
		parts = append(parts, fmt.Sprintf("%s %s", utils.FormatAmount(quantity), unit))
	}
	if hasUnitPrice {
		parts = append(parts, fmt.Sprintf("at %s %s each", utils.FormatAmount(unitPrice), currency))
	}
	if hasTotal {
		parts = append(parts, fmt.Sprintf("(Total: %s %s)", utils.FormatAmount(totalValue), currency))
	}

	confirmation := "Trade information extracted"
	if len(parts) > 0 {
		confirmation += ": " + strings.Join(parts, " ")
	}

	return models.TradeExtraction{
		Record: models.TradeRecord{
			Quantity:   quantity,
			Unit:       unit,
			UnitPrice:  unitPrice,
			Currency:   currency,
			TotalValue: totalValue,
			Status:     models.TradeStatusExtracted,
		},
		Confirmation: confirmation,
		RawEcho:      args,
	}
}
