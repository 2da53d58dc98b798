// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/pocketfin/backend/internal/application/usecase/fx"
	"github.com/pocketfin/backend/internal/domain/entity"
)

// ConvertResponse represents the response for a currency conversion.
type ConvertResponse struct {
	Amount      float64 `json:"amount"`
	Result      float64 `json:"result"`
	From        string  `json:"from"`
	To          string  `json:"to"`
	Date        string  `json:"date"`
	FromPerUnit float64 `json:"from_per_unit"`
	ToPerUnit   float64 `json:"to_per_unit"`
}

// ToConvertResponse converts a conversion output to its API shape.
func ToConvertResponse(output *fx.ConvertOutput) ConvertResponse {
	return ConvertResponse{
		Amount:      output.Amount.InexactFloat64(),
		Result:      output.Result.InexactFloat64(),
		From:        output.From,
		To:          output.To,
		Date:        output.Date.Format(entity.DateLayout),
		FromPerUnit: output.FromPerUnit.InexactFloat64(),
		ToPerUnit:   output.ToPerUnit.InexactFloat64(),
	}
}
