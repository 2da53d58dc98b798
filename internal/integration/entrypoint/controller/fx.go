// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pocketfin/backend/internal/application/usecase/fx"
	domainerror "github.com/pocketfin/backend/internal/domain/error"
	"github.com/pocketfin/backend/internal/integration/entrypoint/dto"
	"github.com/pocketfin/backend/internal/integration/entrypoint/middleware"
)

// FxController handles currency conversion endpoints.
type FxController struct {
	convertUseCase *fx.ConvertUseCase
}

// NewFxController creates a new fx controller instance.
func NewFxController(convertUseCase *fx.ConvertUseCase) *FxController {
	return &FxController{
		convertUseCase: convertUseCase,
	}
}

// Convert handles GET /fx/convert requests. Amount, from and to arrive as
// query parameters; date is optional and defaults to today.
func (c *FxController) Convert(ctx *gin.Context) {
	if _, ok := middleware.GetProfileIDFromContext(ctx); !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := fx.ConvertInput{
		Amount: ctx.Query("amount"),
		From:   ctx.Query("from"),
		To:     ctx.Query("to"),
		Date:   ctx.Query("date"),
	}

	output, err := c.convertUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleConvertError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToConvertResponse(output))
}

// handleConvertError handles conversion errors and returns appropriate HTTP responses.
func (c *FxController) handleConvertError(ctx *gin.Context, err error) {
	var rateErr *domainerror.RateError
	if errors.As(err, &rateErr) {
		// Input validation is the caller's fault; everything else means the
		// upstream rate provider failed.
		statusCode := http.StatusBadGateway
		switch rateErr.Code {
		case domainerror.ErrCodeUnknownCurrency,
			domainerror.ErrCodeInvalidConversionAmount,
			domainerror.ErrCodeInvalidConversionDate:
			statusCode = http.StatusBadRequest
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: rateErr.Message,
			Code:  string(rateErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
