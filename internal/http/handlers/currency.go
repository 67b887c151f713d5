package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/metaadsspider/UrbanixStore/internal/http/middleware"
	"github.com/metaadsspider/UrbanixStore/internal/http/respond"
	"github.com/metaadsspider/UrbanixStore/internal/http/validation"
	"github.com/metaadsspider/UrbanixStore/internal/modules/currency"
	"github.com/metaadsspider/UrbanixStore/internal/shared/apperr"
)

type CurrencyHandler struct {
	svc *currency.Service
}

func NewCurrencyHandler(svc *currency.Service) *CurrencyHandler {
	return &CurrencyHandler{svc: svc}
}

type selectCurrencyRequest struct {
	Currency string `json:"currency" binding:"required"`
}

func (h *CurrencyHandler) Show(c *gin.Context) {
	respond.OK(c, h.svc.Snapshot())
}

func (h *CurrencyHandler) Select(c *gin.Context) {
	var req selectCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid currency", validation.FromBindError(err, &req)))
		return
	}

	if err := h.svc.Select(req.Currency); err != nil {
		middleware.Fail(c, err)
		return
	}
	respond.OK(c, h.svc.Snapshot())
}
