package handler

import (
	"net/http"

	"shop/internal/delivery/api/middleware"
	"shop/internal/delivery/api/response"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type WalletHandlerParams struct {
	fx.In

	WalletUC usecase.WalletUsecase
}

type WalletHandler struct {
	walletUC usecase.WalletUsecase
}

func NewWalletHandler(params WalletHandlerParams) *WalletHandler {
	return &WalletHandler{walletUC: params.WalletUC}
}

// GetBalance returns the caller's wallet.
func (h *WalletHandler) GetBalance(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	wallet, err := h.walletUC.GetBalance(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &WalletResponse{
		UserID:    wallet.UserID,
		Cash:      money(wallet.Cash),
		UpdatedAt: wallet.UpdatedAt,
	})
}
