package handler

import (
	"log/slog"
	"net/http"

	"shop/internal/delivery/api/middleware"
	"shop/internal/delivery/api/response"
	"shop/internal/delivery/api/validator"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
	Logger    *slog.Logger
}

// AddressHandler serves the caller's shipping addresses.
type AddressHandler struct {
	addressUC usecase.AddressUsecase
	logger    *slog.Logger
}

func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC: params.AddressUC,
		logger:    params.Logger,
	}
}

type AddAddressRequest struct {
	PhoneNumber   string `json:"phone_number" validate:"required"`
	PostalCode    string `json:"postal_code" validate:"required"`
	StreetAddress string `json:"street_address" validate:"required"`
	HouseNumber   string `json:"house_number" validate:"required"`
	City          string `json:"city" validate:"required"`
	State         string `json:"state" validate:"required"`
	Country       string `json:"country" validate:"required"`
}

func (req *AddAddressRequest) toInput() usecase.AddShippingAddressInput {
	return usecase.AddShippingAddressInput{
		PhoneNumber:   req.PhoneNumber,
		PostalCode:    req.PostalCode,
		StreetAddress: req.StreetAddress,
		HouseNumber:   req.HouseNumber,
		City:          req.City,
		State:         req.State,
		Country:       req.Country,
	}
}

func (h *AddressHandler) AddAddress(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req AddAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid address input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, validator.FieldErrors(err))
	}

	address, err := h.addressUC.AddShippingAddress(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toAddressResponse(address))
}

func (h *AddressHandler) ListAddresses(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	addresses, err := h.addressUC.ListShippingAddresses(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := make([]*AddressResponse, 0, len(addresses))
	for _, a := range addresses {
		resp = append(resp, toAddressResponse(a))
	}

	return response.Success(c, http.StatusOK, resp)
}

// UpdateAddress replaces every field of one of the caller's addresses.
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}
	addressID, ok := parseAddressID(c)
	if !ok {
		return response.ValidationFailed(c, map[string]string{"addressId": "uuid"})
	}

	var req AddAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid address input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, validator.FieldErrors(err))
	}

	address, err := h.addressUC.UpdateShippingAddress(c.Request().Context(), userID, addressID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAddressResponse(address))
}

func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}
	addressID, ok := parseAddressID(c)
	if !ok {
		return response.ValidationFailed(c, map[string]string{"addressId": "uuid"})
	}

	if err := h.addressUC.DeleteShippingAddress(c.Request().Context(), userID, addressID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
