package handler

import (
	"shop/internal/delivery/api/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func parseProductID(c echo.Context) (uuid.UUID, bool) {
	productID, err := uuid.Parse(c.Param("productId"))

	return productID, err == nil && productID != uuid.Nil
}

func parseAddressID(c echo.Context) (uuid.UUID, bool) {
	addressID, err := uuid.Parse(c.Param("addressId"))

	return addressID, err == nil && addressID != uuid.Nil
}

func invalidProductID(c echo.Context) error {
	return response.ValidationFailed(c, map[string]string{"productId": "uuid"})
}

func unauthorized(c echo.Context) error {
	return response.Unauthorized(c, response.CodeInvalidToken, "Invalid user ID in token")
}
