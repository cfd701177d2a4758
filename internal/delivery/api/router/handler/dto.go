package handler

import (
	"time"

	"shop/internal/domain/entity"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// money renders amounts with two decimal places.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u *entity.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt,
	}
}

// TokenResponse is returned by login and refresh.
type TokenResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	User         *UserResponse `json:"user,omitempty"`
}

func toTokenResponse(out *usecase.LoginOutput) *TokenResponse {
	resp := &TokenResponse{
		AccessToken:  out.AccessToken,
		RefreshToken: out.RefreshToken,
	}
	if out.User != nil {
		resp.User = toUserResponse(out.User)
	}

	return resp
}

type AddressResponse struct {
	ID            uuid.UUID `json:"id"`
	PhoneNumber   string    `json:"phone_number"`
	PostalCode    string    `json:"postal_code"`
	StreetAddress string    `json:"street_address"`
	HouseNumber   string    `json:"house_number"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	Country       string    `json:"country"`
	CreatedAt     time.Time `json:"created_at"`
}

func toAddressResponse(a *entity.ShippingAddress) *AddressResponse {
	return &AddressResponse{
		ID:            a.ID,
		PhoneNumber:   a.PhoneNumber,
		PostalCode:    a.PostalCode,
		StreetAddress: a.StreetAddress,
		HouseNumber:   a.HouseNumber,
		City:          a.City,
		State:         a.State,
		Country:       a.Country,
		CreatedAt:     a.CreatedAt,
	}
}

type ProductResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       string    `json:"price"`
	CategoryID  uuid.UUID `json:"category_id"`
}

func toProductResponse(p *entity.Product) *ProductResponse {
	return &ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       money(p.Price),
		CategoryID:  p.CategoryID,
	}
}

type CartItemResponse struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

type CartLineResponse struct {
	Product   *ProductResponse `json:"product"`
	Quantity  int              `json:"quantity"`
	LineTotal string           `json:"line_total"`
}

// CartResponse lists the cart with its running total.
type CartResponse struct {
	Items []*CartLineResponse `json:"items"`
	Total string              `json:"total"`
}

func toCartResponse(lines []entity.CartLine) *CartResponse {
	total := decimal.Zero
	items := make([]*CartLineResponse, 0, len(lines))
	for _, line := range lines {
		items = append(items, &CartLineResponse{
			Product:   toProductResponse(line.Product),
			Quantity:  line.Quantity,
			LineTotal: money(line.LineTotal),
		})
		total = total.Add(line.LineTotal)
	}

	return &CartResponse{Items: items, Total: money(total)}
}

type OrderResponse struct {
	ID                uuid.UUID `json:"id"`
	ProductID         uuid.UUID `json:"product_id"`
	ShippingAddressID uuid.UUID `json:"shipping_address_id"`
	Quantity          int       `json:"quantity"`
	Status            string    `json:"status"`
	PromoCode         *string   `json:"promo_code,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func toOrderResponses(orders []*entity.Order) []*OrderResponse {
	resp := make([]*OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, &OrderResponse{
			ID:                o.ID,
			ProductID:         o.ProductID,
			ShippingAddressID: o.ShippingAddressID,
			Quantity:          o.Quantity,
			Status:            string(o.Status),
			PromoCode:         o.PromoCode,
			CreatedAt:         o.CreatedAt,
			UpdatedAt:         o.UpdatedAt,
		})
	}

	return resp
}

type CheckoutResponse struct {
	Orders    []*OrderResponse `json:"orders"`
	Subtotal  string           `json:"subtotal"`
	Discount  string           `json:"discount"`
	Total     string           `json:"total"`
	PromoCode *string          `json:"promo_code,omitempty"`
}

type PaymentResponse struct {
	Balance string `json:"balance"`
}

type WalletResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	Cash      string    `json:"cash"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PromoCodeResponse struct {
	Code               string          `json:"code"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	StartTime          time.Time       `json:"start_time"`
	EndTime            time.Time       `json:"end_time"`
	MaxUsage           int             `json:"max_usage"`
	CurrentUsage       int             `json:"current_usage"`
	RemainingUsage     int             `json:"remaining_usage"`
}

type RedeemResponse struct {
	Code               string          `json:"code"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	CurrentUsage       int             `json:"current_usage"`
	MaxUsage           int             `json:"max_usage"`
}

type ReviewResponse struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	ProductID  uuid.UUID `json:"product_id"`
	Comment    string    `json:"comment"`
	Star       float64   `json:"star"`
	ReviewedAt time.Time `json:"reviewed_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func toReviewResponse(r *entity.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:         r.ID,
		UserID:     r.UserID,
		ProductID:  r.ProductID,
		Comment:    r.Comment,
		Star:       r.Star,
		ReviewedAt: r.ReviewedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

type FavoriteToggleResponse struct {
	ProductID uuid.UUID `json:"product_id"`
	Favorite  bool      `json:"favorite"`
}

type LikesResponse struct {
	ProductID uuid.UUID `json:"product_id"`
	Likes     int64     `json:"likes"`
}
