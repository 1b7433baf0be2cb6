package checkout

import (
	"errors"
	"fmt"
	"net/mail"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wichananm65/acoustic-shop-backend/internal/cart"
)

var (
	ErrNotFound        = errors.New("order not found")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrInvalidCustomer = errors.New("invalid customer details")
)

type PaymentMethod string

const (
	PaymentIDeal      PaymentMethod = "ideal"
	PaymentCreditCard PaymentMethod = "creditcard"
	PaymentPayPal     PaymentMethod = "paypal"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentIDeal, PaymentCreditCard, PaymentPayPal:
		return true
	}
	return false
}

// Address is a Dutch postal address. Street holds street name and number.
type Address struct {
	FirstName  string `json:"firstName,omitempty"`
	LastName   string `json:"lastName,omitempty"`
	Street     string `json:"address"`
	PostalCode string `json:"postalCode"`
	City       string `json:"city"`
}

// Customer is the checkout form. Billing is only read when SameAddress is false.
type Customer struct {
	Email         string        `json:"email"`
	Phone         string        `json:"phone,omitempty"`
	FirstName     string        `json:"firstName"`
	LastName      string        `json:"lastName"`
	Company       string        `json:"company,omitempty"`
	Shipping      Address       `json:"shipping"`
	SameAddress   bool          `json:"sameAddress"`
	Billing       *Address      `json:"billing,omitempty"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

func (c Customer) Validate() error {
	var missing []string
	if blank(c.Email) {
		missing = append(missing, "email")
	} else if _, err := mail.ParseAddress(c.Email); err != nil {
		return fmt.Errorf("%w: email is not valid", ErrInvalidCustomer)
	}
	if blank(c.FirstName) {
		missing = append(missing, "firstName")
	}
	if blank(c.LastName) {
		missing = append(missing, "lastName")
	}
	if blank(c.Shipping.Street) {
		missing = append(missing, "shipping.address")
	}
	if blank(c.Shipping.PostalCode) {
		missing = append(missing, "shipping.postalCode")
	}
	if blank(c.Shipping.City) {
		missing = append(missing, "shipping.city")
	}
	if !c.SameAddress {
		b := c.Billing
		if b == nil {
			b = &Address{}
		}
		for field, v := range map[string]string{
			"billing.firstName":  b.FirstName,
			"billing.lastName":   b.LastName,
			"billing.address":    b.Street,
			"billing.postalCode": b.PostalCode,
			"billing.city":       b.City,
		} {
			if blank(v) {
				missing = append(missing, field)
			}
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return fmt.Errorf("%w: missing %s", ErrInvalidCustomer, strings.Join(missing, ", "))
	}
	if !c.PaymentMethod.Valid() {
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidCustomer, c.PaymentMethod)
	}
	return nil
}

// Order is a placed order. Items and totals are copied from the cart at the
// moment of checkout.
type Order struct {
	ID         string          `json:"id"`
	CartID     string          `json:"cartId"`
	Customer   Customer        `json:"customer"`
	Items      []cart.CartItem `json:"items"`
	TotalItems int             `json:"totalItems"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Shipping   decimal.Decimal `json:"shipping"`
	Total      decimal.Decimal `json:"total"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
}

const StatusPlaced = "placed"
