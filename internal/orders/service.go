package orders

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ruachlabs/telafome-backend/internal/catalog"
	"github.com/ruachlabs/telafome-backend/internal/pricing"
	"github.com/ruachlabs/telafome-backend/internal/tenants"
	pkgerrors "github.com/ruachlabs/telafome-backend/pkg/errors"
	"github.com/ruachlabs/telafome-backend/pkg/logger"
	"github.com/ruachlabs/telafome-backend/pkg/money"
)

// Orders land on this tab of the tenant spreadsheet.
const ordersRange = "Pedidos!A:N"

// Merchant spreadsheets are kept in the store's local time.
const merchantTimeZone = "America/Sao_Paulo"

type rowAppender interface {
	AppendRow(ctx context.Context, spreadsheetID, appendRange string, row []any) error
}

type catalogLoader interface {
	Storefront(ctx context.Context, spreadsheetID string) (*catalog.Storefront, error)
}

// Service accepts storefront orders.
type Service interface {
	Submit(ctx context.Context, tenant *tenants.Tenant, sub Submission) (*Receipt, error)
}

type service struct {
	catalog  catalogLoader
	appender rowAppender
	logg     *logger.Logger
	now      func() time.Time
	loc      *time.Location
}

// NewService builds the order pipeline. now is injectable for tests and
// defaults to time.Now.
func NewService(catalogSvc catalogLoader, appender rowAppender, logg *logger.Logger, now func() time.Time) (Service, error) {
	if catalogSvc == nil {
		return nil, fmt.Errorf("catalog service required")
	}
	if appender == nil {
		return nil, fmt.Errorf("row appender required")
	}
	if now == nil {
		now = time.Now
	}
	loc, err := time.LoadLocation(merchantTimeZone)
	if err != nil {
		loc = time.FixedZone("-03", -3*3600)
	}
	return &service{
		catalog:  catalogSvc,
		appender: appender,
		logg:     logg,
		now:      now,
		loc:      loc,
	}, nil
}

// Submit reprices the submitted items against the live catalog, appends
// the order row and returns the receipt with the WhatsApp handoff link.
func (s *service) Submit(ctx context.Context, tenant *tenants.Tenant, sub Submission) (*Receipt, error) {
	if tenant == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "tenant is required")
	}

	sf, err := s.catalog.Storefront(ctx, tenant.SpreadsheetID)
	if err != nil {
		return nil, err
	}

	cart, err := buildCart(sf, sub)
	if err != nil {
		return nil, err
	}

	couponCode := ""
	if sub.CouponCode != "" {
		if !cart.ApplyCoupon(sub.CouponCode, sf.Coupons) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("coupon %q is not valid", sub.CouponCode))
		}
		couponCode = sub.CouponCode
	}

	deliveryFee := money.Zero
	if sub.DeliveryType == DeliveryTypeDelivery {
		deliveryFee = sf.Customizations.DeliveryFee()
	}

	now := s.now().In(s.loc)
	orderID := fmt.Sprintf("PED-%d", now.UnixMilli())
	total := cart.Total().Add(deliveryFee)

	row := []any{
		orderID,
		now.Format("02/01/2006, 15:04:05"),
		sub.CustomerName,
		deliveryLabel(sub.DeliveryType),
		sub.Address,
		sub.Observations,
		PaymentLabel(sub.PaymentMethod),
		"", // troco
		itemsSummary(cart.Items()),
		money.Format(cart.Subtotal()),
		money.Format(deliveryFee),
		couponCode,
		money.Format(total),
		"Novo",
	}

	if err := s.appender.AppendRow(ctx, tenant.SpreadsheetID, ordersRange, row); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "appending order row")
	}

	receipt := &Receipt{
		OrderID:     orderID,
		Subtotal:    cart.Subtotal(),
		Discount:    cart.Discount(),
		DeliveryFee: deliveryFee,
		Total:       total,
	}

	if number := whatsAppNumber(tenant, sf.Customizations); number != "" {
		receipt.WhatsAppURL = WhatsAppURL(number, BuildMessage(sub, cart, deliveryFee, total, sf.Customizations))
	}

	if s.logg != nil {
		s.logg.Info(s.logg.WithOrderID(ctx, orderID), "order accepted")
	}

	return receipt, nil
}

// buildCart reprices every submitted item from the catalog. Unknown
// products or add-ons reject the whole submission.
func buildCart(sf *catalog.Storefront, sub Submission) (*pricing.Cart, error) {
	cart := pricing.NewCart()
	for _, item := range sub.Items {
		product, ok := sf.ProductByID(item.ProductID)
		if !ok {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("product %q is not available", item.ProductID))
		}

		options := make([]pricing.OptionSelection, 0, len(item.Options))
		for _, opt := range item.Options {
			addOn, ok := sf.AddOnByID(opt.AddOnID)
			if !ok {
				return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("add-on %q is not available", opt.AddOnID))
			}
			options = append(options, pricing.OptionSelection{AddOn: addOn.AddOn, Quantity: opt.Quantity})
		}

		cart.AddItem(product.Product, options, item.MainQuantity)
	}

	if len(cart.Items()) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order has no items")
	}
	return cart, nil
}

func deliveryLabel(deliveryType string) string {
	if deliveryType == DeliveryTypePickup {
		return "Retirada"
	}
	return "Entrega"
}

// itemsSummary renders the cart the way merchants read it in the sheet:
// "2x X-Burger (1x Bacon, 2x Queijo) | 1x Pizza".
func itemsSummary(items []pricing.LineItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		b := &strings.Builder{}
		fmt.Fprintf(b, "%dx %s", item.MainQuantity, item.Product.Name)
		if len(item.Options) > 0 {
			opts := make([]string, 0, len(item.Options))
			for _, opt := range item.Options {
				opts = append(opts, fmt.Sprintf("%dx %s", opt.Quantity, opt.AddOn.Name))
			}
			fmt.Fprintf(b, " (%s)", strings.Join(opts, ", "))
		}
		parts = append(parts, b.String())
	}
	return strings.Join(parts, " | ")
}

func whatsAppNumber(tenant *tenants.Tenant, cust catalog.Customizations) string {
	if number := strings.TrimSpace(cust.Get(catalog.KeyWhatsApp)); number != "" {
		return number
	}
	return strings.TrimSpace(tenant.WhatsApp)
}
