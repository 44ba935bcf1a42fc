// Package render turns menu and cart projections into HTML fragments for the
// storefront pages.
package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/Lixing-Zhang/suswaad-cafe/internal/cart"
	"github.com/Lixing-Zhang/suswaad-cafe/internal/menu"
	"github.com/shopspring/decimal"
)

var funcs = template.FuncMap{
	"rupees": func(v any) string {
		switch n := v.(type) {
		case decimal.Decimal:
			return "₹" + n.String()
		case float64:
			return "₹" + decimal.NewFromFloat(n).String()
		default:
			return fmt.Sprintf("₹%v", v)
		}
	},
}

var menuTmpl = template.Must(template.New("menu").Funcs(funcs).Parse(`
{{- range . -}}
<div class="menu-item card" data-item-id="{{.ID}}">
  {{- if .OutOfStock}}
  <div class="out-of-stock">Out of Stock</div>
  {{- end}}
  <img src="{{.ImageRef}}" alt="{{.Name}}">
  <div class="card-body">
    <div class="meta">
      <div>
        <div class="title">{{.Name}}</div>
        <div class="small">{{.Description}}</div>
      </div>
      <div class="numbers">
        <div class="price">{{rupees .Price}}</div>
        <div class="rating">⭐ {{.Rating}}</div>
      </div>
    </div>
    {{- if .CanAdd}}
    <button class="btn add-to-cart" data-item-id="{{.ID}}" data-name="{{.Name}}" data-price="{{.Price}}">Add to Cart</button>
    {{- end}}
  </div>
</div>
{{end -}}
`))

var cartTmpl = template.Must(template.New("cart").Funcs(funcs).Parse(`
{{- if .Empty -}}
<p class="small">Your cart is empty</p>
{{- else -}}
{{- range .Lines -}}
<div class="cart-item" data-item-id="{{.ItemID}}">
  <div>{{.Name}}</div>
  <div>
    <button class="qty-dec" data-item-id="{{.ItemID}}">-</button>
    <span class="qty">{{.Qty}}</span>
    <button class="qty-inc" data-item-id="{{.ItemID}}">+</button>
    <span class="subtotal">{{rupees .Subtotal}}</span>
    <button class="remove" data-item-id="{{.ItemID}}">×</button>
  </div>
</div>
{{end -}}
<div id="cartTotal">{{rupees .Total}}</div>
{{- end -}}
`))

// MenuHTML renders menu items as cards
func MenuHTML(items []menu.ItemView) (string, error) {
	var buf bytes.Buffer
	if err := menuTmpl.Execute(&buf, items); err != nil {
		return "", fmt.Errorf("failed to render menu: %w", err)
	}
	return buf.String(), nil
}

// CartHTML renders the cart lines and total, or the empty-cart placeholder
func CartHTML(view cart.View) (string, error) {
	var buf bytes.Buffer
	if err := cartTmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("failed to render cart: %w", err)
	}
	return buf.String(), nil
}
