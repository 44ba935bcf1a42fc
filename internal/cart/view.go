package cart

import (
	"context"

	"github.com/Lixing-Zhang/suswaad-cafe/internal/models"
	"github.com/shopspring/decimal"
)

// LineView is a cart line with its subtotal
type LineView struct {
	ItemID   int64           `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Qty      int             `json:"qty"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// View is the display projection of a cart
type View struct {
	Lines []LineView      `json:"lines"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
	Badge string          `json:"badge"`
	Empty bool            `json:"empty"`
}

// View projects the cart for display
func (c *Store) View(ctx context.Context) (View, error) {
	lines, err := c.Load(ctx)
	if err != nil {
		return View{}, err
	}
	return project(lines), nil
}

func project(lines []models.CartLine) View {
	v := View{
		Lines: make([]LineView, 0, len(lines)),
		Total: decimal.Zero,
		Empty: len(lines) == 0,
	}

	for _, l := range lines {
		price := decimal.NewFromFloat(l.Price)
		subtotal := price.Mul(decimal.NewFromInt(int64(l.Qty)))
		v.Lines = append(v.Lines, LineView{
			ItemID:   l.ItemID,
			Name:     l.Name,
			Price:    price,
			Qty:      l.Qty,
			Subtotal: subtotal,
		})
		v.Total = v.Total.Add(subtotal)
	}

	v.Count = countUnits(lines)
	v.Badge = badge(v.Count)
	return v
}
