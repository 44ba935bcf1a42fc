package cart

import (
	"testing"

	"github.com/Lixing-Zhang/suswaad-cafe/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject(t *testing.T) {
	tests := []struct {
		name      string
		lines     []models.CartLine
		wantTotal string
		wantBadge string
		wantEmpty bool
	}{
		{
			name:      "empty cart",
			lines:     []models.CartLine{},
			wantTotal: "0",
			wantBadge: "",
			wantEmpty: true,
		},
		{
			name: "single line",
			lines: []models.CartLine{
				{ItemID: 1, Name: "Idli", Price: 40, Qty: 3},
			},
			wantTotal: "120",
			wantBadge: "3",
		},
		{
			name: "fractional prices do not drift",
			lines: []models.CartLine{
				{ItemID: 1, Name: "A", Price: 0.1, Qty: 3},
				{ItemID: 2, Name: "B", Price: 0.2, Qty: 1},
			},
			wantTotal: "0.5",
			wantBadge: "4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := project(tt.lines)

			assert.True(t, decimal.RequireFromString(tt.wantTotal).Equal(v.Total), "total = %s", v.Total)
			assert.Equal(t, tt.wantBadge, v.Badge)
			assert.Equal(t, tt.wantEmpty, v.Empty)
			require.Len(t, v.Lines, len(tt.lines))

			sum := decimal.Zero
			for i, l := range v.Lines {
				want := decimal.NewFromFloat(tt.lines[i].Price).Mul(decimal.NewFromInt(int64(tt.lines[i].Qty)))
				assert.True(t, want.Equal(l.Subtotal))
				sum = sum.Add(l.Subtotal)
			}
			assert.True(t, sum.Equal(v.Total))
		})
	}
}
