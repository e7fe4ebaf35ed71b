package response_models

import dbm "tiffinbox/internal/models/db_models"

// CartLine joins a cart item with live catalogue prices. Totals are computed
// on every read, never cached.
type CartLine struct {
	Item            dbm.CartItem `json:"item"`
	MealName        string       `json:"meal_name"`
	UnitMinor       int64        `json:"unit_minor"`
	LineTotalMinor  int64        `json:"line_total_minor"`
	CurryOptionName string       `json:"curry_option_name,omitempty"`
}

type CartResponse struct {
	Lines         []CartLine `json:"lines"`
	SubtotalMinor int64      `json:"subtotal_minor"`
}
