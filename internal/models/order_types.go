package models

// Customer holds the delivery details collected at checkout.
// All three fields are required; checkout aborts when any is blank.
type Customer struct {
	Name    string `json:"name" form:"name" validate:"required"`
	Phone   string `json:"phone" form:"phone" validate:"required"`
	Address string `json:"address" form:"address" validate:"required"`
}

// Order is an immutable record created at checkout. Orders accumulate in
// an append-only log; nothing in this system mutates or removes one.
type Order struct {
	// ID is the creation time in milliseconds. It is the user-facing
	// order number, kept for continuity with the old storefront; two
	// checkouts in the same millisecond would collide, which is why Ref
	// exists.
	ID int64 `json:"id"`
	// Ref uniquely identifies the order in the log even when IDs collide.
	Ref string `json:"ref"`
	// Date is locale-formatted for display only, not machine-sortable.
	Date     string     `json:"date"`
	Customer Customer   `json:"customer"`
	Items    []CartLine `json:"items"` // cart snapshot at order time
	Total    float64    `json:"total"`
}
