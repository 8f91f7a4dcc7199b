package entities

// Performance is one invoice line item: a play shown to an audience.
type Performance struct {
	PlayID   string `json:"playID"`
	Audience int    `json:"audience"`
}

// Invoice is a customer's bill. Performances are kept in print order.
type Invoice struct {
	Customer     string        `json:"customer"`
	Performances []Performance `json:"performances"`
}
