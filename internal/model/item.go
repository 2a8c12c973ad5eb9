package model

// ReasonTobacco marks items excluded by the tobacco filter.
const ReasonTobacco = "tobacco_detected"

// RawItem is a single record from the upstream inventory feed. The source id
// is not guaranteed stable across runs, so it is never used as a catalog key;
// products are keyed by (name, category) instead.
type RawItem struct {
	ExternalID int64   `json:"id"`
	Title      string  `json:"title"`
	Price      float64 `json:"price"`
	IsActive   bool    `json:"isActive"`
}

// RejectedItem is a feed item dropped before classification, kept for the
// audit log only.
type RejectedItem struct {
	Item   RawItem `json:"item"`
	Reason string  `json:"reason"`
}

// Bucket holds the feed items assigned to one category label. Buckets are
// ordered by first appearance of their label in the feed, and items keep
// their relative feed order.
type Bucket struct {
	Label string    `json:"categoryName"`
	Items []RawItem `json:"products"`
}

// SyncSummary reports what one reconciliation run did to the catalog.
type SyncSummary struct {
	CategoriesCreated int
	ProductsCreated   int
	ProductsUpdated   int
	TotalProcessed    int
	Rejected          int
}
