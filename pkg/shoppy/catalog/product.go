// Package catalog is the client for the remote read-only product catalog.
//
// The catalog exposes two resources:
//
//	GET {base}/products       -> []Product
//	GET {base}/products/{id}  -> Product
//
// There is no authentication, no pagination and no write path.
package catalog

// Product is the flat record shared by the list and detail screens.
// The ID uniquely determines every other field for the lifetime of a fetch.
type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
}
