package entity

type Product struct {
	ID          string   `json:"id" firestore:"id"`
	Title       string   `json:"title" firestore:"title"`
	Description string   `json:"description" firestore:"description"`
	Price       float64  `json:"price" firestore:"price"`
	Category    string   `json:"category" firestore:"category"`
	Tags        []string `json:"tags" firestore:"tags"`
	Images      []string `json:"images" firestore:"images"`

	// Reviews embedded in the product record itself; independent reviews
	// live in their own collection and reference the product by ID.
	Reviews []Review `json:"reviews,omitempty" firestore:"reviews,omitempty"`
}
