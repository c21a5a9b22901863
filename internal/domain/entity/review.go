package entity

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// Single server-side rating bound, enforced on every write path.
const (
	RatingMin = 0.0
	RatingMax = 5.0
)

// Source of a review in a merged display list.
const (
	ReviewSourceEmbedded = "embedded"
	ReviewSourceStore    = "store"
)

var ErrRatingOutOfRange = fmt.Errorf("rating must be between %v and %v", RatingMin, RatingMax)

func ValidateRating(rating float64) error {
	if rating < RatingMin || rating > RatingMax {
		return ErrRatingOutOfRange
	}
	return nil
}

// Rating unmarshals from either a JSON number or a numeric string, since
// form-driven clients submit ratings as text.
type Rating float64

func (r *Rating) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	value, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid rating %q: %w", data, err)
	}
	*r = Rating(value)
	return nil
}

type Review struct {
	ID        string    `json:"id" firestore:"id"`
	ProductID string    `json:"product_id,omitempty" firestore:"productId"`
	Author    string    `json:"author" firestore:"author"`
	Rating    float64   `json:"rating" firestore:"rating"`
	Comment   string    `json:"comment" firestore:"comment"`
	Source    string    `json:"source,omitempty" firestore:"-"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
