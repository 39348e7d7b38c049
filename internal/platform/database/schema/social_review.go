package schema

// RefReviewTable represents the 'social.review' table
type RefReviewTable struct {
	Table   string
	ID      string
	UserID  string
	MovieID string
	Rating  string
	Comment string
}

// RefReview is the schema definition for social.review
var RefReview = RefReviewTable{
	Table:   "social.review",
	ID:      "id",
	UserID:  "userid",
	MovieID: "movieid",
	Rating:  "rating",
	Comment: "comment",
}

func (t RefReviewTable) Columns() []string {
	return []string{t.ID, t.UserID, t.MovieID, t.Rating, t.Comment}
}
