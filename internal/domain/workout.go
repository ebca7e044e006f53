package domain

// Workout is a single logged, completed workout session.
type Workout struct {
	ID string `bson:"_id" json:"id"`
	// UserID is always taken from the authenticated identity, never from the request body.
	UserID   string `bson:"user_id" json:"user_id"`
	Type     string `bson:"type" json:"type"`         // e.g. "running", "cycling"
	Duration int    `bson:"duration" json:"duration"` // minutes
	Calories int    `bson:"calories" json:"calories"`
	// Timestamp is ISO-8601 and stored exactly as submitted.
	Timestamp string `bson:"timestamp" json:"timestamp"`
}
