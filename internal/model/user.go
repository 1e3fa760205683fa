package model

// User represents an application user record as stored in the
// `users` table. Each field corresponds to a column in the
// database. Username and email are both unique; deleting a user
// cascades through trip participation, comments and collections.
//
// Fields:
//  ID       – primary key identifier of the user.
//  Username – unique display name.
//  Email    – unique email address.
type User struct {
	ID       int64  `json:"user_id"`  // users.user_id
	Username string `json:"username"` // users.username
	Email    string `json:"email"`    // users.email
}
