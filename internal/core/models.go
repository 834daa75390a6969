package core

type AuthMessage struct {
	Username string
	Password string
}

type RegisterMessage struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
}

type FeedbackMessage struct {
	Title   string
	Content string
}

// UserRecord is the public view of a user. It never carries the password hash.
type UserRecord struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type FeedbackRecord struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Username string `json:"username"`
}

type UserPage struct {
	User     UserRecord       `json:"user"`
	Feedback []FeedbackRecord `json:"feedback"`
}
