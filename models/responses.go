package models

// Response status values. "fail" is used for client errors, "error" for
// server errors.
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// StatusResponse is returned by operations that produce no data, such as
// signup or password reset requests.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse is the body of every failed request. Error carries the
// wrapped error text and is filled only outside production.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// LoginResponse carries the session token and the public user projection.
type LoginResponse struct {
	Status string    `json:"status"`
	Token  string    `json:"token"`
	Data   LoginData `json:"data"`
}

// LoginData wraps the user in the login response.
type LoginData struct {
	User PublicUser `json:"user"`
}

// DataResponse is the generic success envelope.
type DataResponse struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

// Profile is the user's own page: public data plus their posts.
type Profile struct {
	User  PublicUser `json:"user"`
	Blogs []Blog     `json:"blogs"`
	Total int        `json:"total"`
	Page  int        `json:"page"`
}

// Likes lists the users who liked a post.
type Likes struct {
	Likes []string `json:"likes"`
	Count int      `json:"count"`
}
