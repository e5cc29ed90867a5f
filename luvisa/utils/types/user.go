// luvisa/utils/types/user.go
package types

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AutoLoginCheckRequest struct {
	Email string `json:"email"`
}

// Profile is the user-facing profile card. Avatar is nil when the user has
// not uploaded a picture; the frontend then falls back to the default image.
type Profile struct {
	Email       string  `json:"email"`
	DisplayName string  `json:"display_name"`
	Avatar      *string `json:"avatar"`
	Status      string  `json:"status"`
}
