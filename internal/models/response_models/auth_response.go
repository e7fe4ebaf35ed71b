package response_models

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"-"` // delivered via httpOnly cookie only
	UserID       uint   `json:"user_id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
}
