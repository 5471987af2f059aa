package identity

// AuthRequest is the body of register and login requests.
type AuthRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned on a successful login.
type AuthResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Solved int    `json:"solved"`
	Token  string `json:"token"`
}
