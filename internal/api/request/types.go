package request

// RegisterRequest is the request body for registering an account
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the request body for the combined two-player login
type LoginRequest struct {
	Player1Username string `json:"player1_username"`
	Player1Password string `json:"player1_password"`
	Player2Username string `json:"player2_username"`
	Player2Password string `json:"player2_password"`
}

// LockRequest is the request body for locking Player 1's choice
type LockRequest struct {
	Choice string `json:"choice"`
}

// PlayRequest is the request body for resolving a round
type PlayRequest struct {
	Mode          string `json:"mode"`
	Difficulty    string `json:"difficulty,omitempty"`
	Player2Choice string `json:"player2_choice,omitempty"`
}
