package structs

type LoginRequest struct {
	Password string `json:"password"`
}

type SessionStatus struct {
	Authenticated bool `json:"authenticated"`
}
