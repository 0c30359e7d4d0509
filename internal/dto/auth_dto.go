package dto

// LoginRequest accepts either a bare PIN (drawer login) or nombre + password.
type LoginRequest struct {
	PIN      string `json:"pin" validate:"omitempty,len=4,numeric"`
	Nombre   string `json:"nombre"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	TokenType    string          `json:"token_type"`
	ExpiresIn    int             `json:"expires_in"`
	User         UsuarioResponse `json:"user"`
}

type UsuarioResponse struct {
	ID       string  `json:"id"`
	Nombre   string  `json:"nombre"`
	Rol      string  `json:"rol"`
	Email    *string `json:"email"`
	Telefono *string `json:"telefono"`
	Activo   bool    `json:"activo"`
}

type CrearUsuarioRequest struct {
	Nombre   string  `json:"nombre" validate:"required"`
	Rol      string  `json:"rol" validate:"required,oneof=vendedor admin dueño"`
	PIN      string  `json:"pin" validate:"omitempty,len=4,numeric"`
	Password string  `json:"password" validate:"omitempty,min=4"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Telefono *string `json:"telefono"`
}

type ActualizarUsuarioRequest struct {
	Nombre   string  `json:"nombre"`
	Rol      string  `json:"rol" validate:"omitempty,oneof=vendedor admin dueño"`
	PIN      string  `json:"pin" validate:"omitempty,len=4,numeric"`
	Password string  `json:"password" validate:"omitempty,min=4"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Telefono *string `json:"telefono"`
}
