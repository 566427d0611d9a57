package domain

import "time"

// User representa a entidade do usuário no sistema.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        *string   `json:"email,omitempty"`
	PasswordHash *string   `json:"-"` // Oculta o hash da senha no JSON de resposta
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UserSummary é a visão reduzida do usuário usada nos relatórios.
type UserSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AuthUser é o usuário devolvido junto com o token de login.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// LoginResponse é a resposta do login.
type LoginResponse struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}

// UserRegistration representa o payload de entrada para o registro.
type UserRegistration struct {
	Name     string `json:"name" validate:"required,notblank,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,maxbytes=72"`
}

// LoginRequest representa o payload de entrada para o login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateUserRequest é o payload de criação direta de usuário (sem senha).
type CreateUserRequest struct {
	Name  string  `json:"name" validate:"required,notblank,max=255"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}

// UpdateUserRequest é o payload de atualização de usuário.
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,notblank,max=255"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}
