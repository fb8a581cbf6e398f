package models

import (
	"time"
)

type User struct {
	User_id  string  `json:"user_id"`
	Name     *string `json:"name" validate:"required,min=2,max=100"`
	Password *string `json:"password,omitempty" validate:"required,min=6"`
	Email    *string `json:"email" validate:"email,required"`
	Role     string  `json:"role" validate:"omitempty,eq=customer|eq=restaurant|eq=driver|eq=admin"`

	Token         *string   `json:"token,omitempty"`
	Refresh_Token *string   `json:"refresh_token,omitempty"`
	Created_at    time.Time `json:"created_at"`
	Updated_at    time.Time `json:"updated_at"`
}
