package user

const dateLayout = "2006-01-02"

// CreateUserRequest represents the request body for creating a user
type CreateUserRequest struct {
	Username  string  `json:"username" validate:"required" example:"johndoe"`
	Email     string  `json:"email" validate:"required,email" example:"john.doe@example.com"`
	Avatar    *string `json:"avatar,omitempty" validate:"omitempty,url" example:"https://example.com/avatar.jpg"`
	Birthdate *string `json:"birthdate,omitempty" validate:"omitempty,datetime=2006-01-02" example:"1990-01-01"`
}

// UserResponse represents the response for a single user
type UserResponse struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	Avatar    *string `json:"avatar,omitempty"`
	Birthdate *string `json:"birthdate,omitempty"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// ListUsersResponse is the body of GET /users
type ListUsersResponse struct {
	TotalCount int             `json:"totalCount"`
	Users      []*UserResponse `json:"users"`
}

// ToResponse converts a User model to a UserResponse DTO
func (u *User) ToResponse() *UserResponse {
	resp := &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		UpdatedAt: u.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
	if u.Birthdate != nil {
		birthdate := u.Birthdate.Format(dateLayout)
		resp.Birthdate = &birthdate
	}
	return resp
}

// ToResponse converts a listing to its response DTO. Users is never nil.
func (l *ListUsersResult) ToResponse() *ListUsersResponse {
	users := make([]*UserResponse, len(l.Users))
	for i, u := range l.Users {
		users[i] = u.ToResponse()
	}
	return &ListUsersResponse{
		TotalCount: l.TotalCount,
		Users:      users,
	}
}
