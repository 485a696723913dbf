package dto

type SignUpDto struct {
	Username string `json:"username" binding:"required,min=3,max=20"`
	FullName string `json:"fullName" binding:"required,max=60"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=48"`
}

type SignInDto struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserDto carries partial updates: empty fields keep their prior value.
// ProfileImg and CoverImg are image payloads (base64 data URIs), not URLs.
type UpdateUserDto struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	FullName        string `json:"fullName"`
	Bio             string `json:"bio"`
	Link            string `json:"link"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ProfileImg      string `json:"profileImg"`
	CoverImg        string `json:"coverImg"`
}
