package proto

import "time"

type RegisterUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterUserResponse struct {
	UserID       string `json:"user_id"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	UserID       string `json:"user_id"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type LogoutResponse struct{}

type GetSessionRequest struct{}

// GetSessionResponse describes the user bound to the access token.
type GetSessionResponse struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// UpdateProfileRequest changes the display name, the password, or both.
// Empty NewName and NewPassword leave the field as is.
type UpdateProfileRequest struct {
	CurrentPassword string `json:"current_password"`
	NewName         string `json:"new_name,omitempty"`
	NewPassword     string `json:"new_password,omitempty"`
}

type UpdateProfileResponse struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// PhotoDescriptor announces one photo of a surprise before upload.
type PhotoDescriptor struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

type CreateSurpriseRequest struct {
	CoupleName  string            `json:"couple_name"`
	StartDate   string            `json:"start_date"`
	Message     string            `json:"message"`
	YoutubeLink string            `json:"youtube_link,omitempty"`
	PlanID      string            `json:"plan_id"`
	Photos      []PhotoDescriptor `json:"photos"`
}

// UploadTarget is a presigned PUT URL for the photo at OrderIndex.
type UploadTarget struct {
	PhotoID    string `json:"photo_id"`
	OrderIndex int    `json:"order_index"`
	URL        string `json:"url"`
}

type CreateSurpriseResponse struct {
	ID      string         `json:"id"`
	Uploads []UploadTarget `json:"uploads"`
}

type MarkUploadedRequest struct {
	SurpriseID string   `json:"surprise_id"`
	PhotoIDs   []string `json:"photo_ids"`
}

type MarkUploadedResponse struct{}

type Surprise struct {
	ID          string    `json:"id"`
	CoupleName  string    `json:"couple_name"`
	StartDate   string    `json:"start_date"`
	Message     string    `json:"message"`
	YoutubeLink string    `json:"youtube_link,omitempty"`
	PlanID      string    `json:"plan_id"`
	Status      string    `json:"status"`
	PhotoURLs   []string  `json:"photo_urls"`
	CreatedAt   time.Time `json:"created_at"`
}

type GetSurpriseRequest struct {
	ID string `json:"id"`
}

type GetSurpriseResponse struct {
	Surprise *Surprise `json:"surprise"`
}

type ListSurprisesRequest struct{}

type ListSurprisesResponse struct {
	Surprises []*Surprise `json:"surprises"`
}

type UpdateSurpriseStatusRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type UpdateSurpriseStatusResponse struct{}

type ViewSurpriseRequest struct {
	ID string `json:"id"`
}

type ViewSurpriseResponse struct {
	Surprise *Surprise `json:"surprise"`
}
