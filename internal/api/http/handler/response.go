package handler

import "github.com/uptalent/uptalent-server/internal/model"

const birthdayFormat = "2006-01-02"

// Response is the fixed JSON error body shape.
type Response struct {
	Message string `json:"message"`
}

// AuthResponse carries a freshly issued token.
type AuthResponse struct {
	JWTToken string `json:"jwt_token"`
}

// Page wraps one page of content with pagination metadata.
type Page[T any] struct {
	Content    []T `json:"content"`
	TotalPages int `json:"total_pages"`
}

// GeneralInfo is the listing shape.
type GeneralInfo struct {
	ID        int64    `json:"id"`
	Lastname  string   `json:"lastname"`
	Firstname string   `json:"firstname"`
	Avatar    *string  `json:"avatar"`
	Banner    *string  `json:"banner"`
	Skills    []string `json:"skills"`
}

// Profile is the public profile shape, visible to any caller.
type Profile struct {
	GeneralInfo
	Location *string `json:"location"`
	AboutMe  *string `json:"about_me"`
}

// OwnProfile extends Profile with the private fields only the owner
// may see.
type OwnProfile struct {
	Profile
	Email    string `json:"email"`
	Birthday string `json:"birthday,omitempty"`
}

func toGeneralInfo(t model.Talent) GeneralInfo {
	return GeneralInfo{
		ID:        t.ID,
		Lastname:  t.Lastname,
		Firstname: t.Firstname,
		Avatar:    t.Avatar,
		Banner:    t.Banner,
		Skills:    t.Skills,
	}
}

func toProfile(t model.Talent) Profile {
	return Profile{
		GeneralInfo: toGeneralInfo(t),
		Location:    t.Location,
		AboutMe:     t.AboutMe,
	}
}

func toOwnProfile(t model.Talent) OwnProfile {
	own := OwnProfile{
		Profile: toProfile(t),
		Email:   t.Email,
	}
	if t.Birthday != nil {
		own.Birthday = t.Birthday.Format(birthdayFormat)
	}
	return own
}

func toGeneralInfos(talents []model.Talent) []GeneralInfo {
	infos := make([]GeneralInfo, 0, len(talents))
	for _, t := range talents {
		infos = append(infos, toGeneralInfo(t))
	}
	return infos
}
