package http

import (
	"time"

	"devconnect/internal/domain/post"
	"devconnect/internal/domain/profile"
	"devconnect/internal/domain/user"
)

// Auth DTOs

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type UserDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

func ToUserDTO(u *user.User) UserDTO {
	return UserDTO{
		ID:     u.ID.String(),
		Name:   u.Name,
		Email:  u.Email,
		Avatar: u.Avatar,
	}
}

// Profile DTOs

type SocialDTO struct {
	Youtube   *string `json:"youtube,omitempty"`
	Twitter   *string `json:"twitter,omitempty"`
	Facebook  *string `json:"facebook,omitempty"`
	Linkedin  *string `json:"linkedin,omitempty"`
	Instagram *string `json:"instagram,omitempty"`
}

type ExperienceDTO struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    *string    `json:"location,omitempty"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description *string    `json:"description,omitempty"`
}

type EducationDTO struct {
	ID           string     `json:"id"`
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldofstudy"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current"`
	Description  *string    `json:"description,omitempty"`
}

type ProfileDTO struct {
	User           ProfileOwnerDTO `json:"user"`
	Status         string          `json:"status"`
	Company        *string         `json:"company,omitempty"`
	Website        *string         `json:"website,omitempty"`
	Location       *string         `json:"location,omitempty"`
	Bio            *string         `json:"bio,omitempty"`
	GithubUsername *string         `json:"githubusername,omitempty"`
	Skills         []string        `json:"skills"`
	Social         SocialDTO       `json:"social"`
	Experience     []ExperienceDTO `json:"experience"`
	Education      []EducationDTO  `json:"education"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type ProfileOwnerDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

func ToProfileDTO(p *profile.Profile) ProfileDTO {
	dto := ProfileDTO{
		User: ProfileOwnerDTO{
			ID:     p.OwnerID.String(),
			Name:   p.OwnerName,
			Avatar: p.OwnerAvatar,
		},
		Status:         p.Status,
		Company:        p.Company,
		Website:        p.Website,
		Location:       p.Location,
		Bio:            p.Bio,
		GithubUsername: p.GithubUsername,
		Skills:         p.Skills,
		Social: SocialDTO{
			Youtube:   p.Social.Youtube,
			Twitter:   p.Social.Twitter,
			Facebook:  p.Social.Facebook,
			Linkedin:  p.Social.Linkedin,
			Instagram: p.Social.Instagram,
		},
		UpdatedAt: p.UpdatedAt,
	}

	dto.Experience = make([]ExperienceDTO, len(p.Experience))
	for i, e := range p.Experience {
		dto.Experience[i] = ExperienceDTO{
			ID:          e.ID.String(),
			Title:       e.Title,
			Company:     e.Company,
			Location:    e.Location,
			From:        e.From,
			To:          e.To,
			Current:     e.Current,
			Description: e.Description,
		}
	}

	dto.Education = make([]EducationDTO, len(p.Education))
	for i, e := range p.Education {
		dto.Education[i] = EducationDTO{
			ID:           e.ID.String(),
			School:       e.School,
			Degree:       e.Degree,
			FieldOfStudy: e.FieldOfStudy,
			From:         e.From,
			To:           e.To,
			Current:      e.Current,
			Description:  e.Description,
		}
	}

	return dto
}

type UpsertProfileRequest struct {
	Status         string  `json:"status"`
	Skills         string  `json:"skills"`
	Company        *string `json:"company"`
	Website        *string `json:"website"`
	Location       *string `json:"location"`
	Bio            *string `json:"bio"`
	GithubUsername *string `json:"githubusername"`
	Youtube        *string `json:"youtube"`
	Twitter        *string `json:"twitter"`
	Facebook       *string `json:"facebook"`
	Linkedin       *string `json:"linkedin"`
	Instagram      *string `json:"instagram"`
}

func (req *UpsertProfileRequest) ToDomainSocial() profile.Social {
	return profile.Social{
		Youtube:   req.Youtube,
		Twitter:   req.Twitter,
		Facebook:  req.Facebook,
		Linkedin:  req.Linkedin,
		Instagram: req.Instagram,
	}
}

type AddExperienceRequest struct {
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    *string    `json:"location"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to"`
	Current     bool       `json:"current"`
	Description *string    `json:"description"`
}

type AddEducationRequest struct {
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldofstudy"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to"`
	Current      bool       `json:"current"`
	Description  *string    `json:"description"`
}

// Post DTOs

type CreatePostRequest struct {
	Text string `json:"text"`
}

type AddCommentRequest struct {
	Text string `json:"text"`
}

type CommentDTO struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"date"`
}

type PostDTO struct {
	ID        string       `json:"id"`
	OwnerID   string       `json:"user"`
	Text      string       `json:"text"`
	Name      string       `json:"name"`
	Avatar    string       `json:"avatar"`
	Likes     []string     `json:"likes"`
	Comments  []CommentDTO `json:"comments"`
	CreatedAt time.Time    `json:"date"`
}

func ToPostDTO(p *post.Post) PostDTO {
	dto := PostDTO{
		ID:        p.ID.String(),
		OwnerID:   p.OwnerID.String(),
		Text:      p.Text,
		Name:      p.Name,
		Avatar:    p.Avatar,
		CreatedAt: p.CreatedAt,
	}

	dto.Likes = make([]string, len(p.Likes))
	for i, id := range p.Likes {
		dto.Likes[i] = id.String()
	}

	dto.Comments = make([]CommentDTO, len(p.Comments))
	for i, c := range p.Comments {
		dto.Comments[i] = CommentDTO{
			ID:        c.ID.String(),
			UserID:    c.UserID.String(),
			Text:      c.Text,
			Name:      c.Name,
			Avatar:    c.Avatar,
			CreatedAt: c.CreatedAt,
		}
	}

	return dto
}
