package employee

import (
	"strings"
	"time"

	"github.com/Rahul-Sharma5/teamtimetracker/internal/pkg/validator"
)

type EmployeeResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone,omitempty"`
	Role        Role    `json:"role"`
	Status      Status  `json:"status"`
	Designation *string `json:"designation,omitempty"`
	JoiningDate *string `json:"joining_date,omitempty"`
	Bio         *string `json:"bio,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
	StatusText  *string `json:"status_text,omitempty"`
	StatusEmoji *string `json:"status_emoji,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

func ToResponse(e Employee) EmployeeResponse {
	var joining *string
	if e.JoiningDate != nil {
		s := e.JoiningDate.Format("2006-01-02")
		joining = &s
	}
	return EmployeeResponse{
		ID:          e.ID,
		Name:        e.Name,
		Email:       e.Email,
		Phone:       e.Phone,
		Role:        e.Role,
		Status:      e.Status,
		Designation: e.Designation,
		JoiningDate: joining,
		Bio:         e.Bio,
		AvatarURL:   e.AvatarURL,
		StatusText:  e.StatusText,
		StatusEmoji: e.StatusEmoji,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}

// UpdateProfileRequest carries partial profile edits; nil fields are left
// untouched. Role is honored for Admin callers only.
type UpdateProfileRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Role        *string `json:"role,omitempty"`
	Designation *string `json:"designation,omitempty"`
	Bio         *string `json:"bio,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
	StatusText  *string `json:"status_text,omitempty"`
	StatusEmoji *string `json:"status_emoji,omitempty"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name cannot be blank",
		})
	}

	if r.Phone != nil && *r.Phone != "" && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone number is invalid",
		})
	}

	if r.Role != nil && !ValidRole(*r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: Employee, Manager, Admin",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(strings.ToLower(r.Status), []string{"active", "inactive"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: active, inactive",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ChangePasswordRequest struct {
	ID          string `json:"-"`
	NewPassword string `json:"new_password"`
}

func (r *ChangePasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.NewPassword) < 4 {
		errs = append(errs, validator.ValidationError{
			Field:   "new_password",
			Message: "password must be at least 4 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
