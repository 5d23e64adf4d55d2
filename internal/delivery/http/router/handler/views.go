package handler

import (
	"time"

	"bakery/internal/domain/entity"

	"github.com/google/uuid"
)

// userView is the account summary sent to clients; the password hash never leaves the server.
type userView struct {
	ID        uuid.UUID    `json:"id"`
	Email     string       `json:"email"`
	Role      entity.Role  `json:"role"`
	Profile   *profileView `json:"profile,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
}

type educationView struct {
	ID             uuid.UUID `json:"id,omitempty"`
	UniversityName string    `json:"universityName"`
	CourseName     string    `json:"courseName"`
	GraduationYear string    `json:"graduationYear"`
}

// profileView is the owner's and the admin's view of a profile.
type profileView struct {
	ID              uuid.UUID           `json:"id"`
	UserID          uuid.UUID           `json:"userId"`
	FirstName       string              `json:"firstName"`
	LastName        string              `json:"lastName"`
	Bio             string              `json:"bio"`
	Phone           string              `json:"phone"`
	Photos          []string            `json:"photos"`
	BusinessName    string              `json:"businessName,omitempty"`
	BusinessAddress string              `json:"businessAddress,omitempty"`
	Specialties     []string            `json:"specialties"`
	BakerStatus     *entity.BakerStatus `json:"bakerStatus"`
	Education       []educationView     `json:"education"`
	User            *userView           `json:"user,omitempty"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

type publicUserView struct {
	Email string `json:"email"`
}

// publicBakerView is the directory projection; status management fields are left out.
type publicBakerView struct {
	ID              uuid.UUID       `json:"id"`
	FirstName       string          `json:"firstName"`
	LastName        string          `json:"lastName"`
	Bio             string          `json:"bio"`
	Phone           string          `json:"phone"`
	Photos          []string        `json:"photos"`
	Specialties     []string        `json:"specialties"`
	BusinessName    string          `json:"businessName"`
	BusinessAddress string          `json:"businessAddress"`
	Education       []educationView `json:"education"`
	User            *publicUserView `json:"user,omitempty"`
}

type bakerContactView struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	BusinessName string `json:"businessName"`
	Phone        string `json:"phone"`
}

type placerProfileView struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

type placerView struct {
	Email   string             `json:"email"`
	Profile *placerProfileView `json:"profile,omitempty"`
}

// orderView serves both web and mobile clients; joined sides are present when loaded.
type orderView struct {
	ID          uuid.UUID         `json:"id"`
	UserID      uuid.UUID         `json:"userId"`
	BakerID     uuid.UUID         `json:"bakerId"`
	PastryType  string            `json:"pastryType"`
	Quantity    int               `json:"quantity"`
	TotalAmount float64           `json:"totalAmount"`
	Status      string            `json:"status"`
	User        *placerView       `json:"user,omitempty"`
	Baker       *bakerContactView `json:"baker,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

func newUserView(user *entity.User) *userView {
	if user == nil {
		return nil
	}

	view := &userView{
		ID:        user.ID,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
	if user.Profile != nil {
		view.Profile = newProfileView(user.Profile)
	}

	return view
}

func newEducationViews(entries []*entity.EducationEntry) []educationView {
	views := make([]educationView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, educationView{
			ID:             entry.ID,
			UniversityName: entry.UniversityName,
			CourseName:     entry.CourseName,
			GraduationYear: entry.GraduationYear,
		})
	}

	return views
}

func newProfileView(profile *entity.Profile) *profileView {
	view := &profileView{
		ID:              profile.ID,
		UserID:          profile.UserID,
		FirstName:       profile.FirstName,
		LastName:        profile.LastName,
		Bio:             profile.Bio,
		Phone:           profile.Phone,
		Photos:          nonNil(profile.Photos),
		BusinessName:    profile.BusinessName,
		BusinessAddress: profile.BusinessAddress,
		Specialties:     nonNil(profile.Specialties),
		BakerStatus:     profile.BakerStatus,
		Education:       newEducationViews(profile.Education),
		CreatedAt:       profile.CreatedAt,
		UpdatedAt:       profile.UpdatedAt,
	}
	if profile.User != nil {
		// The owner's own profile is not repeated inside the owner summary.
		view.User = &userView{
			ID:        profile.User.ID,
			Email:     profile.User.Email,
			Role:      profile.User.Role,
			CreatedAt: profile.User.CreatedAt,
		}
	}

	return view
}

func newProfileViews(profiles []*entity.Profile) []*profileView {
	views := make([]*profileView, 0, len(profiles))
	for _, profile := range profiles {
		views = append(views, newProfileView(profile))
	}

	return views
}

func newPublicBakerView(profile *entity.Profile) *publicBakerView {
	view := &publicBakerView{
		ID:              profile.ID,
		FirstName:       profile.FirstName,
		LastName:        profile.LastName,
		Bio:             profile.Bio,
		Phone:           profile.Phone,
		Photos:          nonNil(profile.Photos),
		Specialties:     nonNil(profile.Specialties),
		BusinessName:    profile.BusinessName,
		BusinessAddress: profile.BusinessAddress,
		Education:       newEducationViews(profile.Education),
	}
	if profile.User != nil {
		view.User = &publicUserView{Email: profile.User.Email}
	}

	return view
}

func newPublicBakerViews(profiles []*entity.Profile) []*publicBakerView {
	views := make([]*publicBakerView, 0, len(profiles))
	for _, profile := range profiles {
		views = append(views, newPublicBakerView(profile))
	}

	return views
}

func newOrderView(order *entity.Order) *orderView {
	view := &orderView{
		ID:          order.ID,
		UserID:      order.UserID,
		BakerID:     order.BakerID,
		PastryType:  order.PastryType,
		Quantity:    order.Quantity,
		TotalAmount: order.TotalAmount,
		Status:      order.Status,
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
	if order.User != nil {
		view.User = &placerView{Email: order.User.Email}
		if p := order.User.Profile; p != nil {
			view.User.Profile = &placerProfileView{FirstName: p.FirstName, LastName: p.LastName, Phone: p.Phone}
		}
	}
	if b := order.Baker; b != nil {
		view.Baker = &bakerContactView{
			FirstName:    b.FirstName,
			LastName:     b.LastName,
			BusinessName: b.BusinessName,
			Phone:        b.Phone,
		}
	}

	return view
}

func newOrderViews(orders []*entity.Order) []*orderView {
	views := make([]*orderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, newOrderView(order))
	}

	return views
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
