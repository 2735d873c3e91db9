// Package userrepo persists user accounts.
package userrepo

import (
	"strings"
	"time"

	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO is the users row. Roles are stored comma-separated in canonical order.
type UserDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name         string     `gorm:"type:varchar(255);not null"`
	Email        string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone        string     `gorm:"type:varchar(32)"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	Roles        string     `gorm:"type:varchar(64);not null"`
	ActiveRole   string     `gorm:"type:varchar(16);not null;index"`
	IsOnline     bool       `gorm:"not null;default:false"`
	Profile      ProfileDTO `gorm:"embedded;embeddedPrefix:profile_"`
	CreatedAt    time.Time  `gorm:"not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

type ProfileDTO struct {
	LicenseNo    string `gorm:"type:varchar(64)"`
	VehicleNo    string `gorm:"type:varchar(64)"`
	ShopName     string `gorm:"type:varchar(255)"`
	ShopAddress  string `gorm:"type:varchar(255)"`
	WorkingHours string `gorm:"type:varchar(64)"`
	Photo        string `gorm:"type:varchar(512)"`
	JoinWhatsapp bool
}

func fromDomain(u *user.User) UserDTO {
	p := u.Profile()
	return UserDTO{
		ID:           u.ID().Bytes(),
		Name:         u.Name(),
		Email:        u.Email(),
		Phone:        u.Phone(),
		PasswordHash: u.PasswordHash(),
		Roles:        strings.Join(u.Roles().Strings(), ","),
		ActiveRole:   u.ActiveRole().String(),
		IsOnline:     u.IsOnline(),
		Profile: ProfileDTO{
			LicenseNo:    p.LicenseNo,
			VehicleNo:    p.VehicleNo,
			ShopName:     p.ShopName,
			ShopAddress:  p.ShopAddress,
			WorkingHours: p.WorkingHours,
			Photo:        p.ProfilePhoto,
			JoinWhatsapp: p.JoinWhatsapp,
		},
		CreatedAt: u.CreatedAt(),
	}
}

// ParseRoles decodes the stored role list.
func ParseRoles(s string) (kernel.Roles, error) {
	var parsed []kernel.Role
	for _, part := range strings.Split(s, ",") {
		if part == "" {
			continue
		}
		r, err := kernel.ParseRole(part)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, r)
	}
	return kernel.NewRoles(parsed...)
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	roles, err := ParseRoles(dto.Roles)
	if err != nil {
		return nil, err
	}
	active, err := kernel.ParseRole(dto.ActiveRole)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Name, dto.Email, dto.Phone, dto.PasswordHash, roles, active, dto.IsOnline,
		user.Profile{
			LicenseNo:    dto.Profile.LicenseNo,
			VehicleNo:    dto.Profile.VehicleNo,
			ShopName:     dto.Profile.ShopName,
			ShopAddress:  dto.Profile.ShopAddress,
			WorkingHours: dto.Profile.WorkingHours,
			ProfilePhoto: dto.Profile.Photo,
			JoinWhatsapp: dto.Profile.JoinWhatsapp,
		},
		dto.CreatedAt)
}
