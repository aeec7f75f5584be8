package domain

import (
	"time"

	"github.com/google/uuid"
)

// Theme is a color theme for the calendar UI.
// @Description Color theme.
type Theme string

const (
	ThemeLight       Theme = "light"
	ThemeLightPink   Theme = "light-pink"
	ThemeLightPlum   Theme = "light-plum"
	ThemeLightCherry Theme = "light-cherry"
	ThemeLightBrown  Theme = "light-brown"

	DefaultTheme = ThemeLight
)

// themeBackgrounds maps each theme to its HSL background triple.
var themeBackgrounds = map[Theme]string{
	ThemeLight:       "0 0% 100%",
	ThemeLightPink:   "351 100% 96%",
	ThemeLightPlum:   "300 100% 96%",
	ThemeLightCherry: "0 100% 96%",
	ThemeLightBrown:  "30 100% 95%",
}

// Themes lists the selectable themes in display order.
var Themes = []Theme{ThemeLight, ThemeLightPink, ThemeLightPlum, ThemeLightCherry, ThemeLightBrown}

func (t Theme) Valid() bool {
	_, ok := themeBackgrounds[t]
	return ok
}

// Background returns the HSL background for the theme, or the light one.
func (t Theme) Background() string {
	if bg, ok := themeBackgrounds[t]; ok {
		return bg
	}
	return themeBackgrounds[DefaultTheme]
}

// Settings is the per-user display configuration.
type Settings struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Theme       Theme     `gorm:"type:varchar(32);not null;default:'light'" json:"theme"`
	DisplayName string    `gorm:"type:varchar(100)" json:"display_name"`
	Email       string    `gorm:"type:varchar(255)" json:"email"`
	Phone       string    `gorm:"type:varchar(32)" json:"phone"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Settings) TableName() string {
	return "user_settings"
}

// DefaultSettings is what a user sees before saving anything.
func DefaultSettings(userID uuid.UUID) *Settings {
	return &Settings{UserID: userID, Theme: DefaultTheme}
}

// UpdateSettingsRequest is the request body for saving settings. Omitted fields are unchanged.
// @Description Theme and profile update.
type UpdateSettingsRequest struct {
	Theme       *Theme  `json:"theme,omitempty" validate:"omitempty,theme" example:"light-pink" enums:"light,light-pink,light-plum,light-cherry,light-brown"`
	DisplayName *string `json:"display_name,omitempty" validate:"omitempty,max=100" example:"Jane"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email" example:"jane@example.com"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,max=32" example:"1234567890"`
}

// SettingsResponse is the response body for settings endpoints.
// @Description User display settings.
type SettingsResponse struct {
	Theme       Theme     `json:"theme" example:"light-pink"`
	Background  string    `json:"background" example:"351 100% 96%"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (s *Settings) ToResponse() SettingsResponse {
	return SettingsResponse{
		Theme:       s.Theme,
		Background:  s.Theme.Background(),
		DisplayName: s.DisplayName,
		Email:       s.Email,
		Phone:       s.Phone,
		UpdatedAt:   s.UpdatedAt,
	}
}
