package services

import (
	"tailor-backend/internal/models"
	"tailor-backend/internal/state"
)

// SettingsService holds per-shop preferences: display language, theme
// and the shop identity printed on documents.
type SettingsService struct {
	Store *state.Store
}

func NewSettingsService(store *state.Store) *SettingsService {
	return &SettingsService{Store: store}
}

type Preferences struct {
	Language models.Language `json:"language"`
	Theme    models.Theme    `json:"theme"`
}

func (s *SettingsService) Preferences() Preferences {
	st := s.Store.State()
	return Preferences{Language: st.Language, Theme: st.Theme}
}

func (s *SettingsService) SetLanguage(lang models.Language) error {
	switch lang {
	case models.LanguageEnglish, models.LanguageHindi, models.LanguageMarathi:
	default:
		return validationErr("unsupported language")
	}
	s.Store.Dispatch(state.SetLanguage{Language: lang})
	return nil
}

func (s *SettingsService) SetTheme(theme models.Theme) error {
	switch theme {
	case models.ThemeLight, models.ThemeDark:
	default:
		return validationErr("unsupported theme")
	}
	s.Store.Dispatch(state.SetTheme{Theme: theme})
	return nil
}

func (s *SettingsService) ShopInfo() models.ShopInfo {
	return s.Store.State().ShopInfo
}

func (s *SettingsService) UpdateShopInfo(req models.UpdateShopInfoRequest) (models.ShopInfo, error) {
	if req.Name == "" {
		return models.ShopInfo{}, validationErr("shop name is required")
	}
	info := models.ShopInfo{
		Name:    req.Name,
		Tagline: req.Tagline,
		Address: req.Address,
		Phone:   req.Phone,
	}
	s.Store.Dispatch(state.UpdateShopInfo{ShopInfo: info})
	return info, nil
}
