package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"tailor-backend/internal/models"
	"tailor-backend/internal/services"
	"tailor-backend/pkg/utils"
)

// importBodyLimit caps uploaded backup files at 10 MB
const importBodyLimit = 10 << 20

type SettingsHandler struct {
	Settings *services.SettingsService
	Backups  *services.BackupService
}

func NewSettingsHandler(settings *services.SettingsService, backups *services.BackupService) *SettingsHandler {
	return &SettingsHandler{Settings: settings, Backups: backups}
}

func (h *SettingsHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Settings.Preferences())
}

type preferencesRequest struct {
	Language *models.Language `json:"language"`
	Theme    *models.Theme    `json:"theme"`
}

// UpdatePreferences accepts a partial update: absent fields keep
// their current value
func (h *SettingsHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var req preferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Language != nil {
		if err := h.Settings.SetLanguage(*req.Language); err != nil {
			writeServiceError(w, err)
			return
		}
	}
	if req.Theme != nil {
		if err := h.Settings.SetTheme(*req.Theme); err != nil {
			writeServiceError(w, err)
			return
		}
	}
	utils.JSON(w, http.StatusOK, h.Settings.Preferences())
}

func (h *SettingsHandler) GetShopInfo(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Settings.ShopInfo())
}

func (h *SettingsHandler) UpdateShopInfo(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateShopInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	info, err := h.Settings.UpdateShopInfo(req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, info)
}

// ExportBackup streams a full data export as a JSON download
func (h *SettingsHandler) ExportBackup(w http.ResponseWriter, r *http.Request) {
	file, err := h.Backups.Export(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", file.Filename))
	w.Write(file.Data)
}

// ImportBackup replaces all data collections from an uploaded export
func (h *SettingsHandler) ImportBackup(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, importBodyLimit))
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Failed to read upload")
		return
	}

	if err := h.Backups.Import(data); err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "restored"})
}

func (h *SettingsHandler) ListOffsiteBackups(w http.ResponseWriter, r *http.Request) {
	backups, err := h.Backups.ListOffsite(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, backups)
}
