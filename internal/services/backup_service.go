package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"tailor-backend/internal/backup"
	"tailor-backend/internal/snapshot"
	"tailor-backend/internal/state"
	"tailor-backend/internal/timeutil"
)

// BackupService exports and imports the full data set as a JSON file.
// An optional offsite uploader pushes each export to an S3-compatible
// bucket; nil means local-download only.
type BackupService struct {
	Store    *state.Store
	Uploader *backup.Uploader
}

func NewBackupService(store *state.Store, uploader *backup.Uploader) *BackupService {
	return &BackupService{Store: store, Uploader: uploader}
}

// ExportFile is a rendered backup ready for download
type ExportFile struct {
	Filename string
	Data     []byte
}

// Export renders the current data collections to a timestamped JSON
// file and, when configured, copies it offsite. An offsite failure does
// not fail the export, the download still works.
func (s *BackupService) Export(ctx context.Context) (ExportFile, error) {
	exp := snapshot.CaptureExport(s.Store.State())
	data, err := json.MarshalIndent(exp, "", "  ")
	if err != nil {
		return ExportFile{}, fmt.Errorf("backup: encode failed: %w", err)
	}

	filename := fmt.Sprintf("tailor-backup-%s.json", timeutil.Now().Format("2006-01-02-150405"))
	if s.Uploader != nil {
		if err := s.Uploader.Upload(ctx, filename, data); err != nil {
			log.Printf("[Backup] Offsite upload failed: %v", err)
		}
	}
	return ExportFile{Filename: filename, Data: data}, nil
}

// Import validates a backup file and replaces every data collection
// with its contents. Language, theme and the current session survive.
func (s *BackupService) Import(data []byte) error {
	exp, err := snapshot.DecodeImport(data)
	if err != nil {
		return validationErr(err.Error())
	}
	if exp.ShopInfo.Name == "" {
		// Backup predates shop details, keep the current ones
		exp.ShopInfo = s.Store.State().ShopInfo
	}

	s.Store.Dispatch(state.RestoreState{
		Customers:    exp.Customers,
		Measurements: exp.Measurements,
		Orders:       exp.Orders,
		GarmentTypes: exp.GarmentTypes,
		Employees:    exp.Employees,
		ShopInfo:     exp.ShopInfo,
	})
	log.Printf("[Backup] Imported %d customers, %d orders, %d measurements",
		len(exp.Customers), len(exp.Orders), len(exp.Measurements))
	return nil
}

// ListOffsite returns backups stored in the configured bucket
func (s *BackupService) ListOffsite(ctx context.Context) ([]backup.StoredBackup, error) {
	if s.Uploader == nil {
		return nil, validationErr("offsite backups are not configured")
	}
	return s.Uploader.List(ctx)
}
