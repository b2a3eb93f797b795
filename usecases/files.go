package usecases

import (
	"context"
	"io"

	"health-server/entities"
	"health-server/repositories"
	"health-server/storage"

	"go.uber.org/zap"
)

// File is an uploaded blob as received from the client.
type File struct {
	Name   string
	Reader io.Reader
}

// storeBlob writes f and returns its generated name.
func storeBlob(store storage.BlobStore, ownerID string, f *File) (string, error) {
	return store.Store(ownerID, f.Name, f.Reader)
}

// dropBlob deletes a blob after its row is gone. Failures are only logged.
func dropBlob(store storage.BlobStore, log *zap.Logger, filename string) {
	if filename == "" {
		return
	}
	if err := store.Delete(filename); err != nil {
		log.Warn("failed to delete blob", zap.String("filename", filename), zap.Error(err))
	}
}

type MedicalHistoryUseCase struct {
	*RecordUseCase[entities.MedicalHistory, MedicalHistoryInput]
	Store storage.BlobStore
}

func NewMedicalHistoryUseCase(repo repositories.MedicalHistoryRepository, store storage.BlobStore, log *zap.Logger) *MedicalHistoryUseCase {
	return &MedicalHistoryUseCase{
		RecordUseCase: NewRecordUseCase[entities.MedicalHistory, MedicalHistoryInput](repo, log, "medical_history",
			func(dst, src *entities.MedicalHistory, _ MedicalHistoryInput) {
				dst.Condition = src.Condition
				dst.DiagnosisDate = src.DiagnosisDate
				dst.Notes = src.Notes
			}),
		Store: store,
	}
}

// CreateWithDocument stores the optional document before inserting the row.
// If the insert fails the fresh blob is removed again.
func (uc *MedicalHistoryUseCase) CreateWithDocument(ctx context.Context, ownerID string, in MedicalHistoryInput, doc *File) (*entities.MedicalHistory, error) {
	if ownerID == "" {
		return nil, entities.ErrUnauthenticated
	}
	rec, err := in.Record(ownerID)
	if err != nil {
		return nil, err
	}
	if doc != nil {
		name, err := storeBlob(uc.Store, ownerID, doc)
		if err != nil {
			uc.Log.Error("failed to store document", zap.String("user_id", ownerID), zap.Error(err))
			return nil, err
		}
		rec.DocumentFilename = &name
	}
	if err := uc.Repo.Create(ctx, rec); err != nil {
		if rec.DocumentFilename != nil {
			dropBlob(uc.Store, uc.Log, *rec.DocumentFilename)
		}
		uc.Log.Error("create failed", zap.String("user_id", ownerID), zap.Error(err))
		return nil, err
	}
	return rec, nil
}

// Delete removes the record and then its document.
func (uc *MedicalHistoryUseCase) Delete(ctx context.Context, id, ownerID string) error {
	rec, err := uc.remove(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if rec.DocumentFilename != nil {
		dropBlob(uc.Store, uc.Log, *rec.DocumentFilename)
	}
	return nil
}

// RemoveDocument clears the notes and the document reference and deletes the blob.
func (uc *MedicalHistoryUseCase) RemoveDocument(ctx context.Context, id, ownerID string) (*entities.MedicalHistory, error) {
	var old string
	rec, err := uc.mutate(ctx, id, ownerID, "remove document", func(m *entities.MedicalHistory) {
		if m.DocumentFilename != nil {
			old = *m.DocumentFilename
		}
		m.Notes = ""
		m.DocumentFilename = nil
	})
	if err != nil {
		return nil, err
	}
	dropBlob(uc.Store, uc.Log, old)
	return rec, nil
}

type UploadUseCase struct {
	Repo      repositories.UploadRepository
	Histories repositories.MedicalHistoryRepository
	Store     storage.BlobStore
	Log       *zap.Logger
}

func NewUploadUseCase(repo repositories.UploadRepository, histories repositories.MedicalHistoryRepository, store storage.BlobStore, log *zap.Logger) *UploadUseCase {
	return &UploadUseCase{Repo: repo, Histories: histories, Store: store, Log: log.With(zap.String("kind", "upload"))}
}

func (uc *UploadUseCase) Create(ctx context.Context, ownerID string, f *File) (*entities.Upload, error) {
	if ownerID == "" {
		return nil, entities.ErrUnauthenticated
	}
	if f == nil || f.Reader == nil || f.Name == "" {
		return nil, entities.NewValidationError("file", "is required")
	}
	name, err := storeBlob(uc.Store, ownerID, f)
	if err != nil {
		uc.Log.Error("failed to store upload", zap.String("user_id", ownerID), zap.Error(err))
		return nil, err
	}
	rec := &entities.Upload{
		UserID:       ownerID,
		Filename:     name,
		OriginalName: f.Name,
		UploadDate:   entities.Now(),
	}
	if err := uc.Repo.Create(ctx, rec); err != nil {
		dropBlob(uc.Store, uc.Log, name)
		uc.Log.Error("create failed", zap.String("user_id", ownerID), zap.Error(err))
		return nil, err
	}
	return rec, nil
}

func (uc *UploadUseCase) List(ctx context.Context, ownerID string) ([]entities.Upload, error) {
	if ownerID == "" {
		return nil, entities.ErrUnauthenticated
	}
	return uc.Repo.ListByOwner(ctx, ownerID)
}

// Delete removes the row first, then the blob.
func (uc *UploadUseCase) Delete(ctx context.Context, id, ownerID string) error {
	rec, err := uc.Repo.Remove(ctx, id, func(u *entities.Upload) error {
		return CheckOwner(u.UserID, ownerID)
	})
	if err != nil {
		return err
	}
	dropBlob(uc.Store, uc.Log, rec.Filename)
	return nil
}

// Documents lists every file a user can see: standalone uploads and the
// medical history records that carry a document.
type Documents struct {
	Uploads []entities.Upload         `json:"uploads"`
	Records []entities.MedicalHistory `json:"records"`
}

func (uc *UploadUseCase) ListDocuments(ctx context.Context, ownerID string) (*Documents, error) {
	uploads, err := uc.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	records, err := uc.Histories.ListByOwnerWhere(ctx, ownerID, "document_filename IS NOT NULL")
	if err != nil {
		return nil, err
	}
	return &Documents{Uploads: uploads, Records: records}, nil
}

type ProfileUseCase struct {
	Repo  repositories.ProfileRepository
	Store storage.BlobStore
	Log   *zap.Logger
}

func NewProfileUseCase(repo repositories.ProfileRepository, store storage.BlobStore, log *zap.Logger) *ProfileUseCase {
	return &ProfileUseCase{Repo: repo, Store: store, Log: log.With(zap.String("kind", "profile"))}
}

func (uc *ProfileUseCase) Get(ctx context.Context, ownerID string) (*entities.Profile, error) {
	if ownerID == "" {
		return nil, entities.ErrUnauthenticated
	}
	return uc.Repo.GetByOwner(ctx, ownerID)
}

// Update replaces the demographic fields. A new picture replaces the old one.
// The patient id is never changed.
func (uc *ProfileUseCase) Update(ctx context.Context, ownerID string, in ProfileInput, picture *File) (*entities.Profile, error) {
	profile, err := uc.Get(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if err := in.apply(profile); err != nil {
		return nil, err
	}

	var old, fresh string
	if picture != nil {
		fresh, err = storeBlob(uc.Store, ownerID, picture)
		if err != nil {
			uc.Log.Error("failed to store profile picture", zap.String("user_id", ownerID), zap.Error(err))
			return nil, err
		}
		if profile.ProfilePicture != nil {
			old = *profile.ProfilePicture
		}
		profile.ProfilePicture = &fresh
	}

	if err := uc.Repo.Update(ctx, profile); err != nil {
		dropBlob(uc.Store, uc.Log, fresh)
		uc.Log.Error("profile update failed", zap.String("user_id", ownerID), zap.Error(err))
		return nil, err
	}
	dropBlob(uc.Store, uc.Log, old)
	return profile, nil
}

// FileUseCase serves blobs only to the user who owns them.
type FileUseCase struct {
	Uploads   repositories.UploadRepository
	Histories repositories.MedicalHistoryRepository
	Profiles  repositories.ProfileRepository
	Store     storage.BlobStore
}

func NewFileUseCase(uploads repositories.UploadRepository, histories repositories.MedicalHistoryRepository, profiles repositories.ProfileRepository, store storage.BlobStore) *FileUseCase {
	return &FileUseCase{Uploads: uploads, Histories: histories, Profiles: profiles, Store: store}
}

// Resolve returns the path of filename if it is an upload, a medical document
// or the profile picture of ownerID. Anything else is ErrNotFound.
func (uc *FileUseCase) Resolve(ctx context.Context, ownerID, filename string) (string, error) {
	if ownerID == "" {
		return "", entities.ErrUnauthenticated
	}
	owned, err := uc.owns(ctx, ownerID, filename)
	if err != nil {
		return "", err
	}
	if !owned {
		return "", entities.ErrNotFound
	}
	return uc.Store.Resolve(filename)
}

func (uc *FileUseCase) owns(ctx context.Context, ownerID, filename string) (bool, error) {
	if ok, err := uc.Uploads.ExistsForOwner(ctx, ownerID, "filename = ?", filename); err != nil || ok {
		return ok, err
	}
	if ok, err := uc.Histories.ExistsForOwner(ctx, ownerID, "document_filename = ?", filename); err != nil || ok {
		return ok, err
	}
	return uc.Profiles.HasPicture(ctx, ownerID, filename)
}
