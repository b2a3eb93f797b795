package httpHandler

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"health-server/entities"
	"health-server/usecases"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// formFile opens the optional multipart file under field. The returned close
// func is never nil.
func formFile(c *gin.Context, field string) (*usecases.File, func(), error) {
	header, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, func() {}, nil
	}
	if err != nil {
		return nil, func() {}, err
	}
	if header.Filename == "" {
		return nil, func() {}, nil
	}
	f, err := header.Open()
	if err != nil {
		return nil, func() {}, fmt.Errorf("%w: open upload: %v", entities.ErrStorageFailure, err)
	}
	return &usecases.File{Name: header.Filename, Reader: f}, func() { closeFile(f) }, nil
}

func closeFile(f multipart.File) { _ = f.Close() }

type MedicalHistoryHandler struct {
	*RecordHandler[entities.MedicalHistory, usecases.MedicalHistoryInput]
	history *usecases.MedicalHistoryUseCase
}

func NewMedicalHistoryHandler(useCase *usecases.MedicalHistoryUseCase, log *zap.Logger) *MedicalHistoryHandler {
	return &MedicalHistoryHandler{
		RecordHandler: NewRecordHandler(useCase.RecordUseCase, "Medical record", log),
		history:       useCase,
	}
}

// Create handles POST /api/v1/medical-history (multipart "document" is optional)
func (h *MedicalHistoryHandler) Create(c *gin.Context) {
	var in usecases.MedicalHistoryInput
	if err := c.ShouldBind(&in); err != nil {
		badRequest(c, err)
		return
	}
	doc, closeDoc, err := formFile(c, "document")
	if err != nil {
		badRequest(c, err)
		return
	}
	defer closeDoc()

	rec, err := h.history.CreateWithDocument(c.Request.Context(), currentUser(c), in, doc)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Medical record added successfully",
		"data":    rec,
	})
}

// Delete handles DELETE /api/v1/medical-history/:id
func (h *MedicalHistoryHandler) Delete(c *gin.Context) {
	if err := h.history.Delete(c.Request.Context(), c.Param("id"), currentUser(c)); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Medical record deleted successfully"})
}

// RemoveDocument handles POST /api/v1/medical-history/:id/remove-document
func (h *MedicalHistoryHandler) RemoveDocument(c *gin.Context) {
	rec, err := h.history.RemoveDocument(c.Request.Context(), c.Param("id"), currentUser(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Note and document removed", "data": rec})
}

type UploadHandler struct {
	uploads *usecases.UploadUseCase
	log     *zap.Logger
}

func NewUploadHandler(useCase *usecases.UploadUseCase, log *zap.Logger) *UploadHandler {
	return &UploadHandler{uploads: useCase, log: log}
}

// List handles GET /api/v1/uploads
func (h *UploadHandler) List(c *gin.Context) {
	uploads, err := h.uploads.List(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": uploads, "count": len(uploads)})
}

// Create handles POST /api/v1/uploads (multipart "file")
func (h *UploadHandler) Create(c *gin.Context) {
	file, closeFile, err := formFile(c, "file")
	if err != nil {
		badRequest(c, err)
		return
	}
	defer closeFile()

	up, err := h.uploads.Create(c.Request.Context(), currentUser(c), file)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "File uploaded successfully", "data": up})
}

// Delete handles DELETE /api/v1/uploads/:id
func (h *UploadHandler) Delete(c *gin.Context) {
	if err := h.uploads.Delete(c.Request.Context(), c.Param("id"), currentUser(c)); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "File deleted successfully"})
}

// Documents handles GET /api/v1/documents
func (h *UploadHandler) Documents(c *gin.Context) {
	docs, err := h.uploads.ListDocuments(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": docs})
}

type ProfileHandler struct {
	profiles *usecases.ProfileUseCase
	log      *zap.Logger
}

func NewProfileHandler(useCase *usecases.ProfileUseCase, log *zap.Logger) *ProfileHandler {
	return &ProfileHandler{profiles: useCase, log: log}
}

// Get handles GET /api/v1/profile
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.profiles.Get(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": profile})
}

// Update handles PUT /api/v1/profile (multipart "profile_picture" is optional)
func (h *ProfileHandler) Update(c *gin.Context) {
	var in usecases.ProfileInput
	if err := c.ShouldBind(&in); err != nil {
		badRequest(c, err)
		return
	}
	picture, closePicture, err := formFile(c, "profile_picture")
	if err != nil {
		badRequest(c, err)
		return
	}
	defer closePicture()

	profile, err := h.profiles.Update(c.Request.Context(), currentUser(c), in, picture)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully!", "data": profile})
}

type FileHandler struct {
	files *usecases.FileUseCase
	log   *zap.Logger
}

func NewFileHandler(useCase *usecases.FileUseCase, log *zap.Logger) *FileHandler {
	return &FileHandler{files: useCase, log: log}
}

// Serve handles GET /uploads/:filename
func (h *FileHandler) Serve(c *gin.Context) {
	path, err := h.files.Resolve(c.Request.Context(), currentUser(c), c.Param("filename"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.File(path)
}
