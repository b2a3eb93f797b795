package httpHandler

import (
	"net/http"

	"health-server/entities"
	"health-server/usecases"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecordHandler serves the list/create/update/delete routes of one record kind.
type RecordHandler[T entities.Record, I usecases.Input[T]] struct {
	useCase *usecases.RecordUseCase[T, I]
	label   string
	log     *zap.Logger
}

func NewRecordHandler[T entities.Record, I usecases.Input[T]](useCase *usecases.RecordUseCase[T, I], label string, log *zap.Logger) *RecordHandler[T, I] {
	return &RecordHandler[T, I]{useCase: useCase, label: label, log: log}
}

// List handles GET on the collection
func (h *RecordHandler[T, I]) List(c *gin.Context) {
	recs, err := h.useCase.List(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":  recs,
		"count": len(recs),
	})
}

// Create handles POST on the collection
func (h *RecordHandler[T, I]) Create(c *gin.Context) {
	var in I
	if err := c.ShouldBind(&in); err != nil {
		badRequest(c, err)
		return
	}

	rec, err := h.useCase.Create(c.Request.Context(), currentUser(c), in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": h.label + " created successfully",
		"data":    rec,
	})
}

// Update handles PUT /:id
func (h *RecordHandler[T, I]) Update(c *gin.Context) {
	var in I
	if err := c.ShouldBind(&in); err != nil {
		badRequest(c, err)
		return
	}

	rec, err := h.useCase.Update(c.Request.Context(), c.Param("id"), currentUser(c), in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": h.label + " updated successfully",
		"data":    rec,
	})
}

// Delete handles DELETE /:id
func (h *RecordHandler[T, I]) Delete(c *gin.Context) {
	if err := h.useCase.Delete(c.Request.Context(), c.Param("id"), currentUser(c)); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": h.label + " deleted successfully"})
}

type MedicineHandler struct {
	*RecordHandler[entities.Medicine, usecases.MedicineInput]
	medicines *usecases.MedicineUseCase
}

func NewMedicineHandler(useCase *usecases.MedicineUseCase, log *zap.Logger) *MedicineHandler {
	return &MedicineHandler{
		RecordHandler: NewRecordHandler(useCase.RecordUseCase, "Medicine", log),
		medicines:     useCase,
	}
}

// MarkTaken handles POST /api/v1/medicines/:id/taken
func (h *MedicineHandler) MarkTaken(c *gin.Context) {
	med, err := h.medicines.MarkTaken(c.Request.Context(), c.Param("id"), currentUser(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Medicine marked as taken", "data": med})
}

type HabitHandler struct {
	*RecordHandler[entities.Habit, usecases.HabitInput]
	habits *usecases.HabitUseCase
}

func NewHabitHandler(useCase *usecases.HabitUseCase, log *zap.Logger) *HabitHandler {
	return &HabitHandler{
		RecordHandler: NewRecordHandler(useCase.RecordUseCase, "Habit", log),
		habits:        useCase,
	}
}

// MarkDone handles POST /api/v1/habits/:id/done
func (h *HabitHandler) MarkDone(c *gin.Context) {
	habit, err := h.habits.MarkDone(c.Request.Context(), c.Param("id"), currentUser(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Habit marked as done", "data": habit})
}
