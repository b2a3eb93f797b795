package usecases

import (
	"context"
	"errors"

	"health-server/entities"
	"health-server/repositories"

	"go.uber.org/zap"
)

// Input is a typed form submission that validates itself into a new record of T.
type Input[T any] interface {
	Record(ownerID string) (*T, error)
}

// RecordUseCase is the owner-scoped create/list/update/delete flow shared by
// every record kind. merge copies the editable fields of src into dst; in is
// the submission src was built from.
type RecordUseCase[T entities.Record, I Input[T]] struct {
	Repo  repositories.OwnedRepository[T]
	Log   *zap.Logger
	kind  string
	merge func(dst, src *T, in I)
}

func NewRecordUseCase[T entities.Record, I Input[T]](repo repositories.OwnedRepository[T], log *zap.Logger, kind string, merge func(dst, src *T, in I)) *RecordUseCase[T, I] {
	return &RecordUseCase[T, I]{Repo: repo, Log: log.With(zap.String("kind", kind)), kind: kind, merge: merge}
}

func (uc *RecordUseCase[T, I]) Create(ctx context.Context, ownerID string, in I) (*T, error) {
	if ownerID == "" {
		return nil, entities.ErrUnauthenticated
	}
	rec, err := in.Record(ownerID)
	if err != nil {
		return nil, err
	}
	if err := uc.Repo.Create(ctx, rec); err != nil {
		uc.Log.Error("create failed", zap.String("user_id", ownerID), zap.Error(err))
		return nil, err
	}
	uc.Log.Debug("record created", zap.String("user_id", ownerID), zap.String("id", (*rec).GetID()))
	return rec, nil
}

func (uc *RecordUseCase[T, I]) List(ctx context.Context, ownerID string) ([]T, error) {
	if ownerID == "" {
		return nil, entities.ErrUnauthenticated
	}
	return uc.Repo.ListByOwner(ctx, ownerID)
}

// Get returns the record only when it belongs to ownerID.
func (uc *RecordUseCase[T, I]) Get(ctx context.Context, id, ownerID string) (*T, error) {
	rec, err := uc.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := CheckOwner((*rec).GetOwnerID(), ownerID); err != nil {
		return nil, err
	}
	return rec, nil
}

func (uc *RecordUseCase[T, I]) Update(ctx context.Context, id, ownerID string, in I) (*T, error) {
	if uc.merge == nil {
		return nil, entities.NewValidationError(uc.kind, "entries cannot be edited")
	}
	fresh, err := in.Record(ownerID)
	if err != nil {
		return nil, err
	}
	rec, err := uc.Repo.Mutate(ctx, id, func(cur *T) error {
		if err := CheckOwner((*cur).GetOwnerID(), ownerID); err != nil {
			return err
		}
		uc.merge(cur, fresh, in)
		return nil
	})
	if err != nil {
		uc.logDenied("update", id, ownerID, err)
		return nil, err
	}
	return rec, nil
}

func (uc *RecordUseCase[T, I]) Delete(ctx context.Context, id, ownerID string) error {
	_, err := uc.remove(ctx, id, ownerID)
	return err
}

// remove deletes the record after the owner check and returns what was deleted.
func (uc *RecordUseCase[T, I]) remove(ctx context.Context, id, ownerID string) (*T, error) {
	rec, err := uc.Repo.Remove(ctx, id, func(cur *T) error {
		return CheckOwner((*cur).GetOwnerID(), ownerID)
	})
	if err != nil {
		uc.logDenied("delete", id, ownerID, err)
		return nil, err
	}
	return rec, nil
}

// mutate applies fn to the record after the owner check.
func (uc *RecordUseCase[T, I]) mutate(ctx context.Context, id, ownerID, op string, fn func(cur *T)) (*T, error) {
	rec, err := uc.Repo.Mutate(ctx, id, func(cur *T) error {
		if err := CheckOwner((*cur).GetOwnerID(), ownerID); err != nil {
			return err
		}
		fn(cur)
		return nil
	})
	if err != nil {
		uc.logDenied(op, id, ownerID, err)
		return nil, err
	}
	return rec, nil
}

func (uc *RecordUseCase[T, I]) logDenied(op, id, ownerID string, err error) {
	switch {
	case errors.Is(err, entities.ErrForbidden):
		uc.Log.Warn(op+" denied: not the owner", zap.String("id", id), zap.String("user_id", ownerID))
	case errors.Is(err, entities.ErrNotFound):
		uc.Log.Info(op+" on missing record", zap.String("id", id), zap.String("user_id", ownerID))
	default:
		uc.Log.Error(op+" failed", zap.String("id", id), zap.String("user_id", ownerID), zap.Error(err))
	}
}
