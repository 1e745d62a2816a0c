package usecases

import (
	"context"
	"time"

	"github.com/opsportal/opsportal/internal/application/sop/dto"
	"github.com/opsportal/opsportal/internal/domain/sop"
	"github.com/opsportal/opsportal/internal/infrastructure/storage"
	"github.com/opsportal/opsportal/internal/shared/db"
	"github.com/opsportal/opsportal/internal/shared/errors"
	"github.com/opsportal/opsportal/internal/shared/logger"
)

type UploadVersionCommand struct {
	SopID   uint
	FileURL string
	File    *UploadedFile
	// Version overrides the automatic major bump when set.
	Version string
}

type UploadVersionUseCase struct {
	sopRepo     sop.Repository
	lineageRepo sop.LineageRepository
	store       storage.FileStore
	txMgr       db.Transactor
	logger      logger.Interface
}

func NewUploadVersionUseCase(
	sopRepo sop.Repository,
	lineageRepo sop.LineageRepository,
	store storage.FileStore,
	txMgr db.Transactor,
	logger logger.Interface,
) *UploadVersionUseCase {
	return &UploadVersionUseCase{
		sopRepo:     sopRepo,
		lineageRepo: lineageRepo,
		store:       store,
		txMgr:       txMgr,
		logger:      logger,
	}
}

// Execute points the document at the uploaded file. The cached version on the
// document and the appended lineage entry commit or roll back together.
func (uc *UploadVersionUseCase) Execute(ctx context.Context, cmd UploadVersionCommand) (*dto.SopDTO, error) {
	uc.logger.Infow("executing upload sop version use case", "sop_id", cmd.SopID, "explicit_version", cmd.Version)

	doc, err := uc.sopRepo.GetByID(ctx, cmd.SopID)
	if err != nil {
		uc.logger.Errorw("failed to get sop", "sop_id", cmd.SopID, "error", err)
		return nil, errors.NewInternalError("failed to get document")
	}
	if doc == nil {
		return nil, errors.NewNotFoundError("document not found")
	}

	fileURL, err := resolveFileURL(ctx, uc.store, cmd.File, cmd.FileURL, uc.logger)
	if err != nil {
		return nil, err
	}

	var appended *sop.LineageEntry
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		latest, err := uc.lineageRepo.Latest(txCtx, doc.ID())
		if err != nil {
			return err
		}
		appended, err = doc.ApplyUpload(fileURL, cmd.Version, latest, time.Now())
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.sopRepo.Update(txCtx, doc); err != nil {
			return err
		}
		if appended == nil {
			return nil
		}
		return uc.lineageRepo.Append(txCtx, appended)
	})
	if err != nil {
		if errors.IsValidationError(err) || errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to upload sop version, changes rolled back", "sop_id", cmd.SopID, "error", err)
		return nil, errors.NewInternalError("failed to upload document version")
	}

	lineage, err := uc.lineageRepo.ListBySop(ctx, doc.ID())
	if err != nil {
		uc.logger.Errorw("failed to list sop lineage", "sop_id", doc.ID(), "error", err)
		return nil, errors.NewInternalError("failed to list document versions")
	}

	if appended != nil {
		uc.logger.Infow("sop version uploaded", "sop_id", doc.ID(), "version", appended.Version().String())
	} else {
		uc.logger.Infow("sop re-uploaded with unchanged file", "sop_id", doc.ID())
	}
	return dto.ToSopDTO(doc, lineage), nil
}
