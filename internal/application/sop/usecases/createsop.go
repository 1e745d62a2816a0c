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

type CreateSopCommand struct {
	Title      string
	Version    string
	FileURL    string
	File       *UploadedFile
	WingID     *uint
	SubwID     *uint
	Visibility []uint
}

type CreateSopUseCase struct {
	sopRepo     sop.Repository
	lineageRepo sop.LineageRepository
	store       storage.FileStore
	txMgr       db.Transactor
	logger      logger.Interface
}

func NewCreateSopUseCase(
	sopRepo sop.Repository,
	lineageRepo sop.LineageRepository,
	store storage.FileStore,
	txMgr db.Transactor,
	logger logger.Interface,
) *CreateSopUseCase {
	return &CreateSopUseCase{
		sopRepo:     sopRepo,
		lineageRepo: lineageRepo,
		store:       store,
		txMgr:       txMgr,
		logger:      logger,
	}
}

// Execute writes the document and its first lineage entry together.
func (uc *CreateSopUseCase) Execute(ctx context.Context, cmd CreateSopCommand) (*dto.SopDTO, error) {
	uc.logger.Infow("executing create sop use case", "title", cmd.Title)

	fileURL, err := resolveFileURL(ctx, uc.store, cmd.File, cmd.FileURL, uc.logger)
	if err != nil {
		return nil, err
	}

	doc, first, err := sop.NewSop(cmd.Title, cmd.Version, fileURL, cmd.WingID, cmd.SubwID, cmd.Visibility, time.Now())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.sopRepo.Create(txCtx, doc); err != nil {
			return err
		}
		first.SetSopID(doc.ID())
		return uc.lineageRepo.Append(txCtx, first)
	})
	if err != nil {
		uc.logger.Errorw("failed to create sop", "title", cmd.Title, "error", err)
		return nil, errors.NewInternalError("failed to create document")
	}

	uc.logger.Infow("sop created successfully", "sop_id", doc.ID(), "version", doc.Version().String())
	return dto.ToSopDTO(doc, []*sop.LineageEntry{first}), nil
}
