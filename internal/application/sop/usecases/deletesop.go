package usecases

import (
	"context"

	"github.com/opsportal/opsportal/internal/domain/sop"
	"github.com/opsportal/opsportal/internal/shared/db"
	"github.com/opsportal/opsportal/internal/shared/errors"
	"github.com/opsportal/opsportal/internal/shared/logger"
)

type DeleteSopCommand struct {
	SopID uint
}

type DeleteSopUseCase struct {
	sopRepo     sop.Repository
	lineageRepo sop.LineageRepository
	txMgr       db.Transactor
	logger      logger.Interface
}

func NewDeleteSopUseCase(sopRepo sop.Repository, lineageRepo sop.LineageRepository, txMgr db.Transactor, logger logger.Interface) *DeleteSopUseCase {
	return &DeleteSopUseCase{sopRepo: sopRepo, lineageRepo: lineageRepo, txMgr: txMgr, logger: logger}
}

// Execute removes the lineage and the document in one transaction. Stored files are kept.
func (uc *DeleteSopUseCase) Execute(ctx context.Context, cmd DeleteSopCommand) error {
	uc.logger.Infow("executing delete sop use case", "sop_id", cmd.SopID)

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.lineageRepo.DeleteBySop(txCtx, cmd.SopID); err != nil {
			return err
		}
		return uc.sopRepo.Delete(txCtx, cmd.SopID)
	})
	if err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewNotFoundError("document not found")
		}
		uc.logger.Errorw("failed to delete sop", "sop_id", cmd.SopID, "error", err)
		return errors.NewInternalError("failed to delete document")
	}

	uc.logger.Infow("sop deleted successfully", "sop_id", cmd.SopID)
	return nil
}
