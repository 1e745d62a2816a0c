package usecases

import (
	"context"

	"github.com/opsportal/opsportal/internal/application/sop/dto"
	"github.com/opsportal/opsportal/internal/domain/sop"
	"github.com/opsportal/opsportal/internal/shared/errors"
	"github.com/opsportal/opsportal/internal/shared/logger"
)

type GetSopQuery struct {
	SopID uint
}

type ListSopsQuery struct {
	WingID *uint
	Search string
	// ViewerWingID hides documents whose visibility list excludes the viewer's wing.
	ViewerWingID *uint
}

type GetSopUseCase struct {
	sopRepo     sop.Repository
	lineageRepo sop.LineageRepository
	logger      logger.Interface
}

func NewGetSopUseCase(sopRepo sop.Repository, lineageRepo sop.LineageRepository, logger logger.Interface) *GetSopUseCase {
	return &GetSopUseCase{sopRepo: sopRepo, lineageRepo: lineageRepo, logger: logger}
}

// Execute returns the document with its full lineage, newest first.
func (uc *GetSopUseCase) Execute(ctx context.Context, query GetSopQuery) (*dto.SopDTO, error) {
	doc, lineage, err := loadWithLineage(ctx, uc.sopRepo, uc.lineageRepo, query.SopID, uc.logger)
	if err != nil {
		return nil, err
	}
	return dto.ToSopDTO(doc, lineage), nil
}

type ListVersionsUseCase struct {
	sopRepo     sop.Repository
	lineageRepo sop.LineageRepository
	logger      logger.Interface
}

func NewListVersionsUseCase(sopRepo sop.Repository, lineageRepo sop.LineageRepository, logger logger.Interface) *ListVersionsUseCase {
	return &ListVersionsUseCase{sopRepo: sopRepo, lineageRepo: lineageRepo, logger: logger}
}

func (uc *ListVersionsUseCase) Execute(ctx context.Context, query GetSopQuery) ([]dto.LineageEntryDTO, error) {
	_, lineage, err := loadWithLineage(ctx, uc.sopRepo, uc.lineageRepo, query.SopID, uc.logger)
	if err != nil {
		return nil, err
	}
	return dto.ToLineageDTOs(lineage), nil
}

type ListSopsUseCase struct {
	sopRepo sop.Repository
	logger  logger.Interface
}

func NewListSopsUseCase(sopRepo sop.Repository, logger logger.Interface) *ListSopsUseCase {
	return &ListSopsUseCase{sopRepo: sopRepo, logger: logger}
}

func (uc *ListSopsUseCase) Execute(ctx context.Context, query ListSopsQuery) ([]*dto.SopDTO, error) {
	docs, err := uc.sopRepo.List(ctx, sop.ListFilter{WingID: query.WingID, Search: query.Search})
	if err != nil {
		uc.logger.Errorw("failed to list sops", "error", err)
		return nil, errors.NewInternalError("failed to list documents")
	}

	result := make([]*dto.SopDTO, 0, len(docs))
	for _, doc := range docs {
		if query.ViewerWingID != nil && !doc.VisibleTo(*query.ViewerWingID) {
			continue
		}
		result = append(result, dto.ToSopDTO(doc, nil))
	}
	return result, nil
}

func loadWithLineage(ctx context.Context, sopRepo sop.Repository, lineageRepo sop.LineageRepository, id uint, log logger.Interface) (*sop.Sop, []*sop.LineageEntry, error) {
	doc, err := sopRepo.GetByID(ctx, id)
	if err != nil {
		log.Errorw("failed to get sop", "sop_id", id, "error", err)
		return nil, nil, errors.NewInternalError("failed to get document")
	}
	if doc == nil {
		return nil, nil, errors.NewNotFoundError("document not found")
	}
	lineage, err := lineageRepo.ListBySop(ctx, id)
	if err != nil {
		log.Errorw("failed to list sop lineage", "sop_id", id, "error", err)
		return nil, nil, errors.NewInternalError("failed to list document versions")
	}
	if lineage == nil {
		lineage = []*sop.LineageEntry{}
	}
	return doc, lineage, nil
}
