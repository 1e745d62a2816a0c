package usecases

import (
	"context"

	"github.com/opsportal/opsportal/internal/application/sop/dto"
)

type CreateSopExecutor interface {
	Execute(ctx context.Context, cmd CreateSopCommand) (*dto.SopDTO, error)
}

type UploadVersionExecutor interface {
	Execute(ctx context.Context, cmd UploadVersionCommand) (*dto.SopDTO, error)
}

type GetSopExecutor interface {
	Execute(ctx context.Context, query GetSopQuery) (*dto.SopDTO, error)
}

type ListSopsExecutor interface {
	Execute(ctx context.Context, query ListSopsQuery) ([]*dto.SopDTO, error)
}

type ListVersionsExecutor interface {
	Execute(ctx context.Context, query GetSopQuery) ([]dto.LineageEntryDTO, error)
}

type DeleteSopExecutor interface {
	Execute(ctx context.Context, cmd DeleteSopCommand) error
}
