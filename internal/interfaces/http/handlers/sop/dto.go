package sop

import (
	"github.com/opsportal/opsportal/internal/application/sop/usecases"
	"github.com/opsportal/opsportal/internal/shared/utils"
)

type CreateSopRequest struct {
	Title      string       `json:"title" form:"title" binding:"required,max=255"`
	Version    string       `json:"version" form:"version" binding:"max=32"`
	FileURL    string       `json:"file_url" form:"file_url" binding:"max=1024"`
	WingID     *uint        `json:"wing_id" form:"wing_id"`
	SubwID     *uint        `json:"subw_id" form:"subw_id"`
	Visibility utils.IDList `json:"visibility" form:"-"`
}

func (r *CreateSopRequest) ToCommand(file *usecases.UploadedFile) usecases.CreateSopCommand {
	return usecases.CreateSopCommand{
		Title:      r.Title,
		Version:    r.Version,
		FileURL:    r.FileURL,
		File:       file,
		WingID:     r.WingID,
		SubwID:     r.SubwID,
		Visibility: r.Visibility.IDs,
	}
}

type UploadVersionRequest struct {
	FileURL string `json:"file_url" form:"file_url" binding:"max=1024"`
	Version string `json:"version" form:"version" binding:"max=32"`
}

func (r *UploadVersionRequest) ToCommand(sopID uint, file *usecases.UploadedFile) usecases.UploadVersionCommand {
	return usecases.UploadVersionCommand{
		SopID:   sopID,
		FileURL: r.FileURL,
		File:    file,
		Version: r.Version,
	}
}
