package sop

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/opsportal/opsportal/internal/application/sop/usecases"
	"github.com/opsportal/opsportal/internal/interfaces/http/middleware"
	"github.com/opsportal/opsportal/internal/shared/constants"
	"github.com/opsportal/opsportal/internal/shared/errors"
	"github.com/opsportal/opsportal/internal/shared/logger"
	"github.com/opsportal/opsportal/internal/shared/utils"
)

// fileField is the multipart part holding the document.
const fileField = "file"

type SopHandler struct {
	createSopUC     usecases.CreateSopExecutor
	uploadVersionUC usecases.UploadVersionExecutor
	getSopUC        usecases.GetSopExecutor
	listSopsUC      usecases.ListSopsExecutor
	listVersionsUC  usecases.ListVersionsExecutor
	deleteSopUC     usecases.DeleteSopExecutor
	logger          logger.Interface
}

func NewSopHandler(
	createSopUC usecases.CreateSopExecutor,
	uploadVersionUC usecases.UploadVersionExecutor,
	getSopUC usecases.GetSopExecutor,
	listSopsUC usecases.ListSopsExecutor,
	listVersionsUC usecases.ListVersionsExecutor,
	deleteSopUC usecases.DeleteSopExecutor,
	logger logger.Interface,
) *SopHandler {
	return &SopHandler{
		createSopUC:     createSopUC,
		uploadVersionUC: uploadVersionUC,
		getSopUC:        getSopUC,
		listSopsUC:      listSopsUC,
		listVersionsUC:  listVersionsUC,
		deleteSopUC:     deleteSopUC,
		logger:          logger,
	}
}

// CreateSop handles POST /sops
func (h *SopHandler) CreateSop(c *gin.Context) {
	limitBody(c)

	var req CreateSopRequest
	if err := utils.BindBody(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create sop", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	req.Visibility = utils.FormIDList(c, "visibility", req.Visibility)

	file, closeFn, err := h.openUpload(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer closeFn()

	result, err := h.createSopUC.Execute(c.Request.Context(), req.ToCommand(file))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Document created successfully")
}

// UploadVersion handles POST /sops/:id/versions
func (h *SopHandler) UploadVersion(c *gin.Context) {
	sopID, err := utils.ParseUintParam(c, "id", "sop")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	limitBody(c)

	var req UploadVersionRequest
	if err := utils.BindBody(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	file, closeFn, err := h.openUpload(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer closeFn()

	result, err := h.uploadVersionUC.Execute(c.Request.Context(), req.ToCommand(sopID, file))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Document version uploaded", result)
}

// GetSop handles GET /sops/:id
func (h *SopHandler) GetSop(c *gin.Context) {
	sopID, err := utils.ParseUintParam(c, "id", "sop")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getSopUC.Execute(c.Request.Context(), usecases.GetSopQuery{SopID: sopID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListSops handles GET /sops. Non-admin callers only see documents visible to their wing.
func (h *SopHandler) ListSops(c *gin.Context) {
	wingID, err := utils.QueryUint(c, "wing_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.ListSopsQuery{
		WingID: wingID,
		Search: strings.TrimSpace(c.Query("q")),
	}
	if _, role, ok := middleware.Identity(c); ok && !role.IsAdmin() {
		query.ViewerWingID = middleware.WingID(c)
	}

	result, err := h.listSopsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListVersions handles GET /sops/:id/versions
func (h *SopHandler) ListVersions(c *gin.Context) {
	sopID, err := utils.ParseUintParam(c, "id", "sop")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listVersionsUC.Execute(c.Request.Context(), usecases.GetSopQuery{SopID: sopID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DeleteSop handles DELETE /sops/:id
func (h *SopHandler) DeleteSop(c *gin.Context) {
	sopID, err := utils.ParseUintParam(c, "id", "sop")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteSopUC.Execute(c.Request.Context(), usecases.DeleteSopCommand{SopID: sopID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func limitBody(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, constants.MaxUploadBytes)
}

// openUpload returns the multipart file part, or nil when the request carried none.
// The returned close func is always safe to call.
func (h *SopHandler) openUpload(c *gin.Context) (*usecases.UploadedFile, func(), error) {
	noop := func() {}
	if c.ContentType() != gin.MIMEMultipartPOSTForm {
		return nil, noop, nil
	}

	header, err := c.FormFile(fileField)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, noop, nil
		}
		h.logger.Warnw("failed to read uploaded file", "error", err)
		return nil, noop, errors.NewValidationError("invalid file upload", err.Error())
	}

	f, err := header.Open()
	if err != nil {
		h.logger.Errorw("failed to open uploaded file", "filename", header.Filename, "error", err)
		return nil, noop, errors.NewInternalError("failed to read uploaded file")
	}

	return &usecases.UploadedFile{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Body:        f,
	}, func() { _ = f.Close() }, nil
}
