package mappers

import (
	"github.com/opsportal/opsportal/internal/domain/directory"
	"github.com/opsportal/opsportal/internal/infrastructure/persistence/models"
	"github.com/opsportal/opsportal/internal/shared/authorization"
)

func UserToEntity(model *models.UserModel) *directory.User {
	return &directory.User{
		ID:     model.ID,
		Name:   model.Name,
		Email:  model.Email,
		Role:   authorization.ParseUserRole(model.Role),
		WingID: model.WingID,
	}
}
