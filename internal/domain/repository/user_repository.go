package repository

import "github.com/jhoicas/stockmaster-api/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
// Las búsquedas retornan (nil, nil) cuando no hay coincidencia.
type UserRepository interface {
	Create(user *entity.User) error
	FindByUsername(username string) (*entity.User, error)
}
