package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]*entity.User // por username
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	if _, ok := r.users[u.Username]; ok {
		return domain.ErrDuplicate
	}
	cp := *u
	r.users[cp.Username] = &cp
	return nil
}

func (r *fakeUserRepo) FindByUsername(username string) (*entity.User, error) {
	if u, ok := r.users[username]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

var testJWT = JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "stockmaster-test"}

func TestLoginAdminPorDefecto(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUseCase(repo, testJWT)
	require.NoError(t, uc.EnsureDefaultAdmin("admin", "admin123"))

	resp, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, entity.RoleAdmin, resp.User.Role)
	assert.Equal(t, "admin", resp.User.Username)

	// El token lleva los claims necesarios para el RBAC del middleware.
	userID, username, role, err := jwt.Parse(testJWT.Secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID)
	assert.Equal(t, "admin", username)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLoginFallaUniforme(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUseCase(repo, testJWT)
	require.NoError(t, uc.EnsureDefaultAdmin("admin", "admin123"))

	// Password incorrecto y usuario inexistente fallan igual: no se filtra
	// cuál de los dos campos estuvo mal.
	_, errBadPass := uc.Login(dto.LoginRequest{Username: "admin", Password: "incorrecta"})
	_, errNoUser := uc.Login(dto.LoginRequest{Username: "nadie", Password: "admin123"})

	assert.ErrorIs(t, errBadPass, domain.ErrUnauthorized)
	assert.ErrorIs(t, errNoUser, domain.ErrUnauthorized)
	assert.Equal(t, errBadPass.Error(), errNoUser.Error())
}

func TestLoginUsuarioInactivo(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUseCase(repo, testJWT)
	require.NoError(t, uc.EnsureDefaultAdmin("laura", "secreta99"))

	u := repo.users["laura"]
	u.Status = "inactive"

	_, err := uc.Login(dto.LoginRequest{Username: "laura", Password: "secreta99"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestEnsureDefaultAdminEsIdempotente(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUseCase(repo, testJWT)

	require.NoError(t, uc.EnsureDefaultAdmin("admin", "admin123"))
	hashBefore := repo.users["admin"].PasswordHash

	// Segundo arranque: no se recrea ni se rehashea.
	require.NoError(t, uc.EnsureDefaultAdmin("admin", "otra-password"))
	assert.Len(t, repo.users, 1)
	assert.Equal(t, hashBefore, repo.users["admin"].PasswordHash)
}

func TestPasswordsIgualesProducenHashesDistintos(t *testing.T) {
	repoA := newFakeUserRepo()
	repoB := newFakeUserRepo()
	require.NoError(t, NewAuthUseCase(repoA, testJWT).EnsureDefaultAdmin("admin", "admin123"))
	require.NoError(t, NewAuthUseCase(repoB, testJWT).EnsureDefaultAdmin("admin", "admin123"))

	// bcrypt usa salt por usuario: mismo password, hashes distintos.
	assert.NotEqual(t, repoA.users["admin"].PasswordHash, repoB.users["admin"].PasswordHash)
	assert.NotEqual(t, "admin123", repoA.users["admin"].PasswordHash)
}
