package user

import (
	"context"
	"testing"

	"styledecor/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type mockUserRepo struct {
	byEmail map[string]*models.User
	byID    map[string]*models.User
	created []*models.User
	roles   map[string]models.Role
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		byEmail: make(map[string]*models.User),
		byID:    make(map[string]*models.User),
		roles:   make(map[string]models.Role),
	}
}

func (m *mockUserRepo) Create(u *models.User) error {
	m.created = append(m.created, u)
	m.byEmail[u.Email] = u
	m.byID[u.ID] = u
	return nil
}
func (m *mockUserRepo) GetByEmail(email string) (*models.User, error) { return m.byEmail[email], nil }
func (m *mockUserRepo) GetByID(id string) (*models.User, error)       { return m.byID[id], nil }
func (m *mockUserRepo) Search(q string, limit int64) ([]models.User, error) {
	return nil, nil
}
func (m *mockUserRepo) SetRole(id string, role models.Role) error {
	m.roles[id] = role
	return nil
}
func (m *mockUserRepo) SetRoleByEmail(email string, role models.Role) error { return nil }

func newTestService(repo *mockUserRepo) *DefaultUserService {
	return &DefaultUserService{Repo: repo, Logger: zap.NewNop()}
}

func TestRegister_CreatesWithDefaultRole(t *testing.T) {
	repo := newMockUserRepo()
	svc := newTestService(repo)

	created, err := svc.Register(context.Background(), &models.User{
		Email:       "new@example.com",
		DisplayName: "New User",
	})

	assert.NoError(t, err)
	assert.True(t, created)
	assert.Len(t, repo.created, 1)
	assert.Equal(t, models.RoleUser, repo.created[0].Role)
	assert.NotEmpty(t, repo.created[0].ID)
}

func TestRegister_ExistingEmailIsNoOp(t *testing.T) {
	repo := newMockUserRepo()
	repo.byEmail["old@example.com"] = &models.User{ID: "u1", Email: "old@example.com"}
	svc := newTestService(repo)

	created, err := svc.Register(context.Background(), &models.User{Email: "old@example.com"})

	assert.NoError(t, err)
	assert.False(t, created)
	assert.Empty(t, repo.created)
}

func TestRoleOf_DefaultsToUser(t *testing.T) {
	svc := newTestService(newMockUserRepo())

	role, err := svc.RoleOf(context.Background(), "nobody@example.com")

	assert.NoError(t, err)
	assert.Equal(t, models.RoleUser, role)
}

func TestRoleOf_ReturnsStoredRole(t *testing.T) {
	repo := newMockUserRepo()
	repo.byEmail["admin@example.com"] = &models.User{Email: "admin@example.com", Role: models.RoleAdmin}
	svc := newTestService(repo)

	role, err := svc.RoleOf(context.Background(), "admin@example.com")

	assert.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, role)
}

func TestChangeRole_UnknownRole(t *testing.T) {
	svc := newTestService(newMockUserRepo())

	err := svc.ChangeRole(context.Background(), "u1", models.Role("superuser"))

	assert.Error(t, err)
}

func TestChangeRole_UnknownUser(t *testing.T) {
	svc := newTestService(newMockUserRepo())

	err := svc.ChangeRole(context.Background(), "missing", models.RoleAdmin)

	assert.Error(t, err)
}

func TestChangeRole_UpdatesStore(t *testing.T) {
	repo := newMockUserRepo()
	repo.byID["u1"] = &models.User{ID: "u1", Email: "person@example.com", Role: models.RoleUser}
	svc := newTestService(repo)

	err := svc.ChangeRole(context.Background(), "u1", models.RoleAdmin)

	assert.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, repo.roles["u1"])
}
