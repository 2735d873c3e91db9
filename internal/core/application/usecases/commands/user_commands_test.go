package commands_test

import (
	"errors"
	"testing"
	"time"

	"hyperlocal/internal/core/application/usecases/commands"
	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/core/domain/model/user"
	"hyperlocal/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func existingUser(t *testing.T, roles ...kernel.Role) *user.User {
	t.Helper()
	u, err := user.NewUser(kernel.NewUUID(), "Ravi", "ravi@example.com", "", "hash", roles, user.Profile{}, time.Now())
	require.NoError(t, err)
	return u
}

func TestNewRegisterUserCommand(t *testing.T) {
	t.Run("admin cannot self register", func(t *testing.T) {
		_, err := commands.NewRegisterUserCommand(kernel.NewUUID(), "A", "a@example.com", "", "pw",
			[]string{"admin"}, user.Profile{})
		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := commands.NewRegisterUserCommand(kernel.NewUUID(), "A", "a@example.com", "", "pw",
			[]string{"pilot"}, user.Profile{})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("password required", func(t *testing.T) {
		_, err := commands.NewRegisterUserCommand(kernel.NewUUID(), "A", "a@example.com", "", "",
			nil, user.Profile{})
		require.ErrorIs(t, err, commands.ErrPasswordIsRequired)
	})
}

func TestRegisterUserCommandHandler_Handle(t *testing.T) {
	newCmd := func(t *testing.T) commands.RegisterUserCommand {
		cmd, err := commands.NewRegisterUserCommand(kernel.NewUUID(), "Meena", "Meena@Example.com", "98450",
			"secret", []string{"merchant"}, user.Profile{ShopName: "Meena Stores"})
		require.NoError(t, err)
		return cmd
	}

	t.Run("stores user with customer role added", func(t *testing.T) {
		ctx := t.Context()
		hasher := new(MockHasher)
		hasher.On("Hash", "secret").Return("hashed", nil).Once()

		repo := new(MockUserRepository)
		uow := new(MockUoW)
		expectTx(uow, ctx, true)
		uow.On("UserRepository").Return(repo).Once()
		repo.On("GetByEmail", ctx, "meena@example.com").Return(nil, errs.NewObjectNotFoundError("email", "meena@example.com")).Once()
		repo.On("Add", ctx, mock.MatchedBy(func(u *user.User) bool {
			return u.PasswordHash() == "hashed" &&
				u.ActiveRole() == kernel.RoleMerchant &&
				u.HasRole(kernel.RoleCustomer) &&
				u.Profile().ShopName == "Meena Stores"
		})).Return(nil).Once()

		factory := newFactory[commands.UserUoW](uow)
		err := commands.NewRegisterUserCommandHandler(factory, hasher).Handle(ctx, newCmd(t))
		require.NoError(t, err)
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
		hasher.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		ctx := t.Context()
		hasher := new(MockHasher)
		hasher.On("Hash", "secret").Return("hashed", nil).Once()

		repo := new(MockUserRepository)
		uow := new(MockUoW)
		expectTx(uow, ctx, false)
		uow.On("UserRepository").Return(repo).Once()
		repo.On("GetByEmail", ctx, "meena@example.com").Return(existingUser(t), nil).Once()

		factory := newFactory[commands.UserUoW](uow)
		err := commands.NewRegisterUserCommandHandler(factory, hasher).Handle(ctx, newCmd(t))
		require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
		repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("hash failure stops before transaction", func(t *testing.T) {
		hasher := new(MockHasher)
		hasher.On("Hash", "secret").Return("", errors.New("boom")).Once()
		factory := new(MockFactory[commands.UserUoW])

		err := commands.NewRegisterUserCommandHandler(factory, hasher).Handle(t.Context(), newCmd(t))
		require.Error(t, err)
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("not constructed", func(t *testing.T) {
		err := commands.NewRegisterUserCommandHandler(new(MockFactory[commands.UserUoW]), new(MockHasher)).
			Handle(t.Context(), commands.RegisterUserCommand{})
		require.ErrorIs(t, err, commands.ErrRegisterUserCommandIsNotConstructed)
	})
}

func TestSwitchRoleCommandHandler_Handle(t *testing.T) {
	t.Run("switches to a granted role", func(t *testing.T) {
		ctx := t.Context()
		u := existingUser(t, kernel.RoleCustomer, kernel.RoleMerchant)
		cmd, err := commands.NewSwitchRoleCommand(u.ID(), "merchant")
		require.NoError(t, err)

		repo := new(MockUserRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("UserRepository").Return(repo).Once(),
			repo.On("Get", ctx, u.ID()).Return(u, nil).Once(),
			repo.On("Update", ctx, u).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		err = commands.NewSwitchRoleCommandHandler(newFactory[commands.UserUoW](uow)).Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, kernel.RoleMerchant, u.ActiveRole())
		uow.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("role not granted", func(t *testing.T) {
		ctx := t.Context()
		u := existingUser(t)
		cmd, err := commands.NewSwitchRoleCommand(u.ID(), "agent")
		require.NoError(t, err)

		repo := new(MockUserRepository)
		uow := new(MockUoW)
		expectTx(uow, ctx, false)
		uow.On("UserRepository").Return(repo).Once()
		repo.On("Get", ctx, u.ID()).Return(u, nil).Once()

		err = commands.NewSwitchRoleCommandHandler(newFactory[commands.UserUoW](uow)).Handle(ctx, cmd)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, kernel.RoleCustomer, u.ActiveRole())
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestToggleOnlineCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	u := existingUser(t, kernel.RoleAgent)
	cmd, err := commands.NewToggleOnlineCommand(u.ID())
	require.NoError(t, err)

	repo := new(MockUserRepository)
	uow := new(MockUoW)
	expectTx(uow, ctx, true)
	uow.On("UserRepository").Return(repo).Once()
	repo.On("Get", ctx, u.ID()).Return(u, nil).Once()
	repo.On("Update", ctx, u).Return(nil).Once()

	online, err := commands.NewToggleOnlineCommandHandler(newFactory[commands.UserUoW](uow)).Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, online)
	assert.True(t, u.IsOnline())
}

func TestUpdateProfileCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	u := existingUser(t)
	name := "Ravi K"
	cmd, err := commands.NewUpdateProfileCommand(u.ID(), user.ProfilePatch{Name: &name})
	require.NoError(t, err)

	repo := new(MockUserRepository)
	uow := new(MockUoW)
	expectTx(uow, ctx, true)
	uow.On("UserRepository").Return(repo).Once()
	repo.On("Get", ctx, u.ID()).Return(u, nil).Once()
	repo.On("Update", ctx, u).Return(nil).Once()

	err = commands.NewUpdateProfileCommandHandler(newFactory[commands.UserUoW](uow)).Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "Ravi K", u.Name())
}
