package main

import (
	"testing"

	"github.com/Maspur102/elokalfa/internal/config"
	"github.com/Maspur102/elokalfa/internal/model"
	"github.com/Maspur102/elokalfa/internal/repository"
	"github.com/Maspur102/elokalfa/internal/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDefaults_Idempotent(t *testing.T) {
	db := testdb.Open(t)
	cfg := config.AdminConfig{Username: "owner", Password: "rahasia123"}

	seedDefaults(db, cfg)
	seedDefaults(db, cfg)

	users := repository.NewUserRepo(db)
	count, err := users.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	owner, err := users.FindByUsername("owner")
	require.NoError(t, err)
	assert.True(t, owner.CheckPassword("rahasia123"))
	assert.Equal(t, model.RoleAdmin, owner.RoleCode())
	assert.Len(t, owner.GetPrivilegeCodes(), len(model.DefaultPrivileges))

	cashier, err := repository.NewRoleRepo(db).FindByCode(model.RoleCashier)
	require.NoError(t, err)
	assert.Len(t, cashier.Privileges, len(model.CashierPrivileges))

	info, err := repository.NewStoreRepo(db).Get()
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, model.DefaultStoreName, info.StoreName)
}
