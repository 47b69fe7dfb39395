package main

import (
	"fmt"
	"log"

	"github.com/Maspur102/elokalfa/internal/config"
	"github.com/Maspur102/elokalfa/internal/model"
	"github.com/Maspur102/elokalfa/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// seedDefaults creates default privileges, roles, the first admin and the store profile.
// Failures are logged; the server still starts.
func seedDefaults(db *gorm.DB, admin config.AdminConfig) {
	if err := seedRoles(db); err != nil {
		log.Printf("Warning: Failed to seed roles: %v", err)
	}
	if err := seedAdmin(db, admin); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	}
	if err := seedStore(db); err != nil {
		log.Printf("Warning: Failed to seed store profile: %v", err)
	}
}

func seedRoles(db *gorm.DB) error {
	privilegeRepo := repository.NewPrivilegeRepo(db)
	roleRepo := repository.NewRoleRepo(db)

	if err := privilegeRepo.SeedDefaults(); err != nil {
		return fmt.Errorf("privileges: %w", err)
	}
	if err := roleRepo.SeedDefaults(); err != nil {
		return fmt.Errorf("roles: %w", err)
	}

	allPrivileges, err := privilegeRepo.FindAll()
	if err != nil {
		return err
	}

	// ADMIN always holds every privilege, including ones added by newer releases
	adminRole, err := roleRepo.FindByCode(model.RoleAdmin)
	if err != nil {
		return err
	}
	if len(adminRole.Privileges) != len(allPrivileges) {
		if err := roleRepo.ReplacePrivileges(adminRole, allPrivileges); err != nil {
			return err
		}
		log.Println("ADMIN role assigned all privileges")
	}

	// CASHIER is only initialised once so owner edits survive restarts
	cashierRole, err := roleRepo.FindByCode(model.RoleCashier)
	if err != nil {
		return err
	}
	if len(cashierRole.Privileges) == 0 {
		cashierPrivileges, err := privilegeRepo.FindByCodes(model.CashierPrivileges)
		if err != nil {
			return err
		}
		if err := roleRepo.ReplacePrivileges(cashierRole, cashierPrivileges); err != nil {
			return err
		}
		log.Println("CASHIER role assigned default privileges")
	}
	return nil
}

// seedAdmin creates the configured admin account when no user exists yet.
func seedAdmin(db *gorm.DB, cfg config.AdminConfig) error {
	userRepo := repository.NewUserRepo(db)
	roleRepo := repository.NewRoleRepo(db)

	count, err := userRepo.Count()
	if err != nil || count > 0 {
		return err
	}

	adminRole, err := roleRepo.FindByCode(model.RoleAdmin)
	if err != nil {
		return err
	}

	admin := &model.User{
		Username:     cfg.Username,
		FullName:     "Administrator",
		RoleID:       &adminRole.ID,
		IsActive:     true,
		TokenVersion: uuid.New().String(),
	}
	if err := admin.SetPassword(cfg.Password); err != nil {
		return err
	}
	if err := userRepo.Create(admin); err != nil {
		return err
	}
	log.Printf("Admin user created: %s (ADMIN). Change the password after first login.", cfg.Username)
	return nil
}

func seedStore(db *gorm.DB) error {
	storeRepo := repository.NewStoreRepo(db)
	info, err := storeRepo.Get()
	if err != nil {
		return err
	}
	if info != nil {
		return nil
	}
	if err := storeRepo.Save(&model.StoreInfo{StoreName: model.DefaultStoreName}); err != nil {
		return fmt.Errorf("create default store profile: %w", err)
	}
	return nil
}
