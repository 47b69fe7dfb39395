package service

import "github.com/Maspur102/elokalfa/internal/model"

// Actor is the authenticated user performing a request. The auth middleware builds it
// and handlers pass it explicitly into every mutating service call.
type Actor struct {
	UserID     uint     `json:"id"`
	Username   string   `json:"username"`
	FullName   string   `json:"full_name"`
	Role       string   `json:"role"`
	Privileges []string `json:"privileges"`
}

// Name is the value written to created_by/updated_by.
func (a Actor) Name() string {
	if a.Username == "" {
		return model.SystemActor
	}
	return a.Username
}

func (a Actor) HasPrivilege(code string) bool {
	for _, p := range a.Privileges {
		if p == code {
			return true
		}
	}
	return false
}

func actorFromUser(u *model.User) *Actor {
	return &Actor{
		UserID:     u.ID,
		Username:   u.Username,
		FullName:   u.FullName,
		Role:       u.RoleCode(),
		Privileges: u.GetPrivilegeCodes(),
	}
}
