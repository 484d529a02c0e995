package config

import (
	"github.com/raywall/starkbank-go/checks"
	"github.com/raywall/starkbank-go/user"
)

// Params converte a seção user no formato aceito pelos construtores de user.
func (u UserConf) Params() checks.Params {
	params := checks.Params{
		"id":          u.ID,
		"privateKey":  u.PrivateKey,
		"environment": u.Environment,
	}
	if u.WorkspaceID != "" {
		params["workspaceId"] = u.WorkspaceID
	}
	return params
}

// Build cria a credencial descrita na configuração.
func (u UserConf) Build() (user.User, error) {
	if u.Type == "organization" {
		return user.NewOrganization(u.Params())
	}
	return user.NewProject(u.Params())
}
