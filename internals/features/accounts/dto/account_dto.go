package dto

import "centralcelular_backend/internals/features/accounts/model"

type AtualizarAccountRequest struct {
	AccountNome *string `json:"account_nome" validate:"omitempty,min=2,max=120"`
}

type AccountResponse struct {
	AccountID    string `json:"account_id"`
	AccountNome  string `json:"account_nome"`
	AccountAtivo bool   `json:"account_ativo"`
}

func FromAccountModel(m *model.AccountModel) AccountResponse {
	return AccountResponse{
		AccountID:    m.AccountID.String(),
		AccountNome:  m.AccountNome,
		AccountAtivo: m.AccountAtivo,
	}
}
