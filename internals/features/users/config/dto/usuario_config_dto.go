package dto

import "gorm.io/datatypes"

type AtualizarUsuarioConfigRequest struct {
	NotificarAniversarios *bool             `json:"usuario_config_notificar_aniversarios"`
	DiasAntecedencia      *int              `json:"usuario_config_dias_antecedencia" validate:"omitempty,min=0,max=30"`
	Preferencias          datatypes.JSONMap `json:"usuario_config_preferencias"`
}
