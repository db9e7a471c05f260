// internals/features/notifications/whatsapp/scheduler/birthday_job.go
package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	celulaModel "centralcelular_backend/internals/features/cells/cells/model"
	membroModel "centralcelular_backend/internals/features/cells/members/model"
	waModel "centralcelular_backend/internals/features/notifications/whatsapp/model"
	"centralcelular_backend/internals/features/notifications/whatsapp/service"
	configModel "centralcelular_backend/internals/features/users/config/model"
	userModel "centralcelular_backend/internals/features/users/user/model"
)

// StartBirthdayReminders pings each cell leader over WhatsApp when one
// of their membros has a birthday coming up. The lead time comes from
// the leader's own config. Runs once a day around 08:00 local time.
func StartBirthdayReminders(db *gorm.DB) {
	go func() {
		client := service.NewClient()
		for {
			time.Sleep(untilNextRun(time.Now()))
			runBirthdaySweep(db, client)
		}
	}()
}

func untilNextRun(now time.Time) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), 8, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.Add(24 * time.Hour)
	}
	return next.Sub(now)
}

func runBirthdaySweep(db *gorm.DB, client *service.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	var connections []waModel.WhatsAppConnectionModel
	if err := db.
		Where("whatsapp_connection_status = ?", "connected").
		Find(&connections).Error; err != nil {
		log.Println("[ERROR] birthday sweep, connections:", err)
		return
	}

	for i := range connections {
		conn := &connections[i]
		if err := sweepAccount(ctx, db, client, conn); err != nil {
			log.Println("[ERROR] birthday sweep, account", conn.WhatsAppConnectionAccountID, ":", err)
		}
	}
}

func sweepAccount(ctx context.Context, db *gorm.DB, client *service.Client, conn *waModel.WhatsAppConnectionModel) error {
	var celulas []celulaModel.CelulaModel
	if err := db.
		Where("celula_account_id = ? AND celula_ativo = true", conn.WhatsAppConnectionAccountID).
		Find(&celulas).Error; err != nil {
		return err
	}

	for i := range celulas {
		celula := &celulas[i]

		var lider userModel.UsuarioModel
		if err := db.
			Where("usuario_id = ? AND usuario_ativo = true", celula.CelulaLiderID).
			First(&lider).Error; err != nil {
			continue
		}
		if lider.UsuarioWhatsApp == nil || *lider.UsuarioWhatsApp == "" {
			continue
		}

		leadDays := 1
		var cfg configModel.UsuarioConfigModel
		if err := db.
			Where("usuario_config_usuario_id = ?", lider.UsuarioID).
			First(&cfg).Error; err == nil {
			if !cfg.UsuarioConfigNotificarAniversarios {
				continue
			}
			leadDays = cfg.UsuarioConfigDiasAntecedencia
		}

		var membros []membroModel.MembroModel
		if err := db.
			Where("membro_celula_id = ? AND membro_ativo = true AND membro_data_nascimento IS NOT NULL",
				celula.CelulaID).
			Find(&membros).Error; err != nil {
			continue
		}

		target := time.Now().AddDate(0, 0, leadDays)
		for j := range membros {
			m := &membros[j]
			if !sameMonthDay(*m.MembroDataNascimento, target) {
				continue
			}
			msg := birthdayMessage(m.MembroNome, leadDays)
			if err := client.SendText(ctx, conn.WhatsAppConnectionToken, *lider.UsuarioWhatsApp, msg); err != nil {
				log.Println("[ERROR] birthday reminder:", err)
			}
		}
	}
	return nil
}

func sameMonthDay(a, b time.Time) bool {
	return a.Month() == b.Month() && a.Day() == b.Day()
}

func birthdayMessage(nome string, leadDays int) string {
	switch leadDays {
	case 0:
		return fmt.Sprintf("Hoje e aniversario de %s! Nao esqueca de parabenizar.", nome)
	case 1:
		return fmt.Sprintf("Amanha e aniversario de %s. Prepare uma surpresa!", nome)
	default:
		return fmt.Sprintf("Em %d dias e aniversario de %s.", leadDays, nome)
	}
}
