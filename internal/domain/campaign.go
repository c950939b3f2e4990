package domain

import "time"

// Campaign guarda os contadores do funil editados manualmente. Eles não são
// sincronizados com os leads da campanha.
type Campaign struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Source           CampaignSource `json:"source"`
	StartDate        Date           `json:"start_date"`
	EndDate          Date           `json:"end_date"`
	Cost             float64        `json:"cost"`
	ContactoInicial  int64          `json:"contacto_inicial"`
	InfoEnviada      int64          `json:"info_enviada"`
	ContactoPersonal int64          `json:"contacto_personal"`
	Registrado       int64          `json:"registrado"`
	Suscrito         int64          `json:"suscrito"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// StageCount retorna o contador manual de uma etapa do funil
func (c Campaign) StageCount(stage FunnelStage) int64 {
	switch stage {
	case StageContactoInicial:
		return c.ContactoInicial
	case StageInfoEnviada:
		return c.InfoEnviada
	case StageContactoPersonal:
		return c.ContactoPersonal
	case StageRegistrado:
		return c.Registrado
	case StageSuscrito:
		return c.Suscrito
	}
	return 0
}

type CreateCampaignRequest struct {
	Name             string  `json:"name"`
	Source           string  `json:"source"`
	StartDate        Date    `json:"start_date"`
	EndDate          Date    `json:"end_date"`
	Cost             float64 `json:"cost"`
	ContactoInicial  int64   `json:"contacto_inicial"`
	InfoEnviada      int64   `json:"info_enviada"`
	ContactoPersonal int64   `json:"contacto_personal"`
	Registrado       int64   `json:"registrado"`
	Suscrito         int64   `json:"suscrito"`
}

type Lead struct {
	ID         string      `json:"id"`
	CampaignID string      `json:"campaign_id"`
	Name       string      `json:"name"`
	Status     FunnelStage `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

type CreateLeadRequest struct {
	CampaignID string `json:"campaign_id"`
	Name       string `json:"name"`
	Status     string `json:"status"`
}
