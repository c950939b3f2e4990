package reporting

import (
	"github.com/mtl-labs/dashboard-api/internal/domain"
)

type CampaignMetrics struct {
	Revenue float64 `json:"revenue"`
	Profit  float64 `json:"profit"`
	ROI     float64 `json:"roi"`
}

// Metrics calcula receita, lucro e ROI a partir dos assinantes da campanha
func Metrics(campaign domain.Campaign) CampaignMetrics {
	revenue := float64(campaign.Suscrito) * SubscriptionPrice
	profit := revenue - campaign.Cost

	var roi float64
	if campaign.Cost > 0 {
		roi = profit / campaign.Cost * 100
	}

	return CampaignMetrics{
		Revenue: revenue,
		Profit:  profit,
		ROI:     roi,
	}
}

type StageComparison struct {
	Stage   domain.FunnelStage `json:"stage"`
	Counter int64              `json:"counter"`
	Leads   int64              `json:"leads"`
	Drift   int64              `json:"drift"`
}

// CompareFunnel coloca lado a lado o contador manual e os leads de cada etapa.
// Nada é reconciliado.
func CompareFunnel(campaign domain.Campaign, leads []domain.Lead) []StageComparison {
	byStage := make(map[domain.FunnelStage]int64, len(domain.FunnelStages))
	for _, lead := range leads {
		if lead.CampaignID != campaign.ID {
			continue
		}
		byStage[lead.Status]++
	}

	comparison := make([]StageComparison, 0, len(domain.FunnelStages))
	for _, stage := range domain.FunnelStages {
		counter := campaign.StageCount(stage)
		comparison = append(comparison, StageComparison{
			Stage:   stage,
			Counter: counter,
			Leads:   byStage[stage],
			Drift:   counter - byStage[stage],
		})
	}

	return comparison
}
