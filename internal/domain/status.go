package domain

import "fmt"

// Status é compartilhado por projetos e tarefas. Qualquer status pode ser
// atribuído a partir de qualquer outro.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

var Statuses = []Status{StatusPending, StatusInProgress, StatusCompleted, StatusCancelled}

func ParseStatus(value string) (Status, error) {
	for _, s := range Statuses {
		if string(s) == value {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: status desconhecido %q", ErrValidation, value)
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func ParsePriority(value string) (Priority, error) {
	switch Priority(value) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(value), nil
	}
	return "", fmt.Errorf("%w: prioridade desconhecida %q", ErrValidation, value)
}

type CampaignSource string

const (
	SourceFacebook     CampaignSource = "facebook"
	SourceInstagram    CampaignSource = "instagram"
	SourceMercadoLibre CampaignSource = "mercadolibre"
	SourceGratuita     CampaignSource = "gratuita"
)

func ParseCampaignSource(value string) (CampaignSource, error) {
	switch CampaignSource(value) {
	case SourceFacebook, SourceInstagram, SourceMercadoLibre, SourceGratuita:
		return CampaignSource(value), nil
	}
	return "", fmt.Errorf("%w: origem de campanha desconhecida %q", ErrValidation, value)
}

// FunnelStage é uma etapa do funil de conversão, usada tanto nos contadores
// da campanha quanto no status de cada lead
type FunnelStage string

const (
	StageContactoInicial  FunnelStage = "contacto_inicial"
	StageInfoEnviada      FunnelStage = "info_enviada"
	StageContactoPersonal FunnelStage = "contacto_personal"
	StageRegistrado       FunnelStage = "registrado"
	StageSuscrito         FunnelStage = "suscrito"
)

// FunnelStages em ordem de funil
var FunnelStages = []FunnelStage{
	StageContactoInicial,
	StageInfoEnviada,
	StageContactoPersonal,
	StageRegistrado,
	StageSuscrito,
}

func ParseFunnelStage(value string) (FunnelStage, error) {
	for _, s := range FunnelStages {
		if string(s) == value {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: etapa de funil desconhecida %q", ErrValidation, value)
}

type CostFrequency string

const (
	FrequencyMonthly CostFrequency = "monthly"
	FrequencyAnnual  CostFrequency = "annual"
)

func ParseCostFrequency(value string) (CostFrequency, error) {
	switch CostFrequency(value) {
	case FrequencyMonthly, FrequencyAnnual:
		return CostFrequency(value), nil
	}
	return "", fmt.Errorf("%w: frequência desconhecida %q", ErrValidation, value)
}
