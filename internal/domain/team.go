package domain

// TeamMember é um responsável possível para tarefas, vindo da configuração
type TeamMember struct {
	ID          string `json:"id"`
	DisplayName string `json:"name"`
}
