package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtl-labs/dashboard-api/internal/domain"
)

func TestParseTeamMembers(t *testing.T) {
	tests := []struct {
		name     string
		entries  []string
		expected []domain.TeamMember
		wantErr  bool
	}{
		{
			name:    "Diretório padrão",
			entries: []string{"maxi:Maxi", "tomas:Tomas", "leandro:Leandro"},
			expected: []domain.TeamMember{
				{ID: "maxi", DisplayName: "Maxi"},
				{ID: "tomas", DisplayName: "Tomas"},
				{ID: "leandro", DisplayName: "Leandro"},
			},
		},
		{
			name:     "Entrada sem nome usa o id",
			entries:  []string{" ana "},
			expected: []domain.TeamMember{{ID: "ana", DisplayName: "ana"}},
		},
		{
			name:     "Entradas vazias são ignoradas",
			entries:  []string{"", "  "},
			expected: []domain.TeamMember{},
		},
		{
			name:    "Id vazio",
			entries: []string{":Sem Id"},
			wantErr: true,
		},
		{
			name:    "Id duplicado",
			entries: []string{"maxi:Maxi", "maxi:Outro"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseTeamMembers(tt.entries)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}
