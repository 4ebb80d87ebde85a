package plans

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seeded = []Plan{
	{ID: 4, Name: "Anual VIP", Price: 450, DurationDays: 365},
	{ID: 2, Name: "Mensual General", Price: 45, DurationDays: 30},
	{ID: 1, Name: "Pase Diario", Price: 10, DurationDays: 1},
	{ID: 3, Name: "Trimestral Ahorro", Price: 120, DurationDays: 90},
}

func TestByNameThenKeyword(t *testing.T) {
	resolve := ByNameThenKeyword("mensual")

	tests := []struct {
		name   string
		hint   string
		wantID uint
	}{
		{name: "exact hint", hint: "Anual VIP", wantID: 4},
		{name: "hint is case insensitive", hint: "  trimestral AHORRO ", wantID: 3},
		{name: "partial hint falls back to keyword", hint: "Anual", wantID: 2},
		{name: "no hint uses keyword", hint: "", wantID: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := resolve(seeded, tt.hint)
			require.NotNil(t, p)
			assert.Equal(t, tt.wantID, p.ID)
		})
	}
}

func TestByNameThenKeywordLastResort(t *testing.T) {
	resolve := ByNameThenKeyword("semanal")

	p := resolve(seeded, "Plan Inexistente")

	require.NotNil(t, p)
	assert.Equal(t, uint(1), p.ID)
}

func TestByNameThenKeywordEmptyKeyword(t *testing.T) {
	p := ByNameThenKeyword("")(seeded, "")

	require.NotNil(t, p)
	assert.Equal(t, uint(1), p.ID)
}

func TestByNameThenKeywordNoPlans(t *testing.T) {
	assert.Nil(t, ByNameThenKeyword("mensual")(nil, "Mensual General"))
}
