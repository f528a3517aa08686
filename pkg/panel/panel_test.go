// pkg/panel/panel_test.go
package panel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }

func writePanelFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "panel.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ValidPanel(t *testing.T) {
	path := writePanelFile(t, `{
		"updatedAt": "2026-08-01T00:00:00Z",
		"lenders": [
			{
				"id": "lender-1",
				"name": "Alpha Capital",
				"minTradingMonths": 12,
				"minLoanAmount": 5000,
				"maxLoanAmount": 250000,
				"acceptsCcjs": false,
				"acceptedBusinessTypes": ["limited_company"],
				"active": true,
				"panelEligible": true
			},
			{
				"id": "lender-2",
				"name": "Bravo Finance",
				"active": true,
				"panelEligible": false
			}
		]
	}`)

	p, err := Load(path)

	require.NoError(t, err)
	require.Len(t, p.Lenders, 2)

	first := p.Lenders[0]
	assert.Equal(t, "lender-1", first.ID)
	assert.Equal(t, "Alpha Capital", first.Name)
	require.NotNil(t, first.MinTradingMonths)
	assert.Equal(t, 12, *first.MinTradingMonths)
	require.NotNil(t, first.AcceptsCCJs)
	assert.False(t, *first.AcceptsCCJs)
	assert.True(t, first.Active)
	assert.True(t, first.PanelEligible)

	// Undeclared thresholds stay nil through the file format too.
	second := p.Lenders[1]
	assert.Nil(t, second.MinTradingMonths)
	assert.Nil(t, second.AcceptsCCJs)
	assert.False(t, second.PanelEligible)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writePanelFile(t, `{"lenders": [`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "parse panel file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		panel   Panel
		wantErr string
	}{
		{
			name:  "empty panel is fine",
			panel: Panel{},
		},
		{
			name: "missing id",
			panel: Panel{Lenders: []Lender{
				{},
			}},
			wantErr: "missing id",
		},
		{
			name: "missing name",
			panel: Panel{Lenders: []Lender{
				lenderWith("lender-1", ""),
			}},
			wantErr: "missing name",
		},
		{
			name: "duplicate id",
			panel: Panel{Lenders: []Lender{
				lenderWith("lender-1", "Alpha"),
				lenderWith("lender-1", "Bravo"),
			}},
			wantErr: "duplicate id",
		},
		{
			name: "inverted loan range",
			panel: Panel{Lenders: []Lender{
				func() Lender {
					l := lenderWith("lender-1", "Alpha")
					l.MinLoanAmount = fptr(100000)
					l.MaxLoanAmount = fptr(5000)
					return l
				}(),
			}},
			wantErr: "min loan amount exceeds max",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.panel.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func lenderWith(id, name string) Lender {
	var l Lender
	l.ID = id
	l.Name = name
	return l
}
