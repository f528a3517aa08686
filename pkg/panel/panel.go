// pkg/panel/panel.go
package panel

import (
	"encoding/json"
	"fmt"
	"os"

	"broker-workers/internal/models"
)

// Lender is one catalog entry as declared in a panel file: the underwriting
// criteria plus the surfacing flags the matching engine relies on being
// pre-filtered.
type Lender struct {
	models.LenderCriteria
	Active        bool `json:"active"`
	PanelEligible bool `json:"panelEligible"`
}

// Panel is the file format consumed by the catalog loader.
type Panel struct {
	UpdatedAt string   `json:"updatedAt,omitempty"`
	Lenders   []Lender `json:"lenders"`
}

// Load reads and validates a panel file.
func Load(path string) (*Panel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var p Panel
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse panel file: %w", err)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// Validate checks the structural invariants the loader depends on.
func (p *Panel) Validate() error {
	seen := make(map[string]bool, len(p.Lenders))
	for i, lender := range p.Lenders {
		if lender.ID == "" {
			return fmt.Errorf("lender %d: missing id", i)
		}
		if lender.Name == "" {
			return fmt.Errorf("lender %q: missing name", lender.ID)
		}
		if seen[lender.ID] {
			return fmt.Errorf("lender %q: duplicate id", lender.ID)
		}
		seen[lender.ID] = true

		if lender.MinLoanAmount != nil && lender.MaxLoanAmount != nil &&
			*lender.MinLoanAmount > *lender.MaxLoanAmount {
			return fmt.Errorf("lender %q: min loan amount exceeds max", lender.ID)
		}
	}
	return nil
}
