package codec

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/rentledger-dev/rentledger/internal/journal"
	"github.com/rentledger-dev/rentledger/internal/model"
)

type compactExpense struct {
	Amount      looseNumber `json:"a"`
	Description string      `json:"d"`
}

type compactProperty struct {
	ID             looseID          `json:"i"`
	Name           string           `json:"n"`
	Rent           looseNumber      `json:"r"`
	ConvenienceFee looseNumber      `json:"c"`
	ManagementFee  looseNumber      `json:"m"`
	PaymentDate    string           `json:"d"`
	Expenses       []compactExpense `json:"e"`
}

type compactState struct {
	Properties []compactProperty `json:"p"`
}

// EncodeFragment serializes the property list into the percent-encoded
// compact form carried in the URL fragment. Journal entries are never
// encoded; expenses that do not coerce positive are dropped.
func EncodeFragment(properties []model.Property) (string, error) {
	state := compactState{Properties: make([]compactProperty, 0, len(properties))}
	for _, p := range properties {
		cp := compactProperty{
			ID:             looseID(p.ID),
			Name:           p.Name,
			Rent:           num(p.Rent),
			ConvenienceFee: num(p.ConvenienceFee),
			ManagementFee:  num(p.ManagementFeePercentage),
			PaymentDate:    p.PaymentDate,
			Expenses:       []compactExpense{},
		}
		for _, e := range p.Expenses {
			if !e.Amount.IsPositive() {
				continue
			}
			cp.Expenses = append(cp.Expenses, compactExpense{Amount: num(e.Amount), Description: e.Description})
		}
		state.Properties = append(state.Properties, cp)
	}

	data, err := json.Marshal(state)
	if err != nil {
		return "", fmt.Errorf("encoding compact state: %w", err)
	}
	return url.PathEscape(string(data)), nil
}

// DecodeFragment reconstructs application state from a URL fragment. An
// empty fragment is the normal "no saved state" case and yields (nil, nil).
// Journal entries are always regenerated from the decoded properties.
func DecodeFragment(fragment string) (*model.State, error) {
	fragment = strings.TrimPrefix(fragment, "#")
	if fragment == "" {
		return nil, nil
	}

	raw, err := url.PathUnescape(fragment)
	if err != nil {
		return nil, fmt.Errorf("decoding fragment: %w", err)
	}

	var state compactState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, fmt.Errorf("parsing compact state: %w", err)
	}

	properties := make([]model.Property, 0, len(state.Properties))
	for _, cp := range state.Properties {
		p := model.Property{
			ID:                      string(cp.ID),
			Name:                    cp.Name,
			Rent:                    cp.Rent.Decimal,
			ConvenienceFee:          cp.ConvenienceFee.Decimal,
			ManagementFeePercentage: cp.ManagementFee.Decimal,
			PaymentDate:             cp.PaymentDate,
		}
		for _, e := range cp.Expenses {
			p.Expenses = append(p.Expenses, model.Expense{Amount: e.Amount.Decimal, Description: e.Description})
		}
		properties = append(properties, p)
	}

	return &model.State{
		Properties:     properties,
		JournalEntries: journal.Rebuild(properties),
	}, nil
}

// ShareURL builds the full shareable link: base URL plus the encoded
// fragment.
func ShareURL(baseURL string, properties []model.Property) (string, error) {
	fragment, err := EncodeFragment(properties)
	if err != nil {
		return "", err
	}
	return baseURL + "#" + fragment, nil
}
