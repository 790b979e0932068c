// Package query holds the parameter validators for list endpoints.
package query

import (
	"fmt"
	"sort"

	"github.com/fekuna/omnipos-purchase-service/internal/apierr"
)

// Filter names accepted by NewPurchasedProductParams.
const (
	ParamTags       = "Tags"
	ParamProductIDs = "ProductIds"
)

var legalPurchasedProductKeys = map[string]struct{}{
	ParamTags:       {},
	ParamProductIDs: {},
}

// LegalPurchasedProductKeys returns the accepted filter names, sorted.
func LegalPurchasedProductKeys() []string {
	keys := make([]string, 0, len(legalPurchasedProductKeys))
	for k := range legalPurchasedProductKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// PurchasedProductParams is the validated filter set for listing a user's
// purchased products. Values are passed through untouched.
type PurchasedProductParams struct {
	passed map[string]any
}

// NewPurchasedProductParams copies pars and validates its keys. A nil map is
// treated as empty.
func NewPurchasedProductParams(pars map[string]any) (*PurchasedProductParams, error) {
	p := &PurchasedProductParams{
		passed: make(map[string]any, len(pars)),
	}
	for k, v := range pars {
		p.passed[k] = v
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate stops at the first key outside the allow-list.
func (p *PurchasedProductParams) Validate() error {
	for k := range p.passed {
		if _, ok := legalPurchasedProductKeys[k]; !ok {
			return &apierr.UnknownParameterError{Key: k}
		}
	}
	return nil
}

// ParameterDict returns the underlying map, not a copy. Do not modify it.
func (p *PurchasedProductParams) ParameterDict() map[string]any {
	return p.passed
}

func (p *PurchasedProductParams) String() string {
	return fmt.Sprint(p.passed)
}
