package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/fekuna/omnipos-purchase-service/internal/apierr"
	"github.com/fekuna/omnipos-purchase-service/internal/query"
)

type RecordPurchaseInput struct {
	UserID      string
	PurchaseID  string
	ProductID   string
	Name        string
	Tags        []string
	Price       float64
	Quantity    float64
	PurchasedAt time.Time
}

// FiltersFromParams decodes validated query parameters into typed filters.
// The validator only checks key names, so value shapes are checked here.
func FiltersFromParams(userID string, params *query.PurchasedProductParams) (*PurchaseFilters, error) {
	f := &PurchaseFilters{UserID: userID}
	if params == nil {
		return f, nil
	}

	dict := params.ParameterDict()
	if v, ok := dict[query.ParamTags]; ok {
		tags, err := stringList(query.ParamTags, v)
		if err != nil {
			return nil, err
		}
		f.Tags = tags
	}
	if v, ok := dict[query.ParamProductIDs]; ok {
		ids, err := stringList(query.ParamProductIDs, v)
		if err != nil {
			return nil, err
		}
		f.ProductIDs = ids
	}
	return f, nil
}

func stringList(key string, v any) ([]string, error) {
	var out []string
	switch vv := v.(type) {
	case nil:
		return nil, nil
	case string:
		for _, s := range strings.Split(vv, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	case []string:
		out = append(out, vv...)
	case []any:
		for i, item := range vv {
			s, ok := item.(string)
			if !ok {
				return nil, &apierr.IllegalParameterError{
					Key:    key,
					Value:  v,
					Reason: fmt.Sprintf("element %d is %T, want string", i, item),
				}
			}
			out = append(out, s)
		}
	default:
		return nil, &apierr.IllegalParameterError{
			Key:    key,
			Value:  v,
			Reason: "expected a list of strings",
		}
	}
	return out, nil
}
