package models

import "github.com/ezycar/booking-api/internal/api/validate"

type Provider struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Tel     string `json:"tel"`
}

func (p *Provider) Validate() error {
	var errs validate.Errs
	for _, f := range []struct{ name, value string }{
		{"name", p.Name},
		{"address", p.Address},
		{"tel", p.Tel},
	} {
		if e := validate.Required(f.name, f.value); e != nil {
			errs = append(errs, *e)
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ProviderSummary is the projection embedded into booking responses.
type ProviderSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Tel     string `json:"tel"`
}

func (p Provider) Summary() ProviderSummary {
	return ProviderSummary{ID: p.ID, Name: p.Name, Address: p.Address, Tel: p.Tel}
}
