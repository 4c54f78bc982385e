package tollgate

import (
	"encoding/json"
	"os"

	"github.com/nischayvm/karnataka-tolls/pkg/util"
)

// LoadCatalogFromFile reads a gate catalog from a JSON file. Used by
// deployments without a postgres instance and by the seeder.
func LoadCatalogFromFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrUpstreamUnavailable,
			"read toll catalog file %s", path)
	}
	var gates []TollGate
	if err := json.Unmarshal(raw, &gates); err != nil {
		return nil, util.WrapErrorf(err, util.ErrUpstreamUnavailable,
			"decode toll catalog file %s", path)
	}
	return NewCatalog(gates), nil
}
