package store

import "context"

// TopPackage is one entry in the top-dependers listing.
type TopPackage struct {
	Name         string `json:"name"`
	Dependencies int64  `json:"dependencies"`
}

// Report holds the verification counts for a namespace, or for the whole
// store when Namespace is empty.
type Report struct {
	Namespace string `json:"namespace,omitempty"`
	Packages  int64  `json:"packages"`
	Layers    int64  `json:"layers"`
	DependsOn int64  `json:"depends_on"`
	BelongsTo int64  `json:"belongs_to"`

	// TopDependers lists up to five packages by outgoing DEPENDS_ON count.
	// Tie order is whatever the store returns; it is not deterministic.
	TopDependers []TopPackage `json:"top_dependers,omitempty"`
}

// Verify queries aggregate counts and the top five packages by outgoing
// dependency count. An empty namespace reports across all namespaces.
func (im *Importer) Verify(ctx context.Context, namespace string) (*Report, error) {
	var params map[string]any
	if namespace != "" {
		params = map[string]any{"namespace": namespace}
	}

	report := &Report{Namespace: namespace}

	counts := []struct {
		all, scoped string
		dst         *int64
	}{
		{cypherCountPackages, cypherCountPackagesNS, &report.Packages},
		{cypherCountLayers, cypherCountLayersNS, &report.Layers},
		{cypherCountDependsOn, cypherCountDependsOnNS, &report.DependsOn},
		{cypherCountBelongsTo, cypherCountBelongsToNS, &report.BelongsTo},
	}
	for _, c := range counts {
		cypher := c.all
		if namespace != "" {
			cypher = c.scoped
		}
		rows, err := im.client.Run(ctx, cypher, params)
		if err != nil {
			return nil, err
		}
		if len(rows) > 0 {
			*c.dst = asInt(rows[0]["count"])
		}
	}

	cypher := cypherTopDependers
	if namespace != "" {
		cypher = cypherTopDependersNS
	}
	rows, err := im.client.Run(ctx, cypher, params)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		name, _ := row["package"].(string)
		report.TopDependers = append(report.TopDependers, TopPackage{
			Name:         name,
			Dependencies: asInt(row["dep_count"]),
		})
	}

	return report, nil
}

// Namespaces lists every distinct namespace value present on any node,
// sorted ascending.
func (im *Importer) Namespaces(ctx context.Context) ([]string, error) {
	rows, err := im.client.Run(ctx, cypherListNamespaces, nil)
	if err != nil {
		return nil, err
	}
	namespaces := make([]string, 0, len(rows))
	for _, row := range rows {
		if ns, ok := row["namespace"].(string); ok {
			namespaces = append(namespaces, ns)
		}
	}
	return namespaces, nil
}
