package store

// All statements are parameterized and statically structured. Operations
// with an optional namespace filter pick between two fixed query texts;
// query structure is never assembled from strings at run time.
const (
	cypherClearAll       = `MATCH (n) DETACH DELETE n`
	cypherClearNamespace = `MATCH (n) WHERE n.namespace = $namespace DETACH DELETE n`

	cypherMergeLayer   = `MERGE (l:Layer {name: $name, namespace: $namespace})`
	cypherMergePackage = `MERGE (p:Package {name: $name, namespace: $namespace})`

	cypherMergeBelongsTo = `MATCH (p:Package {name: $package, namespace: $namespace})
MATCH (l:Layer {name: $layer, namespace: $namespace})
MERGE (p)-[r:BELONGS_TO {namespace: $namespace}]->(l)
RETURN count(r) AS merged`

	cypherMergeDependsOn = `MATCH (p1:Package {name: $source, namespace: $namespace})
MATCH (p2:Package {name: $target, namespace: $namespace})
MERGE (p1)-[r:DEPENDS_ON {namespace: $namespace}]->(p2)
RETURN count(r) AS merged`

	cypherCountPackages   = `MATCH (p:Package) RETURN count(p) AS count`
	cypherCountPackagesNS = `MATCH (p:Package) WHERE p.namespace = $namespace RETURN count(p) AS count`

	cypherCountLayers   = `MATCH (l:Layer) RETURN count(l) AS count`
	cypherCountLayersNS = `MATCH (l:Layer) WHERE l.namespace = $namespace RETURN count(l) AS count`

	cypherCountDependsOn   = `MATCH ()-[r:DEPENDS_ON]->() RETURN count(r) AS count`
	cypherCountDependsOnNS = `MATCH ()-[r:DEPENDS_ON]->() WHERE r.namespace = $namespace RETURN count(r) AS count`

	cypherCountBelongsTo   = `MATCH ()-[r:BELONGS_TO]->() RETURN count(r) AS count`
	cypherCountBelongsToNS = `MATCH ()-[r:BELONGS_TO]->() WHERE r.namespace = $namespace RETURN count(r) AS count`

	cypherTopDependers = `MATCH (p:Package)-[:DEPENDS_ON]->(dep)
RETURN p.name AS package, count(dep) AS dep_count
ORDER BY dep_count DESC
LIMIT 5`
	cypherTopDependersNS = `MATCH (p:Package)-[:DEPENDS_ON]->(dep)
WHERE p.namespace = $namespace
RETURN p.name AS package, count(dep) AS dep_count
ORDER BY dep_count DESC
LIMIT 5`

	cypherListNamespaces = `MATCH (n)
WHERE n.namespace IS NOT NULL
RETURN DISTINCT n.namespace AS namespace
ORDER BY namespace`
)
