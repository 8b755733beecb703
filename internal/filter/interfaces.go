// Package filter narrows property sets to the keys of one environment.
//
// A single properties file may carry settings for several environments:
//
//	app.name=Track
//	dev.db.url=jdbc:h2:mem:dev
//	prod.db.url=jdbc:mysql://production
//
// Filtering with tag "dev" keeps only the dev-prefixed keys, without the
// prefix:
//
//	db.url=jdbc:h2:mem:dev
package filter

//go:generate mockgen -source=interfaces.go -destination=../mock/filter_mock.go -package=mock

import "github.com/MKhiriev/go-track/models"

// PropertyFilter derives a new property set from set according to criteria.
// Implementations never mutate set.
type PropertyFilter interface {
	Filter(set *models.PropertySet, criteria string) *models.PropertySet
}
