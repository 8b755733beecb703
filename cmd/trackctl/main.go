// Command trackctl resolves and inspects the layered external configuration
// of track applications.
package main

import (
	"os"

	"github.com/MKhiriev/go-track/internal/cli"
	"github.com/MKhiriev/go-track/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(cli.Run(buildInfo()))
}

func buildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
